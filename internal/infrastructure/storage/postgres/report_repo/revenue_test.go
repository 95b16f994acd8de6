package report_repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salestrack/internal/core/id"
	"salestrack/internal/domain"
	"salestrack/internal/domain/reports"
	"salestrack/internal/infrastructure/storage/postgres"
)

const revenueSelect = "SELECT a.id AS article_id, a.name AS article_name, c.display_name AS category_name, " +
	"SUM(s.unit_selling_price * s.quantity) AS total_revenue, " +
	"ROUND(AVG((s.unit_selling_price - a.manufacturing_cost) / a.manufacturing_cost) * 100, 2) AS average_margin_percentage, " +
	"MAX(s.date) AS last_sale_date, COUNT(*) AS sale_count " +
	"FROM sales s JOIN articles a ON a.id = s.article_id JOIN categories c ON c.id = a.category_id"

func TestRevenueQuery_Unfiltered(t *testing.T) {
	filter := reports.RevenueFilter{ListFilter: domain.ListFilter{Page: 2}}
	q := postgres.Paginate(revenueQuery(filter).OrderBy(revenueOrder...), filter.ListFilter)

	sql, args, err := q.ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		revenueSelect+" GROUP BY a.id, a.name, c.display_name "+
			"ORDER BY total_revenue DESC, a.id ASC LIMIT 25 OFFSET 25",
		sql)
	assert.Empty(t, args)
}

func TestRevenueQuery_Filters(t *testing.T) {
	categoryID := id.ID(4)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	sql, args, err := revenueQuery(reports.RevenueFilter{
		CategoryID: &categoryID,
		From:       &from,
		To:         &to,
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		revenueSelect+" WHERE a.category_id = $1 AND s.date >= $2 AND s.date <= $3 "+
			"GROUP BY a.id, a.name, c.display_name",
		sql)
	assert.Equal(t, []any{categoryID, from, to}, args)
}

func TestRevenueQuery_CountWrapsGroupedRows(t *testing.T) {
	sql, _, err := postgres.CountQuery(revenueQuery(reports.RevenueFilter{})).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT COUNT(*) FROM ("+revenueSelect+" GROUP BY a.id, a.name, c.display_name) AS sub",
		sql)
}

// Package report_repo provides the PostgreSQL aggregation behind the revenue reports.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"salestrack/internal/domain"
	"salestrack/internal/domain/reports"
	"salestrack/internal/infrastructure/storage/postgres"
)

var _ reports.Repository = (*ReportRepo)(nil)

// revenueColumns are the aggregated columns, named after reports.ArticleRevenue db tags.
// Margin is averaged per sale against the article's current manufacturing cost.
var revenueColumns = []string{
	"a.id AS article_id",
	"a.name AS article_name",
	"c.display_name AS category_name",
	"SUM(s.unit_selling_price * s.quantity) AS total_revenue",
	"ROUND(AVG((s.unit_selling_price - a.manufacturing_cost) / a.manufacturing_cost) * 100, 2) AS average_margin_percentage",
	"MAX(s.date) AS last_sale_date",
	"COUNT(*) AS sale_count",
}

var revenueOrder = []string{"total_revenue DESC", "a.id ASC"}

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	txm *postgres.TxManager
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{txm: txm}
}

// revenueQuery groups the filtered sales by article, without ordering or pagination.
func revenueQuery(filter reports.RevenueFilter) squirrel.SelectBuilder {
	q := postgres.Builder().
		Select(revenueColumns...).
		From("sales s").
		Join("articles a ON a.id = s.article_id").
		Join("categories c ON c.id = a.category_id").
		GroupBy("a.id", "a.name", "c.display_name")

	if filter.CategoryID != nil {
		q = q.Where(squirrel.Eq{"a.category_id": *filter.CategoryID})
	}
	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"s.date": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(squirrel.LtOrEq{"s.date": *filter.To})
	}
	return q
}

// Revenue returns one page of aggregated rows ordered by revenue descending, then article id.
func (r *ReportRepo) Revenue(ctx context.Context, filter reports.RevenueFilter) (reports.RevenuePage, error) {
	result := domain.NewListResult[reports.ArticleRevenue](filter.ListFilter)
	querier := r.txm.GetQuerier(ctx)
	q := revenueQuery(filter)

	total, err := postgres.Count(ctx, querier, q)
	if err != nil {
		return result, fmt.Errorf("count revenue rows: %w", err)
	}
	result.TotalCount = total
	if total == 0 {
		return result, nil
	}

	sql, args, err := postgres.Paginate(q.OrderBy(revenueOrder...), filter.ListFilter).ToSql()
	if err != nil {
		return result, fmt.Errorf("build revenue query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("select revenue rows: %w", err)
	}
	return result, nil
}

// Package reports provides the revenue aggregation engine.
//
// One aggregation groups sales by article and computes revenue, the average
// per-sale margin and the last sale date. The HTTP layer exposes it through two
// projections: the sale view and the article view.
package reports

import (
	"time"

	"salestrack/internal/core/id"
	"salestrack/internal/core/types"
	"salestrack/internal/domain"
)

// RevenueFilter selects the sales that enter the aggregation.
type RevenueFilter struct {
	domain.ListFilter

	// CategoryID restricts the report to articles of one category.
	CategoryID *id.ID

	// From and To bound the sale date, both inclusive.
	From *time.Time
	To   *time.Time
}

// ArticleRevenue is one aggregated row. Only articles with at least one
// matching sale appear.
type ArticleRevenue struct {
	ArticleID    id.ID  `db:"article_id"`
	ArticleName  string `db:"article_name"`
	CategoryName string `db:"category_name"`

	// TotalRevenue is the sum of unit_selling_price * quantity.
	TotalRevenue types.Money `db:"total_revenue"`

	// AverageMarginPercentage is the mean over sales of
	// 100 * (unit_selling_price - manufacturing_cost) / manufacturing_cost,
	// rounded to two decimals. The current cost is used for every sale.
	AverageMarginPercentage types.Money `db:"average_margin_percentage"`

	LastSaleDate time.Time `db:"last_sale_date"`
	SaleCount    int64     `db:"sale_count"`
}

// RevenuePage is one page of aggregated rows ordered by revenue descending,
// then article id ascending.
type RevenuePage = domain.ListResult[ArticleRevenue]

package dto

import (
	"salestrack/internal/core/id"
	"salestrack/internal/core/types"
	"salestrack/internal/domain/reports"
)

// SaleRevenueResponse is the sale-side projection of an aggregated row
// (GET /sales/revenue).
type SaleRevenueResponse struct {
	ArticleID               id.ID  `json:"article_id"`
	BusinessRevenue         string `json:"business_revenue"`
	MarginPercentagePerSale string `json:"margin_percentage_per_sale"`
	CategoryName            string `json:"category_name"`
}

func ToSaleRevenue(r reports.ArticleRevenue) SaleRevenueResponse {
	return SaleRevenueResponse{
		ArticleID:               r.ArticleID,
		BusinessRevenue:         types.FormatMoney(r.TotalRevenue),
		MarginPercentagePerSale: types.FormatMoney(r.AverageMarginPercentage),
		CategoryName:            r.CategoryName,
	}
}

// ArticleMoneyResponse is the article-side projection (GET /articles/money).
type ArticleMoneyResponse struct {
	ArticleID               id.ID  `json:"article_id"`
	ArticleName             string `json:"article_name"`
	CategoryName            string `json:"category_name"`
	TotalRevenue            string `json:"total_revenue"`
	AverageMarginPercentage string `json:"average_margin_percentage"`
	LastSaleDate            string `json:"last_sale_date"`
}

func ToArticleMoney(r reports.ArticleRevenue) ArticleMoneyResponse {
	return ArticleMoneyResponse{
		ArticleID:               r.ArticleID,
		ArticleName:             r.ArticleName,
		CategoryName:            r.CategoryName,
		TotalRevenue:            types.FormatMoney(r.TotalRevenue),
		AverageMarginPercentage: types.FormatMoney(r.AverageMarginPercentage),
		LastSaleDate:            FormatDate(r.LastSaleDate),
	}
}

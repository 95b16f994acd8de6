package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"salestrack/internal/domain/reports"
	"salestrack/internal/infrastructure/http/v1/dto"
)

// ReportService is the subset of reports.Service used over HTTP.
type ReportService interface {
	Revenue(ctx context.Context, filter reports.RevenueFilter) (reports.RevenuePage, error)
}

// ReportsHandler serves both projections of the revenue aggregation.
type ReportsHandler struct {
	*BaseHandler
	service ReportService
}

func NewReportsHandler(base *BaseHandler, service ReportService) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// SaleRevenue handles GET /sales/revenue?page=&category=&from=&to=.
func (h *ReportsHandler) SaleRevenue(c *gin.Context) {
	page, ok := h.revenue(c)
	if !ok {
		return
	}
	h.OK(c, dto.NewPage(h.RequestURL(c), page, dto.ToSaleRevenue))
}

// ArticleMoney handles GET /articles/money?page=&category=&from=&to=.
func (h *ReportsHandler) ArticleMoney(c *gin.Context) {
	page, ok := h.revenue(c)
	if !ok {
		return
	}
	h.OK(c, dto.NewPage(h.RequestURL(c), page, dto.ToArticleMoney))
}

func (h *ReportsHandler) revenue(c *gin.Context) (reports.RevenuePage, bool) {
	var (
		filter reports.RevenueFilter
		ok     bool
	)
	if filter.ListFilter, ok = h.ParsePage(c); !ok {
		return reports.RevenuePage{}, false
	}
	if filter.CategoryID, ok = h.ParseOptionalID(c, "category"); !ok {
		return reports.RevenuePage{}, false
	}
	if filter.From, ok = h.ParseOptionalDate(c, "from"); !ok {
		return reports.RevenuePage{}, false
	}
	if filter.To, ok = h.ParseOptionalDate(c, "to"); !ok {
		return reports.RevenuePage{}, false
	}

	page, err := h.service.Revenue(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return reports.RevenuePage{}, false
	}
	return page, true
}

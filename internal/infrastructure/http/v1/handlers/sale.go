package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"salestrack/internal/core/apperror"
	appctx "salestrack/internal/core/context"
	"salestrack/internal/core/id"
	"salestrack/internal/domain"
	"salestrack/internal/domain/sales"
	"salestrack/internal/infrastructure/http/v1/dto"
)

// authorSelf selects the caller's own sales in GET /sales?author=me.
const authorSelf = "me"

// SaleService is the subset of sales.Service used over HTTP.
type SaleService interface {
	Create(ctx context.Context, in sales.CreateInput) (*sales.Sale, error)
	Get(ctx context.Context, saleID id.ID) (*sales.Sale, error)
	List(ctx context.Context, filter sales.ListFilter) (domain.ListResult[*sales.Sale], error)
	Update(ctx context.Context, saleID id.ID, u sales.Update) (*sales.Sale, error)
	Delete(ctx context.Context, saleID id.ID) error
	Import(ctx context.Context, inputs []sales.CreateInput) (int64, error)
}

// SaleHandler handles /sales.
type SaleHandler struct {
	*BaseHandler
	service SaleService
}

func NewSaleHandler(base *BaseHandler, service SaleService) *SaleHandler {
	return &SaleHandler{BaseHandler: base, service: service}
}

// RegisterRoutes mounts the sale routes on rg.
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.POST("/import", h.Import)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Create handles POST /sales. The caller becomes the author.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	s, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromSale(s))
}

// Import handles POST /sales/import. The batch is stored entirely or not at all.
func (h *SaleHandler) Import(c *gin.Context) {
	var req dto.ImportSalesRequest
	if !h.BindJSON(c, &req) {
		return
	}

	n, err := h.service.Import(c.Request.Context(), req.ToInputs())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.ImportSalesResponse{Imported: n})
}

// List handles GET /sales?page=&author=.
func (h *SaleHandler) List(c *gin.Context) {
	page, ok := h.ParsePage(c)
	if !ok {
		return
	}
	filter := sales.ListFilter{ListFilter: page}

	switch raw := c.Query("author"); raw {
	case "":
	case authorSelf:
		self := appctx.GetUserID(c.Request.Context())
		if id.IsNil(self) {
			h.Error(c, apperror.NewUnauthorized("authenticated user required"))
			return
		}
		filter.AuthorID = &self
	default:
		if filter.AuthorID, ok = h.ParseOptionalID(c, "author"); !ok {
			return
		}
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewPage(h.RequestURL(c), result, dto.FromSale))
}

// Get handles GET /sales/:id.
func (h *SaleHandler) Get(c *gin.Context) {
	saleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	s, err := h.service.Get(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSale(s))
}

// Update handles PUT /sales/:id and answers 202 with the stored sale.
// Bodies naming author, date or article are refused.
func (h *SaleHandler) Update(c *gin.Context) {
	saleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateSaleRequest
	if !h.BindUpdate(c, &req, dto.ImmutableSaleFields) {
		return
	}

	s, err := h.service.Update(c.Request.Context(), saleID, req.ToUpdate())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Accepted(c, dto.FromSale(s))
}

// Delete handles DELETE /sales/:id.
func (h *SaleHandler) Delete(c *gin.Context) {
	saleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), saleID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

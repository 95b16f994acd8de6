package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"salestrack/internal/core/id"
	"salestrack/internal/domain/catalogs/category"
	"salestrack/internal/infrastructure/http/v1/dto"
)

// CategoryService is the subset of category.Service used over HTTP.
type CategoryService interface {
	CreateNamed(ctx context.Context, displayName string) (*category.Category, error)
	GetByID(ctx context.Context, categoryID id.ID) (*category.Category, error)
	ListAll(ctx context.Context) ([]*category.Category, error)
	Delete(ctx context.Context, categoryID id.ID) error
}

// CategoryHandler handles /categories.
type CategoryHandler struct {
	*BaseHandler
	service CategoryService
}

func NewCategoryHandler(base *BaseHandler, service CategoryService) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, service: service}
}

// RegisterRoutes mounts the category routes on rg.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.DELETE("/:id", h.Delete)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat, err := h.service.CreateNamed(c.Request.Context(), req.DisplayName)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromCategory(cat))
}

// List handles GET /categories. The list is not paginated.
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, dto.FromCategory(cat))
	}
	h.OK(c, out)
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	categoryID, ok := h.ParseID(c)
	if !ok {
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), categoryID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCategory(cat))
}

// Delete handles DELETE /categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), categoryID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

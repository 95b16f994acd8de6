package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"salestrack/internal/core/id"
	"salestrack/internal/domain"
	"salestrack/internal/domain/catalogs/article"
	"salestrack/internal/infrastructure/http/v1/dto"
)

// ArticleService is the subset of article.Service used over HTTP.
type ArticleService interface {
	Create(ctx context.Context, a *article.Article) error
	GetByID(ctx context.Context, articleID id.ID) (*article.Article, error)
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*article.Article], error)
	Patch(ctx context.Context, articleID id.ID, p article.Patch) (*article.Article, error)
	Delete(ctx context.Context, articleID id.ID) error
}

// ArticleHandler handles /articles.
type ArticleHandler struct {
	*BaseHandler
	service ArticleService
}

func NewArticleHandler(base *BaseHandler, service ArticleService) *ArticleHandler {
	return &ArticleHandler{BaseHandler: base, service: service}
}

// RegisterRoutes mounts the article routes on rg.
func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	a := req.ToArticle()
	if err := h.service.Create(c.Request.Context(), a); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromArticle(a))
}

// List handles GET /articles?page=.
func (h *ArticleHandler) List(c *gin.Context) {
	filter, ok := h.ParsePage(c)
	if !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewPage(h.RequestURL(c), result, dto.FromArticle))
}

// Get handles GET /articles/:id.
func (h *ArticleHandler) Get(c *gin.Context) {
	articleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), articleID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromArticle(a))
}

// Update handles PUT /articles/:id. The code cannot be changed.
func (h *ArticleHandler) Update(c *gin.Context) {
	articleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if !h.BindUpdate(c, &req, dto.ImmutableArticleFields) {
		return
	}

	a, err := h.service.Patch(c.Request.Context(), articleID, req.ToPatch())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromArticle(a))
}

// Delete handles DELETE /articles/:id. Sales of the article are removed with it.
func (h *ArticleHandler) Delete(c *gin.Context) {
	articleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), articleID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

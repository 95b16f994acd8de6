package dto

import (
	"time"

	"salestrack/internal/core/id"
	"salestrack/internal/core/types"
	"salestrack/internal/domain/catalogs/article"
	"salestrack/internal/domain/catalogs/category"
)

// --- Categories ---

type CreateCategoryRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type CategoryResponse struct {
	ID          id.ID     `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCategory(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		DisplayName: c.DisplayName,
		CreatedAt:   c.CreatedAt,
	}
}

// --- Articles ---

// CreateArticleRequest is the body of POST /articles.
type CreateArticleRequest struct {
	Code              string      `json:"code" binding:"required"`
	Name              string      `json:"name" binding:"required"`
	CategoryID        id.ID       `json:"category" binding:"required"`
	ManufacturingCost types.Money `json:"manufacturing_cost"`
}

// ToArticle builds the entity to persist.
func (r CreateArticleRequest) ToArticle() *article.Article {
	return article.NewArticle(r.Code, r.Name, r.CategoryID, r.ManufacturingCost)
}

// UpdateArticleRequest is the body of PUT /articles/:id. Absent fields are kept.
type UpdateArticleRequest struct {
	Name              *string      `json:"name"`
	CategoryID        *id.ID       `json:"category"`
	ManufacturingCost *types.Money `json:"manufacturing_cost"`
}

// ImmutableArticleFields are rejected in update bodies.
var ImmutableArticleFields = []string{"id", "code"}

func (r UpdateArticleRequest) ToPatch() article.Patch {
	return article.Patch{
		Name:              r.Name,
		CategoryID:        r.CategoryID,
		ManufacturingCost: r.ManufacturingCost,
	}
}

type ArticleResponse struct {
	ID                id.ID     `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	CategoryID        id.ID     `json:"category"`
	ManufacturingCost string    `json:"manufacturing_cost"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromArticle(a *article.Article) ArticleResponse {
	return ArticleResponse{
		ID:                a.ID,
		Code:              a.Code,
		Name:              a.Name,
		CategoryID:        a.CategoryID,
		ManufacturingCost: types.FormatMoney(a.ManufacturingCost),
		CreatedAt:         a.CreatedAt,
	}
}

package catalog_repo

import (
	"salestrack/internal/domain/catalogs/article"
	"salestrack/internal/infrastructure/storage/postgres"
)

const articleTable = "articles"

var _ article.Repository = (*ArticleRepo)(nil)

// ArticleRepo implements article.Repository.
// Code is written on insert only. List is ordered by category.
type ArticleRepo struct {
	*postgres.BaseRepo[*article.Article]
}

// NewArticleRepo creates a new article repository.
func NewArticleRepo(txm *postgres.TxManager) *ArticleRepo {
	return &ArticleRepo{
		BaseRepo: postgres.NewBaseRepo(txm, postgres.TableSpec{
			Table:     articleTable,
			Entity:    "article",
			Columns:   postgres.ExtractDBColumns[article.Article](),
			Generated: []string{"id", "created_at"},
			Immutable: []string{"code"},
			OrderBy:   []string{"category_id ASC", "id ASC"},
		}, func() *article.Article { return &article.Article{} }),
	}
}

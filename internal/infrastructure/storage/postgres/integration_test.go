package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salestrack/internal/core/apperror"
	appctx "salestrack/internal/core/context"
	"salestrack/internal/core/types"
	"salestrack/internal/domain"
	"salestrack/internal/domain/catalogs/article"
	"salestrack/internal/domain/catalogs/category"
	"salestrack/internal/domain/reports"
	"salestrack/internal/domain/sales"
	"salestrack/internal/domain/users"
	"salestrack/internal/infrastructure/storage/postgres"
	"salestrack/internal/infrastructure/storage/postgres/auth_repo"
	"salestrack/internal/infrastructure/storage/postgres/catalog_repo"
	"salestrack/internal/infrastructure/storage/postgres/report_repo"
	"salestrack/internal/infrastructure/storage/postgres/sale_repo"
)

const testDatabaseEnv = "SALESTRACK_TEST_DATABASE_URL"

type stack struct {
	txm        *postgres.TxManager
	users      *users.Service
	categories *category.Service
	articles   *article.Service
	sales      *sales.Service
	reports    *reports.Service
}

// setup connects to the database named by SALESTRACK_TEST_DATABASE_URL,
// applies migrations and empties every table.
func setup(t *testing.T) (*stack, context.Context) {
	t.Helper()
	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDatabaseEnv)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	txm := postgres.NewTxManager(pool)
	_, err = postgres.Migrate(ctx, txm)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, "TRUNCATE sales, articles, categories, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return &stack{
		txm:        txm,
		users:      users.NewService(auth_repo.NewUserRepo(txm), txm),
		categories: category.NewService(catalog_repo.NewCategoryRepo(txm), txm),
		articles:   article.NewService(catalog_repo.NewArticleRepo(txm), txm),
		sales:      sales.NewService(sale_repo.NewSaleRepo(txm), txm),
		reports:    reports.NewService(report_repo.NewReportRepo(txm), txm),
	}, ctx
}

func (s *stack) author(t *testing.T, ctx context.Context, email string) (*users.User, context.Context) {
	t.Helper()
	u := users.NewUser(email, "Test", "Author")
	require.NoError(t, s.users.Create(ctx, u))
	return u, appctx.WithUser(ctx, &appctx.UserContext{UserID: u.ID, Email: u.Email})
}

func TestIntegration_RevenueReport(t *testing.T) {
	s, ctx := setup(t)
	_, ctx = s.author(t, ctx, "seller@example.com")

	cat, err := s.categories.CreateNamed(ctx, "Lighting")
	require.NoError(t, err)

	lamp := article.NewArticle("LMP001", "Desk lamp", cat.ID, types.MustMoney("100.00"))
	require.NoError(t, s.articles.Create(ctx, lamp))

	first, err := s.sales.Create(ctx, sales.CreateInput{ArticleID: lamp.ID, Quantity: 10, UnitSellingPrice: types.MustMoney("150.00")})
	require.NoError(t, err)
	assert.False(t, first.Date.IsZero())

	_, err = s.sales.Create(ctx, sales.CreateInput{ArticleID: lamp.ID, Quantity: 5, UnitSellingPrice: types.MustMoney("120.00")})
	require.NoError(t, err)

	page, err := s.reports.Revenue(ctx, reports.RevenueFilter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	row := page.Items[0]
	assert.Equal(t, lamp.ID, row.ArticleID)
	assert.Equal(t, "Lighting", row.CategoryName)
	assert.Equal(t, "2100.00", types.FormatMoney(row.TotalRevenue))
	assert.Equal(t, "35.00", types.FormatMoney(row.AverageMarginPercentage))
	assert.Equal(t, int64(2), row.SaleCount)
}

func TestIntegration_ArticlePagination(t *testing.T) {
	s, ctx := setup(t)

	cat, err := s.categories.CreateNamed(ctx, "Bulk")
	require.NoError(t, err)
	for i := range 30 {
		a := article.NewArticle(fmt.Sprintf("A%05d", i), fmt.Sprintf("Article %d", i), cat.ID, types.MustMoney("1.00"))
		require.NoError(t, s.articles.Create(ctx, a))
	}

	page, err := s.articles.List(ctx, domain.ListFilter{Page: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(30), page.TotalCount)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 2, page.TotalPages())
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrevious())
}

func TestIntegration_DeleteRules(t *testing.T) {
	s, ctx := setup(t)
	author, actx := s.author(t, ctx, "owner@example.com")

	cat, err := s.categories.CreateNamed(ctx, "Tools")
	require.NoError(t, err)
	hammer := article.NewArticle("HAM001", "Hammer", cat.ID, types.MustMoney("10.00"))
	require.NoError(t, s.articles.Create(ctx, hammer))

	sale, err := s.sales.Create(actx, sales.CreateInput{ArticleID: hammer.ID, Quantity: 1, UnitSellingPrice: types.MustMoney("12.00")})
	require.NoError(t, err)

	err = s.categories.Delete(ctx, cat.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeProtectedReference), "category with articles: %v", err)

	err = s.users.Delete(ctx, author.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeProtectedReference), "author with sales: %v", err)

	require.NoError(t, s.articles.Delete(ctx, hammer.ID))
	_, err = s.sales.Get(ctx, sale.ID)
	assert.True(t, apperror.IsNotFound(err), "sale must cascade with its article")

	require.NoError(t, s.users.Delete(ctx, author.ID))
}

func TestIntegration_DuplicateAndReferenceErrors(t *testing.T) {
	s, ctx := setup(t)

	_, err := s.categories.CreateNamed(ctx, "Garden")
	require.NoError(t, err)
	_, err = s.categories.CreateNamed(ctx, "Garden")
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate), "%v", err)

	err = s.articles.Create(ctx, article.NewArticle("GRD001", "Rake", 999, types.MustMoney("5.00")))
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidReference), "%v", err)
}

func TestIntegration_RevenuePagination(t *testing.T) {
	s, ctx := setup(t)
	_, actx := s.author(t, ctx, "bulk@example.com")

	cat, err := s.categories.CreateNamed(ctx, "Bulk")
	require.NoError(t, err)

	// Pairs of articles share a price so the id tiebreak is exercised.
	for i := range 30 {
		a := article.NewArticle(fmt.Sprintf("R%05d", i), fmt.Sprintf("Article %d", i), cat.ID, types.MustMoney("10.00"))
		require.NoError(t, s.articles.Create(ctx, a))

		price := types.NewMoneyFromInt(int64(20 + i/2))
		_, err := s.sales.Create(actx, sales.CreateInput{ArticleID: a.ID, Quantity: 1, UnitSellingPrice: price})
		require.NoError(t, err)
	}

	first, err := s.reports.Revenue(ctx, reports.RevenueFilter{ListFilter: domain.ListFilter{Page: 1}})
	require.NoError(t, err)
	second, err := s.reports.Revenue(ctx, reports.RevenueFilter{ListFilter: domain.ListFilter{Page: 2}})
	require.NoError(t, err)

	assert.Equal(t, int64(30), first.TotalCount)
	require.Len(t, first.Items, 25)
	require.Len(t, second.Items, 5)
	assert.True(t, first.HasNext())
	assert.False(t, second.HasNext())

	rows := append(first.Items, second.Items...)
	seen := make(map[int64]bool, len(rows))
	for i, row := range rows {
		assert.False(t, seen[row.ArticleID], "article %d listed twice", row.ArticleID)
		seen[row.ArticleID] = true
		if i == 0 {
			continue
		}
		prev := rows[i-1]
		switch cmp := prev.TotalRevenue.Cmp(row.TotalRevenue); {
		case cmp < 0:
			t.Errorf("row %d: revenue %s after %s", i, row.TotalRevenue, prev.TotalRevenue)
		case cmp == 0:
			assert.Less(t, prev.ArticleID, row.ArticleID, "row %d: tie must be ordered by id", i)
		}
	}
	assert.Equal(t, "34.00", types.FormatMoney(rows[0].TotalRevenue))
	assert.Equal(t, "20.00", types.FormatMoney(rows[len(rows)-1].TotalRevenue))
}

func TestIntegration_RevenueIsIdempotent(t *testing.T) {
	s, ctx := setup(t)
	_, actx := s.author(t, ctx, "repeat@example.com")

	cat, err := s.categories.CreateNamed(ctx, "Kitchen")
	require.NoError(t, err)
	for i, price := range []string{"12.50", "8.00", "30.00"} {
		a := article.NewArticle(fmt.Sprintf("K%03d", i), "Pan", cat.ID, types.MustMoney("5.00"))
		require.NoError(t, s.articles.Create(ctx, a))
		_, err := s.sales.Create(actx, sales.CreateInput{ArticleID: a.ID, Quantity: 3, UnitSellingPrice: types.MustMoney(price)})
		require.NoError(t, err)
	}

	filter := reports.RevenueFilter{CategoryID: &cat.ID}
	once, err := s.reports.Revenue(ctx, filter)
	require.NoError(t, err)
	twice, err := s.reports.Revenue(ctx, filter)
	require.NoError(t, err)

	require.Len(t, once.Items, 3)
	assert.Equal(t, once, twice)
}

func TestIntegration_SaleUpdateRoundTrip(t *testing.T) {
	s, ctx := setup(t)
	author, actx := s.author(t, ctx, "editor@example.com")

	cat, err := s.categories.CreateNamed(ctx, "Office")
	require.NoError(t, err)
	chair := article.NewArticle("CHR001", "Chair", cat.ID, types.MustMoney("40.00"))
	require.NoError(t, s.articles.Create(ctx, chair))

	created, err := s.sales.Create(actx, sales.CreateInput{ArticleID: chair.ID, Quantity: 2, UnitSellingPrice: types.MustMoney("55.00")})
	require.NoError(t, err)

	qty := int64(7)
	price := types.MustMoney("61.25")
	_, err = s.sales.Update(actx, created.ID, sales.Update{Quantity: &qty, UnitSellingPrice: &price})
	require.NoError(t, err)

	got, err := s.sales.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, qty, got.Quantity)
	assert.Equal(t, "61.25", types.FormatMoney(got.UnitSellingPrice))
	assert.True(t, created.Date.Equal(got.Date))
	assert.Equal(t, author.ID, got.AuthorID)
	assert.Equal(t, chair.ID, got.ArticleID)
}

func TestIntegration_SaleImport(t *testing.T) {
	s, ctx := setup(t)
	author, actx := s.author(t, ctx, "importer@example.com")

	cat, err := s.categories.CreateNamed(ctx, "Stationery")
	require.NoError(t, err)
	pen := article.NewArticle("PEN001", "Pen", cat.ID, types.MustMoney("0.40"))
	require.NoError(t, s.articles.Create(ctx, pen))

	n, err := s.sales.Import(actx, []sales.CreateInput{
		{ArticleID: pen.ID, Quantity: 100, UnitSellingPrice: types.MustMoney("0.55")},
		{ArticleID: pen.ID, Quantity: 3, UnitSellingPrice: types.MustMoney("19.99")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err := s.sales.List(ctx, sales.ListFilter{AuthorID: &author.ID})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "19.99", types.FormatMoney(list.Items[0].UnitSellingPrice))
	assert.Equal(t, "0.55", types.FormatMoney(list.Items[1].UnitSellingPrice))
	assert.False(t, list.Items[0].Date.IsZero())

	_, err = s.sales.Import(actx, []sales.CreateInput{
		{ArticleID: pen.ID, Quantity: 1, UnitSellingPrice: types.MustMoney("1.00")},
		{ArticleID: 9999, Quantity: 1, UnitSellingPrice: types.MustMoney("1.00")},
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidReference), "%v", err)

	after, err := s.sales.List(ctx, sales.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), after.TotalCount, "a failed import must not leave rows behind")
}

// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"salestrack/internal/config"
	appctx "salestrack/internal/core/context"
	"salestrack/internal/core/id"
	"salestrack/internal/core/types"
	"salestrack/internal/domain/catalogs/article"
	"salestrack/internal/domain/catalogs/category"
	"salestrack/internal/domain/sales"
	"salestrack/internal/domain/users"
	"salestrack/internal/infrastructure/storage/postgres"
	"salestrack/internal/infrastructure/storage/postgres/auth_repo"
	"salestrack/internal/infrastructure/storage/postgres/catalog_repo"
	"salestrack/internal/infrastructure/storage/postgres/sale_repo"
	"salestrack/pkg/logger"
)

type seedOptions struct {
	cfgFile    string
	seed       uint64
	users      int
	categories int
	articles   int
	sales      int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts seedOptions
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Fill the database with generated users, categories, articles and sales",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./salestrack.yaml)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed; 0 picks a random one")
	cmd.Flags().IntVar(&opts.users, "users", 5, "users to create")
	cmd.Flags().IntVar(&opts.categories, "categories", 6, "categories to create")
	cmd.Flags().IntVar(&opts.articles, "articles", 40, "articles to create")
	cmd.Flags().IntVar(&opts.sales, "sales", 300, "sales to create")
	return cmd
}

// seeder writes through the domain services so every row passes validation.
type seeder struct {
	faker      *gofakeit.Faker
	users      *users.Service
	categories *category.Service
	articles   *article.Service
	sales      *sales.Service
}

func run(ctx context.Context, opts seedOptions) error {
	cfg, err := config.Load(viper.New(), opts.cfgFile)
	if err != nil {
		return err
	}
	cfg.Log.Development = true
	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Database.URL))
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	if _, err := postgres.Migrate(ctx, txm); err != nil {
		return err
	}

	s := &seeder{
		faker:      gofakeit.New(opts.seed),
		users:      users.NewService(auth_repo.NewUserRepo(txm), txm),
		categories: category.NewService(catalog_repo.NewCategoryRepo(txm), txm),
		articles:   article.NewService(catalog_repo.NewArticleRepo(txm), txm),
		sales:      sales.NewService(sale_repo.NewSaleRepo(txm), txm),
	}

	authors, err := s.seedUsers(ctx, opts.users)
	if err != nil {
		return err
	}
	categoryIDs, err := s.seedCategories(ctx, opts.categories)
	if err != nil {
		return err
	}
	catalog, err := s.seedArticles(ctx, opts.articles, categoryIDs)
	if err != nil {
		return err
	}
	if err := s.seedSales(ctx, opts.sales, authors, catalog); err != nil {
		return err
	}

	log.Infow("seeding completed",
		"users", len(authors),
		"categories", len(categoryIDs),
		"articles", len(catalog),
		"sales", opts.sales,
	)
	return nil
}

func newBar(total int, what string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(what),
		progressbar.OptionClearOnFinish(),
	)
}

func (s *seeder) seedUsers(ctx context.Context, n int) ([]*users.User, error) {
	out := make([]*users.User, 0, n)
	bar := newBar(n, "users")
	for i := range n {
		u := users.NewUser(
			fmt.Sprintf("seed%d.%s", i, s.faker.Email()),
			s.faker.FirstName(),
			s.faker.LastName(),
		)
		if err := s.users.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("seed user: %w", err)
		}
		out = append(out, u)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return out, nil
}

func (s *seeder) seedCategories(ctx context.Context, n int) ([]id.ID, error) {
	out := make([]id.ID, 0, n)
	seen := make(map[string]bool, n)
	bar := newBar(n, "categories")
	for len(out) < n {
		name := s.faker.ProductCategory()
		if seen[name] {
			name = fmt.Sprintf("%s %d", name, len(out)+1)
		}
		seen[name] = true

		c, err := s.categories.CreateNamed(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("seed category: %w", err)
		}
		out = append(out, c.ID)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return out, nil
}

func (s *seeder) seedArticles(ctx context.Context, n int, categoryIDs []id.ID) ([]*article.Article, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	out := make([]*article.Article, 0, n)
	bar := newBar(n, "articles")
	for i := range n {
		a := article.NewArticle(
			fmt.Sprintf("%c%05d", 'A'+rune(s.faker.Number(0, 25)), i),
			s.faker.ProductName(),
			categoryIDs[s.faker.Number(0, len(categoryIDs)-1)],
			money(s.faker.Price(5, 500)),
		)
		if err := s.articles.Create(ctx, a); err != nil {
			return nil, fmt.Errorf("seed article: %w", err)
		}
		out = append(out, a)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return out, nil
}

// seedSales prices each sale between 80% and 180% of the article's cost and
// imports them in one COPY batch per author.
func (s *seeder) seedSales(ctx context.Context, n int, authors []*users.User, catalog []*article.Article) error {
	if len(authors) == 0 || len(catalog) == 0 {
		return nil
	}

	byAuthor := make([][]sales.CreateInput, len(authors))
	for range n {
		a := catalog[s.faker.Number(0, len(catalog)-1)]
		factor := decimal.NewFromFloat(s.faker.Float64Range(0.8, 1.8))
		i := s.faker.Number(0, len(authors)-1)
		byAuthor[i] = append(byAuthor[i], sales.CreateInput{
			ArticleID:        a.ID,
			Quantity:         int64(s.faker.Number(1, 20)),
			UnitSellingPrice: a.ManufacturingCost.Mul(factor).Round(types.MoneyScale),
		})
	}

	bar := newBar(n, "sales")
	for i, author := range authors {
		actx := appctx.WithUser(ctx, &appctx.UserContext{UserID: author.ID, Email: author.Email})
		imported, err := s.sales.Import(actx, byAuthor[i])
		if err != nil {
			return fmt.Errorf("seed sales for %s: %w", author.Email, err)
		}
		_ = bar.Add(int(imported))
	}
	return bar.Finish()
}

func money(f float64) types.Money {
	return decimal.NewFromFloat(f).Round(types.MoneyScale)
}

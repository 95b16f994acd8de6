package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"salestrack/internal/domain/auth"
	"salestrack/internal/domain/catalogs/article"
	"salestrack/internal/domain/catalogs/category"
	"salestrack/internal/domain/reports"
	"salestrack/internal/domain/sales"
	"salestrack/internal/domain/users"
	v1 "salestrack/internal/infrastructure/http/v1"
	"salestrack/internal/infrastructure/http/v1/handlers"
	"salestrack/internal/infrastructure/observability"
	"salestrack/internal/infrastructure/storage/postgres"
	"salestrack/internal/infrastructure/storage/postgres/auth_repo"
	"salestrack/internal/infrastructure/storage/postgres/catalog_repo"
	"salestrack/internal/infrastructure/storage/postgres/report_repo"
	"salestrack/internal/infrastructure/storage/postgres/sale_repo"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().Bool("migrate", false, "apply pending migrations before serving")
	_ = v.BindPFlag("http.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := cfg.Validate(); err != nil {
		return err
	}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Version:     version,
	})
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	if runMigrations, _ := cmd.Flags().GetBool("migrate"); runMigrations {
		status, err := postgres.Migrate(ctx, txm)
		if err != nil {
			return err
		}
		log.Infow("migrations applied", "version", status.Current)
	}

	jwtCfg := auth.DefaultJWTConfig(cfg.Auth.JWTSecret)
	jwtCfg.Issuer = cfg.Auth.Issuer
	jwtCfg.AccessTokenTTL = cfg.Auth.TokenTTL

	handlers.Version = version
	gin.SetMode(gin.ReleaseMode)

	handler := v1.NewHandler(v1.RouterConfig{
		ServiceName:  cfg.Tracing.ServiceName,
		Logger:       log.WithComponent("http"),
		JWTValidator: auth.NewJWTService(jwtCfg),
		CORSOrigins:  cfg.HTTP.CORSOrigins,
		Database:     pool,
		Categories:   category.NewService(catalog_repo.NewCategoryRepo(txm), txm),
		Articles:     article.NewService(catalog_repo.NewArticleRepo(txm), txm),
		Sales:        sales.NewService(sale_repo.NewSaleRepo(txm), txm),
		Reports:      reports.NewService(report_repo.NewReportRepo(txm), txm),
		Users:        users.NewService(auth_repo.NewUserRepo(txm), txm),
	}, cfg.HTTP.Gzip)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server starting", "addr", server.Addr, "version", version, "gzip", cfg.HTTP.Gzip)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// openPool connects with the configured pool limits.
func openPool(ctx context.Context) (*postgres.Pool, error) {
	poolCfg := postgres.DefaultPoolConfig(cfg.Database.URL)
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.ConnectTimeout = cfg.Database.ConnectTimeout
	return postgres.NewPool(ctx, poolCfg)
}

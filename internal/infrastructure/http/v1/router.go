// Package v1 provides HTTP API version 1.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appctx "salestrack/internal/core/context"
	"salestrack/internal/infrastructure/http/v1/handlers"
	"salestrack/internal/infrastructure/http/v1/middleware"
	"salestrack/pkg/logger"
)

// RouterConfig holds everything the router needs.
type RouterConfig struct {
	// ServiceName labels request spans.
	ServiceName string

	Logger       *logger.Logger
	JWTValidator middleware.JWTValidator
	CORSOrigins  []string

	// Database backs the readiness probe.
	Database handlers.DatabaseProbe

	Categories handlers.CategoryService
	Articles   handlers.ArticleService
	Sales      handlers.SaleService
	Reports    handlers.ReportService
	Users      handlers.UserService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Recovery sits inside ErrorHandler so a recovered panic is still rendered.
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	healthHandler := handlers.NewHealthHandler(cfg.Database)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.JWTValidator))

	base := handlers.NewBaseHandler()
	reports := handlers.NewReportsHandler(base, cfg.Reports)

	handlers.NewCategoryHandler(base, cfg.Categories).RegisterRoutes(v1.Group("/categories"))

	articles := v1.Group("/articles")
	articles.GET("/money", reports.ArticleMoney)
	handlers.NewArticleHandler(base, cfg.Articles).RegisterRoutes(articles)

	sales := v1.Group("/sales")
	sales.GET("/revenue", reports.SaleRevenue)
	handlers.NewSaleHandler(base, cfg.Sales).RegisterRoutes(sales)

	handlers.NewUserHandler(base, cfg.Users).RegisterRoutes(v1.Group("/users"), middleware.RequireRole(appctx.RoleAdmin))

	return router
}

// NewHandler returns the router, gzip-compressed when compress is set.
func NewHandler(cfg RouterConfig, compress bool) http.Handler {
	router := NewRouter(cfg)
	if !compress {
		return router
	}
	return gzhttp.GzipHandler(router)
}

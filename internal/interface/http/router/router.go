// Package router 组装Gin引擎：中间件链、图书路由、运维端点
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookcollection/docs" // 注册swagger文档
	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/internal/interface/http/handler"
	"github.com/xiebiao/bookcollection/internal/interface/http/middleware"
	"github.com/xiebiao/bookcollection/pkg/response"
)

// New 创建并配置Gin引擎
//
// 中间件顺序：
// 1. Logger 最外层，保证请求ID和访问日志覆盖panic与限流的请求
// 2. Recovery
// 3. Metrics / Tracing / CORS（按配置启用）
// 4. RateLimit 只作用于图书API，不影响 /ping 和 /metrics
func New(cfg *config.Config, bookHandler *handler.BookHandler, logger *zap.Logger) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(logger), middleware.Recovery(logger))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	if cfg.CORS.Enabled {
		r.Use(middleware.CORS(cfg.CORS))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	if cfg.Metrics.Enabled {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.Handler()))
	}

	// 生产环境建议禁用Swagger
	if cfg.Swagger.Enabled && cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api/BookCollection")
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		api.Use(limiter.Middleware())
	}
	{
		books := api.Group("/books")
		books.GET("", bookHandler.GetBooks)
		books.GET("/search", bookHandler.SearchBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.POST("", bookHandler.AddBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "404 page not found")
	})

	return r
}

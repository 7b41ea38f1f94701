package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/internal/infrastructure/events"
	"github.com/xiebiao/bookcollection/pkg/logger"
)

// App 组装完成的应用
type App struct {
	Config *config.Config
	Logger *logger.Logger
	Engine *gin.Engine
}

func newApp(cfg *config.Config, log *logger.Logger, engine *gin.Engine) *App {
	return &App{
		Config: cfg,
		Logger: log,
		Engine: engine,
	}
}

// provideZapLogger 各层依赖*zap.Logger，级别调整只通过*logger.Logger进行
func provideZapLogger(log *logger.Logger) *zap.Logger {
	return log.Logger
}

// provideEventPublisher 从配置中取出events部分
func provideEventPublisher(cfg *config.Config, log *zap.Logger) (book.EventPublisher, func(), error) {
	return events.NewPublisher(cfg.Events, log)
}

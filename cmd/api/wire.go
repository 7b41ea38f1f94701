//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: serve命令调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/google/wire"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/internal/infrastructure/persistence"
	"github.com/xiebiao/bookcollection/internal/interface/http/handler"
	"github.com/xiebiao/bookcollection/internal/interface/http/router"
	"github.com/xiebiao/bookcollection/pkg/logger"
)

// infrastructureSet 基础设施层依赖
// 仓储和事件发布者都返回cleanup，Wire会按相反顺序组合
var infrastructureSet = wire.NewSet(
	provideZapLogger,
	persistence.NewBookRepository, // 按storage.driver选择file/redis/mysql
	provideEventPublisher,         // RabbitMQ或空实现
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,
	router.New,
)

// InitializeApp 初始化整个应用
// 配置和日志在Wire之外创建：serve命令需要先用它们初始化追踪、监听配置变化
func InitializeApp(cfg *config.Config, log *logger.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		interfaceSet,
		newApp,
	)
	return nil, nil, nil
}

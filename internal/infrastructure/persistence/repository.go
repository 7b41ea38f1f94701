// Package persistence 根据配置选择图书仓储后端
package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/internal/infrastructure/persistence/jsonfile"
	"github.com/xiebiao/bookcollection/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcollection/internal/infrastructure/persistence/redis"
)

// NewBookRepository 按storage.driver创建图书仓储
// 返回的cleanup负责关闭仓储打开的连接，file后端为空操作
func NewBookRepository(cfg *config.Config, logger *zap.Logger) (book.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverFile, "":
		repo := jsonfile.NewBookRepository(cfg.Files.BookJSON)
		logger.Info("使用文件存储", zap.String("path", repo.Path()))
		return repo, func() {}, nil

	case config.DriverRedis:
		client, err := redis.NewClient(cfg.Redis, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logger.Warn("关闭Redis连接失败", zap.Error(err))
			}
		}
		logger.Info("使用Redis存储", zap.String("key", cfg.Redis.Key))
		return redis.NewBookRepository(client, cfg.Redis.Key), cleanup, nil

	case config.DriverMySQL:
		db, err := mysql.NewDB(cfg.Database, cfg.Server.Mode, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			sqlDB, err := db.DB()
			if err != nil {
				return
			}
			if err := sqlDB.Close(); err != nil {
				logger.Warn("关闭数据库连接失败", zap.Error(err))
			}
		}
		logger.Info("使用MySQL存储", zap.String("dbname", cfg.Database.DBName))
		return mysql.NewBookRepository(db), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("不支持的存储驱动: %s", cfg.Storage.Driver)
	}
}

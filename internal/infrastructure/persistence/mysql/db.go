package mysql

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. debug模式打印SQL，其他模式关闭
// 4. 自动迁移books表结构
func NewDB(cfg config.DatabaseConfig, mode string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), newGormConfig(mode))
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.Info("数据库连接成功",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("dbname", cfg.DBName),
	)

	// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
	if err := db.AutoMigrate(&BookModel{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// newGormConfig GORM配置
// TranslateError开启后，驱动错误会转换为gorm.ErrDuplicatedKey等通用错误
func newGormConfig(mode string) *gorm.Config {
	logLevel := gormlogger.Silent
	if mode == "debug" {
		logLevel = gormlogger.Info
	}
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	}
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag；domain/book/entity.go不依赖GORM
// 2. ID由领域服务分配，关闭自增
// 3. 不使用软删除：WriteAll是整体替换，被删除的图书不应保留
// 4. 书名、作者没有长度限制，使用TEXT
type BookModel struct {
	ID     int    `gorm:"primaryKey;autoIncrement:false"`
	Title  string `gorm:"type:text;not null;comment:书名"`
	Author string `gorm:"type:text;not null;comment:作者"`
	Year   int    `gorm:"not null;comment:出版年份"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

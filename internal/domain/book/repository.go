package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(JSON文件、Redis、MySQL)
// 2. 整个图书集合作为一个整体读写:每次变更都重写全部内容
// 3. 仓储本身无状态,并发控制由领域服务负责
type Repository interface {
	// ReadAll 读取全部图书
	// 存储不存在或内容为空时返回空切片,不返回错误
	ReadAll(ctx context.Context) ([]*Book, error)

	// WriteAll 用给定的图书列表整体覆盖存储内容
	WriteAll(ctx context.Context, books []*Book) error
}

package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/infrastructure/persistence/codec"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// BookRepository 图书仓储的Redis实现
// 设计说明：
// 1. 整个集合以JSON文档形式保存在一个String类型的key中（与file后端格式相同）
// 2. key不存在视为空集合
// 3. 不设置过期时间
type BookRepository struct {
	client redis.Cmdable
	key    string
}

// NewBookRepository 创建Redis图书仓储
func NewBookRepository(client redis.Cmdable, key string) *BookRepository {
	return &BookRepository{client: client, key: key}
}

// ReadAll 读取全部图书
func (r *BookRepository) ReadAll(ctx context.Context) ([]*book.Book, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*book.Book{}, nil
		}
		return nil, apperrors.WithOp("读取图书数据失败", err)
	}
	return codec.Decode(data)
}

// WriteAll 整体写回全部图书
func (r *BookRepository) WriteAll(ctx context.Context, books []*book.Book) error {
	data, err := codec.Encode(books)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return apperrors.WithOp("写入图书数据失败", err)
	}
	return nil
}

var _ book.Repository = (*BookRepository)(nil)

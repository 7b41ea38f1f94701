// Package jsonfile 基于本地JSON文件的图书仓储
package jsonfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/infrastructure/persistence/codec"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// BookRepository 图书仓储的文件实现
// 整个集合保存在一个JSON文件中，每次读写都是整体操作
type BookRepository struct {
	path string
}

// NewBookRepository 创建文件仓储，path为图书JSON文件路径
func NewBookRepository(path string) *BookRepository {
	return &BookRepository{path: path}
}

// Path 返回文件路径
func (r *BookRepository) Path() string {
	return r.path
}

// ReadAll 读取全部图书
// 文件不存在或内容为空时返回空集合
func (r *BookRepository) ReadAll(ctx context.Context) ([]*book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*book.Book{}, nil
		}
		return nil, apperrors.WithOp("读取图书文件失败", err)
	}
	return codec.Decode(data)
}

// WriteAll 整体写回全部图书
// 先写同目录下的临时文件再rename覆盖，写入中途失败不会留下半个文件
func (r *BookRepository) WriteAll(ctx context.Context, books []*book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := codec.Encode(books)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.WithOp("创建数据目录失败", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return apperrors.WithOp("创建临时文件失败", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // rename成功后这里是no-op

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperrors.WithOp("写入图书文件失败", err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.WithOp("写入图书文件失败", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return apperrors.WithOp("设置文件权限失败", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return apperrors.WithOp("替换图书文件失败", err)
	}
	return nil
}

var _ book.Repository = (*BookRepository)(nil)

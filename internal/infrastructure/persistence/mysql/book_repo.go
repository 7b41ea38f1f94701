package mysql

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的整体读写接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. WriteAll在一个事务内先清空再批量插入,对外表现为整体替换
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// ReadAll 按ID顺序读取全部图书
func (r *bookRepository) ReadAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.WithOp("查询图书失败", err)
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// WriteAll 整体替换全部图书
func (r *bookRepository) WriteAll(ctx context.Context, books []*book.Book) error {
	models := make([]BookModel, 0, len(books))
	for _, b := range books {
		if b == nil {
			continue
		}
		models = append(models, toBookModel(b))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 没有WHERE条件的删除需要显式允许
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&BookModel{}).Error; err != nil {
			return apperrors.WithOp("清空图书表失败", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.Create(&models).Error; err != nil {
			if isDuplicateKey(err) {
				return apperrors.WithOp("图书ID重复", err)
			}
			return apperrors.WithOp("写入图书失败", err)
		}
		return nil
	})
	return err
}

// erDupEntry MySQL错误码1062: Duplicate entry 'xxx' for key 'yyy'
const erDupEntry = 1062

// isDuplicateKey 判断是否为主键冲突
// NewDB开启了TranslateError，冲突会转换为gorm.ErrDuplicatedKey；
// 未开启翻译的*gorm.DB（如外部传入的连接）仍返回驱动的MySQLError
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == erDupEntry
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return book.NewBook(model.ID, model.Title, model.Author, model.Year)
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) BookModel {
	return BookModel{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Year:   b.Year,
	}
}

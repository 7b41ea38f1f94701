// Package codec 图书集合的JSON文档编解码
//
// 文档格式是图书对象数组，字段名为 Id、Title、Author、Year：
//
//	[{"Id":1,"Title":"Some random book","Author":"Jacob Wal","Year":2013}]
//
// file与redis后端共用这一格式，两种存储之间可以直接拷贝文档。
package codec

import (
	"bytes"
	"encoding/json"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// record 文档中的单条图书记录
type record struct {
	ID     int    `json:"Id"`
	Title  string `json:"Title"`
	Author string `json:"Author"`
	Year   int    `json:"Year"`
}

// Decode 解析图书集合文档
// 空内容（或只有空白）和 null 都视为空集合；数组中的null元素被跳过
func Decode(data []byte) ([]*book.Book, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*book.Book{}, nil
	}

	var records []*record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperrors.WithOp("解析图书数据失败", err)
	}

	books := make([]*book.Book, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		books = append(books, book.NewBook(r.ID, r.Title, r.Author, r.Year))
	}
	return books, nil
}

// Encode 序列化图书集合（紧凑格式，nil集合编码为 []）
func Encode(books []*book.Book) ([]byte, error) {
	records := make([]record, 0, len(books))
	for _, b := range books {
		if b == nil {
			continue
		}
		records = append(records, record{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			Year:   b.Year,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, apperrors.WithOp("序列化图书数据失败", err)
	}
	return data, nil
}

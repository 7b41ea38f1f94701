package dto

import (
	"github.com/xiebiao/bookcollection/internal/domain/book"
)

// BookRequest 新增/更新图书请求体
// 字段名按大小写不敏感匹配（title与Title都可以），请求中的Id会被忽略
type BookRequest struct {
	Title  string `json:"Title" example:"Some random book"`
	Author string `json:"Author" example:"Jacob Wal"`
	Year   int    `json:"Year" example:"2013"`
}

// Fields 转换为领域层的图书字段
func (r BookRequest) Fields() book.Fields {
	return book.Fields{
		Title:  r.Title,
		Author: r.Author,
		Year:   r.Year,
	}
}

// BookResponse 图书响应
type BookResponse struct {
	ID     int    `json:"Id" example:"1"`
	Title  string `json:"Title" example:"Some random book"`
	Author string `json:"Author" example:"Jacob Wal"`
	Year   int    `json:"Year" example:"2013"`
}

// SearchRequest 搜索参数
// 空值表示不按该字段过滤
type SearchRequest struct {
	Title  string `form:"Title" example:"Han guk"`
	Author string `form:"Author" example:"Kim Min"`
}

// Criteria 转换为领域层的搜索条件
func (r SearchRequest) Criteria() book.SearchCriteria {
	return book.SearchCriteria{
		Title:  r.Title,
		Author: r.Author,
	}
}

// ToBookResponse 领域实体 → HTTP响应
func ToBookResponse(b *book.Book) BookResponse {
	return BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Year:   b.Year,
	}
}

// ToBookResponses 批量转换，空集合编码为 []
func ToBookResponses(books []*book.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, ToBookResponse(b))
	}
	return out
}

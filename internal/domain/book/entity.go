package book

import "strings"

// Book 图书实体(聚合根)
// 设计说明:
// 1. ID由领域服务分配,调用方创建时不能指定
// 2. Title/Author/Year不做格式与范围校验,按调用方提供的值保存
type Book struct {
	ID     int
	Title  string // 书名
	Author string // 作者
	Year   int    // 出版年份
}

// NewBook 创建新图书(工厂方法)
func NewBook(id int, title, author string, year int) *Book {
	return &Book{
		ID:     id,
		Title:  title,
		Author: author,
		Year:   year,
	}
}

// UpdateInfo 覆盖图书信息
// 三个字段整体替换(包括空值),ID保持不变
func (b *Book) UpdateInfo(title, author string, year int) {
	b.Title = title
	b.Author = author
	b.Year = year
}

// Matches 判断图书是否满足搜索条件
// 规则:各条件之间是AND关系;条件为空(或只含空白)视为未提供;
// 提供的条件要求完全相等(区分大小写)
func (b *Book) Matches(criteria SearchCriteria) bool {
	if !isBlank(criteria.Title) && b.Title != criteria.Title {
		return false
	}
	if !isBlank(criteria.Author) && b.Author != criteria.Author {
		return false
	}
	return true
}

// Clone 返回图书的副本,避免调用方修改仓储返回的数据
func (b *Book) Clone() *Book {
	c := *b
	return &c
}

// Fields 创建/更新图书时调用方提供的字段
type Fields struct {
	Title  string
	Author string
	Year   int
}

// SearchCriteria 搜索条件
type SearchCriteria struct {
	Title  string
	Author string
}

// IsBlank 两个条件都未提供时返回true(匹配全部图书)
func (c SearchCriteria) IsBlank() bool {
	return isBlank(c.Title) && isBlank(c.Author)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

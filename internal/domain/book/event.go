package book

import (
	"context"
	"time"
)

// EventType 图书变更事件类型(同时作为消息路由键)
type EventType string

const (
	EventCreated EventType = "book.created"
	EventUpdated EventType = "book.updated"
	EventDeleted EventType = "book.deleted"
)

// Event 图书变更事件
// 写入存储成功后由领域服务发布
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	BookID     int       `json:"book_id"`
	Title      string    `json:"title,omitempty"`
	Author     string    `json:"author,omitempty"`
	Year       int       `json:"year,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher 事件发布接口
// 发布失败只记录日志,不影响操作结果
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher 未启用事件时使用的空实现
type NopPublisher struct{}

// Publish 丢弃事件
func (NopPublisher) Publish(context.Context, Event) error { return nil }

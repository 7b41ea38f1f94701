// Package events 图书变更事件的RabbitMQ适配
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/pkg/circuitbreaker"
	"github.com/xiebiao/bookcollection/pkg/mq"
)

// RoutingPattern 订阅全部图书事件的路由键
const RoutingPattern = "book.*"

// messagePublisher mq.Publisher的发布能力
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// Publisher 把领域事件发布到RabbitMQ，路由键为事件类型
// 发布经过熔断器，代理不可用时直接返回circuitbreaker.ErrOpenState
type Publisher struct {
	mq      messagePublisher
	breaker *circuitbreaker.CircuitBreaker
}

// NewPublisher 按配置创建事件发布者
// 未启用事件时返回book.NopPublisher
func NewPublisher(cfg config.EventsConfig, logger *zap.Logger) (book.EventPublisher, func(), error) {
	if !cfg.Enabled {
		return book.NopPublisher{}, func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.URL, cfg.Exchange, cfg.ExchangeType, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = p.Close() }
	return newPublisher(p, cfg, logger), cleanup, nil
}

func newPublisher(m messagePublisher, cfg config.EventsConfig, logger *zap.Logger) *Publisher {
	breaker := circuitbreaker.New(circuitbreaker.Settings{
		Name:        "book-events",
		Timeout:     cfg.BreakerTimeout,
		Interval:    cfg.BreakerInterval,
		ReadyToTrip: circuitbreaker.ConsecutiveFailures(max(cfg.BreakerFailures, 1)),
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			logger.Warn("事件发布熔断器状态变化",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &Publisher{mq: m, breaker: breaker}
}

// Publish 发布事件
func (p *Publisher) Publish(ctx context.Context, event book.Event) error {
	return p.breaker.Execute(func() error {
		return p.mq.Publish(ctx, string(event.Type), event)
	})
}

// Tail 消费图书事件并逐条交给fn，阻塞直到ctx取消
func Tail(ctx context.Context, cfg config.EventsConfig, logger *zap.Logger, fn func(book.Event)) error {
	consumer, err := mq.NewConsumer(cfg.URL, cfg.Exchange, cfg.ExchangeType, cfg.Queue, []string{RoutingPattern}, logger)
	if err != nil {
		return err
	}
	defer consumer.Close()

	return consumer.Consume(ctx, Decode(fn))
}

// Decode 把消息体解析为图书事件后交给fn
// 无法解析的消息是永久失败，不再重新入队
func Decode(fn func(book.Event)) mq.Handler {
	return func(routingKey string, body []byte) error {
		var event book.Event
		if err := json.Unmarshal(body, &event); err != nil {
			return mq.Permanent(fmt.Errorf("解析图书事件失败(%s): %w", routingKey, err))
		}
		fn(event)
		return nil
	}
}

var _ book.EventPublisher = (*Publisher)(nil)

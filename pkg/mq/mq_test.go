package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeChannel 记录发布的消息，并把预置的投递交给消费者
type fakeChannel struct {
	published  []amqp.Publishing
	keys       []string
	publishErr error
	deliveries chan amqp.Delivery
	closed     bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Qos(int, int, bool) error { return nil }

func (f *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

// fakeAck 记录消息确认结果
type fakeAck struct {
	acked, nacked int
	requeued      []bool
}

func (a *fakeAck) Ack(uint64, bool) error { a.acked++; return nil }
func (a *fakeAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeued = append(a.requeued, requeue)
	return nil
}
func (a *fakeAck) Reject(uint64, bool) error { return nil }

type testEvent struct {
	BookID int    `json:"book_id"`
	Type   string `json:"type"`
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, exchange: "bookcollection.events", logger: zap.NewNop()}

	err := p.Publish(context.Background(), "book.created", testEvent{BookID: 1, Type: "book.created"})
	require.NoError(t, err)

	require.Len(t, ch.published, 1)
	assert.Equal(t, "book.created", ch.keys[0])
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)

	var got testEvent
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &got))
	assert.Equal(t, testEvent{BookID: 1, Type: "book.created"}, got)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublisher_PublishErrors(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	p := &Publisher{channel: ch, logger: zap.NewNop()}

	err := p.Publish(context.Background(), "book.deleted", testEvent{BookID: 2})
	assert.ErrorContains(t, err, "channel closed")

	// 无法序列化的消息
	err = p.Publish(context.Background(), "book.deleted", make(chan int))
	assert.ErrorContains(t, err, "消息序列化失败")
}

func TestConsumer_Consume(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 2)}
	c := &Consumer{channel: ch, queue: "bookcollection.events.tail", logger: zap.NewNop()}

	ack := &fakeAck{}
	ch.deliveries <- amqp.Delivery{Acknowledger: ack, RoutingKey: "book.created", Body: []byte(`{"book_id":1}`)}
	ch.deliveries <- amqp.Delivery{Acknowledger: ack, RoutingKey: "book.deleted", Body: []byte(`bad`)}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var keys []string
	err := c.Consume(ctx, func(routingKey string, body []byte) error {
		keys = append(keys, routingKey)
		if len(keys) == 2 {
			defer cancel()
		}
		var e testEvent
		return json.Unmarshal(body, &e)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"book.created", "book.deleted"}, keys)
	assert.Equal(t, 1, ack.acked)
	assert.Equal(t, 1, ack.nacked)
	assert.Equal(t, []bool{true}, ack.requeued)
}

func TestConsumer_PermanentFailureNotRequeued(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 2)}
	c := &Consumer{channel: ch, queue: "bookcollection.events.tail", logger: zap.NewNop()}

	ack := &fakeAck{}
	ch.deliveries <- amqp.Delivery{Acknowledger: ack, RoutingKey: "book.created", Body: []byte(`bad`)}
	ch.deliveries <- amqp.Delivery{Acknowledger: ack, RoutingKey: "book.updated", Body: []byte(`{"book_id":2}`)}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	handled := 0
	err := c.Consume(ctx, func(_ string, body []byte) error {
		handled++
		if handled == 2 {
			defer cancel()
		}
		var e testEvent
		if err := json.Unmarshal(body, &e); err != nil {
			return Permanent(err)
		}
		return nil
	})
	require.NoError(t, err)

	// 坏消息被丢弃，后面的消息正常处理
	assert.Equal(t, 2, handled)
	assert.Equal(t, []bool{false}, ack.requeued)
	assert.Equal(t, 1, ack.acked)
}

func TestPermanent(t *testing.T) {
	raw := errors.New("invalid character")
	err := Permanent(raw)
	assert.ErrorIs(t, err, ErrPermanent)
	assert.ErrorIs(t, err, raw)
	assert.NotErrorIs(t, raw, ErrPermanent)
}

func TestConsumer_ChannelClosed(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery)}
	close(ch.deliveries)
	c := &Consumer{channel: ch, logger: zap.NewNop()}

	err := c.Consume(context.Background(), func(string, []byte) error { return nil })
	assert.Error(t, err)
}

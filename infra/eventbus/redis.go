package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

// RedisEventBus publishes events to a Redis stream and consumes them through
// a consumer group. Failed deliveries land on "<stream>-DLQ".
type RedisEventBus struct {
	client      *redis.Client
	stream      string
	group       string
	consumer    string
	pollTimeout time.Duration
	logger      *slog.Logger

	mu       sync.RWMutex
	handlers map[events.EventType][]eventbus.HandlerFunc
	start    sync.Once
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewWithRedis connects to url and makes sure the stream and group exist.
func NewWithRedis(
	ctx context.Context,
	url, stream, group string,
	pollTimeout time.Duration,
	logger *slog.Logger,
) (*RedisEventBus, error) {
	if url == "" || stream == "" || group == "" {
		return nil, fmt.Errorf("redis event bus: url, stream, and group are required")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis event bus: invalid URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis event bus: connection failed: %w", err)
	}
	if err := client.XGroupCreateMkStream(ctx, stream, group, "0").Err(); err != nil &&
		!strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil, fmt.Errorf("redis event bus: create group: %w", err)
	}
	if pollTimeout <= 0 {
		pollTimeout = 2 * time.Second
	}
	host, _ := os.Hostname()
	return &RedisEventBus{
		client:      client,
		stream:      stream,
		group:       group,
		consumer:    fmt.Sprintf("%s-%d", host, os.Getpid()),
		pollTimeout: pollTimeout,
		logger:      logger.With("component", "redis-event-bus"),
		handlers:    make(map[events.EventType][]eventbus.HandlerFunc),
	}, nil
}

// Emit appends the event to the stream.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	raw, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("redis event bus: %w", err)
	}
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: b.stream,
		Values: map[string]any{"event": string(raw)},
	}).Err(); err != nil {
		b.logger.Error("failed to emit event", "error", err, "type", event.Type())
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "type", event.Type())
	return nil
}

// Register adds a handler and starts the consumer loop on first use.
func (b *RedisEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()

	b.start.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		b.cancel = cancel
		b.done = make(chan struct{})
		go b.consume(ctx)
	})
	b.logger.Info("handler registered", "event_type", eventType, "consumer", b.consumer)
}

// Close stops the consumer loop and the client.
func (b *RedisEventBus) Close() error {
	if b.cancel != nil {
		b.cancel()
		<-b.done
	}
	return b.client.Close()
}

func (b *RedisEventBus) consume(ctx context.Context) {
	defer close(b.done)
	for ctx.Err() == nil {
		res, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    b.group,
			Consumer: b.consumer,
			Streams:  []string{b.stream, ">"},
			Count:    10,
			Block:    b.pollTimeout,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			b.logger.Error("error reading from stream", "error", err)
			time.Sleep(time.Second)
			continue
		}
		for _, stream := range res {
			for _, msg := range stream.Messages {
				b.handle(ctx, msg)
			}
		}
	}
}

func (b *RedisEventBus) handle(ctx context.Context, msg redis.XMessage) {
	defer func() {
		if err := b.client.XAck(ctx, b.stream, b.group, msg.ID).Err(); err != nil {
			b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
		}
	}()

	raw, ok := msg.Values["event"].(string)
	if !ok {
		b.pushToDLQ(ctx, msg.Values)
		return
	}
	evt, err := decodeEnvelope([]byte(raw))
	if err != nil {
		b.logger.Error("failed to decode event", "error", err, "msg_id", msg.ID)
		b.pushToDLQ(ctx, msg.Values)
		return
	}

	b.mu.RLock()
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[evt.Type()]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if !b.run(ctx, handler, evt) {
			b.pushToDLQ(ctx, msg.Values)
			return
		}
	}
}

func (b *RedisEventBus) run(ctx context.Context, handler eventbus.HandlerFunc, evt events.Event) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panic recovered", "panic", r, "event_type", evt.Type())
			ok = false
		}
	}()
	if err := handler(ctx, evt); err != nil {
		b.logger.Error("handler error", "error", err, "event_type", evt.Type())
		return false
	}
	return true
}

func (b *RedisEventBus) pushToDLQ(ctx context.Context, values map[string]any) {
	dlq := b.stream + "-DLQ"
	if err := b.client.XAdd(ctx, &redis.XAddArgs{Stream: dlq, Values: values}).Err(); err != nil {
		b.logger.Error("failed to push to DLQ", "error", err, "stream", dlq)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlq)
}

var _ eventbus.Bus = (*RedisEventBus)(nil)

package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/segmentio/kafka-go"
)

// KafkaEventBus publishes events to a single topic keyed by event type and
// consumes them with a reader group.
type KafkaEventBus struct {
	brokers []string
	topic   string
	group   string
	writer  *kafka.Writer
	logger  *slog.Logger

	mu       sync.RWMutex
	handlers map[events.EventType][]eventbus.HandlerFunc
	start    sync.Once
	reader   *kafka.Reader
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewWithKafka checks that a broker is reachable and prepares the writer.
func NewWithKafka(
	ctx context.Context,
	brokers []string,
	topic, group string,
	logger *slog.Logger,
) (*KafkaEventBus, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, fmt.Errorf("kafka event bus: brokers and topic are required")
	}
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	conn, err := kafka.DialContext(dialCtx, "tcp", brokers[0])
	if err != nil {
		return nil, fmt.Errorf("kafka event bus: connection failed: %w", err)
	}
	_ = conn.Close()

	return &KafkaEventBus{
		brokers: brokers,
		topic:   topic,
		group:   group,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
		logger:   logger.With("component", "kafka-event-bus"),
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
	}, nil
}

// Emit writes the event to the topic.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	raw, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}
	if err := b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Type()),
		Value: raw,
	}); err != nil {
		b.logger.Error("failed to emit event", "error", err, "type", event.Type())
		return fmt.Errorf("kafka event bus: emit failed: %w", err)
	}
	return nil
}

// Register adds a handler and starts the reader on first use.
func (b *KafkaEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()

	b.start.Do(func() {
		b.reader = kafka.NewReader(kafka.ReaderConfig{
			Brokers:     b.brokers,
			GroupID:     b.group,
			Topic:       b.topic,
			StartOffset: kafka.FirstOffset,
		})
		ctx, cancel := context.WithCancel(context.Background())
		b.cancel = cancel
		b.done = make(chan struct{})
		go b.consume(ctx)
	})
	b.logger.Info("handler registered", "event_type", eventType)
}

// Close stops the reader and flushes the writer.
func (b *KafkaEventBus) Close() error {
	var errs []error
	if b.cancel != nil {
		b.cancel()
		<-b.done
		errs = append(errs, b.reader.Close())
	}
	errs = append(errs, b.writer.Close())
	return errors.Join(errs...)
}

func (b *KafkaEventBus) consume(ctx context.Context) {
	defer close(b.done)
	for {
		msg, err := b.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			b.logger.Error("error reading message", "error", err)
			time.Sleep(time.Second)
			continue
		}
		b.handle(ctx, msg)
		if err := b.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			b.logger.Error("failed to commit message", "error", err, "offset", msg.Offset)
		}
	}
}

func (b *KafkaEventBus) handle(ctx context.Context, msg kafka.Message) {
	evt, err := decodeEnvelope(msg.Value)
	if err != nil {
		b.logger.Error("failed to decode event", "error", err, "offset", msg.Offset)
		return
	}
	b.mu.RLock()
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[evt.Type()]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("handler panic recovered", "panic", r, "event_type", evt.Type())
				}
			}()
			if err := handler(ctx, evt); err != nil {
				b.logger.Error("handler error", "error", err, "event_type", evt.Type())
			}
		}()
	}
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)

package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// MemoryEventBus dispatches events synchronously inside the process.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
	keep      int
}

// defaultKeep bounds how many emitted events Published remembers.
const defaultKeep = 256

// NewWithMemory creates an in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers:  make(map[events.EventType][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]events.Event, 0),
		keep:      defaultKeep,
	}
}

// Register adds a handler for eventType.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit runs every handler registered for the event type. Handler errors
// and panics are logged and do not stop the remaining handlers.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	b.mu.Lock()
	b.published = append(b.published, event)
	if over := len(b.published) - b.keep; over > 0 {
		b.published = append(b.published[:0], b.published[over:]...)
	}
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[event.Type()]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		b.dispatch(ctx, handler, event)
	}
	return nil
}

func (b *MemoryEventBus) dispatch(ctx context.Context, handler eventbus.HandlerFunc, event events.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic recovered in event handler", "type", event.Type(), "panic", r)
		}
	}()
	if err := handler(ctx, event); err != nil {
		b.logger.Error("failed to process event", "type", event.Type(), "error", err)
	}
}

// Published returns the most recently emitted events, oldest first.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event{}, b.published...)
}

// ClearPublished forgets the emitted events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = b.published[:0]
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)

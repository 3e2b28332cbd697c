package eventbus

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/events"
)

// HandlerFunc reacts to a single event.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus publishes ledger events to registered handlers.
type Bus interface {
	Register(eventType events.EventType, handler HandlerFunc)
	Emit(ctx context.Context, event events.Event) error
}

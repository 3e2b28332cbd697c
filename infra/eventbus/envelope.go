package eventbus

import (
	"encoding/json"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain/events"
)

type envelope struct {
	Type    events.EventType `json:"type"`
	Payload json.RawMessage  `json:"payload"`
}

func encodeEnvelope(event events.Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return json.Marshal(envelope{Type: event.Type(), Payload: payload})
}

func decodeEnvelope(raw []byte) (events.Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	ctor, ok := events.EventTypes[env.Type]
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	evt := ctor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", env.Type, err)
	}
	return evt, nil
}

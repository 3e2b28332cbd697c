package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	infra_eventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// NewEventBus picks the bus named by cfg.EventBus.Driver. An unreachable
// broker falls back to the in-memory bus so the API still serves writes.
func NewEventBus(ctx context.Context, cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	ebCfg := cfg.EventBus
	if ebCfg == nil {
		return infra_eventbus.NewWithMemory(logger), nil
	}
	switch driver := strings.ToLower(strings.TrimSpace(ebCfg.Driver)); driver {
	case "", "memory":
		return infra_eventbus.NewWithMemory(logger), nil
	case "redis":
		if ebCfg.RedisURL == "" {
			return nil, fmt.Errorf("event bus driver redis requires EVENT_BUS_REDIS_URL")
		}
		bus, err := infra_eventbus.NewWithRedis(ctx, ebCfg.RedisURL, ebCfg.Stream, ebCfg.Group, ebCfg.PollTimeout, logger)
		if err != nil {
			logger.Warn("Redis event bus unavailable, using memory", "error", err)
			return infra_eventbus.NewWithMemory(logger), nil
		}
		return bus, nil
	case "kafka":
		if len(ebCfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("event bus driver kafka requires EVENT_BUS_KAFKA_BROKERS")
		}
		bus, err := infra_eventbus.NewWithKafka(ctx, ebCfg.KafkaBrokers, ebCfg.KafkaTopic, ebCfg.Group, logger)
		if err != nil {
			logger.Warn("Kafka event bus unavailable, using memory", "error", err)
			return infra_eventbus.NewWithMemory(logger), nil
		}
		return bus, nil
	default:
		return nil, fmt.Errorf("unknown event bus driver %q", driver)
	}
}

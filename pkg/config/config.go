package config

import (
	"time"
)

type DB struct {
	Url         string `envconfig:"URL"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"true"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Strategy string `envconfig:"STRATEGY" default:"jwt"`
	Jwt      *Jwt   `envconfig:"JWT"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// EventBus selects where ledger events are published.
// Driver is one of memory, redis or kafka.
type EventBus struct {
	Driver       string        `envconfig:"DRIVER" default:"memory"`
	RedisURL     string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	Stream       string        `envconfig:"STREAM" default:"ledger:events"`
	Group        string        `envconfig:"GROUP" default:"ledger"`
	KafkaBrokers []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaTopic   string        `envconfig:"KAFKA_TOPIC" default:"ledger.events"`
	PollTimeout  time.Duration `envconfig:"POLL_TIMEOUT" default:"2s"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3001"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	EventBus  *EventBus  `envconfig:"EVENT_BUS"`
}

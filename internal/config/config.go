package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Board     BoardConfig
	Websocket WebsocketConfig
	Kafka     KafkaConfig
	Security  SecurityConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// BackendConfig locates the activities REST API the board consumes.
type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
}

type BoardConfig struct {
	PollInterval time.Duration `env:"BOARD_POLL_INTERVAL" envDefault:"5s"`
	NoticeTTL    time.Duration `env:"BOARD_NOTICE_TTL" envDefault:"5s"`
}

type WebsocketConfig struct {
	SendBuffer int `env:"WS_SEND_BUFFER" envDefault:"8"`
}

// KafkaConfig is optional; without brokers the board refreshes on the poll
// interval only.
type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	GroupID string   `env:"KAFKA_GROUP_ID" envDefault:"activity-board-ws"`
	Topics  []string `env:"KAFKA_TOPICS" envSeparator:","`
}

// SecurityConfig holds the optional HMAC secret guarding websocket connects.
// Empty secret means anonymous boards.
type SecurityConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type LoggingConfig struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"text"`
	Directory string `env:"LOG_DIR" envDefault:"./logs"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Board.PollInterval <= 0 {
		return nil, fmt.Errorf("BOARD_POLL_INTERVAL must be positive")
	}
	if cfg.Board.NoticeTTL <= 0 {
		return nil, fmt.Errorf("BOARD_NOTICE_TTL must be positive")
	}
	if cfg.Websocket.SendBuffer <= 0 {
		cfg.Websocket.SendBuffer = 8
	}
	return cfg, nil
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected backend base URL: %q", cfg.Backend.BaseURL)
	}
	if cfg.Board.PollInterval != 5*time.Second || cfg.Board.NoticeTTL != 5*time.Second {
		t.Fatalf("unexpected board intervals: %+v", cfg.Board)
	}
	if cfg.Websocket.SendBuffer != 8 {
		t.Fatalf("unexpected send buffer: %d", cfg.Websocket.SendBuffer)
	}
	if len(cfg.Kafka.Brokers) != 0 {
		t.Fatalf("brokers should default to empty: %v", cfg.Kafka.Brokers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_BASE_URL", "http://backend:8000")
	t.Setenv("BOARD_POLL_INTERVAL", "2s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPICS", "school-activities")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "http://backend:8000" {
		t.Fatalf("unexpected backend base URL: %q", cfg.Backend.BaseURL)
	}
	if cfg.Board.PollInterval != 2*time.Second {
		t.Fatalf("unexpected poll interval: %v", cfg.Board.PollInterval)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Fatalf("broker list not split: %v", cfg.Kafka.Brokers)
	}
	if len(cfg.Kafka.Topics) != 1 || cfg.Kafka.Topics[0] != "school-activities" {
		t.Fatalf("topic list not split: %v", cfg.Kafka.Topics)
	}
}

func TestLoadRejectsNonPositiveIntervals(t *testing.T) {
	t.Setenv("BOARD_POLL_INTERVAL", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero poll interval")
	}
}

func TestLoadFixesSendBuffer(t *testing.T) {
	t.Setenv("WS_SEND_BUFFER", "-1")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Websocket.SendBuffer != 8 {
		t.Fatalf("expected buffer fallback, got %d", cfg.Websocket.SendBuffer)
	}
}

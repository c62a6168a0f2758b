package kafka

import (
	"os"
	"strings"
	"time"
)

// Default values applied when the corresponding Config field is zero.
const (
	DefaultMaxAttempts  = 3
	DefaultWriteTimeout = 10 * time.Second
)

// Config holds the producer settings for the report topic.
type Config struct {
	// Brokers lists the Kafka bootstrap addresses.
	Brokers []string

	// Topic is the topic verification reports are produced to.
	Topic string

	// MaxAttempts bounds the retries for a single produce call.
	MaxAttempts int

	// WriteTimeout bounds each produce call.
	WriteTimeout time.Duration
}

// NewConfig reads from environment variables. KAFKA_BROKERS is a
// comma-separated list of addresses.
func NewConfig() Config {
	brokers := []string{"localhost:9092"}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = strings.Split(v, ",")
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "verification-reports"
	}

	return Config{
		Brokers: brokers,
		Topic:   topic,
	}
}

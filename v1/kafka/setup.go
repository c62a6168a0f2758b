package kafka

import (
	"github.com/segmentio/kafka-go"
)

// Logger defines the interface for logging operations in the kafka package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=kafka
type Logger interface {
	// Info logs informational messages, optionally with error and contextual fields
	Info(msg string, err error, fields ...map[string]interface{})

	// Debug logs debug-level messages, optionally with error and contextual fields
	Debug(msg string, err error, fields ...map[string]interface{})

	// Warn logs warning messages, optionally with error and contextual fields
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs error messages with the associated error and optional contextual fields
	Error(msg string, err error, fields ...map[string]interface{})

	// Fatal logs critical errors that should terminate the application
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Client is a produce-only Kafka client for the report topic.
type Client struct {
	cfg    Config
	writer *kafka.Writer
	logger Logger
}

// NewClient creates a Kafka producer for the report topic.
func NewClient(cfg Config, logger Logger) *Client {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}

	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		MaxAttempts:  cfg.MaxAttempts,
		WriteTimeout: cfg.WriteTimeout,
	})
	writer.AllowAutoTopicCreation = true

	logger.Info("Kafka producer initialized", nil, map[string]interface{}{
		"topic": cfg.Topic,
	})

	return &Client{
		cfg:    cfg,
		writer: writer,
		logger: logger,
	}
}

// Close flushes pending messages and releases the writer.
func (c *Client) Close() error {
	return c.writer.Close()
}

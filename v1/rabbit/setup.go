package rabbit

import (
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger defines the interface for logging operations in the rabbit package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=rabbit
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

// Rabbit is a publish-only RabbitMQ client. It declares the report exchange
// on startup and publishes verification reports to it with publisher
// confirms enabled.
type Rabbit struct {
	cfg Config

	// Channel is the AMQP channel used for publishing.
	Channel *amqp.Channel

	conn   *amqp.Connection
	logger Logger
	mu     sync.RWMutex
}

// NewClient connects to RabbitMQ and prepares the report exchange.
func NewClient(cfg Config, logger Logger) (*Rabbit, error) {
	conn, err := newConnection(cfg, logger)
	if err != nil {
		return nil, err
	}

	ch, err := connectToChannel(conn, cfg, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Rabbit{
		cfg:     cfg,
		conn:    conn,
		Channel: ch,
		logger:  logger,
	}, nil
}

// Close shuts down the channel and the connection.
func (rb *Rabbit) Close() error {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.Channel != nil {
		_ = rb.Channel.Close()
	}
	if rb.conn != nil {
		return rb.conn.Close()
	}
	return nil
}

// connectToChannel opens a channel, enables publisher confirms and declares
// the report exchange.
func connectToChannel(conn *amqp.Connection, cfg Config, logger Logger) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to create channel", err, nil)
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		logger.Error("failed to enable publisher confirms", err, nil)
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Channel.ExchangeName,
		cfg.Channel.ExchangeType,
		true,  // Durable
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,   // Arguments
	)
	if err != nil {
		logger.Error("failed to declare exchange", err, map[string]interface{}{
			"exchange": cfg.Channel.ExchangeName,
		})
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return ch, nil
}

// newConnection dials the RabbitMQ server. All connections use a 2-second
// heartbeat interval to detect disconnections quickly.
func newConnection(cfg Config, logger Logger) (*amqp.Connection, error) {
	scheme := "amqp"
	if cfg.Connection.IsSSLEnabled {
		scheme = "amqps"
	}
	hostURL := fmt.Sprintf("%v://%v:%v@%v:%v", scheme, cfg.Connection.User, cfg.Connection.Password, cfg.Connection.Host, cfg.Connection.Port)

	conn, err := amqp.DialConfig(hostURL, amqp.Config{
		Heartbeat: 2 * time.Second,
	})
	if err != nil {
		logger.Error("error in connecting to rabbit", err, map[string]interface{}{
			"rabbit_host": cfg.Connection.Host,
			"rabbit_port": cfg.Connection.Port,
		})
		return nil, fmt.Errorf("failed to connect to rabbit: %w", err)
	}

	logger.Info("Connected to Rabbit", nil, map[string]interface{}{
		"rabbit_host": cfg.Connection.Host,
		"rabbit_port": cfg.Connection.Port,
	})
	return conn, nil
}

package rabbit

import (
	"os"
	"strconv"
)

type Config struct {
	Connection Connection
	Channel    Channel
}

type Connection struct {
	Host         string
	Port         uint
	User         string
	Password     string
	IsSSLEnabled bool
}

type Channel struct {
	ExchangeName string
	ExchangeType string
	RoutingKey   string
	ContentType  string
}

// NewConfig reads from environment variables. Defaults target a local
// RabbitMQ and publish reports to the "verification" topic exchange.
func NewConfig() Config {
	port := uint(5672)
	if v := os.Getenv("RABBIT_PORT"); v != "" {
		if p, err := strconv.ParseUint(v, 10, 16); err == nil {
			port = uint(p)
		}
	}

	host := os.Getenv("RABBIT_HOST")
	if host == "" {
		host = "localhost"
	}
	exchange := os.Getenv("RABBIT_EXCHANGE_NAME")
	if exchange == "" {
		exchange = "verification"
	}
	routingKey := os.Getenv("RABBIT_ROUTING_KEY")
	if routingKey == "" {
		routingKey = "verification.report"
	}

	return Config{
		Connection: Connection{
			Host:         host,
			Port:         port,
			User:         os.Getenv("RABBIT_USER"),
			Password:     os.Getenv("RABBIT_PASSWORD"),
			IsSSLEnabled: os.Getenv("RABBIT_SSL_ENABLED") == "true",
		},
		Channel: Channel{
			ExchangeName: exchange,
			ExchangeType: "topic",
			RoutingKey:   routingKey,
			ContentType:  "application/json",
		},
	}
}

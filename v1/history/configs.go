package history

import (
	"os"
	"time"
)

type Config struct {
	Connection        Connection
	ConnectionDetails ConnectionDetails
}

type Connection struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string
	SSLMode  string
}

type ConnectionDetails struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	port := os.Getenv("HISTORY_DB_PORT")
	if port == "" {
		port = "5432"
	}
	sslMode := os.Getenv("HISTORY_DB_SSL_MODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	dbName := os.Getenv("HISTORY_DB_NAME")
	if dbName == "" {
		dbName = "weaviate_verify"
	}

	return Config{
		Connection: Connection{
			Host:     os.Getenv("HISTORY_DB_HOST"),
			Port:     port,
			User:     os.Getenv("HISTORY_DB_USER"),
			Password: os.Getenv("HISTORY_DB_PASSWORD"),
			DbName:   dbName,
			SSLMode:  sslMode,
		},
	}
}

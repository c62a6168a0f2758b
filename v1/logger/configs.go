package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// 1. production -> INFO
	// 2. development -> DEBUG
	// else -> INFO
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every log line as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"ZAP_LOGGER_SERVICE_NAME"`
}

// NewConfig reads the logger configuration from environment variables.
func NewConfig() Config {
	service := os.Getenv("ZAP_LOGGER_SERVICE_NAME")
	if service == "" {
		service = "weaviate-verify"
	}

	return Config{
		Level:       os.Getenv("ZAP_LOGGER_LEVEL"),
		ServiceName: service,
	}
}

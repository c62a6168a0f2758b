package tracer

import "os"

// Config controls tracer initialization and OTLP export.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv tags spans with the deployment environment (e.g. "production").
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. The exporter endpoint is
	// taken from the standard OTEL_EXPORTER_OTLP_* environment variables.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}

// NewConfig reads the tracer configuration from environment variables.
func NewConfig() Config {
	service := os.Getenv("TRACER_SERVICE_NAME")
	if service == "" {
		service = "weaviate-verify"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return Config{
		ServiceName:  service,
		AppEnv:       env,
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
	}
}

package weaviate

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds connection settings for the Weaviate REST API.
//
// Bearer tokens are deliberately absent here: every request is issued under
// an explicit identity, so tokens travel with the call, not with the client.
type Config struct {
	// Scheme is "http" or "https". Defaults to "http".
	Scheme string `yaml:"scheme" env:"WEAVIATE_SCHEME"`

	// Host of the Weaviate server, e.g. "localhost".
	Host string `yaml:"host" env:"WEAVIATE_HOST"`

	// REST port of the Weaviate server. Defaults to 8080.
	Port int `yaml:"port" env:"WEAVIATE_PORT"`

	// HTTPTimeoutS is the request timeout in seconds (default 30).
	HTTPTimeoutS int `yaml:"http_timeout_seconds" env:"WEAVIATE_HTTP_TIMEOUT_SECONDS"`
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	scheme := os.Getenv("WEAVIATE_SCHEME")
	if scheme == "" {
		scheme = "http"
	}

	port := 8080
	if v := os.Getenv("WEAVIATE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			port = n
		}
	}

	timeout := 30
	if v := os.Getenv("WEAVIATE_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	return &Config{
		Scheme:       scheme,
		Host:         os.Getenv("WEAVIATE_HOST"),
		Port:         port,
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("weaviate: missing WEAVIATE_HOST")
	}
	if c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("weaviate: invalid scheme %q", c.Scheme)
	}
	return nil
}

// BaseURL renders the REST root, e.g. "http://localhost:8080".
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Scheme, c.Host, c.Port)
}

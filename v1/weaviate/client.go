package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Logger defines the interface for logging operations in the weaviate package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=client.go -destination=mock_logger.go -package=weaviate
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// RequestObserver receives the latency of every completed API request.
// The metrics package satisfies this interface.
type RequestObserver interface {
	ObserveRequest(endpoint string, d time.Duration)
}

// Client is a thin wrapper around the Weaviate REST API.
//
// It covers the surface the verification suite needs: the meta probe, schema
// management, object writes and reads, and backup trigger/status. All
// operations authenticate with a bearer token supplied per call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     Logger
	observer   RequestObserver
}

// Meta is the response of the /v1/meta liveness probe.
type Meta struct {
	Hostname string `json:"hostname"`
	Version  string `json:"version"`
}

// NewClient constructs a Client from Config. It validates the config but
// performs no network calls; connectivity is established lazily because the
// first request of a verification run is itself the liveness probe.
func NewClient(cfg *Config, logger Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("weaviate: invalid config: %w", err)
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.BaseURL(), "/")

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
		logger:     logger,
	}, nil
}

// SetObserver attaches a request latency observer. Passing nil detaches it.
func (c *Client) SetObserver(o RequestObserver) {
	c.observer = o
}

// Meta probes the /v1/meta endpoint under the given token.
//
// A missing or invalid token yields ErrUnauthorized; an unreachable service
// yields ErrUnavailable.
func (c *Client) Meta(ctx context.Context, token string) (*Meta, error) {
	var meta Meta
	if err := c.do(ctx, token, http.MethodGet, "/v1/meta", nil, &meta); err != nil {
		return nil, err
	}

	c.logger.Debug("meta probe succeeded", nil, map[string]interface{}{
		"version":  meta.Version,
		"hostname": meta.Hostname,
	})

	return &meta, nil
}

// Close releases internal resources. The underlying http.Client keeps no
// persistent state beyond idle connections, which are dropped here.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

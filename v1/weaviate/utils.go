package weaviate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// do sends one HTTP request to the Weaviate REST API.
// It marshals the given body as JSON, attaches the bearer token, classifies
// HTTP and transport failures into the package's typed errors, and optionally
// decodes the response JSON into `out`.
func (c *Client) do(ctx context.Context, token, method, path string, body any, out any) error {

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("weaviate: encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("weaviate: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.observer != nil {
		c.observer.ObserveRequest(path, time.Since(start))
	}
	if err != nil {
		// Transport failure. Deliberately distinct from any HTTP status so
		// that a reset connection can never be mistaken for a policy denial.
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			Code:     resp.StatusCode,
			Endpoint: fmt.Sprintf("%s %s", method, path),
			Body:     string(bytes.TrimSpace(payload)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("weaviate: decode response: %w", err)
		}
	}

	return nil
}

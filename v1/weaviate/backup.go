package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Backup status values reported by the server.
const (
	BackupStarted      = "STARTED"
	BackupTransferring = "TRANSFERRING"
	BackupSuccess      = "SUCCESS"
	BackupFailed       = "FAILED"
)

// Backup is the state of one backup on one backend.
type Backup struct {
	ID      string `json:"id"`
	Backend string `json:"backend,omitempty"`
	Path    string `json:"path,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// CreateBackup triggers a backup of all collections onto the named backend
// (e.g. "s3", "filesystem"). The backup itself is an opaque capability of the
// server; this client only triggers it and reports its state.
func (c *Client) CreateBackup(ctx context.Context, token, backend, id string) (*Backup, error) {
	if backend == "" || id == "" {
		return nil, fmt.Errorf("weaviate: backup backend and id are required")
	}

	body := map[string]any{"id": id}
	path := "/v1/backups/" + url.PathEscape(backend)

	var backup Backup
	if err := c.do(ctx, token, http.MethodPost, path, body, &backup); err != nil {
		return nil, err
	}
	return &backup, nil
}

// BackupStatus fetches the current state of a backup.
func (c *Client) BackupStatus(ctx context.Context, token, backend, id string) (*Backup, error) {
	path := fmt.Sprintf("/v1/backups/%s/%s", url.PathEscape(backend), url.PathEscape(id))

	var backup Backup
	if err := c.do(ctx, token, http.MethodGet, path, nil, &backup); err != nil {
		return nil, err
	}
	return &backup, nil
}

// WaitForBackup polls the backup status until it reaches a terminal state or
// the context is cancelled.
func (c *Client) WaitForBackup(ctx context.Context, token, backend, id string, interval time.Duration) (*Backup, error) {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		backup, err := c.BackupStatus(ctx, token, backend, id)
		if err != nil {
			return nil, err
		}

		switch backup.Status {
		case BackupSuccess:
			return backup, nil
		case BackupFailed:
			return backup, fmt.Errorf("weaviate: backup %s failed: %s", id, backup.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

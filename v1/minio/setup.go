package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Logger defines the interface for logging operations within the MinIO client.
// This interface allows for dependency injection of any compatible logger implementation.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=minio
type Logger interface {
	// Info logs informational messages with optional error and additional fields
	Info(msg string, err error, fields ...map[string]interface{})

	// Debug logs debug-level messages with optional error and additional fields
	Debug(msg string, err error, fields ...map[string]interface{})

	// Warn logs warning messages with optional error and additional fields
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs error messages with the associated error and optional additional fields
	Error(msg string, err error, fields ...map[string]interface{})

	// Fatal logs critical error messages that typically require immediate attention
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Minio wraps a minio-go client scoped to the backup bucket.
type Minio struct {
	// Client is the underlying minio-go client.
	Client *minio.Client

	cfg    Config
	logger Logger
}

// NewClient creates a MinIO client, validates the connection and ensures the
// backup bucket exists.
func NewClient(cfg Config, logger Logger) (*Minio, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		logger.Error("failed to create minio client", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"secure":   cfg.UseSSL,
			"bucket":   cfg.BucketName,
		})
		return nil, err
	}

	m := &Minio{
		Client: client,
		cfg:    cfg,
		logger: logger,
	}

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := m.validateConnection(timeoutCtx); err != nil {
		logger.Error("failed to validate minio connection", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"bucket":   cfg.BucketName,
		})
		return nil, err
	}
	if err := m.ensureBucketExists(timeoutCtx); err != nil {
		logger.Error("failed to verify backup bucket", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"bucket":   cfg.BucketName,
		})
		return nil, err
	}

	return m, nil
}

// validateConnection verifies the server is reachable with the configured
// credentials.
func (m *Minio) validateConnection(ctx context.Context) error {
	if _, err := m.Client.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio connection validation failed: %w", err)
	}
	return nil
}

// ensureBucketExists creates the backup bucket when it is missing.
func (m *Minio) ensureBucketExists(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.cfg.BucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", m.cfg.BucketName, err)
	}
	if exists {
		return nil
	}

	err = m.Client.MakeBucket(ctx, m.cfg.BucketName, minio.MakeBucketOptions{
		Region: m.cfg.Region,
	})
	if err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", m.cfg.BucketName, err)
	}

	m.logger.Info("created backup bucket", nil, map[string]interface{}{
		"bucket": m.cfg.BucketName,
	})
	return nil
}

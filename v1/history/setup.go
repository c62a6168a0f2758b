package history

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Aleph-Alpha/weaviate-verify/v1/verifier"
)

// Logger defines the interface for logging operations in the history package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=history
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

// Store persists verification runs in PostgreSQL.
type Store struct {
	db     *gorm.DB
	logger Logger
}

// NewStore connects to the database and migrates the run history tables.
func NewStore(cfg Config, logger Logger) (*Store, error) {
	db, err := connect(cfg)
	if err != nil {
		logger.Error("failed to connect to history database", err, map[string]interface{}{
			"host":    cfg.Connection.Host,
			"db_name": cfg.Connection.DbName,
		})
		return nil, err
	}

	if err := db.AutoMigrate(&VerificationRun{}, &VerificationCheck{}); err != nil {
		return nil, fmt.Errorf("failed to migrate run history tables: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

func connect(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Connection.Host,
		cfg.Connection.Port,
		cfg.Connection.User,
		cfg.Connection.Password,
		cfg.Connection.DbName,
		cfg.Connection.SSLMode)

	db, err := gorm.Open(
		postgres.Open(dsn),
		&gorm.Config{
			TranslateError: true,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get history database instance: %w", err)
	}

	maxOpen := cfg.ConnectionDetails.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = 10
	}
	maxIdle := cfg.ConnectionDetails.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 5
	}
	maxLifetime := cfg.ConnectionDetails.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = 1 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return db, nil
}

// SaveReport writes a report and its check outcomes in one transaction.
func (s *Store) SaveReport(ctx context.Context, report *verifier.Report) error {
	run := runFromReport(report)
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save run %q: %w", report.RunID, err)
	}

	s.logger.Debug("run history saved", nil, map[string]interface{}{
		"run_id": report.RunID,
		"checks": len(run.Checks),
	})
	return nil
}

// PublishReport lets the store act as a report sink.
func (s *Store) PublishReport(ctx context.Context, report *verifier.Report) error {
	return s.SaveReport(ctx, report)
}

// RecentRuns returns the latest runs, newest first, with their checks.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]VerificationRun, error) {
	if limit <= 0 {
		limit = 20
	}

	var runs []VerificationRun
	err := s.db.WithContext(ctx).
		Preload("Checks").
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load run history: %w", err)
	}
	return runs, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate-verify/v1/history"
	"github.com/Aleph-Alpha/weaviate-verify/v1/identity"
	"github.com/Aleph-Alpha/weaviate-verify/v1/kafka"
	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
	"github.com/Aleph-Alpha/weaviate-verify/v1/metrics"
	"github.com/Aleph-Alpha/weaviate-verify/v1/minio"
	"github.com/Aleph-Alpha/weaviate-verify/v1/rabbit"
	"github.com/Aleph-Alpha/weaviate-verify/v1/tracer"
	"github.com/Aleph-Alpha/weaviate-verify/v1/verifier"
	"github.com/Aleph-Alpha/weaviate-verify/v1/weaviate"
)

const exitFailed = 1

// runParams collects everything the verification run needs. The sink and
// backup dependencies are optional: their modules are only added to the app
// when the matching SINK_* flag is set.
type runParams struct {
	fx.In

	Runner     *verifier.Runner
	Client     *weaviate.Client
	Creds      *identity.Credentials
	Log        *logger.Logger
	Shutdowner fx.Shutdowner

	Rabbit  *rabbit.Rabbit `optional:"true"`
	Kafka   *kafka.Client  `optional:"true"`
	History *history.Store `optional:"true"`
	Minio   *minio.Minio   `optional:"true"`
}

func main() {
	options := []fx.Option{
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		identity.FXModule,
		weaviate.FXModule,
		verifier.FXModule,
	}

	if os.Getenv("SINK_RABBIT_ENABLED") == "true" {
		options = append(options, rabbit.FXModule)
	}
	if os.Getenv("SINK_KAFKA_ENABLED") == "true" {
		options = append(options, kafka.FXModule)
	}
	if os.Getenv("SINK_HISTORY_ENABLED") == "true" {
		options = append(options, history.FXModule)
	}
	if os.Getenv("BACKUP_VERIFY_ENABLED") == "true" {
		options = append(options, minio.FXModule)
	}

	options = append(options, fx.Invoke(runVerification))

	// Run exits the process with the code passed to Shutdowner.Shutdown.
	fx.New(options...).Run()
}

// runVerification executes one verification run in the background once the
// app has started, feeds the report to the configured sinks and shuts the
// app down with the run's exit code.
func runVerification(lc fx.Lifecycle, p runParams) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := 0
				if err := verify(context.Background(), p); err != nil {
					p.Log.Error("verification failed", err, nil)
					code = exitFailed
				}
				_ = p.Shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
	})
}

func verify(ctx context.Context, p runParams) error {
	report, runErr := p.Runner.Run(ctx)

	if report != nil {
		publishReport(ctx, p, report)
	}

	if runErr != nil {
		return runErr
	}
	if !report.Passed() {
		return fmt.Errorf("%d of %d checks failed", len(report.Failed()), len(report.Outcomes))
	}

	if p.Minio != nil {
		if err := verifyBackup(ctx, p, report.RunID); err != nil {
			return err
		}
	}
	return nil
}

func publishReport(ctx context.Context, p runParams, report *verifier.Report) {
	var sinks []verifier.Sink
	if p.Rabbit != nil {
		sinks = append(sinks, p.Rabbit)
	}
	if p.Kafka != nil {
		sinks = append(sinks, p.Kafka)
	}
	if p.History != nil {
		sinks = append(sinks, p.History)
	}
	if len(sinks) == 0 {
		return
	}

	if err := verifier.Publish(ctx, report, sinks); err != nil {
		p.Log.Warn("failed to publish report to one or more sinks", err, map[string]interface{}{
			"run_id": report.RunID,
		})
	}
}

// verifyBackup creates a backup as the admin identity, waits for it to
// complete and confirms it left artifacts in the bucket.
func verifyBackup(ctx context.Context, p runParams, runID string) error {
	backupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := p.Client.CreateBackup(backupCtx, p.Creds.Admin.Token, "s3", runID); err != nil {
		return fmt.Errorf("failed to start backup: %w", err)
	}

	backup, err := p.Client.WaitForBackup(backupCtx, p.Creds.Admin.Token, "s3", runID, 2*time.Second)
	if err != nil {
		return fmt.Errorf("backup did not complete: %w", err)
	}
	if backup.Status != weaviate.BackupSuccess {
		return fmt.Errorf("backup finished with status %q", backup.Status)
	}

	artifacts, err := p.Minio.VerifyBackup(backupCtx, runID)
	if err != nil {
		return err
	}

	p.Log.Info("backup artifacts verified", nil, map[string]interface{}{
		"backup_id": runID,
		"objects":   artifacts.ObjectCount,
		"bytes":     artifacts.TotalBytes,
	})
	return nil
}

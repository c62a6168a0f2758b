package verifier

import (
	"context"
	"fmt"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/weaviate-verify/v1/identity"
	"github.com/Aleph-Alpha/weaviate-verify/v1/tracer"
	"github.com/Aleph-Alpha/weaviate-verify/v1/weaviate"
)

// Logger defines the interface for logging operations in the verifier package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=runner.go -destination=mock_logger.go -package=verifier
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// CheckObserver receives metrics for executed checks and completed runs.
// The metrics package satisfies this interface.
type CheckObserver interface {
	ObserveCheck(operation, identity, result string)
	ObserveRun(d time.Duration, passed bool)
}

// Runner deterministically exercises the service's authorization enforcement.
//
// Checks run strictly sequentially: each one is issued only after the
// previous one finished. There is nothing to gain from concurrency here; the
// point is ordered, reproducible policy verification.
type Runner struct {
	client  *weaviate.Client
	creds   *identity.Credentials
	cfg     Config
	logger  Logger
	metrics CheckObserver
	tracer  *tracer.Tracer
}

// NewRunner constructs a Runner. Metrics and tracing are optional and can be
// attached with SetMetrics and SetTracer.
func NewRunner(client *weaviate.Client, creds *identity.Credentials, cfg Config, logger Logger) (*Runner, error) {
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("verifier: %w", err)
	}
	if cfg.ClassName == "" {
		return nil, fmt.Errorf("verifier: class name is required")
	}

	return &Runner{
		client: client,
		creds:  creds,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// SetMetrics attaches a check observer.
func (r *Runner) SetMetrics(m CheckObserver) { r.metrics = m }

// SetTracer attaches a tracer; every run and every check get a span.
func (r *Runner) SetTracer(t *tracer.Tracer) { r.tracer = t }

// Run executes the fixed check sequence against both identities and returns
// the ordered report.
//
// The returned error is non-nil only when the run could not proceed at all
// (service unreachable). Per-check failures, including ambiguous ones, are
// captured inside the report; a connection failure mid-run is recorded as an
// ambiguous outcome for the affected check and then aborts the rest.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.tracer != nil {
		var span traceSpan.Span
		ctx, span = r.tracer.StartSpan(ctx, "verification-run")
		defer span.End()
	}

	report := &Report{
		RunID:     fmt.Sprintf("run-%s", time.Now().UTC().Format("20060102T150405.000")),
		StartedAt: time.Now().UTC(),
	}

	r.logger.Info("starting verification run", nil, map[string]interface{}{
		"run_id": report.RunID,
		"class":  r.cfg.ClassName,
	})

	err := r.runSequence(ctx, report)

	report.FinishedAt = time.Now().UTC()

	if r.metrics != nil {
		r.metrics.ObserveRun(report.Duration(), err == nil && report.Passed())
	}

	r.logReport(report)

	return report, err
}

// runSequence appends one outcome per check to the report, in order.
// It returns an error only on an unrecoverable connection failure.
func (r *Runner) runSequence(ctx context.Context, report *Report) error {
	admin := r.creds.Admin
	viewer := r.creds.Viewer
	class := r.noteClass()

	record := func(chk check) (ok bool, fatal error) {
		outcome, rawErr := r.execute(ctx, chk)
		report.Outcomes = append(report.Outcomes, outcome)
		if rawErr != nil && weaviate.IsConnectionFailure(rawErr) {
			return false, fmt.Errorf("verifier: run aborted, %w", rawErr)
		}
		return outcome.Observed != OutcomeAmbiguous, nil
	}

	// Elevated identity first: it prepares the collection the restricted
	// identity reads later.
	connect := check{
		operation: "connect",
		identity:  admin,
		expect:    ExpectAllow,
		run: func(ctx context.Context) error {
			meta, err := r.client.Meta(ctx, admin.Token)
			if err != nil {
				return err
			}
			report.ServerVersion = meta.Version
			return nil
		},
	}
	adminUp, fatal := record(connect)
	if fatal != nil {
		return fatal
	}

	adminChecks := []check{
		{
			operation: "schema_create",
			identity:  admin,
			expect:    ExpectAllow,
			run: func(ctx context.Context) error {
				return r.client.EnsureClass(ctx, admin.Token, class)
			},
		},
		{
			operation: "record_write",
			identity:  admin,
			expect:    ExpectAllow,
			run: func(ctx context.Context) error {
				_, err := r.client.InsertObject(ctx, admin.Token, weaviate.Object{
					Class:      r.cfg.ClassName,
					Properties: map[string]any{"text": "a"},
				})
				return err
			},
		},
	}
	for _, chk := range adminChecks {
		if !adminUp {
			// Credential rejected at the probe; these checks cannot prove
			// anything and are recorded as failed, not silently dropped.
			report.Outcomes = append(report.Outcomes, skipped(chk, "admin session not established"))
			continue
		}
		if _, fatal := record(chk); fatal != nil {
			return fatal
		}
	}

	viewerConnect := check{
		operation: "connect",
		identity:  viewer,
		expect:    ExpectAllow,
		run: func(ctx context.Context) error {
			_, err := r.client.Meta(ctx, viewer.Token)
			return err
		},
	}
	viewerUp, fatal := record(viewerConnect)
	if fatal != nil {
		return fatal
	}

	viewerChecks := []check{
		{
			operation: "schema_create",
			identity:  viewer,
			expect:    ExpectDeny,
			run: func(ctx context.Context) error {
				return r.client.CreateClass(ctx, viewer.Token, class)
			},
		},
		{
			operation: "record_write",
			identity:  viewer,
			expect:    ExpectDeny,
			run: func(ctx context.Context) error {
				_, err := r.client.InsertObject(ctx, viewer.Token, weaviate.Object{
					Class:      r.cfg.ClassName,
					Properties: map[string]any{"text": "b"},
				})
				return err
			},
		},
		{
			operation: "record_read",
			identity:  viewer,
			expect:    ExpectAllow,
			run: func(ctx context.Context) error {
				objects, err := r.client.ListObjects(ctx, viewer.Token, r.cfg.ClassName, r.cfg.ReadLimit)
				if err != nil {
					return err
				}
				if adminUp && len(objects) == 0 {
					return fmt.Errorf("verifier: expected at least one record in %s", r.cfg.ClassName)
				}
				return nil
			},
		},
	}
	for _, chk := range viewerChecks {
		if !viewerUp {
			report.Outcomes = append(report.Outcomes, skipped(chk, "viewer session not established"))
			continue
		}
		if _, fatal := record(chk); fatal != nil {
			return fatal
		}
	}

	adminRead := check{
		operation: "record_read",
		identity:  admin,
		expect:    ExpectAllow,
		run: func(ctx context.Context) error {
			_, err := r.client.ListObjects(ctx, admin.Token, r.cfg.ClassName, r.cfg.ReadLimit)
			return err
		},
	}
	if !adminUp {
		report.Outcomes = append(report.Outcomes, skipped(adminRead, "admin session not established"))
		return nil
	}
	if _, fatal := record(adminRead); fatal != nil {
		return fatal
	}

	return nil
}

// noteClass is the test collection definition: one text property, no
// vectorizer so the run stays independent of any model modules.
func (r *Runner) noteClass() weaviate.Class {
	return weaviate.Class{
		Class:       r.cfg.ClassName,
		Description: "Collection created by the permission verification run",
		Vectorizer:  "none",
		Properties: []weaviate.Property{
			{Name: "text", DataType: []string{"text"}},
		},
	}
}

package verifier

import (
	"context"
	"errors"
)

// logReport writes the run summary and every failed outcome to the log.
func (r *Runner) logReport(report *Report) {
	failed := report.Failed()

	fields := map[string]interface{}{
		"run_id":   report.RunID,
		"checks":   len(report.Outcomes),
		"failed":   len(failed),
		"duration": report.Duration().String(),
	}
	if report.ServerVersion != "" {
		fields["server_version"] = report.ServerVersion
	}

	if report.Passed() {
		r.logger.Info("verification run passed", nil, fields)
		return
	}

	r.logger.Error("verification run failed", nil, fields)
	for _, o := range failed {
		r.logger.Error("failed check", nil, map[string]interface{}{
			"operation": o.Operation,
			"identity":  o.Identity,
			"expected":  string(o.Expected),
			"observed":  string(o.Observed),
			"detail":    o.Detail,
		})
	}
}

// Publish feeds the report to every sink, continuing past individual sink
// failures and returning them joined.
func Publish(ctx context.Context, report *Report, sinks []Sink) error {
	var errs []error
	for _, sink := range sinks {
		if err := sink.PublishReport(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

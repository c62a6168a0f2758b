package verifier

import (
	"context"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/weaviate-verify/v1/identity"
	"github.com/Aleph-Alpha/weaviate-verify/v1/weaviate"
)

// check is one isolated verification unit: an operation attempted under one
// identity with a declared expectation.
type check struct {
	operation string
	identity  identity.Identity
	expect    Expectation
	run       func(ctx context.Context) error
}

// Classify maps the error of an attempted operation onto a tagged outcome.
//
// Only a clean authorization rejection counts as denied. Everything else that
// fails is ambiguous: a reset connection, a rejected credential or a schema
// validation error proves nothing about policy enforcement and must not be
// mistaken for it.
func Classify(err error) OutcomeKind {
	if err == nil {
		return OutcomeAllowed
	}
	if weaviate.IsPermissionDenied(err) {
		return OutcomeDenied
	}
	return OutcomeAmbiguous
}

// execute runs one check and converts its result into an Outcome.
// The raw error is returned alongside so the runner can detect transport
// failures that make continuing pointless.
func (r *Runner) execute(ctx context.Context, chk check) (Outcome, error) {
	var span traceSpan.Span
	if r.tracer != nil {
		ctx, span = r.tracer.StartSpan(ctx, "check/"+chk.operation)
		defer span.End()
	}

	start := time.Now()
	err := chk.run(ctx)
	elapsed := time.Since(start)

	observed := Classify(err)

	outcome := Outcome{
		Operation: chk.operation,
		Identity:  chk.identity.Name,
		Expected:  chk.expect,
		Observed:  observed,
		Passed:    expectationMet(chk.expect, observed),
		Duration:  elapsed,
	}
	if err != nil {
		outcome.Detail = err.Error()
	}

	if r.tracer != nil {
		r.tracer.SetAttributes(span, map[string]interface{}{
			"check.operation": chk.operation,
			"check.identity":  chk.identity.Name,
			"check.expected":  string(chk.expect),
			"check.observed":  string(observed),
			"check.passed":    outcome.Passed,
		})
		if err != nil && !outcome.Passed {
			r.tracer.RecordErrorOnSpan(span, err)
		}
	}

	if r.metrics != nil {
		r.metrics.ObserveCheck(chk.operation, chk.identity.Name, string(observed))
	}

	if outcome.Passed {
		r.logger.Debug("check passed", nil, outcome.fields())
	} else {
		r.logger.Warn("check failed", err, outcome.fields())
	}

	return outcome, err
}

// skipped marks a check that could not be attempted because its identity's
// session was never established. Skipped checks fail as ambiguous.
func skipped(chk check, reason string) Outcome {
	return Outcome{
		Operation: chk.operation,
		Identity:  chk.identity.Name,
		Expected:  chk.expect,
		Observed:  OutcomeAmbiguous,
		Passed:    false,
		Detail:    reason,
	}
}

func expectationMet(expected Expectation, observed OutcomeKind) bool {
	switch expected {
	case ExpectAllow:
		return observed == OutcomeAllowed
	case ExpectDeny:
		return observed == OutcomeDenied
	}
	return false
}

func (o Outcome) fields() map[string]interface{} {
	return map[string]interface{}{
		"operation": o.Operation,
		"identity":  o.Identity,
		"expected":  string(o.Expected),
		"observed":  string(o.Observed),
	}
}

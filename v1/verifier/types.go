package verifier

import (
	"context"
	"time"
)

// Expectation is the outcome the declared policy requires for a check.
type Expectation string

const (
	ExpectAllow Expectation = "allow"
	ExpectDeny  Expectation = "deny"
)

// OutcomeKind is the tagged result of one executed check.
//
// Ambiguous covers every failure that is not a clean permission rejection:
// transport errors, credential rejections, unexpected server responses.
// An ambiguous result never satisfies a deny expectation.
type OutcomeKind string

const (
	OutcomeAllowed   OutcomeKind = "allowed"
	OutcomeDenied    OutcomeKind = "denied"
	OutcomeAmbiguous OutcomeKind = "ambiguous"
)

// Outcome is the result of a single permission check.
type Outcome struct {
	// Operation names the checked operation, e.g. "schema_create".
	Operation string `json:"operation"`

	// Identity is the name of the identity the check ran under.
	Identity string `json:"identity"`

	// Expected is what the declared policy requires.
	Expected Expectation `json:"expected"`

	// Observed is the classified result of the attempt.
	Observed OutcomeKind `json:"observed"`

	// Passed is true when observed matches expected.
	Passed bool `json:"passed"`

	// Detail carries the error text for denied or ambiguous outcomes.
	Detail string `json:"detail,omitempty"`

	// Duration is the wall-clock time of the attempt.
	Duration time.Duration `json:"durationNs"`
}

// Report is the ordered result of one complete verification run.
type Report struct {
	RunID         string    `json:"runId"`
	ServerVersion string    `json:"serverVersion,omitempty"`
	StartedAt     time.Time `json:"startedAt"`
	FinishedAt    time.Time `json:"finishedAt"`
	Outcomes      []Outcome `json:"outcomes"`
}

// Passed reports whether every outcome matched its expectation.
// A run with zero outcomes did not verify anything and never passes.
func (r *Report) Passed() bool {
	if len(r.Outcomes) == 0 {
		return false
	}
	for _, o := range r.Outcomes {
		if !o.Passed {
			return false
		}
	}
	return true
}

// Failed returns the outcomes that did not match their expectation,
// preserving run order.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Passed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Duration is the wall-clock span of the run.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Sink receives completed reports. Implementations publish them to a broker,
// persist them, or discard them; the run's outcomes themselves stay in memory.
type Sink interface {
	PublishReport(ctx context.Context, report *Report) error
}

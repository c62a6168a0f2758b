package verifier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Aleph-Alpha/weaviate-verify/v1/weaviate"
)

func TestClassify_NilError(t *testing.T) {
	if got := Classify(nil); got != OutcomeAllowed {
		t.Errorf("expected allowed, got %s", got)
	}
}

func TestClassify_PermissionDenied(t *testing.T) {
	err := &weaviate.StatusError{Code: 403, Endpoint: "POST /v1/objects"}
	if got := Classify(err); got != OutcomeDenied {
		t.Errorf("expected denied, got %s", got)
	}
}

func TestClassify_WrappedPermissionDenied(t *testing.T) {
	err := fmt.Errorf("insert failed: %w", &weaviate.StatusError{Code: 403, Endpoint: "POST /v1/objects"})
	if got := Classify(err); got != OutcomeDenied {
		t.Errorf("expected denied, got %s", got)
	}
}

func TestClassify_TransportErrorIsAmbiguous(t *testing.T) {
	err := fmt.Errorf("%w: POST /v1/objects: connection reset", weaviate.ErrUnavailable)
	if got := Classify(err); got != OutcomeAmbiguous {
		t.Errorf("expected ambiguous, got %s", got)
	}
}

func TestClassify_AuthFailureIsAmbiguous(t *testing.T) {
	err := &weaviate.StatusError{Code: 401, Endpoint: "GET /v1/meta"}
	if got := Classify(err); got != OutcomeAmbiguous {
		t.Errorf("expected ambiguous, got %s", got)
	}
}

func TestClassify_UnknownErrorIsAmbiguous(t *testing.T) {
	if got := Classify(errors.New("boom")); got != OutcomeAmbiguous {
		t.Errorf("expected ambiguous, got %s", got)
	}
}

func TestExpectationMet(t *testing.T) {
	cases := []struct {
		expected Expectation
		observed OutcomeKind
		want     bool
	}{
		{ExpectAllow, OutcomeAllowed, true},
		{ExpectAllow, OutcomeDenied, false},
		{ExpectAllow, OutcomeAmbiguous, false},
		{ExpectDeny, OutcomeDenied, true},
		{ExpectDeny, OutcomeAllowed, false},
		// The critical case: a transport failure never counts as a denial.
		{ExpectDeny, OutcomeAmbiguous, false},
	}

	for _, c := range cases {
		if got := expectationMet(c.expected, c.observed); got != c.want {
			t.Errorf("expectationMet(%s, %s) = %v, want %v", c.expected, c.observed, got, c.want)
		}
	}
}

func TestReport_PassedEmpty(t *testing.T) {
	report := &Report{}
	if report.Passed() {
		t.Error("empty report must not pass")
	}
}

func TestReport_Failed(t *testing.T) {
	report := &Report{
		Outcomes: []Outcome{
			{Operation: "connect", Passed: true},
			{Operation: "schema_create", Passed: false},
			{Operation: "record_write", Passed: false},
		},
	}

	failed := report.Failed()
	if len(failed) != 2 {
		t.Fatalf("expected 2 failed outcomes, got %d", len(failed))
	}
	if failed[0].Operation != "schema_create" || failed[1].Operation != "record_write" {
		t.Errorf("failed outcomes out of order: %v", failed)
	}
	if report.Passed() {
		t.Error("report with failed outcomes must not pass")
	}
}

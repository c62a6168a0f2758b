package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/weaviate-verify/v1/verifier"
)

func TestRunFromReport(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	report := &verifier.Report{
		RunID:         "run-20260301T100000.000",
		ServerVersion: "1.28.2",
		StartedAt:     started,
		FinishedAt:    started.Add(3 * time.Second),
		Outcomes: []verifier.Outcome{
			{
				Operation: "connect",
				Identity:  "admin",
				Expected:  verifier.ExpectAllow,
				Observed:  verifier.OutcomeAllowed,
				Passed:    true,
				Duration:  120 * time.Millisecond,
			},
			{
				Operation: "schema_create",
				Identity:  "viewer",
				Expected:  verifier.ExpectDeny,
				Observed:  verifier.OutcomeAmbiguous,
				Passed:    false,
				Detail:    "connection reset",
				Duration:  50 * time.Millisecond,
			},
		},
	}

	run := runFromReport(report)

	assert.Equal(t, report.RunID, run.RunID)
	assert.Equal(t, "1.28.2", run.ServerVersion)
	assert.False(t, run.Passed)
	require.Len(t, run.Checks, 2)

	assert.Equal(t, "connect", run.Checks[0].Operation)
	assert.Equal(t, "allow", run.Checks[0].Expected)
	assert.True(t, run.Checks[0].Passed)
	assert.EqualValues(t, 120, run.Checks[0].DurationMs)

	assert.Equal(t, "ambiguous", run.Checks[1].Observed)
	assert.Equal(t, "connection reset", run.Checks[1].Detail)
	assert.False(t, run.Checks[1].Passed)
}

func TestRunFromReport_EmptyReportNeverPasses(t *testing.T) {
	run := runFromReport(&verifier.Report{RunID: "run-empty"})

	assert.False(t, run.Passed)
	assert.Empty(t, run.Checks)
}

package history

import (
	"time"

	"github.com/Aleph-Alpha/weaviate-verify/v1/verifier"
)

// VerificationRun is one persisted verification run.
type VerificationRun struct {
	ID            uint   `gorm:"primaryKey"`
	RunID         string `gorm:"uniqueIndex;size:64"`
	ServerVersion string `gorm:"size:32"`
	StartedAt     time.Time
	FinishedAt    time.Time
	Passed        bool
	Checks        []VerificationCheck `gorm:"foreignKey:RunRef;constraint:OnDelete:CASCADE"`
}

// VerificationCheck is one check outcome belonging to a run.
type VerificationCheck struct {
	ID         uint   `gorm:"primaryKey"`
	RunRef     uint   `gorm:"index"`
	Operation  string `gorm:"size:64"`
	Identity   string `gorm:"size:64"`
	Expected   string `gorm:"size:16"`
	Observed   string `gorm:"size:16"`
	Passed     bool
	Detail     string
	DurationMs int64
}

// runFromReport converts a report into its persisted form.
func runFromReport(report *verifier.Report) *VerificationRun {
	run := &VerificationRun{
		RunID:         report.RunID,
		ServerVersion: report.ServerVersion,
		StartedAt:     report.StartedAt,
		FinishedAt:    report.FinishedAt,
		Passed:        report.Passed(),
		Checks:        make([]VerificationCheck, 0, len(report.Outcomes)),
	}
	for _, outcome := range report.Outcomes {
		run.Checks = append(run.Checks, VerificationCheck{
			Operation:  outcome.Operation,
			Identity:   outcome.Identity,
			Expected:   string(outcome.Expected),
			Observed:   string(outcome.Observed),
			Passed:     outcome.Passed,
			Detail:     outcome.Detail,
			DurationMs: outcome.Duration.Milliseconds(),
		})
	}
	return run
}

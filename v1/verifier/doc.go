// Package verifier implements the permission verification runner: a fixed,
// strictly sequential sequence of authenticated operations against a
// Weaviate instance under two identities, each operation's observed outcome
// compared against the declared authorization policy.
//
// # Policy
//
//	Operation      Elevated (admin)   Restricted (viewer)
//	schema create  allow              deny
//	record write   allow              deny
//	record read    allow              allow
//
// # Tagged Outcomes
//
// Every check produces one Outcome with an explicit observed kind:
//
//	allowed    — the operation succeeded
//	denied     — the service rejected it with a clean permission error
//	ambiguous  — anything else: transport failure, rejected credential,
//	             validation error
//
// Classification happens on typed client errors, never on message text.
// Ambiguous results fail their check regardless of expectation: a connection
// reset during a deny-expected write proves nothing about the policy and is
// explicitly not counted as a correct denial.
//
// # Run Shape
//
//	runner, _ := verifier.NewRunner(client, creds, verifier.NewConfig(), log)
//	report, err := runner.Run(ctx)
//	if err != nil {
//		// service unreachable; report holds the outcomes up to the abort
//	}
//	if !report.Passed() {
//		for _, o := range report.Failed() { ... }
//	}
//
// The report is transient; Sink implementations (rabbit, kafka, history)
// receive it after the run for publication or persistence.
package verifier

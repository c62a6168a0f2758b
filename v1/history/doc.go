// Package history persists verification runs in PostgreSQL.
//
// Each run is stored as one VerificationRun row plus one VerificationCheck
// row per outcome. The store doubles as a report sink so it can be fed the
// same way as the messaging sinks. Tables are migrated on startup.
package history

// Package journal persists batch-run history in SQLite: one row per run
// and one row per processed document, so past replacement outcomes stay
// inspectable after the console output is gone (`docpatch runs`).
//
// The journal is an audit trail, not workflow state; the batch never reads
// it back during a run, and journal failures degrade to log warnings. The
// schema carries a version stamp; bump schemaVersion in schema.go when it
// changes and users recreate the database.
package journal

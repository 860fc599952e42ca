// Package runhistory persists the outcome of past optimize/batch runs to a
// local SQLite database, keyed by a per-run github.com/google/uuid, so the
// "history" command can list or show recent runs. This is outer-layer,
// non-core persistence the pipeline itself never touches (spec.md §6.5);
// the schema-migration idiom (versioned SQL applied inside a transaction,
// tracked in a schema_migrations table) is ported from the teacher's
// internal/queue/store.go and migrations.go.
package runhistory

// Package queue persists processed-dump records in SQLite.
//
// The Store keeps one row per dump base path, capturing the completeness
// verdict and the extracted metadata so repeat runs and the watch loop can
// see what has already been handled. Rows are upserted by base path;
// reprocessing a dump refreshes its record under a new run id.
//
// The database is working state, not an archive. Schema changes bump the
// version in schema.go; users clear the database to adopt the new schema.
package queue

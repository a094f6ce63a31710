// Package store persists patient records and the file index in a single
// SQLite database.
//
// The database is the authoritative record state; the filesystem owns the
// byte content of attachments. The two are joined only through
// base-relative path strings, never through live handles.
//
// Schema evolution is probe-based and additive-only: on every open the
// live column set is inspected and any missing column is appended with a
// default. Columns are never dropped, renamed, or retyped, and one-time
// content backfills are guarded so they touch only rows not yet migrated.
// The whole migration path is therefore idempotent and runs unconditionally
// on every open.
package store

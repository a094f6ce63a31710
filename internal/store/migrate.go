package store

import (
	"database/sql"
	"fmt"
	"time"
)

// rowStampFormat is the wall-clock format stored in timestamp columns.
const rowStampFormat = "2006-01-02 15:04:05"

// columnSpec describes one column the current model requires beyond the
// base schema. Migrations are additive only: columns are appended with a
// default, never dropped, renamed, or retyped.
type columnSpec struct {
	name string
	ddl  string
}

var patientColumns = []columnSpec{
	{"name", "TEXT NOT NULL DEFAULT ''"}, // pre-rename databases only have full_name
	{"doc_type", "TEXT NOT NULL DEFAULT ''"},
	{"doc_number", "TEXT NOT NULL DEFAULT ''"},
	{"insurer", "TEXT NOT NULL DEFAULT ''"},
	{"birth_date", "TEXT NOT NULL DEFAULT ''"},
	{"sex", "TEXT NOT NULL DEFAULT ''"},
	{"phone", "TEXT NOT NULL DEFAULT ''"},
	{"email", "TEXT NOT NULL DEFAULT ''"},
	{"address", "TEXT NOT NULL DEFAULT ''"},
	{"emergency_contact", "TEXT NOT NULL DEFAULT ''"},
	{"notes", "TEXT NOT NULL DEFAULT ''"},
	{"photo_path", "TEXT NOT NULL DEFAULT ''"},
	{"created_at", "TEXT NOT NULL DEFAULT ''"},
	{"updated_at", "TEXT NOT NULL DEFAULT ''"},
}

var fileColumns = []columnSpec{
	{"meta_json", "TEXT NOT NULL DEFAULT ''"},
}

// migrate brings any older on-disk schema up to the current shape without
// data loss. It probes the live column set instead of tracking a version
// number, so mixed-version upgrade paths all converge on the same result.
// Every step is unconditionally safe on an already-migrated database
// because it runs on every open.
func migrate(db *sql.DB) error {
	if err := addMissingColumns(db, "patients", patientColumns); err != nil {
		return err
	}
	if err := addMissingColumns(db, "files", fileColumns); err != nil {
		return err
	}
	if err := backfillLegacyColumns(db); err != nil {
		return err
	}
	if err := backfillTimestamps(db); err != nil {
		return err
	}
	return nil
}

// addMissingColumns appends any required column absent from the live table.
func addMissingColumns(db *sql.DB, table string, specs []columnSpec) error {
	existing, err := tableColumns(db, table)
	if err != nil {
		return err
	}

	for _, spec := range specs {
		if existing[spec.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, spec.name, spec.ddl)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("add column %s.%s: %w", table, spec.name, err)
		}
	}

	return nil
}

// backfillLegacyColumns copies data out of columns used by earlier
// generations of the application. Each backfill only touches rows not yet
// migrated, so re-running on every startup is a no-op after the first pass.
// The legacy columns themselves are left in place.
func backfillLegacyColumns(db *sql.DB) error {
	existing, err := tableColumns(db, "patients")
	if err != nil {
		return err
	}

	// The first generation called the name column full_name.
	if existing["full_name"] {
		_, err := db.Exec(`
			UPDATE patients SET name = full_name
			WHERE (name IS NULL OR name = '')
			  AND full_name IS NOT NULL AND full_name != ''
		`)
		if err != nil {
			return fmt.Errorf("backfill name from full_name: %w", err)
		}
	}

	// The first generation stored a bare photo filename inside the patient
	// folder rather than a base-relative path.
	if existing["photo_filename"] {
		_, err := db.Exec(`
			UPDATE patients SET photo_path = 'patients/' || id || '/' || photo_filename
			WHERE (photo_path IS NULL OR photo_path = '')
			  AND photo_filename IS NOT NULL AND photo_filename != ''
		`)
		if err != nil {
			return fmt.Errorf("backfill photo_path from photo_filename: %w", err)
		}
	}

	return nil
}

// backfillTimestamps ensures timestamp columns are never empty, defaulting
// absent values to the current time.
func backfillTimestamps(db *sql.DB) error {
	now := time.Now().Format(rowStampFormat)

	stmts := []string{
		"UPDATE patients SET created_at = ? WHERE created_at IS NULL OR created_at = ''",
		"UPDATE patients SET updated_at = ? WHERE updated_at IS NULL OR updated_at = ''",
		"UPDATE files SET created_at = ? WHERE created_at IS NULL OR created_at = ''",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt, now); err != nil {
			return fmt.Errorf("backfill timestamps: %w", err)
		}
	}

	return nil
}

// tableColumns returns the live column set of a table.
func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt any
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan table_info %s: %w", table, err)
		}
		columns[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table_info %s: %w", table, err)
	}

	return columns, nil
}

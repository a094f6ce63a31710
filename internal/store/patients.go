package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// Patient is one row of the patients table. Optional fields are plain
// strings with "" meaning unset. PhotoPath is base-relative; resolving it
// to an absolute path is the caller's concern.
type Patient struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DocType          string `json:"doc_type,omitempty"`
	DocNumber        string `json:"doc_number,omitempty"`
	Insurer          string `json:"insurer,omitempty"`
	BirthDate        string `json:"birth_date,omitempty"`
	Sex              string `json:"sex,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	Notes            string `json:"notes,omitempty"`
	PhotoPath        string `json:"photo_path,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

const patientFields = `id, name, doc_type, doc_number, insurer, birth_date, sex,
	phone, email, address, emergency_contact, notes, photo_path, created_at, updated_at`

// InsertPatient persists a new patient row. The caller has already
// assigned the ID and both timestamps.
func (s *Store) InsertPatient(ctx context.Context, p Patient) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO patients (`+patientFields+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.Name, p.DocType, p.DocNumber, p.Insurer, p.BirthDate, p.Sex,
		p.Phone, p.Email, p.Address, p.EmergencyContact, p.Notes, p.PhotoPath,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// UpdatePatient overwrites every mutable field of an existing row and
// refreshes updated_at. There is no partial-field merge. ID, photo_path
// and created_at are untouched.
func (s *Store) UpdatePatient(ctx context.Context, p Patient) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE patients SET
			name = ?, doc_type = ?, doc_number = ?, insurer = ?, birth_date = ?,
			sex = ?, phone = ?, email = ?, address = ?, emergency_contact = ?,
			notes = ?, updated_at = ?
		WHERE id = ?
	`,
		p.Name, p.DocType, p.DocNumber, p.Insurer, p.BirthDate,
		p.Sex, p.Phone, p.Email, p.Address, p.EmergencyContact,
		p.Notes, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	return requireOneRow(res)
}

// SetPhotoPath updates only the photo column and updated_at.
func (s *Store) SetPhotoPath(ctx context.Context, id, relPath, updatedAt string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE patients SET photo_path = ?, updated_at = ? WHERE id = ?
	`, relPath, updatedAt, id)
	if err != nil {
		return fmt.Errorf("set photo path: %w", err)
	}
	return requireOneRow(res)
}

// DeletePatient removes the patient row. Its files rows cascade via the
// foreign key; nothing on the filesystem is touched.
func (s *Store) DeletePatient(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM patients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return requireOneRow(res)
}

// GetPatient retrieves a single patient by ID.
// Returns ErrNotFound if no row matches.
func (s *Store) GetPatient(ctx context.Context, id string) (Patient, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+patientFields+`
		FROM patients
		WHERE id = ?
	`, id)

	p, err := scanPatient(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Patient{}, ErrNotFound
	}
	if err != nil {
		return Patient{}, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

// ListPatients returns all patients ordered by most-recently-updated
// first. A non-empty filter (after trimming) restricts the result to rows
// where name, document number, insurer or emergency contact contains the
// filter as a substring. Matching is case-insensitive to the extent of
// SQLite's ASCII lower(); the filter itself is Unicode case-folded so
// accented input at least matches identically-cased stored text.
func (s *Store) ListPatients(ctx context.Context, filter string) ([]Patient, error) {
	filter = strings.TrimSpace(filter)

	var rows *sql.Rows
	var err error
	if filter == "" {
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+patientFields+`
			FROM patients
			ORDER BY updated_at DESC
		`)
	} else {
		needle := cases.Fold().String(filter)
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+patientFields+`
			FROM patients
			WHERE instr(lower(name), ?1) > 0
			   OR instr(lower(doc_number), ?1) > 0
			   OR instr(lower(insurer), ?1) > 0
			   OR instr(lower(emergency_contact), ?1) > 0
			ORDER BY updated_at DESC
		`, needle)
	}
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}
	defer rows.Close()

	var patients []Patient
	for rows.Next() {
		p, err := scanPatient(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}

	// Return empty slice instead of nil
	if patients == nil {
		patients = []Patient{}
	}

	return patients, nil
}

// scanPatient scans one patients row through any Scan-shaped function.
func scanPatient(scan func(dest ...any) error) (Patient, error) {
	var p Patient
	err := scan(
		&p.ID, &p.Name, &p.DocType, &p.DocNumber, &p.Insurer, &p.BirthDate,
		&p.Sex, &p.Phone, &p.Email, &p.Address, &p.EmergencyContact,
		&p.Notes, &p.PhotoPath, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// requireOneRow maps a zero-row write to ErrNotFound.
func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

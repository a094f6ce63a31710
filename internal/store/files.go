package store

import (
	"context"
	"fmt"
)

// Kinds of stored artifact. Every artifact associated with a patient is
// one row in the files table, distinguished only by kind.
const (
	KindPhoto      = "photo"
	KindAttachment = "attachment"
	KindExam       = "exam"
)

// File is one row of the files table: the index entry for a physical file
// living under the patient's folder. Rows are inserted after the bytes
// are on disk and never updated, only cascade-deleted with their patient.
type File struct {
	ID            int64  `json:"id"`
	PatientID     string `json:"patient_id"`
	Kind          string `json:"kind"`
	Filename      string `json:"filename"`
	StoredRelPath string `json:"stored_relpath"`
	CreatedAt     string `json:"created_at"`
	MetaJSON      string `json:"meta_json,omitempty"`
}

// InsertFile persists one index row and returns it with the assigned ID.
func (s *Store) InsertFile(ctx context.Context, f File) (File, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO files (patient_id, kind, filename, stored_relpath, created_at, meta_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, f.PatientID, f.Kind, f.Filename, f.StoredRelPath, f.CreatedAt, f.MetaJSON)
	if err != nil {
		return File{}, fmt.Errorf("insert file: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return File{}, fmt.Errorf("file insert id: %w", err)
	}
	f.ID = id
	return f, nil
}

// ListFiles returns all file rows for a patient, most recent first.
func (s *Store) ListFiles(ctx context.Context, patientID string) ([]File, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, patient_id, kind, filename, stored_relpath, created_at, meta_json
		FROM files
		WHERE patient_id = ?
		ORDER BY created_at DESC, id DESC
	`, patientID)
	if err != nil {
		return nil, fmt.Errorf("query files: %w", err)
	}
	defer rows.Close()

	var files []File
	for rows.Next() {
		var f File
		if err := rows.Scan(
			&f.ID, &f.PatientID, &f.Kind, &f.Filename,
			&f.StoredRelPath, &f.CreatedAt, &f.MetaJSON,
		); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}

	// Return empty slice instead of nil
	if files == nil {
		files = []File{}
	}

	return files, nil
}

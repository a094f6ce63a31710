package records

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caesar-dat-com/NAJU/internal/paths"
	"github.com/caesar-dat-com/NAJU/internal/store"
)

const (
	examPrefix = "emf_"
	examType   = "formal_mental_exam"
)

// examMetaJSON marks the sub-type of every exam index row.
var examMetaJSON = fmt.Sprintf(`{"exam_type":%q}`, examType)

// examDocument is the on-disk wrapper around the caller's payload.
type examDocument struct {
	Type      string          `json:"type"`
	PatientID string          `json:"patient_id"`
	CreatedAt string          `json:"created_at"`
	Data      json.RawMessage `json:"data"`
}

// CreateExam serializes the payload to a pretty-printed timestamped file
// in the patient's exams subfolder and indexes it like any other stored
// file. The payload is a pass-through blob: its internal shape is never
// inspected or validated here.
func (s *Service) CreateExam(ctx context.Context, patientID string, payload json.RawMessage) (FileRecord, error) {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	st, err := s.open()
	if err != nil {
		return FileRecord{}, err
	}
	defer st.Close()

	if _, err := st.GetPatient(ctx, patientID); err != nil {
		return FileRecord{}, err
	}

	if err := paths.EnsurePatientDirs(s.Base, patientID); err != nil {
		return FileRecord{}, err
	}

	now := s.rowStamp()
	doc, err := json.MarshalIndent(examDocument{
		Type:      examType,
		PatientID: patientID,
		CreatedAt: now,
		Data:      payload,
	}, "", "  ")
	if err != nil {
		return FileRecord{}, fmt.Errorf("serialize exam: %w", err)
	}
	doc = append(doc, '\n')

	destName := fmt.Sprintf("%s%s.json", examPrefix, s.fileStamp())
	destPath := uniqueDestPath(paths.PatientSubdir(s.Base, patientID, paths.ExamsSubdir), destName)
	destName = filepath.Base(destPath)

	if err := os.WriteFile(destPath, doc, 0o644); err != nil {
		return FileRecord{}, fmt.Errorf("write exam file: %w", err)
	}

	relPath, err := paths.ToRelative(s.Base, destPath)
	if err != nil {
		return FileRecord{}, err
	}

	row, err := st.InsertFile(ctx, store.File{
		PatientID:     patientID,
		Kind:          store.KindExam,
		Filename:      destName,
		StoredRelPath: relPath,
		CreatedAt:     now,
		MetaJSON:      examMetaJSON,
	})
	if err != nil {
		return FileRecord{}, err
	}

	return s.annotateFile(row), nil
}

package records

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caesar-dat-com/NAJU/internal/paths"
	"github.com/caesar-dat-com/NAJU/internal/store"
)

// Import copies each existing source file into the patient's files
// subfolder and indexes one row per copy. Sources that do not exist are
// silently skipped: partial success is the normal case for bulk import.
// The returned records cover only the successful copies, in the same
// relative order as the sources. A copy or index failure aborts the whole
// call; rows are written only after their bytes are on disk.
func (s *Service) Import(ctx context.Context, patientID string, sourcePaths []string) ([]FileRecord, error) {
	st, err := s.open()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	if _, err := st.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}

	if err := paths.EnsurePatientDirs(s.Base, patientID); err != nil {
		return nil, err
	}

	destDir := paths.PatientSubdir(s.Base, patientID, paths.FilesSubdir)
	stamp := s.fileStamp()
	now := s.rowStamp()

	imported := make([]FileRecord, 0, len(sourcePaths))
	for _, src := range sourcePaths {
		if _, err := os.Stat(src); err != nil {
			continue
		}

		safe := sanitizeFilename(filepath.Base(src))
		destPath := uniqueDestPath(destDir, fmt.Sprintf("%s_%s", stamp, safe))

		if err := copyFile(src, destPath); err != nil {
			return nil, err
		}

		relPath, err := paths.ToRelative(s.Base, destPath)
		if err != nil {
			return nil, err
		}

		row, err := st.InsertFile(ctx, store.File{
			PatientID:     patientID,
			Kind:          store.KindAttachment,
			Filename:      safe,
			StoredRelPath: relPath,
			CreatedAt:     now,
		})
		if err != nil {
			return nil, err
		}
		imported = append(imported, s.annotateFile(row))
	}

	return imported, nil
}

// Files returns all stored files for a patient, most recent first, each
// annotated with its absolute path.
func (s *Service) Files(ctx context.Context, patientID string) ([]FileRecord, error) {
	st, err := s.open()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	rows, err := st.ListFiles(ctx, patientID)
	if err != nil {
		return nil, err
	}

	files := make([]FileRecord, 0, len(rows))
	for _, row := range rows {
		files = append(files, s.annotateFile(row))
	}
	return files, nil
}

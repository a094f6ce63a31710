package records

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caesar-dat-com/NAJU/internal/paths"
	"github.com/caesar-dat-com/NAJU/internal/store"
)

const (
	photoPrefix     = "profile_"
	defaultPhotoExt = "png"
)

// SetPhoto copies the source image into the patient's profile subfolder
// under a generated unique name, updates the photo column, and indexes the
// copy as a file row. The row update happens only after a successful copy,
// so a failed copy leaves the record untouched. The index row is a
// best-effort secondary write: its failure does not fail the operation.
func (s *Service) SetPhoto(ctx context.Context, patientID, sourcePath string) (Patient, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return Patient{}, newValidationError("photo", "photo source file does not exist: %s", sourcePath)
	}

	st, err := s.open()
	if err != nil {
		return Patient{}, err
	}
	defer st.Close()

	if _, err := st.GetPatient(ctx, patientID); err != nil {
		return Patient{}, err
	}

	if err := paths.EnsurePatientDirs(s.Base, patientID); err != nil {
		return Patient{}, err
	}

	ext := strings.TrimPrefix(filepath.Ext(sourcePath), ".")
	if ext == "" {
		ext = defaultPhotoExt
	}
	destName := fmt.Sprintf("%s%s.%s", photoPrefix, s.fileStamp(), ext)
	destPath := uniqueDestPath(paths.PatientSubdir(s.Base, patientID, paths.ProfileSubdir), destName)
	destName = filepath.Base(destPath)

	if err := copyFile(sourcePath, destPath); err != nil {
		return Patient{}, err
	}

	relPath, err := paths.ToRelative(s.Base, destPath)
	if err != nil {
		return Patient{}, err
	}

	now := s.rowStamp()
	if err := st.SetPhotoPath(ctx, patientID, relPath, now); err != nil {
		return Patient{}, err
	}

	bestEffort("index photo as file row", func() error {
		_, err := st.InsertFile(ctx, store.File{
			PatientID:     patientID,
			Kind:          store.KindPhoto,
			Filename:      destName,
			StoredRelPath: relPath,
			CreatedAt:     now,
		})
		return err
	})

	row, err := st.GetPatient(ctx, patientID)
	if err != nil {
		return Patient{}, err
	}
	return s.annotate(row), nil
}

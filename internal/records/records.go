package records

import (
	"time"

	"github.com/google/uuid"

	"github.com/caesar-dat-com/NAJU/internal/paths"
	"github.com/caesar-dat-com/NAJU/internal/store"
)

// Timestamp formats. Row stamps are human-readable and sortable; file
// stamps additionally avoid characters unsafe in filenames.
const (
	rowStampFormat  = "2006-01-02 15:04:05"
	fileStampFormat = "20060102_150405"
)

// Service implements the command-level operations over the patient data
// store: it joins database rows and filesystem artifacts under one base
// directory. Following the single-user model, every operation opens its
// own database connection and closes it on completion; no state survives
// between commands outside the database file and the filesystem.
type Service struct {
	// Base is the resolved writable data directory.
	Base string

	// Clock allows overriding the timestamp source (for testing).
	// If nil, defaults to time.Now.
	Clock func() time.Time

	// NewID allows overriding patient ID generation (for testing).
	// If nil, defaults to random UUIDs.
	NewID func() string
}

// New creates a Service rooted at the given base directory.
func New(base string) *Service {
	return &Service{Base: base}
}

// Patient is a stored patient record annotated with the absolute photo
// path resolved against the current base directory (empty if none).
type Patient struct {
	store.Patient
	PhotoAbsPath string `json:"photo_abs_path,omitempty"`
}

// FileRecord is a stored file index row annotated with the absolute path
// of the physical file resolved against the current base directory.
type FileRecord struct {
	store.File
	AbsPath string `json:"abs_path"`
}

// PatientInput carries the full set of mutable patient fields. Updates
// replace all of them unconditionally; callers resend the complete set.
type PatientInput struct {
	Name             string `json:"name"`
	DocType          string `json:"doc_type"`
	DocNumber        string `json:"doc_number"`
	Insurer          string `json:"insurer"`
	BirthDate        string `json:"birth_date"`
	Sex              string `json:"sex"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
	Notes            string `json:"notes"`
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) rowStamp() string {
	return s.now().Format(rowStampFormat)
}

func (s *Service) fileStamp() string {
	return s.now().Format(fileStampFormat)
}

// open opens the store for the duration of one operation.
func (s *Service) open() (*store.Store, error) {
	return store.Open(paths.DBPath(s.Base))
}

// annotate resolves the base-relative photo path for the caller's
// convenience; rows themselves never hold absolute paths.
func (s *Service) annotate(p store.Patient) Patient {
	out := Patient{Patient: p}
	if p.PhotoPath != "" {
		out.PhotoAbsPath = paths.ToAbsolute(s.Base, p.PhotoPath)
	}
	return out
}

func (s *Service) annotateFile(f store.File) FileRecord {
	return FileRecord{
		File:    f,
		AbsPath: paths.ToAbsolute(s.Base, f.StoredRelPath),
	}
}

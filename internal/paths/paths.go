package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppDir is the fixed application subfolder created under whichever
	// platform directory the resolver settles on.
	AppDir = "NAJU"

	// DBFile is the name of the SQLite database inside the base directory.
	DBFile = "naju.sqlite"

	// PatientsDir holds one subfolder per patient under the base directory.
	PatientsDir = "patients"
)

// Per-patient subfolders. Attachments, exam reports and profile photos
// are kept apart so the folder stays browsable by hand.
const (
	FilesSubdir   = "files"
	ExamsSubdir   = "exams"
	ProfileSubdir = "profile"
)

// Resolve returns a writable base directory for application data.
//
// Strategies are tried in strict priority order:
//  1. the platform per-application config directory
//  2. the platform per-user cache directory
//  3. the user home directory
//
// Each candidate is joined with AppDir, created if missing, and probed for
// writability. The first usable candidate wins. Resolve fails only when
// every strategy is unavailable, which means the environment cannot host
// the store at all.
func Resolve() (string, error) {
	strategies := []func() (string, error){
		os.UserConfigDir,
		os.UserCacheDir,
		os.UserHomeDir,
	}

	var lastErr error
	for _, strategy := range strategies {
		dir, err := strategy()
		if err != nil {
			lastErr = err
			continue
		}
		base := filepath.Join(dir, AppDir)
		if err := ensureWritableDir(base); err != nil {
			lastErr = err
			continue
		}
		return base, nil
	}

	return "", fmt.Errorf("no writable data directory available: %w", lastErr)
}

// ResolveOrOverride returns the override directory when non-empty
// (created if missing), otherwise falls back to Resolve. The override is
// how the application shell hands the core a writable data directory.
func ResolveOrOverride(override string) (string, error) {
	if override == "" {
		return Resolve()
	}
	abs, err := filepath.Abs(override)
	if err != nil {
		return "", fmt.Errorf("resolve base override: %w", err)
	}
	if err := ensureWritableDir(abs); err != nil {
		return "", fmt.Errorf("base override not usable: %w", err)
	}
	return abs, nil
}

// DBPath returns the database file path under the base directory.
func DBPath(base string) string {
	return filepath.Join(base, DBFile)
}

// PatientDir returns the folder for a single patient.
func PatientDir(base, patientID string) string {
	return filepath.Join(base, PatientsDir, patientID)
}

// PatientSubdir returns one of the three managed subfolders of a patient.
func PatientSubdir(base, patientID, subdir string) string {
	return filepath.Join(PatientDir(base, patientID), subdir)
}

// EnsurePatientDirs creates the patient folder and its three subfolders.
// It runs on every access, not just at creation: the data directory may
// have been wiped or relocated externally and must be repaired in place.
// Creation is idempotent.
func EnsurePatientDirs(base, patientID string) error {
	for _, subdir := range []string{FilesSubdir, ExamsSubdir, ProfileSubdir} {
		dir := PatientSubdir(base, patientID, subdir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create patient dir %s: %w", dir, err)
		}
	}
	return nil
}

// ensureWritableDir creates dir if missing and verifies it accepts writes
// by creating and removing a probe file.
func ensureWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("directory %s not writable: %w", dir, err)
	}
	name := probe.Name()
	probe.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("clean probe file in %s: %w", dir, err)
	}
	return nil
}

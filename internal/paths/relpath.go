package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stored rows never contain absolute paths. Every file reference is kept
// base-relative with forward slashes as the single canonical separator, so
// the data directory can move (OS upgrades, profile relocation, a copied
// backup) without invalidating a single row.

// ToRelative converts an absolute path under base into its canonical
// base-relative form. It fails when abs does not live under base; managed
// files always do, so hitting that error means the configuration is
// inconsistent.
func ToRelative(base, abs string) (string, error) {
	cleanBase := filepath.Clean(base)
	cleanAbs := filepath.Clean(abs)

	rel, err := filepath.Rel(cleanBase, cleanAbs)
	if err != nil {
		return "", fmt.Errorf("path %s not relative to base %s: %w", abs, base, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes base %s", abs, base)
	}
	return filepath.ToSlash(rel), nil
}

// ToAbsolute is the pure inverse of ToRelative: it joins a stored relative
// path back onto the current base. Any relative string is appendable, so
// ToAbsolute never fails.
func ToAbsolute(base, rel string) string {
	return filepath.Join(base, filepath.FromSlash(rel))
}

package records

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// uniqueDestPath returns dir/name, renamed with a numeric suffix if a
// file already occupies it: name.ext, name_2.ext, name_3.ext, ...
// Timestamped names collide whenever two artifacts land in the same
// second, or when one bulk import carries two sources with the same
// basename; an existing file must never be overwritten.
func uniqueDestPath(dir, name string) string {
	path := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 2; ; n++ {
		if _, err := os.Stat(path); err != nil {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
	}
}

// copyFile copies src to dest, creating or truncating dest. Copies run to
// completion or failure; there is no partial-progress recovery, the caller
// decides whether a failure aborts its operation.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("copy to %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dest, err)
	}
	return nil
}

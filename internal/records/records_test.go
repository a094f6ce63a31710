package records

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caesar-dat-com/NAJU/internal/testutil"
)

// newTestService returns a Service over a fresh temp base directory with a
// deterministic clock and ID sequence.
func newTestService(t *testing.T) *Service {
	t.Helper()

	svc := New(t.TempDir())

	clock := testutil.NewSteppedClock(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC), time.Second)
	svc.Clock = clock.Now

	n := 0
	svc.NewID = func() string {
		n++
		return fmt.Sprintf("patient-%04d", n)
	}

	return svc
}

// writeSourceFile creates a file outside the base directory to act as an
// externally supplied import source.
func writeSourceFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source file: %v", err)
	}
	return path
}

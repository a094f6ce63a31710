package opener

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCommandPerPlatform(t *testing.T) {
	cases := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"xdg-open", "/tmp/x.pdf"}},
		{"darwin", []string{"open", "/tmp/x.pdf"}},
		{"windows", []string{"cmd", "/c", "start", "", "/tmp/x.pdf"}},
	}
	for _, tc := range cases {
		got, err := command(tc.goos, "/tmp/x.pdf")
		if err != nil {
			t.Fatalf("command(%s): %v", tc.goos, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("command(%s) = %v, want %v", tc.goos, got, tc.want)
		}
	}
}

func TestCommandUnsupportedPlatform(t *testing.T) {
	if _, err := command("plan9", "/tmp/x.pdf"); err == nil {
		t.Fatal("expected error for unsupported platform")
	}
}

func TestOpenMissingPath(t *testing.T) {
	err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not-exist error, got %v", err)
	}
}

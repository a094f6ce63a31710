// Package opener hands paths to the operating system's default handler,
// so stored attachments and patient folders open in whatever application
// the user has associated with them.
package opener

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// command returns the launcher argv for the given platform.
func command(goos, path string) ([]string, error) {
	switch goos {
	case "linux":
		return []string{"xdg-open", path}, nil
	case "darwin":
		return []string{"open", path}, nil
	case "windows":
		// An empty first argument keeps start from treating the path as
		// a window title.
		return []string{"cmd", "/c", "start", "", path}, nil
	default:
		return nil, fmt.Errorf("no file opener available on %s", goos)
	}
}

// Open asks the OS to open path with its default application. The path
// must exist; the launcher process is started and not waited on.
func Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	argv, err := command(runtime.GOOS, path)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", argv[0], err)
	}

	// Detach: the handler outlives us and its exit status is not ours to
	// report.
	go func() { _ = cmd.Wait() }()
	return nil
}

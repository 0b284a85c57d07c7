package deps

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ResolveFFprobePath returns the ffprobe executable to run. Explicit paths are
// returned unchanged; bare names are resolved from PATH. When nothing
// resolves, the configured value (or "ffprobe") is returned so callers can
// report it.
func ResolveFFprobePath(configured string) string {
	name := strings.TrimSpace(configured)
	if name == "" {
		name = "ffprobe"
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	if resolved, err := exec.LookPath(name); err == nil {
		return resolved
	}
	return name
}

// FFprobeVersion returns the first line of `ffprobe -version`.
func FFprobeVersion(ctx context.Context, binary string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, binary, "-hide_banner", "-version").Output()
	if err != nil {
		return "", fmt.Errorf("ffprobe -version: %w", err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	return "", errors.New("ffprobe -version: empty output")
}

// IsExecutable reports whether path is a regular file with an execute bit set.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

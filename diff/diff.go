package diff

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoInput is returned when no file is given and stdin is an interactive
// terminal, so there is no diff to read.
var ErrNoInput = errors.New("no diff provided")

// ReadInput returns the diff text from path, or from in when no path is
// given. interactive reports whether in is attached to a terminal; reading
// from an interactive stdin is refused instead of blocking forever.
func ReadInput(path string, in io.Reader, interactive bool) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading diff file %q: %w", path, err)
		}
		return string(data), nil
	}

	if interactive {
		return "", ErrNoInput
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// Sanitize filters binary-file notices out of a diff and caps it at maxLines.
//
// The binary filter is deliberately coarse: once a line contains
// "Binary files" or "differ", that line and every line after it are dropped.
// Truncation appends a single synthetic notice naming the cap.
func Sanitize(text string, maxLines int) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	filtered := make([]string, 0, len(lines))
	skipBinary := false
	for _, line := range lines {
		if strings.Contains(line, "Binary files") || strings.Contains(line, "differ") {
			skipBinary = true
			continue
		}
		if !skipBinary {
			filtered = append(filtered, line)
		}
	}

	if len(filtered) > maxLines {
		filtered = filtered[:maxLines]
		filtered = append(filtered, fmt.Sprintf("\n... (truncated, showing first %d lines)", maxLines))
	}

	return strings.Join(filtered, "\n")
}

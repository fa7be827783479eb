package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API)
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// saves downloads as plain text files in Dir
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(filename string, content []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil { //nolint:gosec // G306: user-visible download
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}

	return path, nil
}

package local

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/sentiment-setup/internal/ports"
)

const (
	dirMode         = 0o700
	tempFilePattern = ".%s-*.tmp"
)

type FileSystem struct{}

var _ ports.FileSystem = FileSystem{}

func New() FileSystem {
	return FileSystem{}
}

func (FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("stat %q: %w", path, err)
}

// WriteFileAtomic writes to a temp file in the target directory and renames it
// over path, so readers never observe a partially written file.
func (FileSystem) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create directory for %q: %w", path, err)
	}

	tempFile, err := os.CreateTemp(dir, fmt.Sprintf(tempFilePattern, filepath.Base(path)))
	if err != nil {
		return fmt.Errorf("create temp file for %q: %w", path, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp file for %q: %w", path, err)
	}

	if err := tempFile.Chmod(perm); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp file for %q: %w", path, err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp file for %q: %w", path, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file for %q: %w", path, err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace %q: %w", path, err)
	}

	cleanup = false

	return nil
}

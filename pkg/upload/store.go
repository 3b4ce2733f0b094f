package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize caps resume uploads at 5MB.
const MaxFileSize = 5 * 1024 * 1024

var (
	ErrTooLarge        = errors.New("file exceeds the 5MB size limit")
	ErrUnsupportedType = errors.New("unsupported file type, only PDF, DOC, DOCX and TXT are allowed")
	ErrNotFound        = errors.New("file not found")
	ErrBadName         = errors.New("invalid file name")
)

// Store keeps uploaded resumes on local disk. Stored names are prefixed
// with a UUID so originals can collide freely.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save validates the payload and writes it to disk. Validation failures
// happen before any bytes are written.
func (s *Store) Save(originalName string, r io.Reader, declaredSize int64, declaredMIME string) (string, error) {
	if declaredSize > MaxFileSize {
		return "", ErrTooLarge
	}

	// Read one byte past the cap so an understated Content-Length still trips it.
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > MaxFileSize {
		return "", ErrTooLarge
	}

	if err := ValidateFile(originalName, data, declaredMIME); err != nil {
		return "", err
	}

	base := sanitizeName(originalName)
	if base == "" {
		return "", ErrBadName
	}

	storedName := uuid.NewString() + "-" + base
	if err := os.WriteFile(filepath.Join(s.dir, storedName), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return storedName, nil
}

// Delete removes a stored file by its stored name.
func (s *Store) Delete(name string) error {
	clean := sanitizeName(name)
	if clean == "" || clean != name {
		return ErrBadName
	}

	path := filepath.Join(s.dir, clean)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return os.Remove(path)
}

// sanitizeName strips any path components, leaving a bare file name.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == ".." || base == "/" {
		return ""
	}
	return base
}

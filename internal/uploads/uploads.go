// Package uploads is the single intake point for user-submitted files.
// Every file is validated before anything touches the filesystem, then
// written under a purpose-specific directory with a generated name, so a
// rejected submission never leaves a partial file behind.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkarpov/hirehub/internal/apperr"
)

// Purpose classifies what the file is for; it selects both the validation
// rule and the storage subdirectory.
type Purpose string

const (
	PurposeAvatar Purpose = "avatar"
	PurposeResume Purpose = "resume"
)

// MaxFileSize is the ceiling for any upload.
const MaxFileSize = 5 << 20 // 5 MiB

// Store writes accepted uploads under BaseDir. Subdirectories are created
// on demand.
type Store struct {
	BaseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{BaseDir: baseDir}
}

// Save validates the file against its purpose and persists it. The returned
// path is relative to BaseDir and is what callers store on their records.
// Generated names embed a millisecond timestamp and a random suffix, so two
// concurrent saves cannot collide without engineering it deliberately.
func (s *Store) Save(fh *multipart.FileHeader, purpose Purpose) (string, error) {
	if err := validate(fh, purpose); err != nil {
		return "", err
	}

	dir := filepath.Join(s.BaseDir, string(purpose)+"s")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s directory: %w", purpose, err)
	}

	name := fmt.Sprintf("%s-%d-%s%s",
		purpose,
		time.Now().UnixMilli(),
		strings.Split(uuid.NewString(), "-")[0],
		filepath.Ext(fh.Filename),
	)

	if err := writeFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(string(purpose)+"s", name)), nil
}

// Remove deletes a previously stored file. Callers use it to undo an upload
// when the record write that should have referenced it fails.
func (s *Store) Remove(relPath string) error {
	return os.Remove(filepath.Join(s.BaseDir, filepath.FromSlash(relPath)))
}

func validate(fh *multipart.FileHeader, purpose Purpose) error {
	if fh.Size > MaxFileSize {
		return fmt.Errorf("%w: file exceeds the 5 MiB limit", apperr.ErrUploadRejected)
	}

	contentType := fh.Header.Get("Content-Type")
	switch purpose {
	case PurposeAvatar:
		if !strings.HasPrefix(contentType, "image/") {
			return fmt.Errorf("%w: avatar must be an image, got %q", apperr.ErrUploadRejected, contentType)
		}
	case PurposeResume:
		if contentType != "application/pdf" {
			return fmt.Errorf("%w: resume must be a PDF, got %q", apperr.ErrUploadRejected, contentType)
		}
	default:
		return fmt.Errorf("%w: unknown upload purpose %q", apperr.ErrUploadRejected, purpose)
	}
	return nil
}

// writeFile copies the upload to dst, removing dst if the copy fails partway.
func writeFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/safety-hub/internal/logger"
)

// ErrUnsupportedFileType is returned for uploads with a disallowed extension.
var ErrUnsupportedFileType = errors.New("unsupported file type")

var allowedImageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// UploadRepository stores uploaded images on the local filesystem.
type UploadRepository struct {
	dir string
}

func NewUploadRepository(dir string) (*UploadRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadRepository{dir: dir}, nil
}

// Save writes the content under a fresh name that keeps the original extension
// and returns that name.
func (r *UploadRepository) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", ErrUnsupportedFileType
	}

	name := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(r.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, content)
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	logger.Log.Infow("upload saved", "name", name, "size", n)
	return name, nil
}

// Path resolves a stored name to a file path, rejecting anything outside the upload dir.
func (r *UploadRepository) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", os.ErrNotExist
	}
	p := filepath.Join(r.dir, name)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

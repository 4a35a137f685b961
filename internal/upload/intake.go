package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
)

// Stored is a saved upload owned by a single pipeline run.
type Stored struct {
	Path        string
	Filename    string
	ContentType string

	logger logger.Logger
}

// Save writes req.Audio to <dir>/<token>_<name>.
func (i *implIntake) Save(ctx context.Context, req Request) (*Stored, error) {
	if req.Audio == nil {
		return nil, fmt.Errorf("empty audio payload")
	}
	if err := os.MkdirAll(i.dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := uniqueName(req.Filename)
	path := filepath.Join(i.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	n, err := io.Copy(f, req.Audio)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	i.logger.Debug(ctx, "Saved upload %s (%d bytes)", path, n)

	return &Stored{
		Path:        path,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		logger:      i.logger,
	}, nil
}

// Release removes the stored file. Failures are logged, never returned.
func (s *Stored) Release(ctx context.Context) {
	if s == nil {
		return
	}
	if err := os.Remove(s.Path); err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn(ctx, "Failed to cleanup upload %s: %v", s.Path, err)
		}
		return
	}
	s.logger.Debug(ctx, "Cleaned up upload: %s", s.Path)
}

// uniqueName prefixes the base of the client filename with a fresh token.
// Directory components are dropped so the file always lands in the upload dir.
func uniqueName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		base = "audio"
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + base
}

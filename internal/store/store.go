package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/report"
)

const fileExt = ".md"

var reID = regexp.MustCompile(`^[0-9a-f]{32}$`)

func (s *implStore) path(id string) (string, error) {
	if !reID.MatchString(id) {
		return "", fmt.Errorf("invalid report id %q", id)
	}
	return filepath.Join(s.dir, id+fileExt), nil
}

func (s *implStore) Put(ctx context.Context, a report.Artifact) error {
	path, err := s.path(a.ID)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	_, err = f.WriteString(a.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write report file: %w", err)
	}

	s.logger.Debug(ctx, "Stored report %s (%d bytes)", path, len(a.Body))
	return nil
}

func (s *implStore) Take(ctx context.Context, id string) ([]byte, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read report file: %w", err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn(ctx, "Failed to remove served report %s: %v", path, err)
	}
	return data, nil
}

func (s *implStore) Sweep(ctx context.Context, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("list report dir: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		if err := os.Remove(path); err != nil {
			s.logger.Warn(ctx, "Failed to sweep report %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info(ctx, "Swept %d stale reports from %s", removed, s.dir)
	}
	return removed, nil
}

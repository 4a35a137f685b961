package store

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
)

type implStore struct {
	dir    string
	logger logger.Logger
}

// New creates a filesystem Store rooted at dir, creating it if needed.
func New(dir string, log logger.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &implStore{
		dir:    dir,
		logger: log,
	}, nil
}

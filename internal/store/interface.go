package store

import (
	"context"
	"errors"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/report"
)

// ErrNotFound is returned by Take for unknown or already consumed ids.
var ErrNotFound = errors.New("report not found")

// Store is scratch space for rendered reports. Every report is written once
// and read once.
type Store interface {
	Put(ctx context.Context, a report.Artifact) error
	// Take returns the report body and removes it from the store.
	Take(ctx context.Context, id string) ([]byte, error)
	// Sweep removes reports older than maxAge and returns how many it removed.
	Sweep(ctx context.Context, maxAge time.Duration) (int, error)
}

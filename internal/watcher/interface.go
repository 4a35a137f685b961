package watcher

import "context"

// Watcher monitors a directory for new recordings.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one newly created recording.
type EventHandler func(ctx context.Context, filePath string) error

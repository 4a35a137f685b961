package transcriber

import (
	"sync"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
)

type slot struct {
	mu    sync.Mutex
	model Model
}

type implTranscriber struct {
	load   Loader
	logger logger.Logger

	mu    sync.Mutex
	slots map[string]*slot
}

// New creates a Transcriber that loads each model size on first use and
// reuses it for every later call. Concurrent first calls share one load.
func New(load Loader, log logger.Logger) Transcriber {
	return &implTranscriber{
		load:   load,
		logger: log,
		slots:  make(map[string]*slot),
	}
}

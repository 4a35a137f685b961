package processor

import (
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-report/internal/store"
)

// Options configures where reports and processed recordings end up.
type Options struct {
	OutputDir   string
	ArchivedDir string
	// Docx also writes a .docx copy of every report.
	Docx bool
}

type implProcessor struct {
	pipeline pipeline.Pipeline
	store    store.Store
	opts     Options
	logger   logger.Logger
}

// New creates a new Processor instance
func New(p pipeline.Pipeline, s store.Store, opts Options, log logger.Logger) Processor {
	return &implProcessor{
		pipeline: p,
		store:    s,
		opts:     opts,
		logger:   log,
	}
}

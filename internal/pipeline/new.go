package pipeline

import (
	"github.com/nguyentantai21042004/meeting-report/internal/extractor"
	"github.com/nguyentantai21042004/meeting-report/internal/locale"
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/report"
	"github.com/nguyentantai21042004/meeting-report/internal/store"
	"github.com/nguyentantai21042004/meeting-report/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-report/internal/upload"
)

// Deps are the collaborators of a Pipeline.
type Deps struct {
	Intake      upload.Intake
	Transcriber transcriber.Transcriber
	Extractor   extractor.Extractor
	Locales     *locale.Registry
	Store       store.Store
	Logger      logger.Logger

	// ModelSize is passed to the transcriber, e.g. "small".
	ModelSize string
	// MaxConcurrent bounds concurrent transcription and extraction calls.
	MaxConcurrent int
}

type implPipeline struct {
	intake      upload.Intake
	transcriber transcriber.Transcriber
	extractor   extractor.Extractor
	locales     *locale.Registry
	store       store.Store
	logger      logger.Logger
	modelSize   string
	pool        *pool
	newID       func() string
}

// New creates a Pipeline.
func New(d Deps) Pipeline {
	modelSize := d.ModelSize
	if modelSize == "" {
		modelSize = "small"
	}
	return &implPipeline{
		intake:      d.Intake,
		transcriber: d.Transcriber,
		extractor:   d.Extractor,
		locales:     d.Locales,
		store:       d.Store,
		logger:      d.Logger,
		modelSize:   modelSize,
		pool:        newPool(d.MaxConcurrent),
		newID:       report.NewID,
	}
}

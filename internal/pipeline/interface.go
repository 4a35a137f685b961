package pipeline

import (
	"context"
	"io"

	"github.com/nguyentantai21042004/meeting-report/internal/report"
)

// Request is the externally supplied input of one run.
type Request struct {
	Filename    string
	ContentType string
	Audio       io.Reader
}

// Pipeline turns one recording into one stored report.
type Pipeline interface {
	// Run returns the stored artifact, or a *StageError naming the stage
	// that failed. Failed runs leave nothing behind.
	Run(ctx context.Context, req Request) (report.Artifact, error)
}

package upload

import (
	"context"
	"io"
)

// Request is an uploaded audio payload.
type Request struct {
	Filename    string
	ContentType string
	Audio       io.Reader
}

// Intake persists uploads to transient storage.
type Intake interface {
	// Save writes the audio under a collision-free name. The caller must
	// Release the returned file once it is no longer needed.
	Save(ctx context.Context, req Request) (*Stored, error)
}

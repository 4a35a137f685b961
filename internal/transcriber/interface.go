package transcriber

import (
	"context"
	"time"
)

// Segment is one timed piece of a transcription.
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Result is the output of a transcription run. Language is a lowercase
// ISO-639-1 code, or empty when the backend could not detect one.
type Result struct {
	Text     string
	Language string
	Segments []Segment
}

// Model is a loaded speech-to-text model.
type Model interface {
	Transcribe(ctx context.Context, audioPath string) (Result, error)
}

// Loader constructs the model for a size such as "small" or "medium".
type Loader func(ctx context.Context, size string) (Model, error)

// Transcriber converts stored audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, modelSize string) (Result, error)
}

package executor

import "context"

// Executor runs external tools such as ffmpeg and whisper.cpp.
type Executor interface {
	// Execute runs name with args and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// LookPath resolves name to an executable path.
	LookPath(name string) (string, error)
}

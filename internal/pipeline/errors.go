package pipeline

import (
	"errors"
	"fmt"
)

// Stage names a step of the pipeline that can fail.
type Stage string

const (
	StageSave       Stage = "save"
	StageTranscribe Stage = "transcribe"
	StageExtract    Stage = "extract"
	StageRender     Stage = "render"
	StageStore      Stage = "store"
)

// Failure kinds, matchable with errors.Is on a *StageError.
var (
	ErrStorage       = errors.New("storage error")
	ErrTranscription = errors.New("transcription error")
	ErrExtraction    = errors.New("extraction error")
	ErrRendering     = errors.New("rendering error")
)

// StageError is the terminal Failed(stage) outcome of a run.
type StageError struct {
	Stage Stage
	Cause error
}

func (e *StageError) Error() string {
	return e.Detail()
}

func (e *StageError) Unwrap() []error {
	return []error{e.kind(), e.Cause}
}

func (e *StageError) kind() error {
	switch e.Stage {
	case StageSave, StageStore:
		return ErrStorage
	case StageTranscribe:
		return ErrTranscription
	case StageExtract:
		return ErrExtraction
	default:
		return ErrRendering
	}
}

// Detail is the human readable message shown to callers.
func (e *StageError) Detail() string {
	switch e.Stage {
	case StageSave:
		return fmt.Sprintf("Failed to save upload: %v", e.Cause)
	case StageTranscribe:
		return fmt.Sprintf("Transcription failed: %v", e.Cause)
	case StageExtract:
		return fmt.Sprintf("LLM extraction failed: %v", e.Cause)
	case StageStore:
		return fmt.Sprintf("Failed to store report: %v", e.Cause)
	default:
		return fmt.Sprintf("Report rendering failed: %v", e.Cause)
	}
}

func fail(stage Stage, cause error) *StageError {
	return &StageError{Stage: stage, Cause: cause}
}

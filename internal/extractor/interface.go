package extractor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/meeting-report/internal/locale"
)

// ErrEmptyResponse is returned when the model answers with nothing usable.
var ErrEmptyResponse = errors.New("LLM returned empty response")

// Extractor pulls structured meeting data out of a transcript. The returned
// mapping is keyed by the locale-native field names of lang.
type Extractor interface {
	Extract(ctx context.Context, transcript string, lang locale.Code) (map[string]any, error)
}

// ActionItem is a single commitment made during the meeting.
type ActionItem struct {
	Owner string
	Task  string
}

// Result is the parsed extraction. Empty strings mean the field was absent.
type Result struct {
	Summary     string
	Topics      []string
	ActionItems []ActionItem
}

package pipeline

// State is a position in the per-request state machine.
type State int

const (
	Received State = iota
	Saved
	Transcribed
	LanguageResolved
	Extracted
	Rendered
	Completed
	Failed
)

var stateNames = [...]string{
	Received:         "received",
	Saved:            "saved",
	Transcribed:      "transcribed",
	LanguageResolved: "language_resolved",
	Extracted:        "extracted",
	Rendered:         "rendered",
	Completed:        "completed",
	Failed:           "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

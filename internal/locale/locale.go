// Package locale holds the per-language rendering configuration used to build
// reports and to read locale-keyed extraction output.
package locale

// Code is a supported language code.
type Code string

const (
	English Code = "en"
	French  Code = "fr"

	// Baseline is used whenever a detected language is not supported.
	Baseline = English
)

// Headings are the four section titles of a report, in rendering order.
type Headings struct {
	Summary    string
	Topics     string
	Actions    string
	Transcript string
}

// Keys are the field names the extraction output is indexed by.
type Keys struct {
	Summary string
	Topics  string
	Actions string
	Owner   string
	Task    string
}

// Config is the complete rendering configuration for one language.
type Config struct {
	Code           Code
	FilenamePrefix string
	Title          string
	Headings       Headings
	Keys           Keys
}

var builtin = []Config{
	{
		Code:           English,
		FilenamePrefix: "report",
		Title:          "Audio Analysis Report",
		Headings: Headings{
			Summary:    "Summary",
			Topics:     "Topics Discussed",
			Actions:    "Action Items",
			Transcript: "Full Transcript",
		},
		Keys: Keys{
			Summary: "summary",
			Topics:  "topics",
			Actions: "action_items",
			Owner:   "owner",
			Task:    "task",
		},
	},
	{
		Code:           French,
		FilenamePrefix: "rapport",
		Title:          "Rapport d'analyse audio",
		Headings: Headings{
			Summary:    "Résumé",
			Topics:     "Sujets abordés",
			Actions:    "Actions à entreprendre",
			Transcript: "Transcription complète",
		},
		Keys: Keys{
			Summary: "résumé",
			Topics:  "sujets",
			Actions: "actions",
			Owner:   "responsable",
			Task:    "tâche",
		},
	},
}

// Builtin returns a copy of the built-in language table.
func Builtin() []Config {
	out := make([]Config, len(builtin))
	copy(out, builtin)
	return out
}

package report

import (
	"strings"

	"github.com/nguyentantai21042004/meeting-report/internal/extractor"
	"github.com/nguyentantai21042004/meeting-report/internal/locale"
)

const (
	missingSummary = "N/A"
	missingOwner   = "Unknown"
	emptyMarker    = "_None_"
)

// Input is everything a report is built from.
type Input struct {
	ID         string
	Locale     locale.Config
	Extraction extractor.Result
	Transcript string
}

// Render builds the Markdown report. Section order is fixed; only the
// heading and label text comes from the locale. Transcript and model text
// are embedded verbatim, without any Markdown escaping.
func Render(in Input) string {
	cfg := in.Locale
	var b strings.Builder

	b.WriteString("# " + cfg.Title + " - " + in.ID + "\n\n")

	summary := in.Extraction.Summary
	if summary == "" {
		summary = missingSummary
	}
	b.WriteString("## " + cfg.Headings.Summary + "\n\n" + summary + "\n\n")

	b.WriteString("## " + cfg.Headings.Topics + "\n\n")
	if len(in.Extraction.Topics) > 0 {
		for _, topic := range in.Extraction.Topics {
			b.WriteString("- " + topic + "\n")
		}
	} else {
		b.WriteString(emptyMarker + "\n")
	}

	b.WriteString("\n## " + cfg.Headings.Actions + "\n\n")
	if len(in.Extraction.ActionItems) > 0 {
		b.WriteString("| " + capitalize(cfg.Keys.Owner) + " | " + capitalize(cfg.Keys.Task) + " |\n")
		b.WriteString("|---|---|\n")
		for _, item := range in.Extraction.ActionItems {
			owner := item.Owner
			if owner == "" {
				owner = missingOwner
			}
			b.WriteString("| **" + owner + "** | " + item.Task + " |\n")
		}
	} else {
		b.WriteString(emptyMarker + "\n")
	}

	b.WriteString("\n## " + cfg.Headings.Transcript + "\n\n")
	b.WriteString(in.Transcript)

	return b.String()
}

// capitalize upper-cases the first rune and lower-cases the rest, so
// "action_items" -> "Action_items" and "tâche" -> "Tâche".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// Package report renders extracted meeting data into a Markdown document.
package report

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// MediaType is the content type of a rendered report.
	MediaType = "text/markdown"
	extension = ".md"
)

// Artifact is a rendered report ready to be stored and served.
type Artifact struct {
	ID       string
	Filename string
	Body     string
}

// NewID returns a fresh 32 character hex identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Filename builds "<prefix>_<id>.md".
func Filename(prefix, id string) string {
	return prefix + "_" + id + extension
}

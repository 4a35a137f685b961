package transcriber

import "strings"

var languageNames = map[string]string{
	"english":    "en",
	"french":     "fr",
	"spanish":    "es",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"dutch":      "nl",
	"japanese":   "ja",
	"chinese":    "zh",
	"vietnamese": "vi",
}

// NormalizeLanguage turns backend language labels ("English", "fr-FR",
// "pt_BR") into a lowercase two-letter code. Unknown labels are lowercased
// and returned as is.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || lang == "auto" {
		return ""
	}
	if code, ok := languageNames[lang]; ok {
		return code
	}
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}

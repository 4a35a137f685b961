package extractor

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-report/internal/locale"
)

// Parse reads raw using cfg's field keys. Missing or mistyped keys default
// to their zero value instead of failing.
func Parse(raw map[string]any, cfg locale.Config) Result {
	var res Result

	res.Summary = stringValue(raw[cfg.Keys.Summary])

	if topics, ok := raw[cfg.Keys.Topics].([]any); ok {
		for _, t := range topics {
			if t == nil {
				continue
			}
			res.Topics = append(res.Topics, stringValue(t))
		}
	}

	if actions, ok := raw[cfg.Keys.Actions].([]any); ok {
		for _, a := range actions {
			switch item := a.(type) {
			case map[string]any:
				res.ActionItems = append(res.ActionItems, ActionItem{
					Owner: stringValue(item[cfg.Keys.Owner]),
					Task:  stringValue(item[cfg.Keys.Task]),
				})
			case nil:
			default:
				// a bare string is a task nobody claimed
				res.ActionItems = append(res.ActionItems, ActionItem{Task: stringValue(item)})
			}
		}
	}

	return res
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

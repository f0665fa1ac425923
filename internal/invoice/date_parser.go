package invoice

import (
	"strings"
	"time"
)

// dateLayouts are tried in order: the HTML date input format first, then
// the DD/MM/YYYY format staff type by hand. Unpadded layouts accept both
// "2024-03-05" and "2024-3-5".
var dateLayouts = []string{
	"2006-1-2",
	"2/1/2006",
}

// ParseDate parses a submitted date. Blank or unparsable input returns nil.
func ParseDate(text string) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return &t
		}
	}
	return nil
}

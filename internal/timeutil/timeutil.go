package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// looseLayouts covers the timestamp formats injury origins are known to
// emit. Ordered most to least specific; first parse wins.
var looseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
	"01/02/2006",
	"Jan 2, 2006",
	"Jan 2",
}

// ParseLoose parses a loosely formatted upstream timestamp. Layouts
// without a year borrow it from the reference time. Returns false when no
// known layout matches.
func ParseLoose(value string, ref time.Time) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range looseLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if parsed.Year() == 0 {
			parsed = parsed.AddDate(ref.Year(), 0, 0)
		}
		return parsed.UTC(), true
	}
	return time.Time{}, false
}

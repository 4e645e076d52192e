package utils

import (
	"strings"
	"time"
)

// dateLayouts are the accepted layouts for client-supplied launch dates,
// tried in order. Clients send anything from RFC 3339 timestamps to plain
// textual dates like "January 4, 2028".
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"02 Jan 2006",
}

// ParseDate parses a launch date string against the accepted layouts.
// Returns false when no layout matches.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

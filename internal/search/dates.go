package search

import (
	"strings"
	"time"
)

// postedDateLayouts covers the formats seen across the free job boards:
// RFC 3339 variants, bare dates, and a few RFC 1123 style strings.
var postedDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
}

// ParsePostedDate parses a posted_date string from any upstream source.
// Returns false when no known layout matches; callers treat that as a pass
// (fail-open) rather than an error.
func ParsePostedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range postedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

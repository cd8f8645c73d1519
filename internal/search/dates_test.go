package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostedDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  time.Time
	}{
		{"rfc3339", "2025-06-10T08:30:00Z", true, time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", "2025-06-10T08:30:00+02:00", true, time.Date(2025, 6, 10, 8, 30, 0, 0, time.FixedZone("", 2*3600))},
		{"bare date", "2025-06-10", true, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"slash date", "2025/06/10", true, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"no timezone timestamp", "2025-06-10T08:30:00", true, time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC)},
		{"month name", "June 10, 2025", true, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"empty", "", false, time.Time{}},
		{"relative text", "3 days ago", false, time.Time{}},
		{"garbage", "N/A", false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePostedDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestParsePostedDate_TrimsWhitespace(t *testing.T) {
	got, ok := ParsePostedDate("  2025-06-10  ")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), got)
}

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "paragraphs split into lines",
			html:     "<p>We build things.</p><p>You ship them.</p>",
			expected: "We build things.\nYou ship them.",
		},
		{
			name:     "list items on their own lines",
			html:     "<ul><li>Go</li><li>Postgres</li></ul>",
			expected: "Go\nPostgres",
		},
		{
			name:     "script and style dropped",
			html:     "<div>Visible</div><script>alert(1)</script><style>.x{}</style>",
			expected: "Visible",
		},
		{
			name:     "nested markup flattened",
			html:     "<div><h2>About</h2><p>A <strong>great</strong> team.</p></div>",
			expected: "About\nA great team.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTextOrRaw_PlainText(t *testing.T) {
	assert.Equal(t, "Just a plain description.", TextOrRaw("Just a plain description."))
	assert.Equal(t, "spaced", TextOrRaw("  spaced  "))
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short text untouched", "Go developer wanted", 50, "Go developer wanted"},
		{"cut at word boundary", "one two three four", 9, "one two…"},
		{"html stripped before cutting", "<p>one two three</p>", 9, "one two…"},
		{"single long word hard cut", "abcdefghijklmnop", 5, "abcde…"},
		{"collapses internal whitespace", "a\n b\t\tc", 50, "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Excerpt(tt.input, tt.max))
		})
	}
}

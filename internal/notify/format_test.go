package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "Basketball league signups open", "Basketball league signups open"},
		{"tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"entities unescaped", "Fiesta &amp; parade", "Fiesta & parade"},
		{"surrounding space trimmed", "  <div> padded </div>  ", "padded"},
		{"empty input", "", ""},
		{"only markup", "<br/><hr>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTML(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 80))

	long := strings.Repeat("a", 100)
	got := Truncate(long, 80)
	assert.Equal(t, strings.Repeat("a", 80)+"...", got)

	// Exactly at the limit is left alone.
	exact := strings.Repeat("b", 80)
	assert.Equal(t, exact, Truncate(exact, 80))

	// Multi-byte runes count as single characters.
	runes := strings.Repeat("ñ", 85)
	cut := Truncate(runes, 80)
	assert.Equal(t, 80, len([]rune(strings.TrimSuffix(cut, "..."))))
	assert.True(t, strings.HasSuffix(cut, "..."))
}

func TestSnippet(t *testing.T) {
	long := "<p>" + strings.Repeat("x", 120) + "</p>"
	got := Snippet(long)
	assert.Equal(t, strings.Repeat("x", 80)+"...", got)

	// Markup is stripped before the length cap applies.
	padded := "<div>" + strings.Repeat("y", 80) + "</div>"
	assert.Equal(t, strings.Repeat("y", 80), Snippet(padded))
}

func TestRelativeTimeFrom(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"under a minute", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"older than a week", now.Add(-10 * 24 * time.Hour), "Mar 05, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, relativeTimeFrom(tt.at, now))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	ts := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"time value", ts, "Jan 05, 2026"},
		{"time pointer", &ts, "Jan 05, 2026"},
		{"nil pointer", (*time.Time)(nil), ""},
		{"zero time", time.Time{}, ""},
		{"iso date", "2026-01-05", "Jan 05, 2026"},
		{"rfc3339", "2026-01-05T10:30:00Z", "Jan 05, 2026"},
		{"timestamp string", "2026-01-05 10:30:00", "Jan 05, 2026"},
		{"display form", "Jan 05, 2026", "Jan 05, 2026"},
		{"long form", "January 5, 2026", "Jan 05, 2026"},
		{"slash form", "01/05/2026", "Jan 05, 2026"},
		{"unparseable passes through", "next Tuesday", "next Tuesday"},
		{"blank string", "   ", ""},
		{"empty string", "", ""},
		{"nil", nil, ""},
		{"unsupported type", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDate(tt.input))
		})
	}
}

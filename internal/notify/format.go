package notify

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"
)

// DisplayDateLayout is the canonical display form for source date fields.
const DisplayDateLayout = "Jan 02, 2006"

const messageLimit = 80

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes markup tags and unescapes entities so rich-text content
// can be shown as a plain snippet.
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(s, "")))
}

// Truncate caps s at limit runes, appending an ellipsis marker when cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// Snippet is the standard message treatment: strip markup then cap length.
func Snippet(s string) string {
	return Truncate(StripHTML(s), messageLimit)
}

// RelativeTime renders a timestamp the way the notification bell shows it.
func RelativeTime(t time.Time) string {
	return relativeTimeFrom(t, time.Now())
}

func relativeTimeFrom(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format(DisplayDateLayout)
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	DisplayDateLayout,
	"January 2, 2006",
	"01/02/2006",
}

// NormalizeDate accepts a structured date or a string in one of the layouts
// legacy records use and returns the canonical display form. Strings that do
// not parse are passed through unchanged; nil and blank values yield "".
func NormalizeDate(v interface{}) string {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return ""
		}
		return d.Format(DisplayDateLayout)
	case *time.Time:
		if d == nil || d.IsZero() {
			return ""
		}
		return d.Format(DisplayDateLayout)
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return ""
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(DisplayDateLayout)
			}
		}
		return s
	default:
		return ""
	}
}

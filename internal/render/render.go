// Package render turns assistant text into HTML for the web view and into
// styled output for terminals.
//
// Assistant text uses a small subset of markdown: **bold**, numbered list
// lines ("1. ..."), bullet lines ("• ..."), and blank lines between
// paragraphs.
package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
)

var (
	boldPattern     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	numberedPattern = regexp.MustCompile(`(\d+\.\s.*?)(<br />|$)`)
	bulletPattern   = regexp.MustCompile(`•\s(.*?)(<br />|$)`)
)

// HTML converts assistant text into an HTML fragment. The input is escaped
// before any markup is introduced.
func HTML(text string) string {
	out := html.EscapeString(text)
	out = boldPattern.ReplaceAllString(out, "<strong>${1}</strong>")
	out = strings.ReplaceAll(out, "\n\n", "<br /><br />")
	out = strings.ReplaceAll(out, "\n", "<br />")
	out = numberedPattern.ReplaceAllString(out, "<li>${1}</li>")
	out = bulletPattern.ReplaceAllString(out, "<li>${1}</li>")
	return out
}

// Markdown rewrites bullet lines so standard markdown renderers treat them
// as list items.
func Markdown(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, "• "); ok {
			lines[i] = "- " + rest
		}
	}
	return strings.Join(lines, "\n")
}

// Terminal renders text for a terminal of the given width. style is a glamour
// standard style name ("dark", "light", "notty", ...). On any renderer error
// the plain text is returned.
func Terminal(text, style string, width int) string {
	if style == "" {
		style = "notty"
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(Markdown(text))
	if err != nil {
		return text
	}
	return out
}

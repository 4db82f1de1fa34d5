package naka

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// formatCodeFrame renders the source line holding start and underlines the
// range up to end. Ranges that run past the line are clipped to it.
func formatCodeFrame(start, end Position) string {
	if start.Text == "" {
		return ""
	}

	lines := strings.Split(start.Text, "\n")
	if start.Line < 0 || start.Line >= len(lines) {
		return ""
	}

	lineText := strings.TrimRight(lines[start.Line], "\r")
	width := utf8.RuneCountInString(lineText)

	from := min(max(start.Column, 0), width)
	to := end.Column
	if end.Line != start.Line {
		to = width
	}
	to = min(to, width)
	carets := max(to-from, 1)

	lineLabel := strconv.Itoa(start.Line + 1)
	gutterPad := strings.Repeat(" ", len(lineLabel))

	return fmt.Sprintf(
		"  --> %s\n %s | %s\n %s | %s%s",
		start,
		lineLabel,
		expandTabs(lineText),
		gutterPad,
		strings.Repeat(" ", from),
		strings.Repeat("^", carets),
	)
}

// expandTabs keeps one column per rune so the carets stay aligned.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}

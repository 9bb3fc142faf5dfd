package docgen

import "strings"

// sanitizeCell makes free-form description text safe for a Markdown table
// cell: pipes are escaped, paragraph breaks become an explicit break tag and
// remaining newlines collapse to spaces. The function is idempotent, so text
// that already went through a previous run never gets double-escaped.
func sanitizeCell(s string) string {
	s = strings.ReplaceAll(s, `\|`, "|")
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n\n", "<br/>")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// firstParagraph returns the text up to the first blank line, for the short
// descriptions used in inventory tables.
func firstParagraph(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if i := strings.Index(s, "\n\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

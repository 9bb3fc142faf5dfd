package docgen

import (
	"strings"
	"testing"
)

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"pipe escaped", "a | b", `a \| b`},
		{"paragraph break", "first\n\nsecond", "first<br/>second"},
		{"single newline collapses", "first\nsecond", "first second"},
		{"windows newlines", "first\r\n\r\nsecond", "first<br/>second"},
		{"mixed", "a|b\n\nc\nd", `a\|b<br/>c d`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeCell(tt.in); got != tt.want {
				t.Errorf("sanitizeCell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeCellIdempotent(t *testing.T) {
	inputs := []string{
		"a | b",
		"first\n\nsecond",
		`already \| escaped`,
		"plain",
		"x\ny\n\nz | w",
	}

	for _, in := range inputs {
		once := sanitizeCell(in)
		twice := sanitizeCell(once)
		if once != twice {
			t.Errorf("sanitizeCell not idempotent on %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeCellProperties(t *testing.T) {
	inputs := []string{"a|b|c", "x\n\ny\n\nz", "|", "\n\n"}

	for _, in := range inputs {
		got := sanitizeCell(in)

		stripped := strings.ReplaceAll(got, `\|`, "")
		if strings.Contains(stripped, "|") {
			t.Errorf("unescaped pipe remains in %q", got)
		}
		if strings.Contains(got, "\n\n") {
			t.Errorf("double newline remains in %q", got)
		}
	}
}

func TestFirstParagraph(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"one paragraph", "one paragraph"},
		{"first\n\nsecond\n\nthird", "first"},
		{"  padded  \n\nmore", "padded"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstParagraph(tt.in); got != tt.want {
			t.Errorf("firstParagraph(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

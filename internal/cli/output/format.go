package output

import (
	"fmt"
	"strings"
)

// FormatHeader renders a markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatCodeBlock renders a fenced markdown code block.
func FormatCodeBlock(lang, code string) string {
	return fmt.Sprintf("```%s\n%s```", lang, ensureNewline(code))
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

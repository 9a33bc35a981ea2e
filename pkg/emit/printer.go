package emit

import (
	"bytes"
	"strings"
)

// Printer accumulates output lines with explicit indentation.
//
// Unlike a pretty-printer with a depth counter, indentation here is given
// per line: the converter preserves each statement's original indentation,
// so the caller passes the source column rather than a nesting level.
type Printer struct {
	output bytes.Buffer
}

// String returns the printed output with a single trailing newline.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

// line writes one line at the given indentation (in spaces).
func (p *Printer) line(indent int, text string) {
	for i := 0; i < indent; i++ {
		p.output.WriteByte(' ')
	}
	p.output.WriteString(text)
	p.output.WriteByte('\n')
}

// blank writes an empty line.
func (p *Printer) blank() {
	p.output.WriteByte('\n')
}

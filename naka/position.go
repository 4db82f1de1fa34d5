package naka

import "fmt"

// Position identifies a location in a named source buffer. Line and Column
// are zero-based; Offset is a byte offset into Text.
type Position struct {
	Offset int
	Line   int
	Column int
	Source string
	Text   string
}

func newPosition(source, text string) Position {
	return Position{Source: source, Text: text}
}

// Advance returns the position immediately after ch, which occupies width
// bytes. The receiver is left untouched, so positions captured by tokens
// never move when the lexer cursor does.
func (p Position) Advance(ch rune, width int) Position {
	p.Offset += width
	p.Column++
	if ch == '\n' {
		p.Line++
		p.Column = 0
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Line+1, p.Column+1)
}

package naka

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrIllegalCharacter is raised by the lexer for runes outside the grammar.
	ErrIllegalCharacter = errors.NewKind("illegal character: %s")
	// ErrInvalidSyntax is raised by the parser, and by the lexer for
	// malformed literals.
	ErrInvalidSyntax = errors.NewKind("invalid syntax: %s")
	// ErrArithmetic is raised during evaluation, e.g. on division by zero.
	ErrArithmetic = errors.NewKind("arithmetic error: %s")
)

var categoryNames = map[*errors.Kind]string{
	ErrIllegalCharacter: "Illegal Character",
	ErrInvalidSyntax:    "Invalid Syntax",
	ErrArithmetic:       "Arithmetic Error",
}

// Error is a failure attributed to a source range. Only the first error
// found by a stage is reported.
type Error struct {
	Kind    *errors.Kind
	Details string
	Start   Position
	End     Position
}

func newError(kind *errors.Kind, start, end Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Details: fmt.Sprintf(format, args...), Start: start, End: end}
}

// Category returns the human-readable name of the error kind.
func (e *Error) Category() string {
	if name, ok := categoryNames[e.Kind]; ok {
		return name
	}
	return "Error"
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s\nFile: %s, line %d", e.Category(), e.Details, e.Start.Source, e.Start.Line+1)
}

// Diagnostic renders the error followed by the offending source line with
// the error range underlined.
func (e *Error) Diagnostic() string {
	var b strings.Builder
	b.WriteString(e.Error())
	if frame := formatCodeFrame(e.Start, e.End); frame != "" {
		b.WriteString("\n\n")
		b.WriteString(frame)
	}
	return b.String()
}

// Cause returns the kind-tagged error, so callers can use Kind.Is on it.
func (e *Error) Cause() error {
	return e.Kind.New(e.Details)
}

func (e *Error) Unwrap() error {
	return e.Cause()
}

// IsKind reports whether the error belongs to kind.
func (e *Error) IsKind(kind *errors.Kind) bool {
	return e != nil && e.Kind == kind
}

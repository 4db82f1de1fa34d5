package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mgomes/nakascript/naka"
)

// sourceLine is one expression from a multi-line source. Each line is an
// independent unit of work.
type sourceLine struct {
	number int
	text   string
}

func isCommentOrBlank(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

func splitLines(source string) []string {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

func expressionLines(source string) []sourceLine {
	var out []sourceLine
	for i, line := range splitLines(source) {
		if isCommentOrBlank(line) {
			continue
		}
		out = append(out, sourceLine{number: i + 1, text: line})
	}
	return out
}

// lineError attributes a failure to a line of a multi-line source.
type lineError struct {
	path string
	line int
	err  error
}

func (e *lineError) Error() string {
	first, _, _ := strings.Cut(e.err.Error(), "\n")
	return fmt.Sprintf("%s:%d: %s", e.path, e.line, first)
}

func (e *lineError) Unwrap() error {
	return e.err
}

func (e *lineError) render() string {
	if nakaErr, ok := e.err.(*naka.Error); ok {
		return fmt.Sprintf("%s:%d:\n%s", e.path, e.line, nakaErr.Diagnostic())
	}
	return e.Error()
}

func readSource(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(data), nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/mgomes/nakascript/naka"
	"github.com/spf13/cobra"
)

type lintWarning struct {
	Line    int
	Column  int
	Message string
}

func newAnalyzeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Report suspicious expressions without evaluating them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("naka analyze: script path required")
			}
			path := args[0]
			source, err := readSource(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			label := a.label(path)
			warnings, err := analyzeSource(a.engine(label), label, source)
			if err != nil {
				return fmt.Errorf("analysis compile failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(warnings) == 0 {
				fmt.Fprintln(out, "No issues found")
				return nil
			}
			for _, warning := range warnings {
				fmt.Fprintf(out, "%s:%d:%d: %s\n", label, warning.Line, warning.Column, warning.Message)
			}
			return fmt.Errorf("analysis found %d issue(s)", len(warnings))
		},
	}
}

func analyzeSource(engine *naka.Engine, path, source string) ([]lintWarning, error) {
	warnings := make([]lintWarning, 0)
	for _, line := range expressionLines(source) {
		script, err := engine.Compile(line.text)
		if err != nil {
			return nil, &lineError{path: path, line: line.number, err: err}
		}
		for _, w := range naka.Analyze(script.Root()) {
			warnings = append(warnings, lintWarning{
				Line:    line.number,
				Column:  w.Start.Column + 1,
				Message: w.Message,
			})
		}
	}
	return warnings, nil
}

package main

import (
	"fmt"

	"github.com/mgomes/nakascript/naka"
	"github.com/spf13/cobra"
)

func newRunCommand(a *app) *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "run [file|-]",
		Short: "Evaluate every expression line of a file",
		Long: `run evaluates each non-blank line of a file (or stdin) as an independent
expression. Lines starting with # are comments. Failing lines are reported and
the remaining lines still run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			source, err := readSource(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			label := a.label(path)
			engine := a.engine(label)

			failed := 0
			for _, line := range expressionLines(source) {
				script, err := engine.Compile(line.text)
				if err == nil && !checkOnly {
					var value naka.Number
					value, err = script.Eval()
					if err == nil {
						fmt.Fprintln(cmd.OutOrStdout(), value)
					}
				}
				if err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), renderError(&lineError{path: label, line: line.number, err: err}))
				}
			}

			if failed > 0 {
				return fmt.Errorf("naka run: %d line(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only compile the lines without evaluating")
	return cmd
}

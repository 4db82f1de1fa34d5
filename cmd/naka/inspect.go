package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mgomes/nakascript/naka"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newTokensCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens <expression...>",
		Short: "Print the token stream of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := a.engine("").Tokenize(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if format == formatText {
				for _, tok := range tokens {
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", tok, tok.Start)
				}
				return nil
			}
			return encode(cmd.OutOrStdout(), format, naka.ExportTokens(tokens))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	return cmd
}

func newASTCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ast <expression...>",
		Short: "Print the syntax tree of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := a.engine("").Compile(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if format == formatText {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, naka.Format(script.Root()))
				writeOutline(out, script.Root(), 0)
				return nil
			}
			return encode(cmd.OutOrStdout(), format, naka.ExportTree(script.Root()))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func writeOutline(w io.Writer, node naka.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *naka.NumberLiteral:
		fmt.Fprintf(w, "%s%s\n", indent, n.Token)
	case *naka.UnaryOp:
		fmt.Fprintf(w, "%sunary %s\n", indent, n.Operator.Kind.Symbol())
		writeOutline(w, n.Operand, depth+1)
	case *naka.BinaryOp:
		fmt.Fprintf(w, "%sbinary %s\n", indent, n.Operator.Kind.Symbol())
		writeOutline(w, n.Left, depth+1)
		writeOutline(w, n.Right, depth+1)
	}
}

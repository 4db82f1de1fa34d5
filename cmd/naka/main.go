package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mgomes/nakascript/internal/config"
	"github.com/mgomes/nakascript/naka"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := runCLI(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *logrus.Logger
}

func runCLI(args []string, stdout, stderr io.Writer) error {
	root := newRootCommand(&app{})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "naka",
		Short: "NakaScript arithmetic expression toolkit",
		Long: `naka tokenizes, parses and evaluates NakaScript expressions:
integer and float literals, + - * /, unary signs and parentheses.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $NAKA_CONFIG, ./naka.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newEvalCommand(a),
		newRunCommand(a),
		newTokensCommand(a),
		newASTCommand(a),
		newFmtCommand(a),
		newAnalyzeCommand(a),
		newREPLCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		a.cfg.General.LogLevel = a.logLevel
	}
	level, err := a.cfg.Level()
	if err != nil {
		return err
	}

	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

func (a *app) engine(sourceName string) *naka.Engine {
	if sourceName == "" {
		sourceName = a.cfg.General.SourceName
	}
	return naka.NewEngine(naka.Config{SourceName: sourceName, Logger: a.log})
}

// label names a source path in diagnostics; stdin uses the configured name.
func (a *app) label(path string) string {
	if path == "" || path == "-" {
		return a.cfg.General.SourceName
	}
	return path
}

func newEvalCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression...>",
		Short: "Evaluate an expression and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := a.engine("").Eval(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// renderError prefers the source diagnostic when one is available.
func renderError(err error) string {
	var lineErr *lineError
	if errors.As(err, &lineErr) {
		return lineErr.render()
	}
	var nakaErr *naka.Error
	if errors.As(err, &nakaErr) {
		return nakaErr.Diagnostic()
	}
	return err.Error()
}

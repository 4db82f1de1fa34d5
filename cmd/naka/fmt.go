package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mgomes/nakascript/naka"
	"github.com/spf13/cobra"
)

const sourceExt = ".naka"

func newFmtCommand(a *app) *cobra.Command {
	var write, check bool

	cmd := &cobra.Command{
		Use:   "fmt [-w] [--check] <path...>",
		Short: "Rewrite .naka files in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("naka fmt: path required")
			}

			files, err := collectSourceFiles(args)
			if err != nil {
				return err
			}

			changedCount := 0
			for _, path := range files {
				originalBytes, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				original := string(originalBytes)
				formatted, err := formatSource(a.engine(path), path, original)
				if err != nil {
					return err
				}
				changed := formatted != original
				if changed {
					changedCount++
				}

				switch {
				case write && changed:
					info, err := os.Stat(path)
					if err != nil {
						return fmt.Errorf("stat %s: %w", path, err)
					}
					if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
						return fmt.Errorf("write %s: %w", path, err)
					}
				case check && changed:
					fmt.Fprintln(cmd.OutOrStdout(), path)
				case !write && !check:
					fmt.Fprint(cmd.OutOrStdout(), formatted)
				}
			}

			if check && changedCount > 0 {
				return fmt.Errorf("naka fmt: %d file(s) need formatting", changedCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to source files instead of stdout")
	cmd.Flags().BoolVar(&check, "check", false, "fail if any source file needs formatting")
	return cmd
}

func collectSourceFiles(targets []string) ([]string, error) {
	seen := make(map[string]struct{})
	files := make([]string, 0)
	addFile := func(path string) {
		if filepath.Ext(path) != sourceExt {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return
		}
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", target, err)
		}
		if !info.IsDir() {
			addFile(target)
			continue
		}
		err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			addFile(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// formatSource rewrites each expression line canonically. Comment lines
// keep their text; trailing whitespace and blank lines at the end go.
func formatSource(engine *naka.Engine, path, source string) (string, error) {
	lines := splitLines(source)
	for i, line := range lines {
		if isCommentOrBlank(line) {
			lines[i] = strings.TrimSpace(line)
			continue
		}
		script, err := engine.Compile(line)
		if err != nil {
			return "", &lineError{path: path, line: i + 1, err: err}
		}
		lines[i] = naka.Format(script.Root())
	}

	joined := strings.Join(lines, "\n")
	joined = strings.TrimRight(joined, "\n")
	return joined + "\n", nil
}

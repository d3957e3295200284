package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"txtpb/internal/diagfmt"
	"txtpb/internal/driver"
	"txtpb/internal/format"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] <file.textproto|-> [file...]",
		Short: "Print text format documents in canonical form",
		Long: `Fmt renders each document in canonical form: one field per line, separators dropped,
strings re-quoted. Without --write the result goes to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFmt,
	}
	cmd.Flags().Bool("check", false, "verify the output parses back to the same tree and report files that would change")
	cmd.Flags().BoolP("write", "w", false, "rewrite files in place")
	cmd.Flags().Int("indent", 2, "spaces per indentation level")
	cmd.Flags().Bool("tabs", false, "indent with tabs")
	cmd.Flags().Bool("drop-comments", false, "omit '#' comments from the output")
	cmd.Flags().String("empty-list", "", "meaning of `name: []` (scalar|message); default from txtpb.toml")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	g, err := loadGlobals(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	check, err := flags.GetBool("check")
	if err != nil {
		return err
	}
	write, err := flags.GetBool("write")
	if err != nil {
		return err
	}
	if check && write {
		return fmt.Errorf("fmt: --check cannot be used with --write")
	}
	indent, err := flags.GetInt("indent")
	if err != nil {
		return err
	}
	if indent < 1 {
		return fmt.Errorf("fmt: --indent must be positive, got %d", indent)
	}
	tabs, err := flags.GetBool("tabs")
	if err != nil {
		return err
	}
	dropComments, err := flags.GetBool("drop-comments")
	if err != nil {
		return err
	}
	policy, err := g.emptyListPolicy(cmd)
	if err != nil {
		return err
	}

	// --write всегда сверяет результат с исходным деревом
	opts := driver.FmtOptions{
		ParseOptions: driver.ParseOptions{
			MaxDiagnostics: g.cfg.Diagnostics.Max,
			EmptyList:      policy,
			Timings:        g.timings,
		},
		Format: format.Options{IndentWidth: indent, UseTabs: tabs, DropComments: dropComments},
		Check:  check || write,
	}

	stderr := cmd.ErrOrStderr()
	failed := false
	for _, path := range args {
		if write && path == "-" {
			return fmt.Errorf("fmt: cannot --write stdin")
		}
		res, err := formatArg(cmd, path, opts)
		if err != nil {
			return err
		}
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(stderr, res.Bag, res.FileSet, g.prettyOpts(stderr))
		}
		if g.timings && res.Timing != nil {
			fmt.Fprint(stderr, res.Timing.Summary())
		}
		if !res.OK() {
			failed = true
			continue
		}
		if res.CheckErr != nil {
			fmt.Fprintf(stderr, "%s: %v\n", res.File.Path, res.CheckErr)
			failed = true
			continue
		}

		switch {
		case check:
			if res.Changed {
				fmt.Fprintf(stderr, "%s: not in canonical form\n", res.File.Path)
				failed = true
			}
		case write:
			if !res.Changed {
				continue
			}
			if err := writeFormatted(path, res.Output); err != nil {
				return err
			}
			g.log.WithField("path", path).Debug("rewrote file")
			if !g.quiet {
				fmt.Fprintln(stderr, "formatted", path)
			}
		default:
			if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
				return err
			}
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func formatArg(cmd *cobra.Command, path string, opts driver.FmtOptions) (*driver.FmtResult, error) {
	if path == "-" {
		src, err := readStdin(cmd)
		if err != nil {
			return nil, err
		}
		return driver.FormatSource(stdinName, src, opts), nil
	}
	res, err := driver.FormatFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("fmt: %w", err)
	}
	return res, nil
}

// writeFormatted replaces path keeping its permissions.
func writeFormatted(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	return nil
}

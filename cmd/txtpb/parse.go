package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"txtpb/internal/diagfmt"
	"txtpb/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.textproto|->",
		Short: "Parse a text format document and print its tree",
		Long:  `Parse builds the syntax tree of a text format document and prints it; the first error stops parsing`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	cmd.Flags().String("empty-list", "", "meaning of `name: []` (scalar|message); default from txtpb.toml")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := loadGlobals(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "tree":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	policy, err := g.emptyListPolicy(cmd)
	if err != nil {
		return err
	}

	result, err := parseArg(cmd, args[0], driver.ParseOptions{
		MaxDiagnostics: g.cfg.Diagnostics.Max,
		EmptyList:      policy,
		Timings:        g.timings,
	})
	if err != nil {
		return err
	}
	g.log.WithField("path", result.File.Path).Debug("parsed")

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, g.prettyOpts(cmd.ErrOrStderr()))
	}
	if g.timings && result.Timing != nil {
		fmt.Fprint(cmd.ErrOrStderr(), result.Timing.Summary())
	}
	if !result.OK() {
		return errFailed
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(out, result.Builder, result.Root)
	case "tree":
		return diagfmt.FormatASTTree(out, result.Builder, result.Root, result.FileSet)
	default:
		return diagfmt.FormatASTPretty(out, result.Builder, result.Root, result.FileSet)
	}
}

func parseArg(cmd *cobra.Command, path string, opts driver.ParseOptions) (*driver.ParseResult, error) {
	if path == "-" {
		src, err := readStdin(cmd)
		if err != nil {
			return nil, err
		}
		return driver.ParseSource(stdinName, src, opts), nil
	}
	result, err := driver.Parse(path, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	return result, nil
}

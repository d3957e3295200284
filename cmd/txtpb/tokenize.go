package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"txtpb/internal/diagfmt"
	"txtpb/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.textproto|->",
		Short: "Tokenize a text format document",
		Long:  `Tokenize breaks a text format document into tokens, showing positions and leading trivia`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	g, err := loadGlobals(cmd)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	var result *driver.TokenizeResult
	if args[0] == "-" {
		src, readErr := readStdin(cmd)
		if readErr != nil {
			return readErr
		}
		result = driver.TokenizeSource(stdinName, src, g.cfg.Diagnostics.Max)
	} else {
		result, err = driver.Tokenize(args[0], g.cfg.Diagnostics.Max)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, g.prettyOpts(cmd.ErrOrStderr()))
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens, result.FileSet)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errFailed
	}
	return nil
}

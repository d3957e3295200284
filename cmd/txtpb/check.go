package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"txtpb/internal/diag"
	"txtpb/internal/diagfmt"
	"txtpb/internal/driver"
)

const cacheApp = "txtpb"

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <path> [path...]",
		Short: "Validate text format files and directories",
		Long: `Check parses every given file, and every file with a known extension under the given
directories, in parallel. It exits with status 1 if any file has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers (0 = [check].jobs or GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|short|json)")
	cmd.Flags().String("empty-list", "", "meaning of `name: []` (scalar|message); default from txtpb.toml")
	cmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	cmd.Flags().Bool("clear-cache", false, "drop the result cache before checking")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := loadGlobals(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	policy, err := g.emptyListPolicy(cmd)
	if err != nil {
		return err
	}

	jobs := g.cfg.Check.Jobs
	if flags.Changed("jobs") {
		if jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}

	opts := driver.CheckOptions{
		ParseOptions: driver.ParseOptions{
			MaxDiagnostics: g.cfg.Diagnostics.Max,
			EmptyList:      policy,
			Timings:        g.timings,
		},
		Jobs:       jobs,
		Extensions: g.cfg.Check.Extensions,
		Logger:     g.log.WithField("component", "check"),
	}
	if opts.Cache, err = openCache(cmd, g); err != nil {
		return err
	}

	var report *driver.CheckReport
	if format == "pretty" && !g.quiet && shouldUseTUI(mode, cmd.OutOrStdout()) {
		report, err = runCheckWithUI(cmd.Context(), args, opts, cmd.OutOrStdout())
	} else {
		report, err = driver.CheckPaths(contextOf(cmd), args, opts)
	}
	if err != nil {
		return err
	}

	switch format {
	case "json":
		bag := report.Bag()
		if report.Timing != nil && report.FileSet.Len() > 0 {
			driver.AppendTimingDiagnostic(bag, report.Files[0].FileID, "check", "", report.Timing)
		}
		if err := diagfmt.JSON(cmd.OutOrStdout(), bag, report.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
	case "short":
		// одна строка на диагностику, удобно для grep и редакторов
		if short := diag.FormatShortDiagnostics(report.Bag().Items(), report.FileSet, true); short != "" {
			fmt.Fprintln(cmd.OutOrStdout(), short)
		}
	default:
		printCheckReport(cmd.ErrOrStderr(), g, report)
	}

	if report.Failed() > 0 {
		return errFailed
	}
	return nil
}

func openCache(cmd *cobra.Command, g *globals) (*driver.DiskCache, error) {
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return nil, err
	}
	if noCache || (!g.cfg.Check.Cache && !clearCache) {
		return nil, nil
	}
	cache, err := driver.OpenDiskCache(cacheApp)
	if err != nil {
		// без кэша check всё равно работает
		g.log.WithError(err).Warn("result cache disabled")
		return nil, nil
	}
	if clearCache {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to clear cache %s: %w", cache.Dir(), err)
		}
		g.log.WithField("dir", cache.Dir()).Info("cache cleared")
	}
	if !g.cfg.Check.Cache {
		return nil, nil
	}
	return cache, nil
}

func printCheckReport(w io.Writer, g *globals, report *driver.CheckReport) {
	opts := g.prettyOpts(w)
	for i := range report.Files {
		r := &report.Files[i]
		if r.Bag.Len() == 0 {
			continue
		}
		r.Bag.Sort()
		diagfmt.Pretty(w, r.Bag, report.FileSet, opts)
		fmt.Fprintln(w)
	}
	if g.timings && report.Timing != nil {
		fmt.Fprint(w, report.Timing.Summary())
	}
	if g.quiet {
		return
	}
	fmt.Fprintf(w, "checked %d %s: %d failed", len(report.Files), plural(len(report.Files), "file", "files"), report.Failed())
	if n := report.CachedCount(); n > 0 {
		fmt.Fprintf(w, " (%d cached)", n)
	}
	fmt.Fprintln(w)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"txtpb/internal/prof"
	"txtpb/internal/version"
)

// newRootCmd assembles the CLI. Commands are built per call so tests can
// execute several independent invocations.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "txtpb",
		Short:         "Protocol Buffers text format toolkit",
		Long:          `txtpb tokenizes, parses, checks and formats Protocol Buffers text format (textproto) documents`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")
	pf.String("log-level", "warn", "log level (debug|info|warn|error)")
	pf.BoolP("verbose", "v", false, "shorthand for --log-level=debug")
	pf.String("config", "", "path to txtpb.toml (default: search upwards from the working directory)")
	pf.String("cpuprofile", "", "write a CPU profile to this file")
	pf.String("memprofile", "", "write a heap profile to this file on exit")

	rootCmd.PersistentPreRunE = startProfile

	return rootCmd
}

// profile is started by the root pre-run hook and stopped in main, which
// also covers commands that fail.
var profile *prof.Session

func startProfile(cmd *cobra.Command, _ []string) error {
	cpu, _ := cmd.Flags().GetString("cpuprofile")
	mem, _ := cmd.Flags().GetString("memprofile")
	var err error
	profile, err = prof.Start(prof.Options{CPUPath: cpu, MemPath: mem})
	return err
}

// main runs the root command; any returned error exits with status 1.
func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if stopErr := profile.Stop(); stopErr != nil {
		rootCmd.PrintErrln("error:", stopErr)
	}
	if err != nil {
		if !isSilent(err) {
			rootCmd.PrintErrln("error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

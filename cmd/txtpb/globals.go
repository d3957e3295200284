package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"txtpb/internal/config"
	"txtpb/internal/diagfmt"
	"txtpb/internal/parser"
)

// errFailed is returned once the command has already reported why it
// failed (diagnostics, "would reformat" lines); main only sets the exit code.
var errFailed = errors.New("failed")

func isSilent(err error) bool { return errors.Is(err, errFailed) }

// globals are the persistent flags merged over txtpb.toml.
type globals struct {
	cfg     config.Config
	cfgPath string
	log     *logrus.Logger
	quiet   bool
	timings bool
}

func loadGlobals(cmd *cobra.Command) (*globals, error) {
	pf := cmd.Root().PersistentFlags()

	level, err := pf.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	verbose, err := pf.GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	log, err := newLogger(cmd.ErrOrStderr(), level, verbose)
	if err != nil {
		return nil, err
	}

	g := &globals{log: log}
	if g.quiet, err = pf.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.timings, err = pf.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	cfgPath, err := pf.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if cfgPath != "" {
		g.cfg, err = config.Load(cfgPath)
		g.cfgPath = cfgPath
	} else {
		g.cfg, g.cfgPath, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}
	if g.cfgPath != "" {
		log.WithField("path", g.cfgPath).Debug("loaded config")
	}

	// флаги, заданные явно, перекрывают файл
	if pf.Changed("color") {
		if g.cfg.Diagnostics.Color, err = pf.GetString("color"); err != nil {
			return nil, err
		}
	}
	if pf.Changed("max-diagnostics") {
		if g.cfg.Diagnostics.Max, err = pf.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func newLogger(w io.Writer, level string, verbose bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

// useColor resolves auto|on|off for the stream f writes to.
func (g *globals) useColor(w io.Writer) bool {
	switch g.cfg.Diagnostics.Color {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func (g *globals) prettyOpts(w io.Writer) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     g.useColor(w),
		Context:   2,
		ShowNotes: true,
	}
}

// emptyListPolicy reads --empty-list when the command has it, falling back
// to [parse].empty_list.
func (g *globals) emptyListPolicy(cmd *cobra.Command) (parser.EmptyListPolicy, error) {
	value := g.cfg.Parse.EmptyList
	if f := cmd.Flags().Lookup("empty-list"); f != nil && f.Changed {
		value = f.Value.String()
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "scalar":
		return parser.EmptyListScalar, nil
	case "message":
		return parser.EmptyListMessage, nil
	default:
		return 0, fmt.Errorf("invalid --empty-list value %q (expected scalar|message)", value)
	}
}

// stdinName is the diagnostic file name of "-" arguments.
const stdinName = "<stdin>"

func readStdin(cmd *cobra.Command) ([]byte, error) {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return src, nil
}

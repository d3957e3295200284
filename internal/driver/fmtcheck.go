package driver

import (
	"bytes"
	"fmt"

	"txtpb/internal/format"
	"txtpb/internal/observ"
)

type FmtOptions struct {
	ParseOptions
	Format format.Options
	// Check additionally reparses the output and compares trees.
	Check bool
}

type FmtResult struct {
	*ParseResult
	// Output is nil when the input does not parse.
	Output []byte
	// Changed reports whether Output differs from the input bytes.
	Changed bool
	// CheckErr is the round-trip failure, only set with FmtOptions.Check.
	CheckErr error
}

// FormatFile parses path and renders it canonically. Syntax errors are
// left in the result's Bag; the error return is for I/O.
func FormatFile(path string, opts FmtOptions) (*FmtResult, error) {
	parsed, err := Parse(path, opts.ParseOptions)
	if err != nil {
		return nil, err
	}
	return formatParsed(parsed, opts), nil
}

func FormatSource(name string, src []byte, opts FmtOptions) *FmtResult {
	return formatParsed(ParseSource(name, src, opts.ParseOptions), opts)
}

func formatParsed(parsed *ParseResult, opts FmtOptions) *FmtResult {
	res := &FmtResult{ParseResult: parsed}
	if !parsed.OK() {
		return res
	}

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	done := track(timer, "format")
	if opts.Check {
		res.Output, res.CheckErr = format.CheckRoundTrip(parsed.Builder, parsed.Root, opts.EmptyList, opts.Format)
	} else {
		var err error
		res.Output, err = format.FormatMessage(parsed.Builder, parsed.Root, opts.Format)
		if err != nil {
			// дерево без ошибок разбора всегда печатается; сюда попадаем только из-за бага
			res.CheckErr = fmt.Errorf("fmt: %w", err)
		}
	}
	done(fmt.Sprintf("%d bytes", len(res.Output)))

	if res.Output != nil {
		res.Changed = !bytes.Equal(res.Output, parsed.File.Content)
	}
	if parsed.Timing != nil {
		parsed.Timing.Merge(timer.Report())
	}
	return res
}

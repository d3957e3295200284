package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"txtpb/internal/driver"
	"txtpb/internal/ui"
)

type checkOutcome struct {
	report *driver.CheckReport
	err    error
}

// runCheckWithUI runs the check in the background and renders progress
// until the driver is done.
func runCheckWithUI(ctx context.Context, paths []string, opts driver.CheckOptions, out io.Writer) (*driver.CheckReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	files, err := driver.ListFiles(paths, opts.Extensions)
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)
	opts.Events = events

	go func() {
		report, err := driver.CheckPaths(ctx, paths, opts)
		outcomeCh <- checkOutcome{report: report, err: err}
		close(events)
	}()

	title := fmt.Sprintf("checking %d %s", len(files), plural(len(files), "file", "files"))
	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	// если UI вышел раньше времени, дочитываем события, чтобы воркеры не встали на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}

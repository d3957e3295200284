package driver

import (
	"encoding/json"
	"fmt"

	"txtpb/internal/diag"
	"txtpb/internal/observ"
	"txtpb/internal/source"
)

func newTimer(enabled bool) *observ.Timer {
	if !enabled {
		return nil
	}
	return observ.NewTimer()
}

// track is Timer.Track that tolerates a disabled (nil) timer.
func track(t *observ.Timer, name string) func(note string) {
	if t == nil {
		return func(string) {}
	}
	return t.Track(name)
}

func report(t *observ.Timer) *observ.Report {
	if t == nil {
		return nil
	}
	r := t.Report()
	return &r
}

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// AppendTimingDiagnostic attaches r to bag as an OBS6001 info diagnostic so
// JSON consumers get timings alongside the diagnostics. The payload goes into
// the single note. file anchors the diagnostic to a real FileSet entry.
func AppendTimingDiagnostic(bag *diag.Bag, file source.FileID, kind, path string, r *observ.Report) {
	if bag == nil || r == nil {
		return
	}
	payload := timingPayload{Kind: kind, Path: path, TotalMS: r.TotalMS, Phases: r.Phases}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg = fmt.Sprintf("%s, %s", msg, payload.Path)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	sp := source.Span{File: file}
	bag.Add(&diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.ObsTimings,
		Message:  msg,
		Primary:  sp,
		Notes:    []diag.Note{{Span: sp, Msg: string(data)}},
	})
}

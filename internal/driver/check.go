package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"txtpb/internal/diag"
	"txtpb/internal/observ"
	"txtpb/internal/source"
)

type CheckOptions struct {
	ParseOptions
	// Jobs bounds concurrent parses; <= 0 means GOMAXPROCS.
	Jobs int
	// Extensions select files when walking directories. Files named
	// explicitly are checked whatever their extension.
	Extensions []string
	// Cache is optional.
	Cache  *DiskCache
	Logger logrus.FieldLogger
	// Events, when set, receives progress. CheckPaths does not close it.
	Events chan<- Event
}

// CheckFileResult содержит результат проверки одного файла
type CheckFileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Cached bool
	Timing *observ.Report
}

func (r *CheckFileResult) Failed() bool { return r.Bag.HasErrors() }

type CheckReport struct {
	FileSet *source.FileSet
	Files   []CheckFileResult
	// Timing sums per-file phases; nil unless ParseOptions.Timings.
	Timing *observ.Report
}

// Failed counts files with at least one error.
func (r *CheckReport) Failed() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Failed() {
			n++
		}
	}
	return n
}

func (r *CheckReport) CachedCount() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Cached {
			n++
		}
	}
	return n
}

// Bag merges every file's diagnostics in file order.
func (r *CheckReport) Bag() *diag.Bag {
	bag := diag.NewBag(0)
	for i := range r.Files {
		bag.Merge(r.Files[i].Bag)
	}
	return bag
}

// ListFiles expands paths into a sorted, deduplicated file list. Directories
// are walked recursively and filtered by extension (case-insensitive).
func ListFiles(paths, extensions []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, filepath.Clean(root))
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && hasExtension(path, extensions) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return slices.Compact(files), nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// CheckPaths parses every selected file in parallel and collects per-file
// diagnostics. The returned error is reserved for problems with the run
// itself (bad path, cancellation); syntax errors live in the report.
func CheckPaths(ctx context.Context, paths []string, opts CheckOptions) (*CheckReport, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.New().WithField("component", "check")
	}

	files, err := ListFiles(paths, opts.Extensions)
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}

	baseDir := ""
	if len(paths) == 1 {
		if info, statErr := os.Stat(paths[0]); statErr == nil && info.IsDir() {
			baseDir = paths[0]
		}
	}
	fileSet := source.NewFileSetWithBase(baseDir)
	report := &CheckReport{FileSet: fileSet, Files: make([]CheckFileResult, len(files))}
	if len(files) == 0 {
		log.WithField("paths", paths).Debug("no files to check")
		return report, nil
	}

	// FileSet не потокобезопасен на запись: грузим всё до запуска воркеров
	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		fileIDs[i], loadErrs[i] = fileSet.Load(path)
		if loadErrs[i] != nil {
			fileIDs[i] = fileSet.Add(path, nil, source.FileVirtual)
			log.WithError(loadErrs[i]).WithField("path", path).Warn("failed to load file")
			continue
		}
		emit(ctx, opts.Events, Event{File: path, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, len(files))
	log.WithFields(logrus.Fields{"files": len(files), "jobs": jobs}).Debug("check started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := &report.Files[i]
			*res = CheckFileResult{Path: path, FileID: fileIDs[i], Bag: diag.NewBag(opts.MaxDiagnostics)}

			if loadErrs[i] != nil {
				res.Bag.Add(&diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErrs[i].Error(),
					Primary:  source.Span{File: fileIDs[i]},
				})
				emit(gctx, opts.Events, Event{File: path, Status: StatusError})
				return nil
			}
			checkOne(gctx, fileSet, fileSet.Get(fileIDs[i]), res, opts, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Timings {
		total := &observ.Report{}
		for i := range report.Files {
			if t := report.Files[i].Timing; t != nil {
				total.Merge(*t)
			}
		}
		report.Timing = total
	}
	log.WithFields(logrus.Fields{
		"files":  len(files),
		"failed": report.Failed(),
		"cached": report.CachedCount(),
	}).Debug("check finished")
	return report, nil
}

func checkOne(ctx context.Context, fileSet *source.FileSet, file *source.File, res *CheckFileResult, opts CheckOptions, log logrus.FieldLogger) {
	flog := log.WithField("path", res.Path)
	key := KeyFor(file.Hash, opts.EmptyList)

	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			flog.WithError(err).Debug("cache read failed")
		case hit:
			flog.WithField("hash", key.String()[:12]).Debug("cache hit")
			restoreBag(&payload, file.ID, res.Bag)
			res.Cached = true
			emit(ctx, opts.Events, Event{File: res.Path, Status: StatusCached})
			return
		default:
			flog.WithField("hash", key.String()[:12]).Debug("cache miss")
		}
	}

	emit(ctx, opts.Events, Event{File: res.Path, Status: StatusWorking})
	// свой Timer на файл: observ.Timer не потокобезопасен
	parsed := parseLoaded(fileSet, file, opts.ParseOptions, newTimer(opts.Timings))
	res.Bag.Merge(parsed.Bag)
	res.Timing = parsed.Timing

	if opts.Cache != nil {
		if payload, ok := payloadFromBag(res.Path, file.ID, res.Bag); ok {
			if err := opts.Cache.Put(key, payload); err != nil {
				flog.WithError(err).Debug("cache write failed")
			}
		}
	}

	status := StatusDone
	if res.Failed() {
		status = StatusError
	}
	emit(ctx, opts.Events, Event{File: res.Path, Status: status})
}

func emit(ctx context.Context, ch chan<- Event, ev Event) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}

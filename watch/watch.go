// Package watch re-runs an SVG conversion whenever the input file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/internal/fileutil"
	"github.com/erraggy/svgcase/renamer"
)

// DefaultDebounce is the quiet period after the last change before a
// conversion runs.
const DefaultDebounce = 200 * time.Millisecond

// RunResult reports one conversion.
type RunResult struct {
	// Input and Output are the converted and written paths
	Input  string
	Output string
	// Result is the rename result; nil when the input could not be parsed
	Result *renamer.RenameResult
	// Err is the conversion error, if any
	Err error
	// Time is when the conversion finished
	Time time.Time
}

// Stats counts watcher activity.
type Stats struct {
	Events   int
	Runs     int
	Failures int
	Errors   int
	LastRun  time.Time
}

// Watcher converts Input to Output once at start (with RunOnStart) and
// again after every change to Input.
type Watcher struct {
	// Input is the watched SVG file. Its directory must exist.
	Input string
	// Output is the file written on every run.
	Output string
	// Renamer does the conversion. Nil means renamer.New().
	Renamer *renamer.Renamer
	// Debounce is the quiet period before a run. Default: DefaultDebounce
	Debounce time.Duration
	// RunOnStart converts once before waiting for changes, if Input exists.
	RunOnStart bool
	// OnResult, if set, is called after every run from the Run goroutine.
	OnResult func(RunResult)
	// Logger is the structured logger for run output.
	// If nil, logging is disabled (default)
	Logger document.Logger

	mu    sync.Mutex
	stats Stats
}

// New creates a Watcher with default settings.
func New(input, output string, r *renamer.Renamer) *Watcher {
	return &Watcher{
		Input:      input,
		Output:     output,
		Renamer:    r,
		Debounce:   DefaultDebounce,
		RunOnStart: true,
	}
}

// Stats returns a snapshot of the watcher counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Run watches until ctx is cancelled. It returns nil on cancellation and an
// error only when watching cannot start or the event stream closes.
func (w *Watcher) Run(ctx context.Context) error {
	log := w.Logger
	if log == nil {
		log = document.NopLogger{}
	}
	if fileutil.SamePath(w.Input, w.Output) {
		return fmt.Errorf("watch: output %s would overwrite the input", w.Output)
	}
	input, err := filepath.Abs(w.Input)
	if err != nil {
		return fmt.Errorf("watch: resolving input: %w", err)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	// Editors often replace files by rename, so watch the directory.
	if err := fw.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watch: watching %s: %w", filepath.Dir(input), err)
	}
	log.Info("watching", "input", w.Input, "output", w.Output, "debounce", debounce)

	if w.RunOnStart {
		w.convert(log, true)
	}

	tick := debounce / 4
	if tick < 5*time.Millisecond {
		tick = 5 * time.Millisecond
	}
	debounceTicker := time.NewTicker(tick)
	defer debounceTicker.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			log.Debug("watch stopped", "reason", ctx.Err())
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return errors.New("watch: event channel closed")
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			w.mu.Lock()
			w.stats.Events++
			w.mu.Unlock()
			log.Debug("input changed", "op", event.Op.String())
			pending = time.Now()

		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("watch: error channel closed")
			}
			log.Error("watcher error", "error", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				w.convert(log, false)
			}
		}
	}
}

// convert runs one conversion. On start a missing input is not an error.
func (w *Watcher) convert(log document.Logger, initial bool) {
	r := w.Renamer
	if r == nil {
		r = renamer.New()
	}
	res, err := r.RenameFile(w.Input, w.Output)
	if initial && errors.Is(err, fs.ErrNotExist) {
		log.Info("input does not exist yet, waiting", "input", w.Input)
		return
	}

	run := RunResult{Input: w.Input, Output: w.Output, Result: res, Err: err, Time: time.Now()}

	w.mu.Lock()
	w.stats.Runs++
	w.stats.LastRun = run.Time
	if err != nil {
		w.stats.Failures++
	}
	w.mu.Unlock()

	if err != nil {
		log.Warn("conversion failed", "input", w.Input, "error", err)
	} else {
		log.Info("converted",
			"input", w.Input,
			"output", w.Output,
			"tags", res.Stats.TagsRenamed,
			"attributes", res.Stats.AttributesRenamed,
			"collisions", res.Stats.Collisions)
	}
	if w.OnResult != nil {
		w.OnResult(run)
	}
}

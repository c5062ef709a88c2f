package batch

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/internal/fileutil"
	"github.com/erraggy/svgcase/renamer"
)

// DefaultSuffix is inserted before the extension of output files written
// next to their input.
const DefaultSuffix = ".out"

// DefaultConcurrency is the number of files converted at once when
// Processor.Concurrency is not positive.
const DefaultConcurrency = 4

// FileResult is the outcome of converting one file.
type FileResult struct {
	// Input is the source file path
	Input string
	// Output is the written file path (empty if no output path could be derived)
	Output string
	// Result is the rename result; nil when parsing failed
	Result *renamer.RenameResult
	// Err is the per-file error, if any
	Err error
	// Duration is the wall time spent on this file
	Duration time.Duration
}

// OK reports whether the file converted without error.
func (f *FileResult) OK() bool {
	return f.Err == nil
}

// Summary aggregates a batch run.
type Summary struct {
	Files      int `yaml:"files"`
	Succeeded  int `yaml:"succeeded"`
	Failed     int `yaml:"failed"`
	Tags       int `yaml:"tags_renamed"`
	Attributes int `yaml:"attributes_renamed"`
	Collisions int `yaml:"collisions"`
}

// Summarize tallies results.
func Summarize(results []FileResult) Summary {
	s := Summary{Files: len(results)}
	for i := range results {
		r := &results[i]
		if r.OK() {
			s.Succeeded++
		} else {
			s.Failed++
		}
		if r.Result != nil {
			s.Tags += r.Result.Stats.TagsRenamed
			s.Attributes += r.Result.Stats.AttributesRenamed
			s.Collisions += r.Result.Stats.Collisions
		}
	}
	return s
}

// Processor converts many files concurrently with a shared Renamer.
type Processor struct {
	// Concurrency is the number of files converted at once.
	// Default: DefaultConcurrency
	Concurrency int
	// Renamer does the per-file work. It is shared across goroutines and
	// must not be modified during a run. Nil means renamer.New().
	Renamer *renamer.Renamer
	// Suffix is inserted before the extension of outputs written next to
	// their inputs. Ignored when OutputDir is set.
	Suffix string
	// OutputDir, when set, receives every output under the input's base name.
	OutputDir string
	// Logger is the structured logger for progress output.
	// If nil, logging is disabled (default)
	Logger document.Logger
}

// New creates a Processor with default settings around r.
func New(r *renamer.Renamer) *Processor {
	return &Processor{
		Concurrency: DefaultConcurrency,
		Renamer:     r,
		Suffix:      DefaultSuffix,
	}
}

// ProcessDir converts every .svg file under root. Files that already carry
// the output suffix are skipped.
func (p *Processor) ProcessDir(ctx context.Context, root string) ([]FileResult, error) {
	skip := p.Suffix
	if p.OutputDir != "" {
		skip = ""
	}
	inputs, err := fileutil.FindSVGFiles(root, skip)
	if err != nil {
		return nil, fmt.Errorf("batch: finding svg files: %w", err)
	}
	if p.OutputDir != "" && fileutil.SamePath(p.OutputDir, root) {
		return nil, fmt.Errorf("batch: output directory %s is the input directory", p.OutputDir)
	}
	return p.Process(ctx, inputs)
}

// Process converts inputs and returns one FileResult per input, in input
// order. Per-file failures are recorded on the FileResult. The returned
// error is non-nil only when ctx is cancelled; files not started by then
// carry the context's error.
func (p *Processor) Process(ctx context.Context, inputs []string) ([]FileResult, error) {
	log := p.Logger
	if log == nil {
		log = document.NopLogger{}
	}
	r := p.Renamer
	if r == nil {
		r = renamer.New()
	}

	results := make([]FileResult, len(inputs))
	outputs := p.planOutputs(inputs, results)

	if p.OutputDir != "" {
		if err := os.MkdirAll(p.OutputDir, fileutil.DirReadableByAll); err != nil {
			return nil, fmt.Errorf("batch: creating output directory: %w", err)
		}
	}

	limit := p.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	started := make([]bool, len(inputs))
	for i, in := range inputs {
		if results[i].Err != nil {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		started[i] = true
		g.Go(func() error {
			start := time.Now()
			res, err := r.RenameFile(in, outputs[i])
			results[i].Result = res
			results[i].Err = err
			results[i].Duration = time.Since(start)
			if err != nil {
				log.Warn("conversion failed", "input", in, "error", err)
			} else {
				log.Debug("converted", "input", in, "output", outputs[i], "duration", results[i].Duration)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if !started[i] && results[i].Err == nil {
				results[i].Err = err
			}
		}
		return results, err
	}

	s := Summarize(results)
	log.Info("batch complete", "files", s.Files, "failed", s.Failed, "collisions", s.Collisions)
	return results, nil
}

// planOutputs derives an output path per input and records an error on
// results for inputs that cannot be written safely.
func (p *Processor) planOutputs(inputs []string, results []FileResult) []string {
	outputs := make([]string, len(inputs))
	claimed := make(map[string]string, len(inputs))
	for i, in := range inputs {
		results[i].Input = in
		out, err := fileutil.OutputPathFor(in, p.Suffix, p.OutputDir)
		if err != nil {
			results[i].Err = fmt.Errorf("batch: %w", err)
			continue
		}
		if prev, ok := claimed[out]; ok {
			results[i].Err = fmt.Errorf("batch: output path %s is already used by %s", out, prev)
			continue
		}
		claimed[out] = in
		outputs[i] = out
		results[i].Output = out
	}
	return outputs
}

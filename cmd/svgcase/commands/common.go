// Package commands provides the cobra commands for the svgcase CLI.
package commands

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/erraggy/svgcase"
	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/internal/cliutil"
	"github.com/erraggy/svgcase/internal/config"
	"github.com/erraggy/svgcase/renamer"
)

// Fixed file names used when no flags are given.
const (
	DefaultInput  = "try.svg"
	DefaultOutput = "out.svg"
)

// cliState is built once per invocation in the root's PersistentPreRunE.
type cliState struct {
	cfg    *config.Config
	zap    *zap.Logger
	logger document.Logger
}

// newRenamer returns a Renamer configured from the environment.
func (rt *cliState) newRenamer() (*renamer.Renamer, error) {
	return rt.cfg.NewRenamer(rt.logger)
}

// newZapLogger builds the CLI logger. Logs always go to stderr so stdout
// stays usable for summaries and the MCP transport.
func newZapLogger(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// outputRenameSummary writes the per-file summary to w.
func outputRenameSummary(w io.Writer, input, output string, size int64, result *renamer.RenameResult) {
	cliutil.Writef(w, "svgcase version: %s\n", svgcase.Version())
	cliutil.Writef(w, "Input: %s\n", input)
	cliutil.Writef(w, "Output: %s\n", output)
	cliutil.Writef(w, "Source Size: %s\n", document.FormatBytes(size))
	cliutil.Writef(w, "Elements: %d\n", result.Stats.ElementsVisited)
	cliutil.Writef(w, "Tags Renamed: %d\n", result.Stats.TagsRenamed)
	cliutil.Writef(w, "Attributes Renamed: %d\n", result.Stats.AttributesRenamed)
	cliutil.Writef(w, "Attributes Preserved: %d\n", result.Stats.AttributesPreserved)
	cliutil.Writef(w, "Collisions: %d\n", result.Stats.Collisions)
	for _, issue := range result.Issues {
		cliutil.Writef(w, "  %s\n", issue.String())
	}
}

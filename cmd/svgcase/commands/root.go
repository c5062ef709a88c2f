package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/svgcase/document"
	"github.com/erraggy/svgcase/internal/config"
	"github.com/erraggy/svgcase/internal/fileutil"
)

// NewRootCommand returns the svgcase command tree.
func NewRootCommand() *cobra.Command {
	rt := &cliState{}

	root := &cobra.Command{
		Use:   "svgcase",
		Short: "Rename SVG tags and attributes for component-style markup",
		Long: `svgcase reads try.svg, renames every tag to an upper-case first letter
(tspan becomes TSpan) and every kebab-case attribute key to camelCase
(stroke-width becomes strokeWidth), and writes out.svg.

Attributes listed as preserved (font-family by default) are kept verbatim.
Rules can be extended with an svgcase.yaml file in the working directory.

Environment:
  SVGCASE_RULES_FILE      rules YAML (default ./svgcase.yaml if present)
  SVGCASE_STRICT          fail on attribute collisions (default false)
  SVGCASE_LOG_LEVEL       debug, info, warn or error (default info)
  SVGCASE_LOG_FORMAT      console or json (default console)
  SVGCASE_MAX_FILE_SIZE   input size limit in bytes (default 64MiB)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			rt.cfg = config.Load()
			z, err := newZapLogger(rt.cfg)
			if err != nil {
				return err
			}
			rt.zap = z
			rt.logger = document.NewZapAdapter(z)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if rt.zap != nil {
				_ = rt.zap.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, rt, DefaultInput, DefaultOutput)
		},
	}

	root.AddCommand(
		newBatchCommand(rt),
		newWatchCommand(rt),
		newMCPCommand(),
		newVersionCommand(),
	)
	return root
}

// runConvert converts input to output. Output is not written when strict
// mode rejects the document.
func runConvert(cmd *cobra.Command, rt *cliState, input, output string) error {
	r, err := rt.newRenamer()
	if err != nil {
		return err
	}

	parsed, err := document.ParseWithOptions(
		document.WithFilePath(input),
		document.WithMaxFileSize(r.MaxFileSize),
		document.WithLogger(rt.logger),
	)
	if err != nil {
		return err
	}

	result, err := r.RenameParsed(parsed)
	if result != nil {
		outputRenameSummary(cmd.ErrOrStderr(), input, output, parsed.SourceSize, result)
	}
	if err != nil {
		return err
	}

	if err := document.WriteFile(result.Document, output, fileutil.ReadableByAll); err != nil {
		return err
	}
	rt.logger.Info("converted", "input", input, "output", output)
	return nil
}

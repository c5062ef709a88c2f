package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erraggy/svgcase/batch"
	"github.com/erraggy/svgcase/internal/cliutil"
)

type batchFlags struct {
	concurrency int
	suffix      string
	outputDir   string
}

func newBatchCommand(rt *cliState) *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch [flags] <dir>",
		Short: "Convert every SVG file under a directory",
		Long: `batch converts every .svg file under dir, skipping hidden directories.

Each output is written next to its input with the suffix inserted before the
extension (icon.svg becomes icon.out.svg), or inside --output-dir under the
input's base name. A YAML summary is printed to stdout.`,
		Example: `  svgcase batch icons
  svgcase batch --concurrency 8 --output-dir build/icons icons`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rt.newRenamer()
			if err != nil {
				return err
			}

			p := batch.New(r)
			p.Concurrency = rt.cfg.Concurrency
			if cmd.Flags().Changed("concurrency") {
				p.Concurrency = flags.concurrency
			}
			p.Suffix = flags.suffix
			p.OutputDir = flags.outputDir
			p.Logger = rt.logger

			results, err := p.ProcessDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			for _, res := range results {
				if !res.OK() {
					cliutil.Writef(cmd.ErrOrStderr(), "FAILED %s: %v\n", res.Input, res.Err)
				}
			}

			summary := batch.Summarize(results)
			if err := cliutil.WriteYAML(cmd.OutOrStdout(), summary); err != nil {
				return err
			}

			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Files)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&flags.concurrency, "concurrency", "c", batch.DefaultConcurrency, "files converted at once (default: $SVGCASE_CONCURRENCY or 4)")
	cmd.Flags().StringVar(&flags.suffix, "suffix", batch.DefaultSuffix, "suffix inserted before .svg in output names")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "write outputs under this directory instead of next to inputs")
	return cmd
}

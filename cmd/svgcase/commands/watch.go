package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/svgcase/internal/cliutil"
	"github.com/erraggy/svgcase/watch"
)

func newWatchCommand(rt *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Convert the input again every time it changes",
		Long: `watch converts try.svg to out.svg once, then again after every change
to try.svg until interrupted. Changes are debounced by $SVGCASE_WATCH_DEBOUNCE (default 200ms).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := rt.newRenamer()
			if err != nil {
				return err
			}

			w := watch.New(DefaultInput, DefaultOutput, r)
			w.Debounce = rt.cfg.WatchDebounce
			w.Logger = rt.logger
			w.OnResult = func(run watch.RunResult) {
				if run.Err != nil {
					cliutil.Writef(cmd.ErrOrStderr(), "%s  FAILED: %v\n", run.Time.Format("15:04:05"), run.Err)
					return
				}
				cliutil.Writef(cmd.ErrOrStderr(), "%s  %s -> %s (%d tags, %d attributes)\n",
					run.Time.Format("15:04:05"), run.Input, run.Output,
					run.Result.Stats.TagsRenamed, run.Result.Stats.AttributesRenamed)
			}
			return w.Run(cmd.Context())
		},
	}
}

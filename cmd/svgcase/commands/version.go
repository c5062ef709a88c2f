package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/svgcase"
	"github.com/erraggy/svgcase/internal/cliutil"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cliutil.Writef(cmd.OutOrStdout(), "svgcase %s\n%s\n", svgcase.Version(), svgcase.BuildInfo())
		},
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/svgcase/cmd/svgcase/commands"
	"github.com/erraggy/svgcase/internal/cliutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

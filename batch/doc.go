// Package batch converts many SVG files concurrently.
//
// A [Processor] shares one renamer across a bounded pool of goroutines
// (golang.org/x/sync/errgroup with SetLimit). Results come back in input
// order, and a failing file does not stop the others:
//
//	p := batch.New(renamer.New())
//	p.Concurrency = 8
//	results, err := p.ProcessDir(ctx, "icons")
//	if err != nil {
//		return err // only context cancellation
//	}
//	for _, r := range results {
//		if !r.OK() {
//			fmt.Println(r.Input, r.Err)
//		}
//	}
//
// Outputs are written next to each input with [DefaultSuffix] before the
// extension ("a.svg" becomes "a.out.svg"), or into Processor.OutputDir under
// the input's base name. An input whose output would overwrite itself or
// another file's output is reported as failed.
package batch

package mcpserver

import (
	"github.com/erraggy/svgcase/internal/config"
	"github.com/erraggy/svgcase/renamer"
)

// cfg is the active server configuration, initialized at package load time.
var cfg = config.Load()

// newRenamer builds a Renamer from cfg. The rules file is re-read on every
// call so edits take effect without restarting the server. A non-nil strict
// overrides SVGCASE_STRICT.
func newRenamer(strict *bool, includeInfo bool) (*renamer.Renamer, error) {
	r, err := cfg.NewRenamer(nil)
	if err != nil {
		return nil, err
	}
	if strict != nil {
		r.StrictMode = *strict
	}
	r.IncludeInfo = includeInfo
	return r, nil
}

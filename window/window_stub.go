//go:build !ebiten

package window

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
)

// ErrNoWindowSupport is returned by Run in builds without the ebiten tag.
var ErrNoWindowSupport = errors.New("window mode requires building with the 'ebiten' tag")

// Run reports that window support was not compiled in.
func Run(context.Context, *game.Simulation, Options) (game.Result, error) {
	return game.Result{}, ErrNoWindowSupport
}

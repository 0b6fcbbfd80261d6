package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/teamcutter/brewer/internal/domain"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func withSpinner(ctx context.Context, desc string) (stop func()) {
	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				spinner.Finish()
				return
			default:
				spinner.Add(1)
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()
	return func() {
		close(done)
		spinner.Finish()
	}
}

// currentState loads the merged state, refreshing the catalog behind
// a spinner when the cache is cold or stale.
func (a *app) currentState(ctx context.Context) (*domain.State, error) {
	expired, err := a.engine.CacheExpired()
	if err != nil {
		return nil, err
	}

	if expired {
		stop := withSpinner(ctx, "Updating the catalog, this will take some time...")
		defer stop()
	}

	return a.engine.CacheOrLatest(ctx)
}

// resolveKegs maps command-line names onto catalog units of the
// requested kind.
func resolveKegs(state *domain.State, names []string, cask bool) ([]domain.Keg, error) {
	kegs := make([]domain.Keg, 0, len(names))

	for _, name := range names {
		if cask {
			c, ok := state.Casks.All.Get(name)
			if !ok {
				return nil, fmt.Errorf("cask %q not found", name)
			}
			kegs = append(kegs, c)
			continue
		}

		f, ok := state.Formulae.All.Get(name)
		if !ok {
			return nil, fmt.Errorf("formula %q not found", name)
		}
		kegs = append(kegs, f)
	}

	return kegs, nil
}

package clustervis

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Playback drives the Driver at the given frames per second until the run
// leaves the Running and Paused states, the context is cancelled, or a tick
// fails. It is a convenience for hosts without their own frame scheduler;
// interactive hosts call Tick from their animation callback instead.
func Playback(ctx context.Context, d *Driver, fps float64) error {
	if fps <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %v", ErrInvalidConfiguration, fps)
	}

	limiter := rate.NewLimiter(rate.Limit(fps), 1)

	for {
		switch d.State() {
		case StateRunning, StatePaused:
		default:
			return nil
		}

		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		if err := d.Tick(); err != nil {
			return err
		}
	}
}

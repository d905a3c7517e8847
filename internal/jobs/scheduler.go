package jobs

import (
	"context"
	"time"
)

const defaultInterval = time.Hour

// RunEvery runs the refresher immediately and then on every tick until ctx is
// canceled. Failed runs are logged and do not stop the loop.
func (r *StatusRefresher) RunEvery(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultInterval
	}
	r.runLogged(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logg.Info(ctx, "status refresh scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			r.runLogged(ctx)
		}
	}
}

func (r *StatusRefresher) runLogged(ctx context.Context) {
	// Run already logs failures with job fields attached.
	_, _ = r.Run(ctx)
}

package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newRefreshCommand(opts *rootOptions) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Reclassify stored items against today's date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer env.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			refresher, cleanup, err := env.newRefresher(ctx, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer cleanup()

			if watch {
				if interval <= 0 {
					interval = env.cfg.RefreshInterval
				}
				if err := refresher.RunEvery(ctx, interval); err != nil && ctx.Err() == nil {
					return err
				}
				return nil
			}

			report, err := refresher.Run(ctx)
			if err != nil {
				return err
			}
			if report.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "another refresh is running; nothing done")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d item(s), updated %d\n", report.Checked, report.Changed)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and refresh on an interval")
	cmd.Flags().DurationVar(&interval, "interval", 0, "refresh interval for --watch (defaults to REFRESH_INTERVAL)")
	return cmd
}

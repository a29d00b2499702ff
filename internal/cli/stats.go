package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/models"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show platform statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && interval <= 0 {
				return fmt.Errorf("--interval must be positive")
			}

			return opts.withSession(cmd, func(ctx context.Context, s *session) error {
				if !watch {
					stats, err := fetchStatistics(ctx, s)
					if err != nil {
						return fmt.Errorf("failed to load statistics: %w", err)
					}
					return render(cmd.OutOrStdout(), opts.output, stats, func(w io.Writer) { renderStatistics(w, stats) })
				}

				ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				return watchStatistics(ctx, cmd, opts, s, interval)
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep refreshing until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "refresh interval with --watch")

	return cmd
}

func fetchStatistics(ctx context.Context, s *session) (*models.Statistics, error) {
	var stats *models.Statistics
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		stats, err = s.admin.GetStatistics(ctx, "")
		return err
	})
	return stats, err
}

// watchStatistics redraws the statistics every interval. A failed fetch is
// reported on stderr and the last good figures stay on screen.
func watchStatistics(ctx context.Context, cmd *cobra.Command, opts *options, s *session, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *models.Statistics
	for {
		stats, err := fetchStatistics(ctx, s)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed: %s\n", apierror.Message(err))
			if last == nil && apierror.IsAuth(err) {
				return fmt.Errorf("failed to load statistics: %w", err)
			}
		default:
			last = stats
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", time.Now().Format(time.TimeOnly))
			if err := render(cmd.OutOrStdout(), opts.output, stats, func(w io.Writer) { renderStatistics(w, stats) }); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

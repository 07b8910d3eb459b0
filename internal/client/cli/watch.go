package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

func (c *Cli) runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(c.io)
	interval := fs.Duration("interval", 5*time.Second, "Progress report interval")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if *interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrUsage)
	}

	c.io.Println("Watching, press Ctrl+C to stop")

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range c.runners {
		g.Go(func() error {
			return r.Run(gctx)
		})
	}
	g.Go(func() error {
		return c.reportProgress(gctx, *interval)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// reportProgress печатает однострочную сводку каждые interval
func (c *Cli) reportProgress(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			status, err := c.journal.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			conn := "online"
			if status.Offline {
				conn = "offline"
			}
			c.io.Printf("[%s] %s | pending %d | failed %d | queued %d | delivered %d | dropped %d\n",
				now.Format(time.TimeOnly), conn,
				len(status.Pending), len(status.Failed), len(status.Queued),
				status.Progress.Completed, status.Progress.Failed)
		}
	}
}

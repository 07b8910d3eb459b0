package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/iudanet/fitjournal/internal/client/journal"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Starting synchronization...")

	report, err := c.journal.Sync(ctx)
	if err != nil {
		if errors.Is(err, journal.ErrOffline) {
			return fmt.Errorf("server is unreachable, writes stay buffered until the connection is back")
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Println("✓ Synchronization completed")
	c.io.Println()
	c.io.Printf("Replayed operations: %d (synced %d, failed %d, still queued %d)\n",
		report.Replay.Attempted, report.Replay.Synced, report.Replay.Failed, report.Replay.Skipped)
	c.io.Printf("Queue items:         %d (delivered %d, retrying %d, dropped %d)\n",
		report.Drain.Attempted, report.Drain.Completed, report.Drain.Retried, report.Drain.Failed)

	if report.Replay.Failed > 0 || report.Drain.Failed > 0 {
		c.io.Println()
		c.io.Println("Some writes failed. Run 'fitjournal status' for details.")
	}
	return nil
}

func (c *Cli) runRetry(ctx context.Context) error {
	n := c.journal.RetryFailed(ctx)
	if n == 0 {
		c.io.Println("No failed operations.")
		return nil
	}
	c.io.Printf("✓ %d failed operation(s) moved back to pending\n", n)
	return nil
}

func (c *Cli) runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	fs.SetOutput(c.io)
	yes := fs.Bool("yes", false, "Do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if !*yes {
		answer, err := c.io.ReadInput("This drops every unsynced write. Type 'yes' to continue: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !strings.EqualFold(answer, "yes") {
			c.io.Println("Aborted.")
			return nil
		}
	}

	c.journal.Reset(ctx)
	c.io.Println("✓ Local state reset")
	return nil
}

package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStats(ctx context.Context) error {
	stats, err := c.journal.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}
	if err := statsTmpl.Execute(c.io, stats); err != nil {
		return fmt.Errorf("failed to render stats: %w", err)
	}
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	status, err := c.journal.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	if err := statusTmpl.Execute(c.io, status); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}

	if len(status.Failed) > 0 {
		c.io.Println()
		c.io.Println("Run 'fitjournal retry' to send failed operations again.")
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/fitjournal/internal/client/journal"
)

func (c *Cli) runLog(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: fitjournal log <exercise> <count> [date]", ErrUsage)
	}

	count, err := parseCount(args[1])
	if err != nil {
		return err
	}
	date := ""
	if len(args) == 3 {
		date = args[2]
	}

	result, err := c.journal.LogExercise(ctx, args[0], count, date)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Logged %d × %s (entry %s)\n", count, args[0], result.EntryID)
	c.printWriteState(result)
	return nil
}

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: fitjournal update <id> <count>", ErrUsage)
	}

	count, err := parseCount(args[1])
	if err != nil {
		return err
	}

	result, err := c.journal.UpdateEntry(ctx, args[0], count)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Entry %s updated to %d\n", result.EntryID, count)
	c.printWriteState(result)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: fitjournal delete <id>", ErrUsage)
	}

	result, err := c.journal.DeleteEntry(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Printf("✓ Entry %s deleted\n", result.EntryID)
	c.printWriteState(result)
	return nil
}

// printWriteState сообщает, отправлена ли запись или ждет восстановления связи
func (c *Cli) printWriteState(result *journal.WriteResult) {
	if result.Operation == nil {
		return
	}
	if result.Operation.QueueItemID == "" {
		c.io.Printf("  Saved offline, will sync when the connection is back (operation %s)\n", result.Operation.ID)
		return
	}
	c.io.Printf("  Queued for sync (operation %s)\n", result.Operation.ID)
}

func parseCount(s string) (int, error) {
	count, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("count must be a number, got %q", s)
	}
	return count, nil
}

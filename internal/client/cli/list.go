package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/iudanet/fitjournal/internal/client/journal"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	var filter journal.ListFilter

	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(c.io)
	fs.StringVar(&filter.Exercise, "exercise", "", "Only entries of this exercise")
	fs.StringVar(&filter.From, "from", "", "First day, YYYY-MM-DD")
	fs.StringVar(&filter.To, "to", "", "Last day, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	entries, err := c.journal.ListEntries(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	c.io.Println("=== Journal Entries ===")
	c.io.Println()

	if len(entries) == 0 {
		c.io.Println("No entries found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tEXERCISE\tCOUNT\tXP\tID")
	total := 0
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", e.Date, e.Exercise, e.Count, e.XP, e.ID)
		total += e.Count
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}

	c.io.Println()
	c.io.Printf("Total: %d entries, %d repetitions\n", len(entries), total)
	return nil
}

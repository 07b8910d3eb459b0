package cli

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fitjournal/internal/client/journal"
	"github.com/iudanet/fitjournal/internal/models"
)

func TestCli_runWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reports atomic.Int32
	mockJournal := &journal.ServiceMock{
		StatusFunc: func(ctx context.Context) (*journal.Status, error) {
			if reports.Add(1) == 2 {
				cancel()
			}
			return &journal.Status{
				Pending:  []*models.OfflineOperation{{ID: "op-1"}},
				Progress: models.SyncProgress{Completed: 4},
			}, nil
		},
	}

	var started atomic.Int32
	runner := RunnerFunc(func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return ctx.Err()
	})

	out := &output{}
	cli := New(newMockIO(out, ""), mockJournal, runner, runner)

	done := make(chan error, 1)
	go func() { done <- cli.Run(ctx, "watch", []string{"-interval", "10ms"}) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	assert.Equal(t, int32(2), started.Load())
	assert.Contains(t, out.String(), "online | pending 1 | failed 0 | queued 0 | delivered 4 | dropped 0")
}

func TestCli_runWatch_RunnerError(t *testing.T) {
	boom := errors.New("bolt: database not open")
	runner := RunnerFunc(func(ctx context.Context) error { return boom })

	cli := New(newMockIO(&output{}, ""), &journal.ServiceMock{}, runner)

	err := cli.Run(context.Background(), "watch", []string{"-interval", "1h"})
	assert.ErrorIs(t, err, boom)
}

func TestCli_runWatch_BadInterval(t *testing.T) {
	cli := New(newMockIO(&output{}, ""), &journal.ServiceMock{})

	assert.ErrorIs(t, cli.Run(context.Background(), "watch", []string{"-interval", "0s"}), ErrUsage)
}

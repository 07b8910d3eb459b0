package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fitjournal/internal/client/journal"
	"github.com/iudanet/fitjournal/internal/client/offline"
	"github.com/iudanet/fitjournal/internal/client/queue"
)

// TestCli_runSync_Success проверяет успешную синхронизацию и вывод отчёта
func TestCli_runSync_Success(t *testing.T) {
	out := &output{}
	mockJournal := &journal.ServiceMock{
		SyncFunc: func(ctx context.Context) (*journal.SyncReport, error) {
			return &journal.SyncReport{
				Replay: offline.SyncResult{Attempted: 2, Synced: 2, Skipped: 1},
				Drain:  queue.DrainResult{Attempted: 3, Completed: 2, Retried: 1},
			}, nil
		},
	}
	cli := New(newMockIO(out, ""), mockJournal)

	require.NoError(t, cli.Run(context.Background(), "sync", nil))

	text := out.String()
	assert.Len(t, mockJournal.SyncCalls(), 1)
	assert.Contains(t, text, "Synchronization completed")
	assert.Contains(t, text, "Replayed operations: 2 (synced 2, failed 0, still queued 1)")
	assert.Contains(t, text, "Queue items:         3 (delivered 2, retrying 1, dropped 0)")
	assert.NotContains(t, text, "Some writes failed")
}

func TestCli_runSync_Failures(t *testing.T) {
	out := &output{}
	mockJournal := &journal.ServiceMock{
		SyncFunc: func(ctx context.Context) (*journal.SyncReport, error) {
			return &journal.SyncReport{Drain: queue.DrainResult{Attempted: 1, Failed: 1}}, nil
		},
	}
	cli := New(newMockIO(out, ""), mockJournal)

	require.NoError(t, cli.Run(context.Background(), "sync", nil))
	assert.Contains(t, out.String(), "Some writes failed")
}

func TestCli_runSync_Offline(t *testing.T) {
	mockJournal := &journal.ServiceMock{
		SyncFunc: func(ctx context.Context) (*journal.SyncReport, error) {
			return nil, journal.ErrOffline
		},
	}
	cli := New(newMockIO(&output{}, ""), mockJournal)

	err := cli.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server is unreachable")
}

func TestCli_runRetry(t *testing.T) {
	ctx := context.Background()
	out := &output{}
	results := []int{0, 2}
	mockJournal := &journal.ServiceMock{
		RetryFailedFunc: func(ctx context.Context) int {
			n := results[0]
			results = results[1:]
			return n
		},
	}
	cli := New(newMockIO(out, ""), mockJournal)

	require.NoError(t, cli.Run(ctx, "retry", nil))
	require.NoError(t, cli.Run(ctx, "retry", nil))

	assert.Contains(t, out.String(), "No failed operations.")
	assert.Contains(t, out.String(), "2 failed operation(s) moved back to pending")
}

func TestCli_runReset(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     string
		wantOut   string
		args      []string
		wantReset bool
	}{
		{name: "confirmed", input: "yes", wantReset: true, wantOut: "Local state reset"},
		{name: "confirmed uppercase", input: "YES", wantReset: true, wantOut: "Local state reset"},
		{name: "declined", input: "no", wantOut: "Aborted."},
		{name: "flag skips prompt", args: []string{"-yes"}, wantReset: true, wantOut: "Local state reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &output{}
			mockIO := newMockIO(out, tt.input)
			mockJournal := &journal.ServiceMock{
				ResetFunc: func(ctx context.Context) {},
			}
			cli := New(mockIO, mockJournal)

			require.NoError(t, cli.Run(ctx, "reset", tt.args))

			assert.Equal(t, tt.wantReset, len(mockJournal.ResetCalls()) == 1)
			assert.Contains(t, out.String(), tt.wantOut)
			if len(tt.args) > 0 {
				assert.Empty(t, mockIO.ReadInputCalls())
			}
		})
	}
}

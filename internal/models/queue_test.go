package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{in: "high", want: PriorityHigh},
		{in: "NORMAL", want: PriorityNormal},
		{in: "Low", want: PriorityLow},
		{in: "", want: PriorityNormal},
		{in: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePriority(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestSyncQueueItem_Less(t *testing.T) {
	t0 := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	high := &SyncQueueItem{Priority: PriorityHigh, EnqueuedAt: t0.Add(time.Minute), Seq: 3}
	early := &SyncQueueItem{Priority: PriorityNormal, EnqueuedAt: t0, Seq: 1}
	late := &SyncQueueItem{Priority: PriorityNormal, EnqueuedAt: t0.Add(time.Second), Seq: 2}
	sameTime := &SyncQueueItem{Priority: PriorityNormal, EnqueuedAt: t0, Seq: 4}
	unset := &SyncQueueItem{EnqueuedAt: t0.Add(-time.Hour), Seq: 0}
	low := &SyncQueueItem{Priority: PriorityLow, EnqueuedAt: t0.Add(-time.Hour), Seq: 5}

	assert.True(t, high.Less(early))
	assert.True(t, early.Less(late))
	assert.False(t, late.Less(early))
	assert.True(t, early.Less(sameTime))
	assert.True(t, unset.Less(early), "empty priority ranks as NORMAL")
	assert.True(t, late.Less(low))
}

func TestNewSyncQueueItemID(t *testing.T) {
	at := time.Unix(0, 1700000000000000000)
	m := NewDelete("/api/v1/entries/1")

	assert.Equal(t, "delete:/api/v1/entries/1:1700000000000000000:7", NewSyncQueueItemID(m, at, 7))
	assert.NotEqual(t, NewSyncQueueItemID(m, at, 7), NewSyncQueueItemID(m, at, 8))
}

func TestSyncQueueItem_Clone(t *testing.T) {
	m, err := NewCreate("/api/v1/entries", map[string]string{"exercise": "squats"})
	require.NoError(t, err)
	item := &SyncQueueItem{ID: "x", Mutation: m, RetryCount: 1}

	c := item.Clone()
	c.RetryCount++
	c.Mutation.Payload[0] = '['

	assert.Equal(t, 1, item.RetryCount)
	assert.Equal(t, byte('{'), item.Mutation.Payload[0])
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheEntry_Expired(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	e := &CacheEntry[string]{Key: "k", CreatedAt: now, ExpiresAt: now.Add(time.Minute)}

	assert.False(t, e.Expired(now))
	assert.False(t, e.Expired(now.Add(59*time.Second)))
	assert.True(t, e.Expired(now.Add(time.Minute)))
}

package connectivity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder собирает уведомления о переходах
type recorder struct {
	states []bool
	mu     sync.Mutex
}

func (r *recorder) listen(online bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, online)
}

func (r *recorder) States() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.states...)
}

func TestManual(t *testing.T) {
	m := NewManual(false)
	assert.False(t, m.IsOnline())

	rec := &recorder{}
	unsubscribe := m.Subscribe(rec.listen)

	m.SetOnline(true)
	m.SetOnline(true) // без перехода уведомления нет
	m.SetOnline(false)

	assert.Equal(t, []bool{true, false}, rec.States())

	unsubscribe()
	unsubscribe()
	m.SetOnline(true)

	assert.True(t, m.IsOnline())
	assert.Equal(t, []bool{true, false}, rec.States())
}

func TestManual_MultipleSubscribers(t *testing.T) {
	m := NewManual(true)

	var order []string
	m.Subscribe(func(online bool) { order = append(order, "first") })
	m.Subscribe(func(online bool) { order = append(order, "second") })

	m.SetOnline(false)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestManual_ListenerMayReadState(t *testing.T) {
	m := NewManual(false)

	var seen bool
	m.Subscribe(func(online bool) { seen = m.IsOnline() })
	m.SetOnline(true)

	assert.True(t, seen)
}

func TestProber_Probe(t *testing.T) {
	ctx := context.Background()

	var healthy atomic.Bool
	pinger := &PingerMock{
		PingFunc: func(ctx context.Context) error {
			if healthy.Load() {
				return nil
			}
			return errors.New("connection refused")
		},
	}
	p := NewProber(pinger, time.Hour, nil)
	rec := &recorder{}
	p.Subscribe(rec.listen)

	assert.False(t, p.IsOnline())
	assert.False(t, p.Probe(ctx))
	assert.Empty(t, rec.States(), "still offline, no transition")

	healthy.Store(true)
	assert.True(t, p.Probe(ctx))
	assert.True(t, p.Probe(ctx))

	healthy.Store(false)
	assert.False(t, p.Probe(ctx))

	assert.Equal(t, []bool{true, false}, rec.States())
	assert.Len(t, pinger.PingCalls(), 4)
}

func TestProber_CanceledProbeKeepsState(t *testing.T) {
	pinger := &PingerMock{
		PingFunc: func(ctx context.Context) error {
			return ctx.Err()
		},
	}
	p := NewProber(pinger, time.Hour, nil)
	p.online.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.True(t, p.Probe(ctx))
	assert.True(t, p.IsOnline())
}

func TestProber_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pinger := &PingerMock{
		PingFunc: func(ctx context.Context) error { return nil },
	}
	p := NewProber(pinger, 10*time.Millisecond, nil)

	wentOnline := make(chan struct{})
	var once sync.Once
	p.Subscribe(func(online bool) {
		if online {
			once.Do(func() { close(wentOnline) })
		}
	})

	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()

	select {
	case <-wentOnline:
	case <-time.After(5 * time.Second):
		t.Fatal("prober did not report online")
	}

	require.Eventually(t, func() bool {
		return len(pinger.PingCalls()) >= 3
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}

func TestNewProber_DefaultInterval(t *testing.T) {
	p := NewProber(&PingerMock{}, 0, nil)
	assert.Equal(t, DefaultProbeInterval, p.interval)
}

package connectivity

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultProbeInterval интервал проверки доступности сервера по умолчанию
const DefaultProbeInterval = 10 * time.Second

//go:generate moq -out pinger_mock.go . Pinger

// Pinger проверяет доступность сервера
type Pinger interface {
	Ping(ctx context.Context) error
}

// Prober derives the connectivity signal from periodic health checks.
// It starts offline; the first successful probe reports the transition to online.
type Prober struct {
	pinger   Pinger
	logger   *slog.Logger
	subs     listeners
	interval time.Duration
	online   atomic.Bool
}

// NewProber creates a prober. interval <= 0 uses DefaultProbeInterval.
func NewProber(pinger Pinger, interval time.Duration, logger *slog.Logger) *Prober {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Prober{
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
}

// IsOnline returns the result of the last probe
func (p *Prober) IsOnline() bool {
	return p.online.Load()
}

// Subscribe registers fn and returns a function that removes it
func (p *Prober) Subscribe(fn func(online bool)) func() {
	return p.subs.add(fn)
}

// Probe pings the server once and notifies subscribers if the state changed.
func (p *Prober) Probe(ctx context.Context) bool {
	err := p.pinger.Ping(ctx)
	if ctx.Err() != nil {
		// Отмена контекста не означает потерю связи
		return p.online.Load()
	}
	online := err == nil

	if p.online.Swap(online) == online {
		return online
	}

	if online {
		p.logger.Info("server is reachable, going online")
	} else {
		p.logger.Warn("server is unreachable, going offline", "error", err)
	}
	p.subs.notify(online)

	return online
}

// Run probes immediately and then every interval until ctx is done.
func (p *Prober) Run(ctx context.Context) error {
	p.Probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}

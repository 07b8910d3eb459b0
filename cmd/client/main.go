package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/fitjournal/internal/client/api"
	"github.com/iudanet/fitjournal/internal/client/cache"
	"github.com/iudanet/fitjournal/internal/client/cli"
	"github.com/iudanet/fitjournal/internal/client/config"
	"github.com/iudanet/fitjournal/internal/client/connectivity"
	"github.com/iudanet/fitjournal/internal/client/iocli"
	"github.com/iudanet/fitjournal/internal/client/journal"
	"github.com/iudanet/fitjournal/internal/client/offline"
	"github.com/iudanet/fitjournal/internal/client/queue"
	"github.com/iudanet/fitjournal/internal/client/storage"
	"github.com/iudanet/fitjournal/internal/client/storage/boltdb"
	"github.com/iudanet/fitjournal/internal/client/storage/memory"
	"github.com/iudanet/fitjournal/internal/client/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	stdio := iocli.NewStdio()
	usage := cli.New(stdio, nil)

	cfg, args, err := config.Load("fitjournal", os.Args[1:], os.LookupEnv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Show version and exit if requested
	if cfg.Version {
		printVersion()
		return 0
	}

	if len(args) == 0 {
		usage.PrintUsage()
		return 1
	}
	command := args[0]

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := openStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		return 1
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(cfg.ServerURL, cfg.RequestTimeout)

	store := cache.NewStore[api.Response](ctx, backend, cache.StoreOptions{
		DefaultTTL: cfg.CacheTTL,
		MaxEntries: cfg.CacheMaxEntries,
	}, logger.With("component", "cache"))
	strategy := cache.NewStrategy(store, logger.With("component", "cache"))

	q := queue.New(ctx, apiClient, journal.NewInvalidator(strategy), backend, queue.Config{
		DrainInterval: cfg.DrainInterval,
		BatchSize:     cfg.BatchSize,
		MaxRetries:    cfg.MaxRetries,
	}, logger.With("component", "queue"))

	// В offline режиме сервер не опрашивается
	var (
		conn    offline.Connectivity
		runners = []cli.Runner{q}
		prober  *connectivity.Prober
	)
	if cfg.Offline {
		conn = connectivity.NewManual(false)
	} else {
		prober = connectivity.NewProber(apiClient, cfg.ProbeInterval, logger.With("component", "connectivity"))
		conn = prober
		runners = append(runners, prober)
	}

	coordinator := offline.New(ctx, q, conn, backend, backend, offline.Config{}, logger.With("component", "offline"))
	defer coordinator.Close()

	// Первая проверка связи: при успехе отложенные операции отправляются сразу
	if prober != nil {
		prober.Probe(ctx)
	}

	svc := journal.NewService(coordinator, q, strategy, apiClient, backend, journal.Options{
		CacheTTL: cfg.CacheTTL,
		StatsTTL: cfg.StatsTTL,
	}, logger.With("component", "journal"))

	app := cli.New(stdio, svc, runners...)
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if command != "watch" && conn.IsOnline() {
		result := q.Drain(ctx)
		logger.Debug("queue drained before exit",
			"attempted", result.Attempted,
			"completed", result.Completed,
			"failed", result.Failed)
	}
	return 0
}

// openStorage открывает локальное хранилище, выбранное в конфигурации
func openStorage(ctx context.Context, cfg config.Config) (storage.Backend, error) {
	switch cfg.Storage {
	case config.BackendBolt:
		return boltdb.New(ctx, cfg.DBPath)
	case config.BackendSQLite:
		return sqlite.New(ctx, cfg.DBPath)
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func printVersion() {
	fmt.Printf("FitJournal Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

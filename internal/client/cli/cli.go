package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/fitjournal/internal/client/iocli"
	"github.com/iudanet/fitjournal/internal/client/journal"
)

// ErrUnknownCommand возвращается для неизвестной команды
var ErrUnknownCommand = errors.New("unknown command")

// ErrUsage неверные аргументы команды
var ErrUsage = errors.New("usage")

// Runner фоновый цикл, который работает до отмены контекста
type Runner interface {
	Run(ctx context.Context) error
}

// RunnerFunc адаптирует функцию к Runner
type RunnerFunc func(ctx context.Context) error

// Run calls f(ctx)
func (f RunnerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

type Cli struct {
	io      iocli.IO
	journal journal.Service
	runners []Runner
}

// New создает CLI. runners запускаются командой watch.
func New(io iocli.IO, journalService journal.Service, runners ...Runner) *Cli {
	return &Cli{
		io:      io,
		journal: journalService,
		runners: runners,
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "log":
		return c.runLog(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "stats":
		return c.runStats(ctx)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx)
	case "retry":
		return c.runRetry(ctx)
	case "reset":
		return c.runReset(ctx, args)
	case "watch":
		return c.runWatch(ctx, args)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("FitJournal Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  fitjournal [OPTIONS] COMMAND [ARGS]")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  -version                 Show version information")
	c.io.Println("  -server URL              Server URL (default: http://localhost:8080)")
	c.io.Println("  -storage NAME            Local storage: bolt, sqlite or memory (default: bolt)")
	c.io.Println("  -db PATH                 Path to local database (default: fitjournal-client.db)")
	c.io.Println("  -offline                 Do not contact the server, buffer writes locally")
	c.io.Println("  -verbose                 Enable debug logging")
	c.io.Println("  Run with -h for the full list. Every option can also be set with")
	c.io.Println("  a FITJOURNAL_* environment variable, e.g. FITJOURNAL_SERVER.")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  log <exercise> <count> [date]   Log repetitions (date: YYYY-MM-DD, default today)")
	c.io.Println("  update <id> <count>             Change the count of an entry")
	c.io.Println("  delete <id>                     Delete an entry")
	c.io.Println("  list [-exercise X] [-from D] [-to D]")
	c.io.Println("                                  List journal entries")
	c.io.Println("  stats                           Show XP, level and streaks")
	c.io.Println("  status                          Show offline operations, sync queue and cache")
	c.io.Println("  sync                            Replay pending operations and drain the queue")
	c.io.Println("  retry                           Move failed operations back to pending")
	c.io.Println("  reset [-yes]                    Drop queued writes, operations and cache")
	c.io.Println("  watch [-interval 5s]            Keep syncing in the background and report progress")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  fitjournal log pushups 25")
	c.io.Println("  fitjournal log \"jumping jacks\" 40 2026-10-14")
	c.io.Println("  fitjournal -offline log squats 50")
	c.io.Println("  fitjournal list -exercise pushups -from 2026-10-01")
	c.io.Println("  fitjournal -storage sqlite -db journal.sqlite status")
}

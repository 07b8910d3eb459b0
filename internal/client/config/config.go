// Package config holds the client configuration: defaults, FITJOURNAL_*
// environment overrides and command line flags, in increasing priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
var ErrInvalidConfig = errors.New("invalid config")

// Storage backends
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// EnvPrefix префикс переменных окружения клиента
const EnvPrefix = "FITJOURNAL_"

// Config конфигурация клиента
type Config struct {
	ServerURL       string        // адрес сервера журнала
	Storage         string        // bolt, sqlite или memory
	DBPath          string        // путь к локальной базе (bolt/sqlite)
	RequestTimeout  time.Duration // таймаут HTTP запроса
	CacheTTL        time.Duration // TTL кэша чтений по умолчанию
	StatsTTL        time.Duration // TTL кэша статистики (XP/streak меняются после каждой записи)
	DrainInterval   time.Duration // интервал обработки очереди синхронизации
	ProbeInterval   time.Duration // интервал проверки доступности сервера
	CacheMaxEntries int           // максимальное количество записей кэша
	BatchSize       int           // размер пакета очереди
	MaxRetries      int           // количество повторов до перевода в FAILED
	Offline         bool          // принудительный offline режим
	Verbose         bool          // debug логирование
	Version         bool          // показать версию и выйти
}

// Default returns the default configuration
func Default() Config {
	return Config{
		ServerURL:       "http://localhost:8080",
		Storage:         BackendBolt,
		DBPath:          "fitjournal-client.db",
		RequestTimeout:  30 * time.Second,
		CacheTTL:        5 * time.Minute,
		StatsTTL:        30 * time.Second,
		DrainInterval:   5 * time.Second,
		ProbeInterval:   10 * time.Second,
		CacheMaxEntries: 1000,
		BatchSize:       10,
		MaxRetries:      3,
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("server url %q must be an absolute http(s) url", c.ServerURL))
	}

	switch c.Storage {
	case BackendBolt, BackendSQLite:
		if c.DBPath == "" {
			errs = append(errs, fmt.Errorf("db path is required for %s storage", c.Storage))
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q, use %s, %s or %s", c.Storage, BackendBolt, BackendSQLite, BackendMemory))
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"request timeout", c.RequestTimeout},
		{"cache ttl", c.CacheTTL},
		{"stats ttl", c.StatsTTL},
		{"drain interval", c.DrainInterval},
		{"probe interval", c.ProbeInterval},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", d.name, d.value))
		}
	}

	if c.CacheMaxEntries <= 0 {
		errs = append(errs, fmt.Errorf("cache max entries must be positive, got %d", c.CacheMaxEntries))
	}
	if c.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch size must be positive, got %d", c.BatchSize))
	}
	if c.MaxRetries <= 0 {
		errs = append(errs, fmt.Errorf("max retries must be positive, got %d", c.MaxRetries))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// RegisterFlags binds the configuration fields to fs. Current field values
// become the flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.Version, "version", c.Version, "Show version information")
	fs.StringVar(&c.ServerURL, "server", c.ServerURL, "Server URL")
	fs.StringVar(&c.Storage, "storage", c.Storage, "Local storage backend: bolt, sqlite or memory")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "Path to local database")
	fs.DurationVar(&c.RequestTimeout, "timeout", c.RequestTimeout, "HTTP request timeout")
	fs.DurationVar(&c.CacheTTL, "cache-ttl", c.CacheTTL, "Default cache TTL")
	fs.DurationVar(&c.StatsTTL, "stats-ttl", c.StatsTTL, "Cache TTL for stats")
	fs.IntVar(&c.CacheMaxEntries, "cache-max-entries", c.CacheMaxEntries, "Maximum number of cached responses")
	fs.DurationVar(&c.DrainInterval, "drain-interval", c.DrainInterval, "Sync queue drain interval")
	fs.IntVar(&c.BatchSize, "batch-size", c.BatchSize, "Sync queue batch size")
	fs.IntVar(&c.MaxRetries, "max-retries", c.MaxRetries, "Retries before a queued write is dropped")
	fs.DurationVar(&c.ProbeInterval, "probe-interval", c.ProbeInterval, "Server health probe interval")
	fs.BoolVar(&c.Offline, "offline", c.Offline, "Do not contact the server, buffer writes locally")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "Enable debug logging")
}

// ApplyEnv overrides fields from FITJOURNAL_* variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = d
		}
	}
	num := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	str("SERVER", &c.ServerURL)
	str("STORAGE", &c.Storage)
	str("DB", &c.DBPath)
	dur("TIMEOUT", &c.RequestTimeout)
	dur("CACHE_TTL", &c.CacheTTL)
	dur("STATS_TTL", &c.StatsTTL)
	num("CACHE_MAX_ENTRIES", &c.CacheMaxEntries)
	dur("DRAIN_INTERVAL", &c.DrainInterval)
	num("BATCH_SIZE", &c.BatchSize)
	num("MAX_RETRIES", &c.MaxRetries)
	dur("PROBE_INTERVAL", &c.ProbeInterval)
	boolean("OFFLINE", &c.Offline)
	boolean("VERBOSE", &c.Verbose)

	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Load builds the configuration from defaults, the environment and args
// (flags win over the environment) and returns the remaining arguments.
func Load(name string, args []string, lookup func(string) (string, bool)) (Config, []string, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		return Config{}, nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	if cfg.Version {
		return cfg, fs.Args(), nil
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

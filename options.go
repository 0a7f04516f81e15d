package sliceq

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/brejnholt/sliceq/backoff"
	"github.com/brejnholt/sliceq/internal/logger"
	"github.com/brejnholt/sliceq/internal/projector"
	"github.com/brejnholt/sliceq/journal"
)

type Config struct {
	logger         Logger
	observer       Observer
	startCtx       func() context.Context
	tablePrefix    string
	numberOfSlices int
	pageSize       int
	lagTolerance   time.Duration
	pollInterval   time.Duration
	retryBackoff   func(retries int64) time.Duration
	mode           projector.Mode
}

var tablePrefixRE = regexp.MustCompile(`^[a-z][a-z0-9]{1,20}$`)

func (c *Config) validate() error {
	if c.logger == nil {
		return fmt.Errorf("missing logger: %w", journal.ErrInvalidConfig)
	}

	if c.observer == nil {
		return fmt.Errorf("missing observer: %w", journal.ErrInvalidConfig)
	}

	if c.startCtx == nil {
		return fmt.Errorf("missing start context: %w", journal.ErrInvalidConfig)
	}

	if !tablePrefixRE.MatchString(c.tablePrefix) {
		return fmt.Errorf("invalid table prefix %q, must match %s: %w",
			c.tablePrefix, tablePrefixRE.String(), journal.ErrInvalidConfig)
	}

	if c.numberOfSlices < 1 {
		return fmt.Errorf("number of slices %d below 1: %w", c.numberOfSlices, journal.ErrInvalidConfig)
	}

	if c.pageSize < 1 {
		return fmt.Errorf("page size %d below 1: %w", c.pageSize, journal.ErrInvalidConfig)
	}

	if c.lagTolerance < 0 {
		return fmt.Errorf("negative lag tolerance %s: %w", c.lagTolerance, journal.ErrInvalidConfig)
	}

	if c.pollInterval < 1 {
		return fmt.Errorf("poll interval %s below 1: %w", c.pollInterval, journal.ErrInvalidConfig)
	}

	if c.retryBackoff == nil {
		return fmt.Errorf("missing retry backoff: %w", journal.ErrInvalidConfig)
	}

	return nil
}

type Option func(cfg *Config)

func defaultOptions() *Config {
	return applyOptions(&Config{},
		// add default options here
		WithNoopLogger(),
		WithNoopObserver(),
		WithStartContext(context.Background()),
		WithTablePrefix("sq"),
		WithNumberOfSlices(128),
		WithPageSize(100),
		WithLagTolerance(time.Millisecond*250),
		WithPollInterval(time.Second),
		WithRetryBackoff(defaultRetryBackoff),
		WithAtLeastOnceDelivery(),
	)
}

func applyOptions(options *Config, opts ...Option) *Config {
	for _, opt := range opts {
		opt(options)
	}

	return options
}

func WithLogger(logger Logger) Option {
	return func(cfg *Config) {
		cfg.logger = logger
	}
}

func WithNoopLogger() Option {
	return WithLogger(logger.Noop{})
}

func WithDefaultSlog() Option {
	return WithSlog(slog.Default())
}

func WithSlog(log *slog.Logger) Option {
	return WithLogger(
		logger.NewSlog(log),
	)
}

// WithPollObserver registers the metrics side channel that is called once
// per poll with batch size, slice range and elapsed time.
func WithPollObserver(observer Observer) Option {
	return func(cfg *Config) {
		cfg.observer = observer
	}
}

func WithNoopObserver() Option {
	return WithPollObserver(noopObserver{})
}

// WithStartContext uses the provided context during initialization.
func WithStartContext(ctx context.Context) Option {
	return func(cfg *Config) {
		cfg.startCtx = func() context.Context {
			return ctx
		}
	}
}

// WithTablePrefix uses the given prefix for the database tables this
// library creates and reads.
// Table names will have the form "{prefix}_{name}".
// Example: "sq_journal"
//
// Queries are rendered once per process, so all stores in a process must
// share one prefix; creating a store with a second prefix fails.
func WithTablePrefix(prefix string) Option {
	return func(cfg *Config) {
		cfg.tablePrefix = prefix
	}
}

// WithNumberOfSlices fixes the slice partition count. It must equal the
// count used by the writer; changing it re-buckets every persistence id.
func WithNumberOfSlices(numberOfSlices int) Option {
	return func(cfg *Config) {
		cfg.numberOfSlices = numberOfSlices
	}
}

// WithPageSize caps the rows read per poll and per replay page. Size it
// above the largest number of events a single transaction commits at one
// instant, or a cursor can stall on a page full of already-seen rows.
func WithPageSize(pageSize int) Option {
	return func(cfg *Config) {
		cfg.pageSize = pageSize
	}
}

// WithLagTolerance keeps polls behind the database clock by d, so that
// transactions still committing cannot leave rows behind an advanced
// cursor. Configure it at or above the longest write transaction. Zero
// disables the bound and with it the no-loss guarantee.
func WithLagTolerance(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.lagTolerance = d
	}
}

// WithPollInterval sets the sleep between polls that drained the journal.
func WithPollInterval(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.pollInterval = d
	}
}

// WithRetryBackoff sets the delay before retry number n after consecutive
// transient store failures during projection.
func WithRetryBackoff(fn func(retries int64) time.Duration) Option {
	return func(cfg *Config) {
		cfg.retryBackoff = fn
	}
}

// WithAtLeastOnceDelivery checkpoints offsets after a batch was handled.
// This is the default.
func WithAtLeastOnceDelivery() Option {
	return func(cfg *Config) {
		cfg.mode = projector.AtLeastOnce
	}
}

// WithAtMostOnceDelivery checkpoints offsets before a batch is handled.
func WithAtMostOnceDelivery() Option {
	return func(cfg *Config) {
		cfg.mode = projector.AtMostOnce
	}
}

func defaultRetryBackoff(retries int64) time.Duration {
	return min(backoff.Exponential(time.Millisecond*100, min(retries, 8)), time.Second*30)
}

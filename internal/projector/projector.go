package projector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brejnholt/sliceq/internal/retry"
	"github.com/brejnholt/sliceq/internal/singleflight"
	"github.com/brejnholt/sliceq/journal"
)

type Config struct {
	PollInterval time.Duration
	PageSize     int
	Backoff      func(retries int64) time.Duration
	Mode         Mode
}

func New(logger Logger, observer Observer, newCursor NewCursorFunc, offsets OffsetStore, handler Handler, cfg Config) *Projector {
	return &Projector{
		logger:    logger,
		observer:  observer,
		newCursor: newCursor,
		offsets:   offsets,
		handler:   handler,
		cfg:       cfg,

		single: singleflight.New[journal.SliceRange](),
	}
}

// Projector drives one worker per slice range: poll, hand the batch
// downstream in order, checkpoint, sleep when the journal is drained.
// Slice ranges partition the journal, so workers share no state.
type Projector struct {
	logger    Logger
	observer  Observer
	newCursor NewCursorFunc
	offsets   OffsetStore
	handler   Handler
	cfg       Config

	single *singleflight.Group[journal.SliceRange]
}

// Run blocks until ctx is cancelled or a worker fails fatally. Transient
// store failures are retried with escalating backoff and never end a
// worker. A range already running in this projector is not started twice.
func (p *Projector) Run(ctx context.Context, ranges []journal.SliceRange) error {
	if len(ranges) == 0 {
		return fmt.Errorf("[sliceq] no slice ranges to project: %w", journal.ErrInvalidConfig)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, sliceRange := range ranges {
		g.Go(func() error {
			return p.single.TryDo(sliceRange, func() error {
				return p.run(ctx, sliceRange)
			})
		})
	}

	return g.Wait()
}

func (p *Projector) run(ctx context.Context, sliceRange journal.SliceRange) error {
	offset, err := p.offsets.Load(ctx, sliceRange)
	if err != nil {
		return fmt.Errorf("[sliceq] load offset for %s: %w", sliceRange, err)
	}

	cursor, err := p.newCursor(sliceRange, offset)
	if err != nil {
		return err
	}

	p.logger.InfofCtx(ctx, "[sliceq] Projecting %s from %s", sliceRange, offset.Timestamp)

	var retries int64
	for {
		if ctx.Err() != nil {
			return nil
		}

		started := time.Now()
		batch, next, err := cursor.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			if !errors.Is(err, journal.ErrStoreUnavailable) {
				return err
			}

			retries++
			delay := p.cfg.Backoff(retries)
			p.logger.ErrorfCtx(ctx, "[sliceq] Poll failed on %s, retry %d in %s: %s", sliceRange, retries, delay, err)
			if err := retry.Sleep(ctx, delay); err != nil {
				return nil
			}

			continue
		}

		retries = 0
		p.observer.ObservePoll(journal.PollStats{
			SliceRange: sliceRange,
			Events:     len(batch),
			Elapsed:    time.Since(started),
		})

		if len(batch) > 0 {
			err = p.deliver(ctx, sliceRange, batch, next)
			if err != nil {
				return err
			}
		}

		if len(batch) < p.cfg.PageSize {
			if err := retry.Sleep(ctx, p.cfg.PollInterval); err != nil {
				return nil
			}
		}
	}
}

func (p *Projector) deliver(ctx context.Context, sliceRange journal.SliceRange, batch []journal.Envelope, next journal.Offset) error {
	if p.cfg.Mode == AtMostOnce {
		err := p.offsets.Save(ctx, sliceRange, next)
		if err != nil {
			return fmt.Errorf("[sliceq] save offset for %s: %w", sliceRange, err)
		}
	}

	for _, envelope := range batch {
		err := p.handler.Handle(ctx, envelope)
		if err != nil {
			return fmt.Errorf("[sliceq] handler failed on %s [%d]: %w",
				envelope.PersistenceID, envelope.SeqNr, err)
		}
	}

	if p.cfg.Mode == AtLeastOnce {
		err := p.offsets.Save(ctx, sliceRange, next)
		if err != nil {
			// The worker keeps going; a restart re-delivers from the last
			// successful checkpoint.
			p.logger.ErrorfCtx(ctx, "[sliceq] Checkpoint failed on %s: %s", sliceRange, err)
		}
	}

	return nil
}

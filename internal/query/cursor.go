package query

import (
	"context"
	"fmt"
	"time"

	"github.com/brejnholt/sliceq/internal/database"
	"github.com/brejnholt/sliceq/journal"
)

// NewCursor validates the slice range against the configured slice space
// and anchors the cursor at the given resume point. No store call is made.
func NewCursor(connector Connector, schema Schema, sliceRange journal.SliceRange, from journal.Offset, numberOfSlices, pageSize int, lagTolerance time.Duration) (*Cursor, error) {
	if sliceRange.EntityType == "" {
		return nil, fmt.Errorf("[sliceq] empty entity type: %w", journal.ErrInvalidConfig)
	}
	if sliceRange.Min < 0 || sliceRange.Max >= numberOfSlices || sliceRange.Min > sliceRange.Max {
		return nil, fmt.Errorf("[sliceq] slice range %s outside [0, %d): %w",
			sliceRange, numberOfSlices, journal.ErrInvalidConfig)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("[sliceq] page size %d below 1: %w", pageSize, journal.ErrInvalidConfig)
	}
	if lagTolerance < 0 {
		return nil, fmt.Errorf("[sliceq] negative lag tolerance %s: %w", lagTolerance, journal.ErrInvalidConfig)
	}

	return &Cursor{
		connector:    connector,
		schema:       schema,
		sliceRange:   sliceRange,
		pageSize:     pageSize,
		lagTolerance: lagTolerance,
		offset:       from,
	}, nil
}

// Cursor is the poll state machine over one slice range. It resumes from an
// offset, tolerates out-of-order commit visibility by never reading closer
// to the database clock than the lag tolerance, and deduplicates rows that
// share the resume point's boundary instant.
//
// A cursor is driven by a single worker; it is not safe for concurrent use.
type Cursor struct {
	connector    Connector
	schema       Schema
	sliceRange   journal.SliceRange
	pageSize     int
	lagTolerance time.Duration

	offset journal.Offset
}

func (c *Cursor) SliceRange() journal.SliceRange {
	return c.sliceRange
}

// Offset is the current resume point. It only moves on successful polls.
func (c *Cursor) Offset() journal.Offset {
	return c.offset
}

// Poll reads the next batch in (db_timestamp, seq_nr) order. With a
// positive lag tolerance the window is capped at the database's current
// time minus that tolerance, so rows of transactions still in flight
// cannot be skipped past.
func (c *Cursor) Poll(ctx context.Context) ([]journal.Envelope, journal.Offset, error) {
	return c.poll(ctx, time.Time{}, false)
}

// PollUntil reads like Poll but with an explicit exclusive upper bound
// instead of the lag-derived one. The caller owns the safety of the bound.
func (c *Cursor) PollUntil(ctx context.Context, until time.Time) ([]journal.Envelope, journal.Offset, error) {
	return c.poll(ctx, until, true)
}

func (c *Cursor) poll(ctx context.Context, until time.Time, bounded bool) ([]journal.Envelope, journal.Offset, error) {
	db, err := c.connector.AcquireRead(ctx)
	if err != nil {
		return nil, c.offset, fmt.Errorf("[sliceq] acquire read connection: %w: %w", journal.ErrStoreUnavailable, err)
	}
	defer db.Release()

	if !bounded && c.lagTolerance > 0 {
		now, err := c.schema.SelectCurrentTimestamp(ctx, db)
		if err != nil {
			return nil, c.offset, err
		}

		until = now.Add(-c.lagTolerance)
		bounded = true
	}

	var (
		lower = c.offset.Timestamp
		batch []journal.Envelope
	)

	switch {
	case bounded && !until.After(lower):
		// The window is empty; re-poll later without a round trip.
		return nil, c.offset, nil
	case bounded:
		scanned, err := c.schema.SelectEventsBySlicesUntil(ctx, db,
			c.sliceRange.EntityType, c.sliceRange.Min, c.sliceRange.Max, lower, until, c.pageSize)
		if err != nil {
			return nil, c.offset, err
		}
		batch, err = c.decodeUnseen(scanned)
		if err != nil {
			return nil, c.offset, err
		}
	default:
		scanned, err := c.schema.SelectEventsBySlices(ctx, db,
			c.sliceRange.EntityType, c.sliceRange.Min, c.sliceRange.Max, lower, c.pageSize)
		if err != nil {
			return nil, c.offset, err
		}
		batch, err = c.decodeUnseen(scanned)
		if err != nil {
			return nil, c.offset, err
		}
	}

	c.offset = c.offset.Advance(batch)

	return batch, c.offset, nil
}

func (c *Cursor) decodeUnseen(rows []database.JournalRow) ([]journal.Envelope, error) {
	var batch []journal.Envelope
	for _, row := range rows {
		if c.offset.Contains(row.Timestamp, row.PersistenceID, row.SeqNr) {
			continue
		}

		envelope, err := decode(row)
		if err != nil {
			return nil, err
		}

		batch = append(batch, envelope)
	}

	return batch, nil
}

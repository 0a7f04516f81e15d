package sliceq

import (
	"context"
	"time"

	"github.com/brejnholt/sliceq/internal/query"
	"github.com/brejnholt/sliceq/journal"
)

// Cursor is a restartable poll step over one slice range. Each Poll
// returns the next batch in (db_timestamp, seq_nr) order together with the
// offset to resume from; a failed poll leaves the offset untouched, so
// retrying the same poll is always safe.
//
// A cursor is meant to be driven by a single worker. Store.Project wraps
// it in a ready-made poll loop.
type Cursor struct {
	inner *query.Cursor
}

func (c *Cursor) SliceRange() journal.SliceRange {
	return c.inner.SliceRange()
}

// Offset is the cursor's current resume point.
func (c *Cursor) Offset() journal.Offset {
	return c.inner.Offset()
}

// Poll reads the next batch, capped at the configured page size and, when
// a lag tolerance is configured, at the database clock minus the
// tolerance. An empty batch means the journal is drained up to the lag
// horizon; re-poll after the poll interval.
func (c *Cursor) Poll(ctx context.Context) ([]journal.Envelope, journal.Offset, error) {
	return c.inner.Poll(ctx)
}

// PollUntil reads like Poll with an explicit exclusive upper timestamp
// bound instead of the lag-derived one.
func (c *Cursor) PollUntil(ctx context.Context, until time.Time) ([]journal.Envelope, journal.Offset, error) {
	return c.inner.PollUntil(ctx, until)
}

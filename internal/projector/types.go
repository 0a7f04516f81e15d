package projector

import (
	"context"

	"github.com/brejnholt/sliceq/journal"
)

// Cursor is one poll step over a slice range; implemented by the query
// package, mocked in tests.
type Cursor interface {
	Poll(ctx context.Context) ([]journal.Envelope, journal.Offset, error)
}

// NewCursorFunc builds a cursor for a slice range resuming at offset.
type NewCursorFunc func(sliceRange journal.SliceRange, from journal.Offset) (Cursor, error)

type Handler interface {
	Handle(ctx context.Context, envelope journal.Envelope) error
}

// OffsetStore persists resume points between runs. Commit semantics beyond
// the save ordering selected by Mode are owned by the implementation.
type OffsetStore interface {
	Load(ctx context.Context, sliceRange journal.SliceRange) (journal.Offset, error)
	Save(ctx context.Context, sliceRange journal.SliceRange, offset journal.Offset) error
}

type Observer interface {
	ObservePoll(stats journal.PollStats)
}

type Logger interface {
	InfofCtx(ctx context.Context, template string, args ...any)
	ErrorfCtx(ctx context.Context, template string, args ...any)
}

// Mode selects when the offset is checkpointed relative to handling.
type Mode int

const (
	// AtLeastOnce checkpoints after the batch was handled; a crash between
	// handling and checkpointing re-delivers.
	AtLeastOnce Mode = iota
	// AtMostOnce checkpoints before handling; a crash in between drops.
	AtMostOnce
)

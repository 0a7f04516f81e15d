package sliceq

import (
	"context"

	"github.com/brejnholt/sliceq/journal"
)

// Handler consumes projected envelopes in order, one slice range at a
// time. Returning an error stops the owning worker; restarting is the
// supervisor's job and resumes from the last checkpoint.
type Handler interface {
	Handle(ctx context.Context, envelope journal.Envelope) error
}

type HandlerFunc func(ctx context.Context, envelope journal.Envelope) error

func (fn HandlerFunc) Handle(ctx context.Context, envelope journal.Envelope) error {
	return fn(ctx, envelope)
}

// OffsetStore persists resume points across restarts. Load returns the
// zero offset for a range that was never checkpointed.
type OffsetStore interface {
	Load(ctx context.Context, sliceRange journal.SliceRange) (journal.Offset, error)
	Save(ctx context.Context, sliceRange journal.SliceRange, offset journal.Offset) error
}

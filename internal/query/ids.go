package query

import (
	"context"
	"fmt"
	"iter"

	"github.com/brejnholt/sliceq/journal"
)

// PersistenceIDs returns one page of distinct persistence ids in lexical
// order, strictly after afterID. An empty afterID starts the enumeration.
func (rd *Reader) PersistenceIDs(ctx context.Context, afterID string, limit int64) ([]string, error) {
	if limit < 1 {
		return nil, fmt.Errorf("[sliceq] limit %d below 1: %w", limit, journal.ErrInvalidConfig)
	}

	db, err := rd.connector.AcquireRead(ctx)
	if err != nil {
		return nil, fmt.Errorf("[sliceq] acquire read connection: %w: %w", journal.ErrStoreUnavailable, err)
	}
	defer db.Release()

	return rd.schema.SelectPersistenceIDs(ctx, db, afterID, limit)
}

// AllPersistenceIDs enumerates every distinct persistence id exactly once
// by chaining pages on the last id of the previous page.
func (rd *Reader) AllPersistenceIDs(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var afterID string
		for {
			ids, err := rd.PersistenceIDs(ctx, afterID, int64(rd.pageSize))
			if err != nil {
				yield("", err)
				return
			}

			for _, id := range ids {
				if !yield(id, nil) {
					return
				}

				afterID = id
			}

			if len(ids) < rd.pageSize {
				return
			}
		}
	}
}

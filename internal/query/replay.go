package query

import (
	"context"
	"fmt"
	"iter"

	"github.com/brejnholt/sliceq/internal/seqs"
	"github.com/brejnholt/sliceq/journal"
)

func NewReader(connector Connector, schema Schema, numberOfSlices, pageSize int) *Reader {
	return &Reader{
		connector:      connector,
		schema:         schema,
		numberOfSlices: numberOfSlices,
		pageSize:       pageSize,
	}
}

// Reader serves the bounded single-identity replay and the persistence id
// enumeration. Both read a closed range, so no lag tolerance applies.
type Reader struct {
	connector      Connector
	schema         Schema
	numberOfSlices int
	pageSize       int
}

// EventsByPersistenceID replays one identity's events in strict seq nr
// order, paging internally. The entity type and slice are derived from the
// persistence id; ids that break the writer convention fail instead of
// resolving to a wrong slice.
func (rd *Reader) EventsByPersistenceID(ctx context.Context, persistenceID string, fromSeqNr, toSeqNr int64) iter.Seq2[journal.Envelope, error] {
	entityType, _, err := journal.ParsePersistenceID(persistenceID)
	if err != nil {
		return seqs.Error2[journal.Envelope](err)
	}

	if fromSeqNr > toSeqNr {
		return seqs.Error2[journal.Envelope](fmt.Errorf("[sliceq] seq nr range [%d-%d] is inverted: %w",
			fromSeqNr, toSeqNr, journal.ErrInvalidConfig))
	}

	if fromSeqNr < 1 {
		fromSeqNr = 1
	}

	slice, err := journal.SliceFor(persistenceID, rd.numberOfSlices)
	if err != nil {
		return seqs.Error2[journal.Envelope](err)
	}

	return func(yield func(journal.Envelope, error) bool) {
		db, err := rd.connector.AcquireRead(ctx)
		if err != nil {
			yield(journal.Envelope{}, fmt.Errorf("[sliceq] acquire read connection: %w: %w",
				journal.ErrStoreUnavailable, err))
			return
		}
		defer db.Release()

		next := fromSeqNr
		for {
			rows, err := rd.schema.SelectEventsByPersistenceID(ctx, db,
				entityType, slice, persistenceID, next, toSeqNr, rd.pageSize)
			if err != nil {
				yield(journal.Envelope{}, err)
				return
			}

			for _, row := range rows {
				envelope, err := decode(row)
				if err != nil {
					yield(journal.Envelope{}, err)
					return
				}

				if !yield(envelope, nil) {
					return
				}

				next = envelope.SeqNr + 1
			}

			if len(rows) < rd.pageSize || next > toSeqNr {
				return
			}
		}
	}
}

package journal

import (
	"maps"
	"time"
)

// Offset is the resume point of a slice range cursor.
//
// Timestamp is the commit timestamp of the last delivered row. Seen holds,
// for every persistence id with a delivered row at exactly that timestamp,
// the highest delivered seq nr. Queries resume with an inclusive lower
// bound on Timestamp, so Seen is what prevents re-delivery of rows that
// share the boundary instant.
type Offset struct {
	Timestamp time.Time
	Seen      map[string]int64
}

// NewOffset returns an Offset anchored at the given timestamp with nothing
// marked as seen. The zero Offset resumes from the beginning of the journal.
func NewOffset(timestamp time.Time) Offset {
	return Offset{Timestamp: timestamp}
}

func (o Offset) IsZero() bool {
	return o.Timestamp.IsZero() && len(o.Seen) == 0
}

// Contains reports whether the row identified by persistenceID and seqNr
// was already delivered at the offset's boundary instant.
func (o Offset) Contains(timestamp time.Time, persistenceID string, seqNr int64) bool {
	if !timestamp.Equal(o.Timestamp) {
		return false
	}

	seen, ok := o.Seen[persistenceID]
	return ok && seqNr <= seen
}

// Advance returns the offset after delivering batch, which must be ordered
// by (timestamp, seq nr). An empty batch leaves the offset unchanged. When
// the boundary timestamp does not move, previously seen rows stay seen.
func (o Offset) Advance(batch []Envelope) Offset {
	if len(batch) == 0 {
		return o
	}

	last := batch[len(batch)-1].Timestamp
	seen := make(map[string]int64)
	if last.Equal(o.Timestamp) {
		maps.Copy(seen, o.Seen)
	}

	for _, envelope := range batch {
		if !envelope.Timestamp.Equal(last) {
			continue
		}

		if envelope.SeqNr > seen[envelope.PersistenceID] {
			seen[envelope.PersistenceID] = envelope.SeqNr
		}
	}

	return Offset{
		Timestamp: last,
		Seen:      seen,
	}
}

package query

import (
	"fmt"

	"github.com/brejnholt/sliceq/internal/database"
	"github.com/brejnholt/sliceq/journal"
)

// decode maps a scanned row onto the envelope shape. The three meta columns
// must be either all absent or carry at least id and manifest; anything in
// between is a schema contract violation.
func decode(row database.JournalRow) (journal.Envelope, error) {
	envelope := journal.Envelope{
		Slice:              row.Slice,
		EntityType:         row.EntityType,
		PersistenceID:      row.PersistenceID,
		SeqNr:              row.SeqNr,
		Timestamp:          row.Timestamp,
		ReadTimestamp:      row.ReadTimestamp,
		SerializerID:       row.SerID,
		SerializerManifest: row.SerManifest,
		Payload:            row.Payload,
		Writer:             row.Writer,
		AdapterManifest:    row.AdapterManifest,
	}

	if row.MetaSerID == nil && row.MetaSerManifest == nil && row.MetaPayload == nil {
		return envelope, nil
	}

	if row.MetaSerID == nil || row.MetaSerManifest == nil {
		return journal.Envelope{}, fmt.Errorf("[sliceq] partial metadata on %s [%d]: %w",
			row.PersistenceID, row.SeqNr, journal.ErrDecode)
	}

	envelope.Meta = journal.Metadata{
		Valid:              true,
		SerializerID:       *row.MetaSerID,
		SerializerManifest: *row.MetaSerManifest,
		Payload:            row.MetaPayload,
	}

	return envelope, nil
}

package database

import "time"

// JournalRow is one row of the journal table, scanned as stored. The
// nullable meta columns stay pointers here; mapping to the two-case
// metadata shape happens in the query layer.
type JournalRow struct {
	Slice         int
	EntityType    string
	PersistenceID string
	SeqNr         int64
	Timestamp     time.Time
	ReadTimestamp time.Time

	SerID       int32
	SerManifest string
	Payload     []byte

	Writer          string
	AdapterManifest string

	MetaSerID       *int32
	MetaSerManifest *string
	MetaPayload     []byte

	Deleted bool
}

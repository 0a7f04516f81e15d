package journal

import "time"

// Envelope is one stored event as read from the journal table.
// It is produced by the query side only; writing is done elsewhere.
type Envelope struct {
	Slice         int
	EntityType    string
	PersistenceID string
	SeqNr         int64

	// Timestamp is the commit timestamp assigned by the database server.
	// It is monotonic per transaction, not globally across concurrent
	// transactions.
	Timestamp time.Time

	// ReadTimestamp is the database time at which the row was read.
	// Diagnostics only, never used for ordering.
	ReadTimestamp time.Time

	SerializerID       int32
	SerializerManifest string
	Payload            []byte

	Writer          string
	AdapterManifest string

	Meta Metadata
}

// Metadata is the optional metadata sub-record of an Envelope.
// Valid is false when the stored row carries no metadata, so consumers
// branch on two cases instead of checking nullable fields.
type Metadata struct {
	Valid              bool
	SerializerID       int32
	SerializerManifest string
	Payload            []byte
}

package testdata

import (
	"math/rand/v2"
	"time"

	"github.com/brejnholt/sliceq/internal/database"
	"github.com/brejnholt/sliceq/internal/uuid"
)

func Row(seqNr int64, mods ...func(row *database.JournalRow)) database.JournalRow {
	entityType := EntityType()
	persistenceID := PersistenceID(entityType)
	row := database.JournalRow{
		Slice:         Slice(persistenceID),
		EntityType:    entityType,
		PersistenceID: persistenceID,
		SeqNr:         seqNr,
		Timestamp:     time.Now().Add(time.Second * time.Duration(seqNr)).Truncate(time.Millisecond),
		ReadTimestamp: time.Now().Truncate(time.Millisecond),
		SerID:         int32(rand.IntN(100)),
		SerManifest:   uuid.V7(),
		Payload:       Payload(),
		Writer:        Writer(),
	}
	for _, mod := range mods {
		mod(&row)
	}

	return row
}

// Rows builds count rows for a single persistence id with sequence
// numbers 1..count and strictly increasing timestamps.
func Rows(count int, mods ...func(row *database.JournalRow)) []database.JournalRow {
	var (
		entityType    = EntityType()
		persistenceID = PersistenceID(entityType)
	)
	var rows []database.JournalRow
	var modifications []func(row *database.JournalRow)
	modifications = append(modifications, func(row *database.JournalRow) {
		row.EntityType = entityType
		row.PersistenceID = persistenceID
		row.Slice = Slice(persistenceID)
	})
	modifications = append(modifications, mods...)
	for i := 1; i <= count; i++ {
		rows = append(rows, Row(int64(i), modifications...))
	}

	return rows
}

func WithRowMeta() func(row *database.JournalRow) {
	return func(row *database.JournalRow) {
		serID := int32(rand.IntN(100))
		manifest := uuid.V7()
		row.MetaSerID = &serID
		row.MetaSerManifest = &manifest
		row.MetaPayload = Payload()
	}
}

func WithRowTimestamp(ts time.Time) func(row *database.JournalRow) {
	return func(row *database.JournalRow) {
		row.Timestamp = ts
	}
}

func WithRowPersistenceID(persistenceID string) func(row *database.JournalRow) {
	return func(row *database.JournalRow) {
		row.PersistenceID = persistenceID
		row.Slice = Slice(persistenceID)
	}
}

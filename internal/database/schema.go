package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/brejnholt/sliceq/journal"
)

var once sync.Once
var sql = sqlQueries{}
var renderedPrefix string

type sqlQueries struct {
	selectCurrentTimestamp      string
	selectEventsBySlices        string
	selectEventsBySlicesUntil   string
	selectEventsByPersistenceID string
	selectPersistenceIDs        string
	insertEvent                 string
	insertEventAt               string
	selectCurrentMigration      string
	advisoryLock                string
	advisoryUnlock              string
	createMigrationTable        string
	insertMigrationRow          string
}

// NewSchema renders the SQL for the given table prefix. Queries are
// rendered once per process, so every Schema in a process must share one
// prefix; a second prefix is rejected instead of silently reusing the
// first one's SQL.
func NewSchema(prefix string) (*Schema, error) {
	var err error
	once.Do(func() {
		renderedPrefix = prefix
		err = renderTemplates(prefix,
			&sql.selectCurrentTimestamp,
			&sql.selectEventsBySlices,
			&sql.selectEventsBySlicesUntil,
			&sql.selectEventsByPersistenceID,
			&sql.selectPersistenceIDs,
			&sql.insertEvent,
			&sql.insertEventAt,
			&sql.selectCurrentMigration,
			&sql.advisoryLock,
			&sql.advisoryUnlock,
			&sql.createMigrationTable,
			&sql.insertMigrationRow,
		)
	})
	if err != nil {
		return nil, err
	}

	if prefix != renderedPrefix {
		return nil, fmt.Errorf("[sliceq] table prefix %q differs from the already rendered %q: %w",
			prefix, renderedPrefix, journal.ErrInvalidConfig)
	}

	return &Schema{
		Prefix: prefix,
	}, nil
}

type Schema struct {
	Prefix string
}

func init() {
	sql.selectCurrentTimestamp = "SELECT transaction_timestamp();"
}

// SelectCurrentTimestamp probes the transaction start time of the database
// server. It is the reference clock for the lag-bounded poll window.
func (s *Schema) SelectCurrentTimestamp(ctx context.Context, db DBTX) (time.Time, error) {
	row := db.QueryRow(ctx, sql.selectCurrentTimestamp)
	var now time.Time
	err := row.Scan(&now)
	if err != nil {
		return now, fmt.Errorf("[sliceq] select current timestamp: %w", wrapUnavailable(err))
	}

	return now, nil
}

const journalColumns = `slice,
        entity_type,
        persistence_id,
        seq_nr,
        db_timestamp,
        statement_timestamp() AS read_timestamp,
        event_ser_id,
        event_ser_manifest,
        event_payload,
        writer,
        adapter_manifest,
        meta_ser_id,
        meta_ser_manifest,
        meta_payload`

func init() {
	sql.selectEventsBySlices = `
SELECT  ` + journalColumns + `
FROM {{ .Prefix }}_journal
WHERE
        entity_type = $1
    AND slice BETWEEN $2 AND $3
    AND db_timestamp >= $4
    AND deleted = FALSE
ORDER BY db_timestamp, seq_nr
LIMIT $5;
`
}

// SelectEventsBySlices reads non-deleted rows for an entity type and slice
// range from the inclusive lower bound, with no upper bound.
func (s *Schema) SelectEventsBySlices(ctx context.Context, db DBTX, entityType string, minSlice, maxSlice int, fromTimestamp time.Time, limit int) ([]JournalRow, error) {
	rows, err := db.Query(ctx, sql.selectEventsBySlices,
		entityType,
		minSlice,
		maxSlice,
		fromTimestamp,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("[sliceq] select events by slices %s [%d-%d]: %w",
			entityType, minSlice, maxSlice, wrapUnavailable(err))
	}

	return scanJournalRows(rows)
}

func init() {
	sql.selectEventsBySlicesUntil = `
SELECT  ` + journalColumns + `
FROM {{ .Prefix }}_journal
WHERE
        entity_type = $1
    AND slice BETWEEN $2 AND $3
    AND db_timestamp >= $4
    AND db_timestamp < $5
    AND deleted = FALSE
ORDER BY db_timestamp, seq_nr
LIMIT $6;
`
}

// SelectEventsBySlicesUntil is the bounded variant of SelectEventsBySlices,
// with an exclusive upper bound on the commit timestamp.
func (s *Schema) SelectEventsBySlicesUntil(ctx context.Context, db DBTX, entityType string, minSlice, maxSlice int, fromTimestamp, untilTimestamp time.Time, limit int) ([]JournalRow, error) {
	rows, err := db.Query(ctx, sql.selectEventsBySlicesUntil,
		entityType,
		minSlice,
		maxSlice,
		fromTimestamp,
		untilTimestamp,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("[sliceq] select events by slices %s [%d-%d] until: %w",
			entityType, minSlice, maxSlice, wrapUnavailable(err))
	}

	return scanJournalRows(rows)
}

func init() {
	sql.selectEventsByPersistenceID = `
SELECT  ` + journalColumns + `
FROM {{ .Prefix }}_journal
WHERE
        entity_type = $1
    AND slice = $2
    AND persistence_id = $3
    AND seq_nr BETWEEN $4 AND $5
    AND deleted = FALSE
ORDER BY seq_nr
LIMIT $6;
`
}

// SelectEventsByPersistenceID reads one page of a single identity's events
// in strict seq nr order.
func (s *Schema) SelectEventsByPersistenceID(ctx context.Context, db DBTX, entityType string, slice int, persistenceID string, fromSeqNr, toSeqNr int64, limit int) ([]JournalRow, error) {
	rows, err := db.Query(ctx, sql.selectEventsByPersistenceID,
		entityType,
		slice,
		persistenceID,
		fromSeqNr,
		toSeqNr,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("[sliceq] select events for %s [%d-%d]: %w",
			persistenceID, fromSeqNr, toSeqNr, wrapUnavailable(err))
	}

	return scanJournalRows(rows)
}

func init() {
	sql.selectPersistenceIDs = `
SELECT DISTINCT persistence_id
FROM {{ .Prefix }}_journal
WHERE persistence_id > $1
ORDER BY persistence_id
LIMIT $2;
`
}

// SelectPersistenceIDs pages distinct persistence ids in lexical order,
// strictly after the given id. The empty string starts from the beginning.
func (s *Schema) SelectPersistenceIDs(ctx context.Context, db DBTX, afterID string, limit int64) ([]string, error) {
	rows, err := db.Query(ctx, sql.selectPersistenceIDs, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("[sliceq] select persistence ids: %w", wrapUnavailable(err))
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var id string
		err = rows.Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("[sliceq] scan persistence id: %w", wrapDecode(err))
		}

		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("[sliceq] select persistence ids: %w", wrapUnavailable(err))
	}

	return result, nil
}

func init() {
	sql.insertEvent = `
INSERT INTO {{ .Prefix }}_journal (
        slice,
        entity_type,
        persistence_id,
        seq_nr,
        event_ser_id,
        event_ser_manifest,
        event_payload,
        writer,
        adapter_manifest,
        meta_ser_id,
        meta_ser_manifest,
        meta_payload,
        deleted
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13);
`
}

// InsertEvent appends one row with a server-assigned commit timestamp.
// Writing is otherwise out of scope; this exists for embedded writers and
// for seeding the journal in tests.
func (s *Schema) InsertEvent(ctx context.Context, db DBTX, row JournalRow) error {
	_, err := db.Exec(ctx, sql.insertEvent,
		row.Slice,
		row.EntityType,
		row.PersistenceID,
		row.SeqNr,
		row.SerID,
		row.SerManifest,
		row.Payload,
		row.Writer,
		row.AdapterManifest,
		row.MetaSerID,
		row.MetaSerManifest,
		row.MetaPayload,
		row.Deleted,
	)
	if err != nil {
		return fmt.Errorf("[sliceq] insert event %s [%d]: %w", row.PersistenceID, row.SeqNr, wrapUnavailable(err))
	}

	return nil
}

func init() {
	sql.insertEventAt = `
INSERT INTO {{ .Prefix }}_journal (
        slice,
        entity_type,
        persistence_id,
        seq_nr,
        db_timestamp,
        event_ser_id,
        event_ser_manifest,
        event_payload,
        writer,
        adapter_manifest,
        meta_ser_id,
        meta_ser_manifest,
        meta_payload,
        deleted
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14);
`
}

// InsertEventAt appends one row with an explicit commit timestamp. Used by
// tests that need to stage out-of-order commit visibility.
func (s *Schema) InsertEventAt(ctx context.Context, db DBTX, row JournalRow, timestamp time.Time) error {
	_, err := db.Exec(ctx, sql.insertEventAt,
		row.Slice,
		row.EntityType,
		row.PersistenceID,
		row.SeqNr,
		timestamp,
		row.SerID,
		row.SerManifest,
		row.Payload,
		row.Writer,
		row.AdapterManifest,
		row.MetaSerID,
		row.MetaSerManifest,
		row.MetaPayload,
		row.Deleted,
	)
	if err != nil {
		return fmt.Errorf("[sliceq] insert event %s [%d] at %s: %w", row.PersistenceID, row.SeqNr, timestamp, wrapUnavailable(err))
	}

	return nil
}

func init() {
	sql.selectCurrentMigration = `
SELECT COALESCE(MAX(version), 0)
FROM {{ .Prefix }}_migrations;
`
}

func (s *Schema) SelectCurrentMigration(ctx context.Context, db DBTX) (uint32, error) {
	row := db.QueryRow(ctx, sql.selectCurrentMigration)
	var current uint32
	err := row.Scan(&current)
	if err != nil {
		return current, fmt.Errorf("select current migration version: %w", err)
	}

	return current, nil
}

func init() {
	sql.advisoryLock = "SELECT pg_advisory_lock($1);"
}

func (s *Schema) AdvisoryLock(ctx context.Context, db DBTX, pid int64) error {
	_, err := db.Exec(ctx, sql.advisoryLock, pid)
	if err != nil {
		return fmt.Errorf("advisory lock %d failed: %w", pid, err)
	}

	return nil
}

func init() {
	sql.advisoryUnlock = "SELECT pg_advisory_unlock($1);"
}

func (s *Schema) AdvisoryUnlock(ctx context.Context, db DBTX, pid int64) error {
	_, err := db.Exec(ctx, sql.advisoryUnlock, pid)
	if err != nil {
		return fmt.Errorf("advisory unlock %d failed: %w", pid, err)
	}

	return nil
}

func init() {
	sql.createMigrationTable = `
CREATE TABLE IF NOT EXISTS {{ .Prefix }}_migrations
(
    version     BIGINT                      NOT NULL,
    name        VARCHAR                     NOT NULL,
    hash        VARCHAR                     NOT NULL,
    applied     timestamptz DEFAULT NOW()   NOT NULL,
    CONSTRAINT {{ .Prefix }}_migrations_pkey PRIMARY KEY (version)
);
`
}

func (s *Schema) CreateMigrationTable(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, sql.createMigrationTable)
	if err != nil {
		return fmt.Errorf("create migration table failed: %w", err)
	}

	return nil
}

func init() {
	sql.insertMigrationRow = `
INSERT INTO {{ .Prefix }}_migrations (version, name, hash)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING;
`
}

func (s *Schema) InsertMigrationRow(ctx context.Context, db DBTX, version uint32, name string, hash string) error {
	_, err := db.Exec(ctx, sql.insertMigrationRow, version, name, hash)
	if err != nil {
		return fmt.Errorf("insert migration row failed: %w", err)
	}

	return nil
}

func scanJournalRows(rows pgx.Rows) ([]JournalRow, error) {
	defer rows.Close()

	var result []JournalRow
	for rows.Next() {
		var row JournalRow
		err := rows.Scan(
			&row.Slice,
			&row.EntityType,
			&row.PersistenceID,
			&row.SeqNr,
			&row.Timestamp,
			&row.ReadTimestamp,
			&row.SerID,
			&row.SerManifest,
			&row.Payload,
			&row.Writer,
			&row.AdapterManifest,
			&row.MetaSerID,
			&row.MetaSerManifest,
			&row.MetaPayload,
		)
		if err != nil {
			return nil, fmt.Errorf("[sliceq] scan journal row: %w", wrapDecode(err))
		}

		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("[sliceq] read journal rows: %w", wrapUnavailable(err))
	}

	return result, nil
}

func wrapUnavailable(err error) error {
	return fmt.Errorf("%w: %w", journal.ErrStoreUnavailable, err)
}

func wrapDecode(err error) error {
	return fmt.Errorf("%w: %w", journal.ErrDecode, err)
}

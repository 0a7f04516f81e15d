package sliceq

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brejnholt/sliceq/internal/database"
	"github.com/brejnholt/sliceq/internal/projector"
	"github.com/brejnholt/sliceq/internal/query"
	"github.com/brejnholt/sliceq/journal"
)

// New connects, migrates the journal tables and returns the query surface.
func New(connector Connector, opts ...Option) (*Store, error) {
	cfg := applyOptions(defaultOptions(), opts...)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("[sliceq] invalid configuration: %w", err)
	}

	ctx := cfg.startCtx()

	err := connector.Ping(ctx)
	if err != nil {
		return nil, fmt.Errorf("[sliceq] failed connecting to database: %w: %w", journal.ErrStoreUnavailable, err)
	}

	schema, err := database.NewSchema(cfg.tablePrefix)
	if err != nil {
		return nil, fmt.Errorf("[sliceq] invalid schema: %w", err)
	}

	err = connector.ApplyMigrations(ctx, func(conn *pgxpool.Conn) error {
		return database.Migrate(ctx, conn, schema)
	})
	if err != nil {
		return nil, fmt.Errorf("[sliceq] failed migrating database: %w", err)
	}

	return &Store{
		cfg:       cfg,
		connector: connector,
		schema:    schema,
		reader:    query.NewReader(connector, schema, cfg.numberOfSlices, cfg.pageSize),
	}, nil
}

// Store reads an append-only, slice-partitioned event journal: continuous
// discovery across a slice range in commit timestamp order, bounded replay
// of one persistence id, and enumeration of distinct persistence ids.
type Store struct {
	cfg       *Config
	connector Connector
	schema    *database.Schema
	reader    *query.Reader
}

// CurrentTimestamp returns the database server's transaction start time,
// one round trip per call. It is the clock all poll windows are cut from.
func (s *Store) CurrentTimestamp(ctx context.Context) (time.Time, error) {
	db, err := s.connector.AcquireRead(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("[sliceq] acquire read connection: %w: %w", journal.ErrStoreUnavailable, err)
	}
	defer db.Release()

	return s.schema.SelectCurrentTimestamp(ctx, db)
}

// EventsBySlices opens a cursor over [minSlice, maxSlice] of an entity
// type, resuming at from. The zero offset starts at the beginning of the
// journal. The range is validated here; no store call is made.
func (s *Store) EventsBySlices(entityType string, minSlice, maxSlice int, from journal.Offset) (*Cursor, error) {
	sliceRange := journal.SliceRange{
		EntityType: entityType,
		Min:        minSlice,
		Max:        maxSlice,
	}

	inner, err := query.NewCursor(s.connector, s.schema, sliceRange, from,
		s.cfg.numberOfSlices, s.cfg.pageSize, s.cfg.lagTolerance)
	if err != nil {
		return nil, err
	}

	return &Cursor{inner: inner}, nil
}

// EventsByPersistenceID replays one identity's events with
// fromSeqNr <= seq nr <= toSeqNr in strict seq nr order.
func (s *Store) EventsByPersistenceID(ctx context.Context, persistenceID string, fromSeqNr, toSeqNr int64) iter.Seq2[journal.Envelope, error] {
	return s.reader.EventsByPersistenceID(ctx, persistenceID, fromSeqNr, toSeqNr)
}

// PersistenceIDs returns one page of distinct persistence ids in lexical
// order, strictly after afterID. Chain pages by passing the last id back.
func (s *Store) PersistenceIDs(ctx context.Context, afterID string, limit int64) ([]string, error) {
	return s.reader.PersistenceIDs(ctx, afterID, limit)
}

// AllPersistenceIDs enumerates every distinct persistence id exactly once.
func (s *Store) AllPersistenceIDs(ctx context.Context) iter.Seq2[string, error] {
	return s.reader.AllPersistenceIDs(ctx)
}

// SliceRanges splits the configured slice space into count equal ranges,
// one per projection worker.
func (s *Store) SliceRanges(entityType string, count int) ([]journal.SliceRange, error) {
	return journal.SliceRanges(entityType, s.cfg.numberOfSlices, count)
}

// SliceFor returns the slice of a persistence id under the configured
// partition count.
func (s *Store) SliceFor(persistenceID string) (int, error) {
	return journal.SliceFor(persistenceID, s.cfg.numberOfSlices)
}

// Project runs one polling worker per slice range until ctx is cancelled
// or a worker fails fatally. Offsets are loaded from and checkpointed to
// the offset store; delivery mode is selected by configuration.
func (s *Store) Project(ctx context.Context, ranges []journal.SliceRange, offsets OffsetStore, handler Handler) error {
	p := projector.New(s.cfg.logger, s.cfg.observer,
		func(sliceRange journal.SliceRange, from journal.Offset) (projector.Cursor, error) {
			return query.NewCursor(s.connector, s.schema, sliceRange, from,
				s.cfg.numberOfSlices, s.cfg.pageSize, s.cfg.lagTolerance)
		},
		offsets,
		handler,
		projector.Config{
			PollInterval: s.cfg.pollInterval,
			PageSize:     s.cfg.pageSize,
			Backoff:      s.cfg.retryBackoff,
			Mode:         s.cfg.mode,
		},
	)

	return p.Run(ctx, ranges)
}

func (s *Store) Close() error {
	return s.connector.Close()
}

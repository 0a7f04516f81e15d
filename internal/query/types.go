package query

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brejnholt/sliceq/internal/database"
)

type Connector interface {
	AcquireRead(ctx context.Context) (*pgxpool.Conn, error)
}

type Schema interface {
	SelectCurrentTimestamp(ctx context.Context, db database.DBTX) (time.Time, error)
	SelectEventsBySlices(ctx context.Context, db database.DBTX, entityType string, minSlice, maxSlice int, fromTimestamp time.Time, limit int) ([]database.JournalRow, error)
	SelectEventsBySlicesUntil(ctx context.Context, db database.DBTX, entityType string, minSlice, maxSlice int, fromTimestamp, untilTimestamp time.Time, limit int) ([]database.JournalRow, error)
	SelectEventsByPersistenceID(ctx context.Context, db database.DBTX, entityType string, slice int, persistenceID string, fromSeqNr, toSeqNr int64, limit int) ([]database.JournalRow, error)
	SelectPersistenceIDs(ctx context.Context, db database.DBTX, afterID string, limit int64) ([]string, error)
}

package database

import (
	"context"
	"crypto/sha512"
	"fmt"
	"log/slog"
	"time"

	"github.com/brejnholt/sliceq/internal/hash"
)

type step struct {
	version uint32
	name    string
	ddl     string
}

func (s step) hash() string {
	return fmt.Sprintf("%x", sha512.Sum512([]byte(s.ddl)))
}

// One statement per step; the pool executes migrations over the extended
// protocol, which rejects multi-statement strings.
var steps = []step{
	{
		version: 1,
		name:    "001_create_journal",
		ddl: `
CREATE TABLE IF NOT EXISTS {{ .Prefix }}_journal
(
    slice              INT          NOT NULL,
    entity_type        VARCHAR      NOT NULL,
    persistence_id     VARCHAR      NOT NULL,
    seq_nr             BIGINT       NOT NULL,
    db_timestamp       timestamptz  DEFAULT transaction_timestamp() NOT NULL,
    event_ser_id       INTEGER      NOT NULL,
    event_ser_manifest VARCHAR      NOT NULL,
    event_payload      BYTEA        NOT NULL,
    writer             VARCHAR      NOT NULL,
    adapter_manifest   VARCHAR      DEFAULT '' NOT NULL,
    meta_ser_id        INTEGER,
    meta_ser_manifest  VARCHAR,
    meta_payload       BYTEA,
    deleted            BOOLEAN      DEFAULT FALSE NOT NULL,
    CONSTRAINT {{ .Prefix }}_journal_pkey PRIMARY KEY (persistence_id, seq_nr)
);
`,
	},
	{
		version: 2,
		name:    "002_create_journal_slice_idx",
		ddl: `
CREATE INDEX IF NOT EXISTS {{ .Prefix }}_journal_slice_idx
    ON {{ .Prefix }}_journal (entity_type, slice, db_timestamp, seq_nr);
`,
	},
}

// Migrate brings the journal tables of the schema's prefix up to date,
// serialized across processes by an advisory lock.
func Migrate(ctx context.Context, db DBTX, schema *Schema) error {
	migrations, err := renderSteps(schema.Prefix)
	if err != nil {
		return err
	}

	pid := lockID(schema.Prefix)
	err = schema.AdvisoryLock(ctx, db, pid)
	if err != nil {
		return err
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), time.Second*2)
		defer cancel()
		err := schema.AdvisoryUnlock(unlockCtx, db, pid)
		if err != nil {
			slog.ErrorContext(unlockCtx, fmt.Sprintf("[sliceq] Migration unlock failed: %s", err))
		}
	}()

	err = schema.CreateMigrationTable(ctx, db)
	if err != nil {
		return err
	}

	currentVersion, err := schema.SelectCurrentMigration(ctx, db)
	if err != nil {
		return err
	}

	// first check that current version is <= the last of the available migrations. If not, something's seriously wrong
	var highestVersion uint32
	for _, migration := range migrations {
		if migration.version > highestVersion {
			highestVersion = migration.version
		}
	}
	if highestVersion < currentVersion {
		return fmt.Errorf("[sliceq] Version mismatch: current (%d) > highest (%d)", currentVersion, highestVersion)
	}

	for _, migration := range migrations {
		if migration.version <= currentVersion {
			continue
		}

		_, err = db.Exec(ctx, migration.ddl)
		if err != nil {
			return fmt.Errorf("[sliceq] Migration %s failed: %w", migration.name, err)
		}

		err = schema.InsertMigrationRow(ctx, db, migration.version, migration.name, migration.hash())
		if err != nil {
			return err
		}

		currentVersion = migration.version
	}

	return nil
}

func renderSteps(prefix string) ([]step, error) {
	rendered := make([]step, len(steps))
	for i, migration := range steps {
		ddl := migration.ddl
		err := renderTemplates(prefix, &ddl)
		if err != nil {
			return nil, err
		}

		migration.ddl = ddl
		rendered[i] = migration

		if uint32(i+1) != migration.version {
			return nil, fmt.Errorf("[sliceq] wrong migration sequence: %s", migration.name)
		}
	}

	return rendered, nil
}

func lockID(prefix string) int64 {
	return int64(hash.FNV("sliceq-migrate-"+prefix, 1<<31))
}

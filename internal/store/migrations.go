package store

import (
	"context"
	"fmt"
)

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations. The applied
// version lives in PRAGMA user_version so the database carries no
// bookkeeping table of its own.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS todos (
	id         INTEGER PRIMARY KEY,
	message    TEXT NOT NULL,
	completed  BOOLEAN NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
`,
	},
}

// schemaVersion reports the highest migration version applied.
func (s *SQLiteStore) schemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.GetContext(ctx, &version, "PRAGMA user_version"); err != nil {
		return 0, storageErr("reading schema version", err)
	}
	return version, nil
}

// runMigrations applies every migration newer than the stored version.
func (s *SQLiteStore) runMigrations(ctx context.Context) error {
	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := s.db.ExecContext(ctx, m.sql); err != nil {
			return storageErr(fmt.Sprintf("applying migration v%d", m.version), err)
		}
		// PRAGMA arguments cannot be bound.
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			return storageErr(fmt.Sprintf("recording migration v%d", m.version), err)
		}
		s.log.Debug().Int("version", m.version).Msg("applied migration")
	}

	return nil
}

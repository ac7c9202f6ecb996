package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"

	// busyTimeoutMillis bounds how long a statement waits on another
	// process holding the file lock.
	busyTimeoutMillis = 5000
)

// SQLiteStore implements the Store interface using a local SQLite database.
// It holds exactly one connection for the lifetime of the process.
type SQLiteStore struct {
	db  *sqlx.DB
	log zerolog.Logger
	now func() time.Time
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithLogger routes store diagnostics and SQL statement logs to l.
// Statements are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(s *SQLiteStore) {
		s.log = l
	}
}

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteStore) {
		s.now = now
	}
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and
// ensures the todos table exists. Calling it on an existing database
// leaves the schema untouched.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{
		log: zerolog.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	// sql.Open does not connect; it only resolves the registered driver
	// so it can be wrapped with the statement logger.
	probe, err := sql.Open(driverName, dbPath)
	if err != nil {
		return nil, storageErr("opening sqlite db", err)
	}
	drv := probe.Driver()
	probe.Close()

	sqlDB := sqldblogger.OpenDriver(dbPath, drv, zerologadapter.New(s.log),
		sqldblogger.WithExecerLevel(sqldblogger.LevelDebug),
		sqldblogger.WithQueryerLevel(sqldblogger.LevelDebug),
		sqldblogger.WithPreparerLevel(sqldblogger.LevelDebug),
	)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	s.db = sqlx.NewDb(sqlDB, driverName)

	ctx := context.Background()
	if err := s.db.PingContext(ctx); err != nil {
		s.db.Close()
		return nil, storageErr("opening sqlite db "+dbPath, err)
	}

	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMillis)); err != nil {
		s.db.Close()
		return nil, storageErr("setting busy timeout", err)
	}

	if err := s.runMigrations(ctx); err != nil {
		s.db.Close()
		return nil, err
	}

	s.log.Debug().Str("path", dbPath).Msg("store ready")

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

package store

import "context"

// ExecRaw runs a statement directly against the connection.
func (s *SQLiteStore) ExecRaw(ctx context.Context, query string, args ...interface{}) error {
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

// SchemaObjects lists every object in sqlite_master with its DDL.
func (s *SQLiteStore) SchemaObjects(ctx context.Context) ([]string, error) {
	var objs []string
	err := s.db.SelectContext(ctx, &objs,
		"SELECT type || ':' || name || ':' || COALESCE(sql, '') FROM sqlite_master ORDER BY name")
	return objs, err
}

// SchemaVersion exposes the applied migration version.
func (s *SQLiteStore) SchemaVersion(ctx context.Context) (int, error) {
	return s.schemaVersion(ctx)
}

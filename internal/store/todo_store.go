package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/nhle/todo/internal/model"
)

// createdAtLayout is the on-disk format of todos.created_at.
const createdAtLayout = time.RFC3339

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// todoRow mirrors the todos table. created_at stays a string until
// parseCreatedAt decides what to do with it.
type todoRow struct {
	ID        int64  `db:"id"`
	Message   string `db:"message"`
	Completed bool   `db:"completed"`
	CreatedAt string `db:"created_at"`
}

// AddTodo inserts a new open todo stamped with the current local time.
func (s *SQLiteStore) AddTodo(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}

	query, args, err := builder.
		Insert("todos").
		Columns("message", "completed", "created_at").
		Values(message, false, s.now().Format(createdAtLayout)).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return storageErr("inserting todo", err)
	}
	return nil
}

// ListTodos returns all todos. No ORDER BY is applied, so rows come back
// in whatever order SQLite yields them (insertion order in practice).
func (s *SQLiteStore) ListTodos(ctx context.Context) ([]model.Todo, error) {
	query, args, err := builder.
		Select("id", "message", "completed", "created_at").
		From("todos").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var rows []todoRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageErr("querying todos", err)
	}

	todos := make([]model.Todo, 0, len(rows))
	for _, r := range rows {
		todos = append(todos, model.Todo{
			ID:        r.ID,
			Message:   r.Message,
			Completed: r.Completed,
			CreatedAt: s.parseCreatedAt(r.ID, r.CreatedAt),
		})
	}
	return todos, nil
}

// CompleteTodo sets completed for the todo with the given id.
func (s *SQLiteStore) CompleteTodo(ctx context.Context, id int64) (bool, error) {
	query, args, err := builder.
		Update("todos").
		Set("completed", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building update: %w", err)
	}

	return s.execAffecting(ctx, fmt.Sprintf("completing todo %d", id), query, args)
}

// DeleteTodo removes the todo with the given id.
func (s *SQLiteStore) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	query, args, err := builder.
		Delete("todos").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building delete: %w", err)
	}

	return s.execAffecting(ctx, fmt.Sprintf("deleting todo %d", id), query, args)
}

// execAffecting runs a statement and reports whether it touched any row.
func (s *SQLiteStore) execAffecting(
	ctx context.Context,
	op string,
	query string,
	args []interface{},
) (bool, error) {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storageErr(op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, storageErr(op, err)
	}
	return n > 0, nil
}

// parseCreatedAt converts a stored timestamp. A malformed value yields the
// zero time and a warning rather than failing the whole listing.
func (s *SQLiteStore) parseCreatedAt(id int64, raw string) time.Time {
	t, err := time.Parse(createdAtLayout, raw)
	if err != nil {
		s.log.Warn().
			Int64("id", id).
			Str("created_at", raw).
			Err(err).
			Msg("unparseable timestamp, using zero time")
		return time.Time{}
	}
	return t.Local()
}

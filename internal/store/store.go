package store

import (
	"context"
	"errors"

	"github.com/nhle/todo/internal/model"
)

// ErrEmptyMessage is returned when a todo is added without text.
var ErrEmptyMessage = errors.New("todo message must not be empty")

// StorageError reports a failure of the underlying database: opening the
// file, applying the schema, or executing a statement.
type StorageError struct {
	// Op describes what the store was doing, e.g. "inserting todo".
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// Store defines the persistence interface for todos.
type Store interface {
	// AddTodo inserts a new, not yet completed todo stamped with the
	// current local time.
	AddTodo(ctx context.Context, message string) error

	// ListTodos returns every todo in the order the engine yields them.
	ListTodos(ctx context.Context) ([]model.Todo, error)

	// CompleteTodo marks a todo done. It reports false, without error,
	// when no todo has the given id.
	CompleteTodo(ctx context.Context, id int64) (bool, error)

	// DeleteTodo removes a todo. It reports false, without error,
	// when no todo has the given id.
	DeleteTodo(ctx context.Context, id int64) (bool, error)

	Close() error
}

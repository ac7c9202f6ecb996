package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nhle/todo/internal/app"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
	"github.com/nhle/todo/tests/testutil"
)

type AppSuite struct {
	suite.Suite
	ctx    context.Context
	store  *store.SQLiteStore
	out    *bytes.Buffer
	errOut *bytes.Buffer
	app    *app.App
}

func (s *AppSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutil.NewTestStore(s.T())
	s.out = &bytes.Buffer{}
	s.errOut = &bytes.Buffer{}
	s.app = app.New(s.store, app.Options{Out: s.out, ErrOut: s.errOut})
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) resetOutput() {
	s.out.Reset()
	s.errOut.Reset()
}

func (s *AppSuite) dispatch(cmd app.Command) {
	s.resetOutput()
	s.Require().NoError(s.app.Dispatch(s.ctx, cmd))
}

func (s *AppSuite) TestAdd_PrintsConfirmation() {
	s.dispatch(app.Command{Kind: app.CommandAdd, Message: "buy milk"})

	s.Contains(s.out.String(), app.MsgAdded)
	s.Empty(s.errOut.String())

	todos, err := s.store.ListTodos(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(todos, 1)
	s.Equal("buy milk", todos[0].Message)
}

func (s *AppSuite) TestAdd_EmptyMessageIsAnError() {
	s.resetOutput()
	err := s.app.Dispatch(s.ctx, app.Command{Kind: app.CommandAdd, Message: " "})

	s.ErrorIs(err, store.ErrEmptyMessage)
	s.Empty(s.out.String())
}

func (s *AppSuite) TestList_EmptyStorePrintsNoTasks() {
	s.dispatch(app.Command{Kind: app.CommandList})

	s.Contains(s.out.String(), app.MsgNoTasks)
	s.NotContains(s.out.String(), "Status")
}

func (s *AppSuite) TestList_RendersTable() {
	s.dispatch(app.Command{Kind: app.CommandAdd, Message: "buy milk"})
	s.dispatch(app.Command{Kind: app.CommandAdd, Message: "walk dog"})
	s.dispatch(app.Command{Kind: app.CommandList})

	out := s.out.String()
	s.Contains(out, "Status")
	s.Contains(out, "buy milk")
	s.Contains(out, "walk dog")
	s.Contains(out, model.TodoStatusPending)
	s.NotContains(out, app.MsgNoTasks)
}

func (s *AppSuite) TestList_CompletedOnly() {
	s.dispatch(app.Command{Kind: app.CommandAdd, Message: "buy milk"})
	s.dispatch(app.Command{Kind: app.CommandAdd, Message: "walk dog"})
	s.dispatch(app.Command{Kind: app.CommandDone, ID: 2})

	s.dispatch(app.Command{Kind: app.CommandList, CompletedOnly: true})

	out := s.out.String()
	s.Contains(out, "walk dog")
	s.Contains(out, model.TodoStatusDone)
	s.NotContains(out, "buy milk")
	s.NotContains(out, model.TodoStatusPending)
}

func (s *AppSuite) TestList_CompletedOnlyWithNoneCompleted() {
	s.dispatch(app.Command{Kind: app.CommandAdd, Message: "buy milk"})

	s.dispatch(app.Command{Kind: app.CommandList, CompletedOnly: true})

	s.Contains(s.out.String(), app.MsgNoTasks)
	s.NotContains(s.out.String(), "buy milk")
}

func (s *AppSuite) TestDone_NotFoundGoesToErrOut() {
	s.dispatch(app.Command{Kind: app.CommandDone, ID: 7})

	s.Empty(s.out.String())
	s.Contains(s.errOut.String(), "Task 7 not found.")
}

func (s *AppSuite) TestDelete_NotFoundGoesToErrOut() {
	s.dispatch(app.Command{Kind: app.CommandDelete, ID: 3})

	s.Empty(s.out.String())
	s.Contains(s.errOut.String(), "Task 3 not found.")
}

func (s *AppSuite) TestLifecycle() {
	s.dispatch(app.Command{Kind: app.CommandAdd, Message: "buy milk"})

	s.dispatch(app.Command{Kind: app.CommandList})
	s.Contains(s.out.String(), model.TodoStatusPending)

	s.dispatch(app.Command{Kind: app.CommandDone, ID: 1})
	s.Contains(s.out.String(), "Task 1 marked as done.")
	s.Empty(s.errOut.String())

	s.dispatch(app.Command{Kind: app.CommandList})
	s.Contains(s.out.String(), model.TodoStatusDone)

	s.dispatch(app.Command{Kind: app.CommandDelete, ID: 1})
	s.Contains(s.out.String(), "Task 1 deleted.")

	s.dispatch(app.Command{Kind: app.CommandList})
	s.Contains(s.out.String(), app.MsgNoTasks)
}

func (s *AppSuite) TestDispatch_UnknownKind() {
	err := s.app.Dispatch(s.ctx, app.Command{Kind: app.CommandKind(42)})
	s.ErrorContains(err, "unknown command")
}

// failingStore returns the same error from every operation.
type failingStore struct {
	err error
}

func (f failingStore) AddTodo(context.Context, string) error             { return f.err }
func (f failingStore) ListTodos(context.Context) ([]model.Todo, error)   { return nil, f.err }
func (f failingStore) CompleteTodo(context.Context, int64) (bool, error) { return false, f.err }
func (f failingStore) DeleteTodo(context.Context, int64) (bool, error)   { return false, f.err }
func (f failingStore) Close() error                                      { return nil }

func TestDispatch_PropagatesStorageErrors(t *testing.T) {
	cause := &store.StorageError{Op: "querying todos", Err: errors.New("disk I/O error")}
	var out, errOut bytes.Buffer
	a := app.New(failingStore{err: cause}, app.Options{Out: &out, ErrOut: &errOut})

	for _, cmd := range []app.Command{
		{Kind: app.CommandAdd, Message: "x"},
		{Kind: app.CommandList},
		{Kind: app.CommandDone, ID: 1},
		{Kind: app.CommandDelete, ID: 1},
	} {
		t.Run(cmd.Kind.String(), func(t *testing.T) {
			err := a.Dispatch(context.Background(), cmd)
			require.Error(t, err)

			var storageErr *store.StorageError
			assert.ErrorAs(t, err, &storageErr)
			assert.Contains(t, err.Error(), "disk I/O error")
		})
	}

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestCommandKind_String(t *testing.T) {
	assert.Equal(t, "done", app.CommandDone.String())
	assert.Equal(t, "CommandKind(9)", app.CommandKind(9).String())
}

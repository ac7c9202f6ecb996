// Package app dispatches one parsed command to the todo store and
// reports the outcome on the configured writers.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
	"github.com/nhle/todo/internal/theme"
	"github.com/nhle/todo/internal/ui"
)

// CommandKind identifies which verb a Command carries.
type CommandKind int

const (
	CommandAdd CommandKind = iota
	CommandList
	CommandDone
	CommandDelete
)

func (k CommandKind) String() string {
	switch k {
	case CommandAdd:
		return "add"
	case CommandList:
		return "list"
	case CommandDone:
		return "done"
	case CommandDelete:
		return "delete"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a fully parsed invocation. Only the fields relevant to
// Kind are read.
type Command struct {
	Kind CommandKind

	// Message is the todo text for CommandAdd.
	Message string

	// CompletedOnly restricts CommandList to completed todos.
	CompletedOnly bool

	// ID targets CommandDone and CommandDelete.
	ID int64
}

// User-facing messages.
const (
	MsgAdded    = "Todo added."
	MsgNoTasks  = "No tasks found. Go have a coffee!"
	MsgDone     = "Task %d marked as done."
	MsgDeleted  = "Task %d deleted."
	MsgNotFound = "Task %d not found."
)

// App runs commands against a store. It holds no state between commands.
type App struct {
	store      store.Store
	out        io.Writer
	errOut     io.Writer
	timeFormat string
	width      int
	log        zerolog.Logger
}

// Options configures an App. Zero values fall back to defaults.
type Options struct {
	// Out receives results; ErrOut receives "not found" reports.
	Out    io.Writer
	ErrOut io.Writer

	// TimeFormat is the Go layout for the Created At column.
	TimeFormat string

	// Width caps the rendered table width when positive.
	Width int

	Logger *zerolog.Logger
}

// New creates an App bound to s.
func New(s store.Store, opts Options) *App {
	a := &App{
		store:      s,
		out:        opts.Out,
		errOut:     opts.ErrOut,
		timeFormat: opts.TimeFormat,
		width:      opts.Width,
		log:        zerolog.Nop(),
	}
	if a.out == nil {
		a.out = io.Discard
	}
	if a.errOut == nil {
		a.errOut = io.Discard
	}
	if a.timeFormat == "" {
		a.timeFormat = model.DefaultTimeFormat
	}
	if opts.Logger != nil {
		a.log = *opts.Logger
	}
	return a
}

// Dispatch runs a single command. Only storage and validation failures
// are returned as errors; a missing id is reported on ErrOut.
func (a *App) Dispatch(ctx context.Context, cmd Command) error {
	a.log.Debug().Stringer("command", cmd.Kind).Msg("dispatching")

	switch cmd.Kind {
	case CommandAdd:
		return a.Add(ctx, cmd.Message)
	case CommandList:
		return a.List(ctx, cmd.CompletedOnly)
	case CommandDone:
		return a.Done(ctx, cmd.ID)
	case CommandDelete:
		return a.Delete(ctx, cmd.ID)
	default:
		return fmt.Errorf("unknown command %s", cmd.Kind)
	}
}

// Add stores a new todo and confirms it.
func (a *App) Add(ctx context.Context, message string) error {
	if err := a.store.AddTodo(ctx, message); err != nil {
		return fmt.Errorf("adding todo: %w", err)
	}
	a.println(a.out, theme.SuccessStyle.Render(MsgAdded))
	return nil
}

// List prints every todo as a table, or only completed ones when
// completedOnly is set. Filtering happens after the full fetch.
func (a *App) List(ctx context.Context, completedOnly bool) error {
	todos, err := a.store.ListTodos(ctx)
	if err != nil {
		return fmt.Errorf("listing todos: %w", err)
	}

	if completedOnly {
		todos = model.FilterCompleted(todos)
	}

	if len(todos) == 0 {
		a.println(a.out, theme.HelpStyle.Render(MsgNoTasks))
		return nil
	}

	a.println(a.out, ui.RenderTodoTable(todos, a.timeFormat, a.width))
	return nil
}

// Done marks a todo completed.
func (a *App) Done(ctx context.Context, id int64) error {
	ok, err := a.store.CompleteTodo(ctx, id)
	if err != nil {
		return fmt.Errorf("completing todo %d: %w", id, err)
	}
	a.report(ok, MsgDone, id)
	return nil
}

// Delete removes a todo.
func (a *App) Delete(ctx context.Context, id int64) error {
	ok, err := a.store.DeleteTodo(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}
	a.report(ok, MsgDeleted, id)
	return nil
}

// report prints the success message on Out, or a not-found notice on ErrOut.
func (a *App) report(found bool, successFormat string, id int64) {
	if !found {
		a.println(a.errOut, theme.ErrorStyle.Render(fmt.Sprintf(MsgNotFound, id)))
		return
	}
	a.println(a.out, theme.SuccessStyle.Render(fmt.Sprintf(successFormat, id)))
}

func (a *App) println(w io.Writer, s string) {
	// Output failures (closed pipe) are not storage errors.
	if _, err := fmt.Fprintln(w, s); err != nil {
		a.log.Debug().Err(err).Msg("writing output")
	}
}

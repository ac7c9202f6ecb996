package model

import "time"

// Todo status labels shown in listings.
const (
	TodoStatusPending = "PENDING"
	TodoStatusDone    = "DONE"
)

// Todo is a single task row created and managed by the user.
type Todo struct {
	// ID is assigned by the database on insert and never changes.
	ID int64 `json:"id"`

	// Message is the task text. Never empty.
	Message string `json:"message"`

	// Completed flips to true when the task is marked done and never reverts.
	Completed bool `json:"completed"`

	// CreatedAt is set once at creation. It is the zero time when the
	// stored value could not be parsed.
	CreatedAt time.Time `json:"created_at"`
}

// Status returns the display label for the todo's completion state.
func (t Todo) Status() string {
	if t.Completed {
		return TodoStatusDone
	}
	return TodoStatusPending
}

// FilterCompleted returns the todos whose Completed flag is set,
// preserving input order.
func FilterCompleted(todos []Todo) []Todo {
	var out []Todo
	for _, t := range todos {
		if !t.Completed {
			continue
		}
		out = append(out, t)
	}
	return out
}

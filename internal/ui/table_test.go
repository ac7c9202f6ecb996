package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/todo/internal/model"
)

func TestRenderTodoTable(t *testing.T) {
	created := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	todos := []model.Todo{
		{ID: 1, Message: "buy milk", Completed: false, CreatedAt: created},
		{ID: 12, Message: "file taxes", Completed: true, CreatedAt: created},
	}

	out := RenderTodoTable(todos, "2006-01-02 15:04", 0)

	for _, h := range TableHeaders {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "buy milk")
	assert.Contains(t, out, "file taxes")
	assert.Contains(t, out, "PENDING")
	assert.Contains(t, out, "DONE")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "2026-03-14 09:30")

	assert.Less(t, strings.Index(out, "buy milk"), strings.Index(out, "file taxes"))
}

func TestRenderTodoTable_ZeroTimestamp(t *testing.T) {
	out := RenderTodoTable([]model.Todo{{ID: 3, Message: "legacy"}}, "2006-01-02", 0)

	assert.Contains(t, out, "legacy")
	assert.NotContains(t, out, "0001-01-01")
	assert.Contains(t, out, unknownTime)
}

func TestRenderTodoTable_CustomLayout(t *testing.T) {
	created := time.Date(2026, time.July, 4, 18, 5, 0, 0, time.UTC)
	out := RenderTodoTable([]model.Todo{{ID: 1, Message: "fireworks", CreatedAt: created}}, time.Kitchen, 0)

	assert.Contains(t, out, "6:05PM")
}

package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the table header row.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Padding(0, 1)

// CellStyle is the base style for table body cells.
var CellStyle = lipgloss.NewStyle().
	Padding(0, 1)

// BorderStyle colors the table border.
var BorderStyle = lipgloss.NewStyle().
	Foreground(ColorBorder)

// SuccessStyle is used for confirmation messages on stdout.
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorGreen)

// ErrorStyle is used for "not found" and other messages on stderr.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed)

// HelpStyle is used for hints such as the empty-list message.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// StatusStyle returns a color-coded style for the given todo status label.
func StatusStyle(status string) lipgloss.Style {
	base := CellStyle.Bold(true)

	switch status {
	case model.TodoStatusDone:
		return base.Foreground(ColorGreen)
	case model.TodoStatusPending:
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}

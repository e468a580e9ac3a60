package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/maren/tack/internal/model"
)

// Dracula theme - dark theme with vivid accents
// https://draculatheme.com/
var Dracula = Theme{
	Name: "dracula",

	Background: lipgloss.Color("#282A36"),
	Foreground: lipgloss.Color("#F8F8F2"),
	Subtle:     lipgloss.Color("#6272A4"),
	Highlight:  lipgloss.Color("#44475A"),
	Border:     lipgloss.Color("#6272A4"),

	Primary:   lipgloss.Color("#BD93F9"), // Purple
	Secondary: lipgloss.Color("#8BE9FD"), // Cyan
	Info:      lipgloss.Color("#8BE9FD"),

	Success: lipgloss.Color("#50FA7B"), // Green
	Warning: lipgloss.Color("#F1FA8C"), // Yellow
	Error:   lipgloss.Color("#FF5555"), // Red

	PriorityLow:    lipgloss.Color("#50FA7B"),
	PriorityMedium: lipgloss.Color("#F1FA8C"),
	PriorityHigh:   lipgloss.Color("#FFB86C"),
	PriorityUrgent: lipgloss.Color("#FF5555"),

	StatusTodo:       lipgloss.Color("#F1FA8C"),
	StatusInProgress: lipgloss.Color("#8BE9FD"),
	StatusDone:       lipgloss.Color("#50FA7B"),

	TagColors: map[model.TagColor]lipgloss.Color{
		model.TagGray:   lipgloss.Color("#6272A4"),
		model.TagRed:    lipgloss.Color("#FF5555"),
		model.TagOrange: lipgloss.Color("#FFB86C"),
		model.TagYellow: lipgloss.Color("#F1FA8C"),
		model.TagGreen:  lipgloss.Color("#50FA7B"),
		model.TagBlue:   lipgloss.Color("#8BE9FD"),
		model.TagPurple: lipgloss.Color("#BD93F9"),
		model.TagPink:   lipgloss.Color("#FF79C6"),
	},
}

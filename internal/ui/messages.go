package ui

// View represents the current active view
type View int

const (
	ViewBoard View = iota
	ViewNotes
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewBoard:
		return "Board"
	case ViewNotes:
		return "Notes"
	default:
		return "Unknown"
	}
}

// Messages for inter-component communication

// SwitchViewMsg requests a view change
type SwitchViewMsg struct {
	View View
}

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// ThemeChangedMsg indicates the theme was changed
type ThemeChangedMsg struct {
	ThemeName string
}

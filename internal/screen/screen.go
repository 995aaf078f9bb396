package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/clinicaortiz/clinica/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is implemented by screens that refresh their data when they
// become active again after the screen above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}

// StatsProvider is implemented by screens that show counters in the header.
type StatsProvider interface {
	HeaderStats() []layout.Stat
}

// EscapeHandler is implemented by screens that consume Esc themselves while
// CapturesEscape reports true, e.g. to close an overlay instead of going back.
type EscapeHandler interface {
	CapturesEscape() bool
}

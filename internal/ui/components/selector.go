package components

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

// Selector cycles through a fixed list of option values with Left/Right.
type Selector struct {
	Label    string
	Options  []string
	Index    int
	Disabled bool

	// Format renders a value for display; nil shows it as is.
	Format func(string) string
}

// NewSelector creates a selector positioned on value. A value missing from
// options is prepended so the current choice stays selectable.
func NewSelector(label string, options []string, value string) Selector {
	s := Selector{Label: label, Options: slices.Clone(options)}
	s.SetValue(value)
	return s
}

// SetValue positions the selector on v.
func (s *Selector) SetValue(v string) {
	if i := slices.Index(s.Options, v); i >= 0 {
		s.Index = i
		return
	}
	if v == "" && len(s.Options) > 0 {
		s.Index = 0
		return
	}
	s.Options = append([]string{v}, s.Options...)
	s.Index = 0
}

// Value returns the selected option, or "" when there are none.
func (s Selector) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index]
}

// Update cycles the value, wrapping at both ends. It reports whether the
// value changed.
func (s Selector) Update(msg tea.Msg) (Selector, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.Disabled || len(s.Options) < 2 {
		return s, false
	}
	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
		return s, true
	case "right", "l":
		s.Index = (s.Index + 1) % len(s.Options)
		return s, true
	}
	return s, false
}

// View renders "Label  ◂ value ▸", dimmed when disabled.
func (s Selector) View(focused bool) string {
	value := s.Value()
	if s.Format != nil {
		value = s.Format(value)
	}

	label := theme.Unselected
	switch {
	case s.Disabled:
		label = theme.Disabled
	case focused:
		label = theme.Selected
	}

	line := label.Width(22).Render(s.Label)
	if s.Disabled {
		return line + theme.Disabled.Render("  "+value)
	}
	if focused {
		return line + lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("◂ "+value+" ▸")
	}
	return line + theme.Body.Render("  "+value)
}

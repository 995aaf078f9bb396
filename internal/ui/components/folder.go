package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

// EmptyNotes is shown by a Folder without notes.
const EmptyNotes = "No hay notas."

// Folder is the patient file overlay: a label and the case notes.
type Folder struct {
	Label string
	Notes []string
	open  bool
}

// Open shows the folder.
func (f *Folder) Open() {
	f.open = true
}

// Close hides the folder.
func (f *Folder) Close() {
	f.open = false
}

// IsOpen reports whether the folder is shown.
func (f Folder) IsOpen() bool {
	return f.open
}

// Update closes an open folder on Esc, Enter or f.
func (f Folder) Update(msg tea.Msg) (Folder, tea.Cmd) {
	if !f.open {
		return f, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "f":
			f.open = false
		}
	}
	return f, nil
}

// View renders the folder contents inside a modal frame.
func (f Folder) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(f.Label))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Notas"))
	b.WriteString("\n")

	if len(f.Notes) == 0 {
		b.WriteString(theme.Hint.Render(EmptyNotes))
	} else {
		for i, n := range f.Notes {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(theme.Body.Render(". " + n))
		}
	}

	return theme.Modal.Width(min(width, 60)).Render(b.String())
}

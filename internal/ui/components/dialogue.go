package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

// DialogueFinishedMsg is sent once the last line has been acknowledged.
type DialogueFinishedMsg struct{}

// dialogueWindow is the number of lines kept on screen.
const dialogueWindow = 6

// FrontDeskName labels front desk lines.
const FrontDeskName = "Recepción"

// Role selects who says a dialogue line.
type Role int

const (
	RoleDoctor Role = iota
	RolePatient
	RoleFrontDesk
)

type DialogueLine struct {
	Role Role
	Text string
}

// Alternating assigns texts to the doctor and the patient in turn, doctor
// first.
func Alternating(texts ...string) []DialogueLine {
	lines := make([]DialogueLine, len(texts))
	for i, t := range texts {
		lines[i] = DialogueLine{Role: RoleDoctor, Text: t}
		if i%2 == 1 {
			lines[i].Role = RolePatient
		}
	}
	return lines
}

// Dialogue steps through a conversation one line per key press.
type Dialogue struct {
	Doctor    string
	Patient   string
	FrontDesk string

	lines    []DialogueLine
	pos      int
	finished bool
}

// NewDialogue creates a dialogue positioned on its first line.
func NewDialogue(doctor, patient string, lines []DialogueLine) Dialogue {
	d := Dialogue{Doctor: doctor, Patient: patient, FrontDesk: FrontDeskName}
	d.Reset(lines)
	return d
}

// Reset restarts the dialogue with new lines.
func (d *Dialogue) Reset(lines []DialogueLine) {
	d.lines = lines
	d.pos = 0
	d.finished = false
}

// Update advances on Enter, Space or Right.
func (d Dialogue) Update(msg tea.Msg) (Dialogue, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || d.finished {
		return d, nil
	}
	switch kmsg.String() {
	case "enter", "space", " ", "right", "l":
		return d.Advance()
	}
	return d, nil
}

// Advance shows the next line, or finishes after the last one.
func (d Dialogue) Advance() (Dialogue, tea.Cmd) {
	if d.finished {
		return d, nil
	}
	if d.pos < len(d.lines)-1 {
		d.pos++
		return d, nil
	}
	d.finished = true
	return d, func() tea.Msg { return DialogueFinishedMsg{} }
}

// Finished reports whether the last line was acknowledged.
func (d Dialogue) Finished() bool {
	return d.finished
}

// Position returns the 0-based index of the current line.
func (d Dialogue) Position() int {
	return d.pos
}

// Speaker returns the name of whoever says line i.
func (d Dialogue) Speaker(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	switch d.lines[i].Role {
	case RolePatient:
		return d.Patient
	case RoleFrontDesk:
		return d.FrontDesk
	}
	return d.Doctor
}

// View renders the lines shown so far, newest last, and a position counter.
func (d Dialogue) View(width int) string {
	if len(d.lines) == 0 {
		return ""
	}

	first := max(0, d.pos-dialogueWindow+1)
	var b strings.Builder
	for i := first; i <= d.pos && i < len(d.lines); i++ {
		color := theme.Doctor
		switch d.lines[i].Role {
		case RolePatient:
			color = theme.Patient
		case RoleFrontDesk:
			color = theme.Accent
		}
		name := lipgloss.NewStyle().Foreground(color).Bold(true).Render(d.Speaker(i) + ":")
		text := lipgloss.NewStyle().Foreground(theme.Text)
		if i < d.pos {
			text = text.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.NewStyle().Width(width).Render(name + " " + text.Render(d.lines[i].Text)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d / %d", d.pos+1, len(d.lines))))
	return b.String()
}

package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/quiz"
	"github.com/clinicaortiz/clinica/internal/ui/components"
	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

const sidebarWidth = 26

func (s *GameScreen) View(width, height int) string {
	if s.game == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(quiz.Placeholder))
	}

	mainWidth := max(width-sidebarWidth-4, 30)

	var main string
	switch {
	case s.folder.IsOpen():
		main = s.folder.View(mainWidth)
	case s.game.Exhausted() && s.game.Feedback() == nil:
		main = renderExhausted(mainWidth)
	default:
		main = s.renderPhase(mainWidth)
	}

	if t := s.game.Toast(); t != nil {
		main = renderToast(t) + "\n\n" + main
	}

	left := lipgloss.NewStyle().Width(mainWidth).Padding(1, 2).Render(main)
	right := s.renderSidebar()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (s *GameScreen) renderPhase(width int) string {
	g := s.game
	switch g.Phase() {
	case quiz.PhaseLevelContext:
		return renderBriefing(g, width)
	case quiz.PhaseConversation:
		return s.renderCaseHeader() + "\n\n" + s.dialogue.View(width)
	case quiz.PhaseQuiz:
		view := s.renderCaseHeader() + "\n\n" + s.card.View(width)
		if fb := g.Feedback(); fb != nil {
			view += "\n" + renderFeedback(fb, width)
		}
		return view
	case quiz.PhaseLevelComplete:
		return renderLevelComplete(g, width)
	}
	return ""
}

func (s *GameScreen) renderCaseHeader() string {
	q := s.game.Current()
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Paciente #%s", q.CaseID))
}

func renderBriefing(g *quiz.Game, width int) string {
	lvl := g.Level()
	if lvl == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Nivel %d", lvl.Number)))
	if lvl.Title != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(lvl.Title))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(lvl.Context))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Enter para comenzar"))
	return b.String()
}

func renderLevelComplete(g *quiz.Game, width int) string {
	lvl := g.Level()

	var b strings.Builder
	b.WriteString(theme.Correct.Render("¡Nivel completado!"))
	b.WriteString("\n\n")

	if lvl != nil && lvl.Summary != nil {
		for _, a := range lvl.Summary.Achievements {
			b.WriteString(theme.Body.Render("✓ " + a))
			b.WriteString("\n")
		}
		if lvl.Summary.NextLevel != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Foreground(theme.TextDim).
				Render("Siguiente: " + lvl.Summary.NextLevel))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Puntos: %d", g.Points())))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Enter para continuar"))
	return b.String()
}

func renderFeedback(fb *quiz.Feedback, width int) string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render(quiz.ToastIncorrect))
	b.WriteString("\n\n")
	b.WriteString(fb.Text)
	if fb.CorrectAnswer != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Correct.Render("Respuesta: " + fb.CorrectAnswer))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Enter para continuar"))
	return theme.Modal.Width(min(width, 60)).Render(b.String())
}

func renderExhausted(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Error).
		Bold(true).
		Render("Te quedaste sin vidas...")
}

func renderToast(t *quiz.Toast) string {
	style := theme.Incorrect
	if t.Correct {
		style = theme.Correct
	}
	return style.Render(t.Text)
}

func (s *GameScreen) renderSidebar() string {
	g := s.game
	var sections []string

	sections = append(sections,
		avatar.Portrait(s.settings),
		lipgloss.NewStyle().Foreground(theme.Doctor).Bold(true).Render("Dr. "+g.Name()),
		components.Hearts(g.Lives(), quiz.MaxLives),
		theme.Body.Render(fmt.Sprintf("Puntos: %d", g.Points())),
	)

	if lvl := g.Level(); lvl != nil && len(lvl.Questions) > 0 {
		done := g.CaseIndex()
		if g.Phase() == quiz.PhaseLevelComplete {
			done = len(lvl.Questions)
		}
		sections = append(sections,
			components.NewProgressBar("Casos", done, len(lvl.Questions), sidebarWidth-4).View())
	}

	if s.inCase() {
		q := g.Current()
		sections = append(sections,
			"",
			avatar.Portrait(avatar.Patient(q.ID)),
			lipgloss.NewStyle().Foreground(theme.Patient).Render(fmt.Sprintf("%s #%s", PatientLabel, q.CaseID)),
		)
	}

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(sections, "\n"))
}

package personalize

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/ui/components"
	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

func (s *PersonalizeScreen) View(width, height int) string {
	var form strings.Builder

	form.WriteString(s.name.View())
	form.WriteString("\n\n")
	for f := fieldTop; f < fieldExit; f++ {
		form.WriteString(s.selectors[f].View(s.focus == f))
		form.WriteString("\n")
	}
	form.WriteString("\n")
	form.WriteString(s.exit.View())

	var status string
	switch {
	case s.loading:
		status = theme.Hint.Render("Cargando opciones...")
	case s.saveErr != nil:
		status = theme.Incorrect.Render("No se pudo guardar")
	case s.dirty:
		status = theme.Hint.Render("Guardando...")
	default:
		status = theme.Hint.Render("Cambios guardados")
	}
	form.WriteString("\n\n")
	form.WriteString(status)

	preview := lipgloss.JoinVertical(lipgloss.Center,
		avatar.Portrait(s.settings),
		"",
		lipgloss.NewStyle().Foreground(theme.Doctor).Bold(true).Render("Dr. "+s.settings.Name),
	)

	left := lipgloss.NewStyle().Padding(1, 2).Render(form.String())
	right := components.ArcadeCard(preview, 24)
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

// Hearts renders n full hearts out of total. n is clamped to [0, total].
func Hearts(n, total int) string {
	n = min(max(n, 0), total)
	full := lipgloss.NewStyle().Foreground(theme.Heart).Render(strings.Repeat("♥", n))
	empty := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Repeat("♡", total-n))
	return full + empty
}

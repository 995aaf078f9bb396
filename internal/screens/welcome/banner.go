package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

const bannerArt = `
  ██████╗██╗     ██╗███╗   ██╗██╗ ██████╗ █████╗
 ██╔════╝██║     ██║████╗  ██║██║██╔════╝██╔══██╗
 ██║     ██║     ██║██╔██╗ ██║██║██║     ███████║
 ██║     ██║     ██║██║╚██╗██║██║██║     ██╔══██║
 ╚██████╗███████╗██║██║ ╚████║██║╚██████╗██║  ██║
  ╚═════╝╚══════╝╚═╝╚═╝  ╚═══╝╚═╝ ╚═════╝╚═╝  ╚═╝
                 O  R  T  I  Z`

const bannerCompact = "C L Í N I C A   O R T I Z"

// RenderBanner returns the clinic banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 54 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 54 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

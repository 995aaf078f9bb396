package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/router"
	"github.com/clinicaortiz/clinica/internal/screen"
	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "¡El doctor lo atenderá en un momento!"

// pulse frames blink beside the portrait like a heart monitor.
var pulseFrames = []string{"─╮╭─", "──╯─"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the menu.
type WelcomeScreen struct {
	next         func() screen.Screen
	doctor       avatar.Settings
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced
// by next, showing doctor as the portrait.
func New(doctor avatar.Settings, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		next:   next,
		doctor: doctor,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Only transition once the full animation has played.
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := avatar.Portrait(w.doctor)

	// Phase 2+: heart monitor beside the portrait
	if w.elapsed >= phase1End {
		pulse := lipgloss.NewStyle().
			Foreground(theme.Success).
			Render(pulseFrames[w.tickCount%len(pulseFrames)])

		lines := strings.Split(rendered, "\n")
		if len(lines) > 2 {
			lines[2] = pulse + "  " + lines[2] + "  " + pulse
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner, tagline and hint
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline))
	}
	if w.elapsed >= totalDur {
		sections = append(sections, "", theme.Hint.Render("presiona cualquier tecla para continuar"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

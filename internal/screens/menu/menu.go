package menu

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/prefs"
	"github.com/clinicaortiz/clinica/internal/router"
	"github.com/clinicaortiz/clinica/internal/screen"
	"github.com/clinicaortiz/clinica/internal/ui/components"
	"github.com/clinicaortiz/clinica/internal/ui/layout"
	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

// Menu labels.
const (
	LabelPlay        = "JUGAR"
	LabelPersonalize = "PERSONALIZAR"
	LabelQuit        = "SALIR"
)

const titleFull = `╔═╗╦  ╦╔╗╔╦╔═╗╔═╗  ╔═╗╦═╗╔╦╗╦╔═╗
║  ║  ║║║║║║  ╠═╣  ║ ║╠╦╝ ║ ║╔═╝
╚═╝╩═╝╩╝╚╝╩╚═╝╩ ╩  ╚═╝╩╚═ ╩ ╩╚═╝`

const titleCompact = "CLÍNICA ORTIZ"

// Deps are the collaborators of the menu screen.
type Deps struct {
	Prefs *prefs.Prefs

	// Play and Personalize build the screens pushed by the menu entries.
	Play        func() screen.Screen
	Personalize func() screen.Screen
}

// MenuScreen is the main menu: play, personalize or quit.
type MenuScreen struct {
	deps     Deps
	menu     components.Menu
	settings avatar.Settings
	best     int
}

var (
	_ screen.Screen          = (*MenuScreen)(nil)
	_ screen.Resumer         = (*MenuScreen)(nil)
	_ screen.StatsProvider   = (*MenuScreen)(nil)
	_ screen.KeyHintProvider = (*MenuScreen)(nil)
)

// New creates a MenuScreen and loads the player profile.
func New(deps Deps) *MenuScreen {
	m := &MenuScreen{deps: deps}

	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			if factory == nil {
				return nil
			}
			s := factory()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}
	m.menu = components.NewMenu([]components.MenuItem{
		{Label: LabelPlay, Action: push(deps.Play), Disabled: deps.Play == nil},
		{Label: LabelPersonalize, Action: push(deps.Personalize), Disabled: deps.Personalize == nil},
		{Label: LabelQuit, Action: func() tea.Cmd { return tea.Quit }},
	})
	m.refresh()
	return m
}

func (m *MenuScreen) refresh() {
	if m.deps.Prefs == nil {
		m.settings = avatar.Defaults()
		return
	}
	ctx := context.Background()
	m.settings = m.deps.Prefs.Avatar(ctx)
	m.best = m.deps.Prefs.BestScore(ctx)
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

// Resume reloads the name and best score after a game or personalization.
func (m *MenuScreen) Resume() tea.Cmd {
	m.refresh()
	return nil
}

func (m *MenuScreen) Title() string {
	return "Menú"
}

func (m *MenuScreen) HeaderStats() []layout.Stat {
	return []layout.Stat{{Icon: "★", Value: m.best}}
}

func (m *MenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (m *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MenuScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	compact := layout.IsCompactHeight(height+8) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string

	title := titleFull
	if compact {
		title = titleCompact
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(title)))

	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(avatar.Portrait(m.settings)))
	}

	sections = append(sections, components.StatsBar([]string{
		lipgloss.NewStyle().Foreground(theme.Doctor).Bold(true).Render("Dr. " + m.settings.Name),
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(fmt.Sprintf("★ MEJOR PUNTAJE %d", m.best)),
	}, cw))

	sections = append(sections, components.ArcadeMenu(m.menu, cw, compact))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

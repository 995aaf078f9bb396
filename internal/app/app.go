package app

import (
	"fmt"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/clinicaortiz/clinica/internal/bank"
	"github.com/clinicaortiz/clinica/internal/prefs"
	"github.com/clinicaortiz/clinica/internal/router"
	"github.com/clinicaortiz/clinica/internal/screen"
	"github.com/clinicaortiz/clinica/internal/screens/personalize"
	"github.com/clinicaortiz/clinica/internal/store"
	"github.com/clinicaortiz/clinica/internal/ui/layout"
)

// Start selects the first screen.
type Start int

const (
	StartWelcome Start = iota
	StartMenu
	StartPlay
)

// Options wires the application's collaborators.
type Options struct {
	Prefs *prefs.Prefs
	Runs  store.RunRepo

	// Levels builds the levels of each new game.
	Levels func() []bank.PlayLevel

	Catalog personalize.CatalogSource

	// Rand shuffles answer options; nil uses the global source.
	Rand *rand.Rand

	Logger *zap.Logger
	Start  Start
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	log     *zap.Logger
	width   int
	height  int
}

// newAppModel creates the AppModel and its first screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	f := &factories{opts: opts}

	m := AppModel{log: opts.Logger}
	switch opts.Start {
	case StartPlay:
		m.router = router.New(f.menu())
		m.initCmd = m.router.Push(f.game())
	case StartMenu:
		m.router = router.New(f.menu())
		m.initCmd = m.router.Active().Init()
	default:
		m.router = router.New(f.welcome())
		m.initCmd = m.router.Active().Init()
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.CapturesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var (
		title string
		stats []layout.Stat
		hints []layout.KeyHint
	)
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatsProvider); ok {
			stats = sp.HeaderStats()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	if hints == nil {
		hints = m.defaultHints()
	}

	header := layout.RenderHeader(title, stats, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) defaultHints() []layout.KeyHint {
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		m.log.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

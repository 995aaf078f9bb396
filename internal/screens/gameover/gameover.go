package gameover

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/clinicaortiz/clinica/internal/prefs"
	"github.com/clinicaortiz/clinica/internal/quiz"
	"github.com/clinicaortiz/clinica/internal/router"
	"github.com/clinicaortiz/clinica/internal/screen"
	"github.com/clinicaortiz/clinica/internal/store"
	"github.com/clinicaortiz/clinica/internal/ui/components"
	"github.com/clinicaortiz/clinica/internal/ui/layout"
	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

// Deps are the collaborators of the game-over screen.
type Deps struct {
	Prefs  *prefs.Prefs
	Runs   store.RunRepo
	Logger *zap.Logger
	Now    func() time.Time

	// NewGame builds the screen for a retry.
	NewGame func() screen.Screen
}

// Summary is what the screen shows once the run is recorded.
type Summary struct {
	Points  int
	Best    int
	Elapsed time.Duration // zero when unknown

	// NewRecord reports that Points beat the best score held before the run.
	NewRecord bool
}

// recordedMsg carries the recorded run.
type recordedMsg struct {
	Summary Summary
}

// GameOverScreen shows points, best score and elapsed time of the last game
// and records it.
type GameOverScreen struct {
	deps    Deps
	player  string
	outcome quiz.Outcome
	summary *Summary
}

var (
	_ screen.Screen          = (*GameOverScreen)(nil)
	_ screen.KeyHintProvider = (*GameOverScreen)(nil)
	_ screen.StatsProvider   = (*GameOverScreen)(nil)
)

// New creates a GameOverScreen for player's finished game.
func New(deps Deps, player string, outcome quiz.Outcome) *GameOverScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &GameOverScreen{deps: deps, player: player, outcome: outcome}
}

func (s *GameOverScreen) Init() tea.Cmd {
	return s.record()
}

func (s *GameOverScreen) Title() string {
	return "Fin del Juego"
}

func (s *GameOverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Reintentar"},
		{Key: "Esc", Description: "Menú"},
	}
}

func (s *GameOverScreen) HeaderStats() []layout.Stat {
	if s.summary == nil {
		return nil
	}
	return []layout.Stat{{Icon: "★", Value: s.summary.Best}}
}

// Summary returns the recorded summary, or nil while recording.
func (s *GameOverScreen) Summary() *Summary {
	return s.summary
}

// record reads the final snapshot, folds the points into the best score and
// appends the run to the history.
func (s *GameOverScreen) record() tea.Cmd {
	deps, player, outcome := s.deps, s.player, s.outcome
	return func() tea.Msg {
		ctx := context.Background()
		now := deps.Now()

		var (
			prog prefs.Progress
			sum  Summary
		)
		if deps.Prefs != nil {
			prog, _ = deps.Prefs.Progress(ctx)
			previous := deps.Prefs.BestScore(ctx)
			best, err := deps.Prefs.RecordScore(ctx, prog.Points)
			if err != nil {
				deps.Logger.Warn("record best score", zap.Error(err))
			}
			sum.Best = best
			sum.NewRecord = prog.Points > previous
		}
		sum.Points = prog.Points
		sum.Elapsed = prog.Elapsed(now)

		if deps.Runs != nil {
			run := &store.Run{
				Player:    player,
				Points:    prog.Points,
				Best:      sum.Best,
				Level:     prog.Level,
				Case:      prog.Case,
				Lives:     prog.Lives,
				StartedAt: prog.Started(),
				EndedAt:   now,
			}
			if err := deps.Runs.Append(ctx, run); err != nil {
				deps.Logger.Warn("append run", zap.Error(err))
			} else {
				deps.Logger.Info("run recorded",
					zap.String("run_id", run.RunID),
					zap.Stringer("outcome", outcome),
					zap.Int("points", run.Points))
			}
		}
		return recordedMsg{Summary: sum}
	}
}

func (s *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordedMsg:
		sum := msg.Summary
		s.summary = &sum
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if s.deps.NewGame == nil {
				return s, nil
			}
			next := s.deps.NewGame()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *GameOverScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Fin del Juego"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(outcomeText(s.outcome)))
	b.WriteString("\n\n")

	if s.summary == nil {
		b.WriteString(theme.Hint.Render(quiz.Placeholder))
	} else {
		rows := []struct{ label, value string }{
			{"Puntos", fmt.Sprintf("%d", s.summary.Points)},
			{"Mejor puntaje", fmt.Sprintf("%d", s.summary.Best)},
			{"Tiempo", layout.FormatClock(int(s.summary.Elapsed / time.Second))},
		}
		for _, r := range rows {
			b.WriteString(theme.Body.Width(16).Render(r.label))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(r.value))
			b.WriteString("\n")
		}
		if s.summary.NewRecord {
			b.WriteString("\n")
			b.WriteString(theme.Correct.Render("¡Nuevo récord!"))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(components.ArcadeButton("REINTENTAR", true, components.ButtonWidth))

	return components.CabinetFrame(components.ArcadeCard(b.String(), cw), width, height)
}

func outcomeText(o quiz.Outcome) string {
	switch o {
	case quiz.OutcomeCompleted:
		return "¡Atendiste a todos los pacientes!"
	case quiz.OutcomeExhausted:
		return "Te quedaste sin vidas."
	default:
		return "Consulta terminada."
	}
}

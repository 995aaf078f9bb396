package quiz

import (
	"slices"
	"time"

	"github.com/clinicaortiz/clinica/internal/bank"
	"github.com/clinicaortiz/clinica/internal/prefs"
)

// Current returns the active question, or a placeholder with empty answers
// when there is none.
func (g *Game) Current() bank.FlatQuestion {
	q, _ := g.question()
	return q
}

// Level returns the active level, or nil after the last one.
func (g *Game) Level() *bank.PlayLevel {
	if g.level < 0 || g.level >= len(g.levels) {
		return nil
	}
	return &g.levels[g.level]
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Name() string {
	return g.name
}

func (g *Game) Points() int {
	return g.points
}

func (g *Game) Lives() int {
	return g.lives
}

func (g *Game) LevelIndex() int {
	return g.level
}

func (g *Game) CaseIndex() int {
	return g.cas
}

func (g *Game) LevelCount() int {
	return len(g.levels)
}

func (g *Game) Toast() *Toast {
	return g.toast
}

func (g *Game) Feedback() *Feedback {
	return g.feedback
}

func (g *Game) StartedAt() time.Time {
	return g.startedAt
}

// Exhausted reports whether lives ran out. The game is then terminal and
// waits for Finish.
func (g *Game) Exhausted() bool {
	return g.exhausted
}

// Over reports whether the game reached its terminal phase.
func (g *Game) Over() bool {
	return g.phase == PhaseGameOver
}

// Notes returns a copy of the patient file notes for the current case.
func (g *Game) Notes() []string {
	return slices.Clone(g.notes)
}

// Snapshot returns the persisted subset of the game state.
func (g *Game) Snapshot() prefs.Progress {
	q, _ := g.question()
	return prefs.Progress{
		Points:    g.points,
		Lives:     g.lives,
		Level:     g.level,
		Case:      g.cas,
		QID:       q.ID,
		StartedAt: g.startedAt.UnixMilli(),
	}
}

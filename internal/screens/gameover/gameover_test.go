package gameover

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicaortiz/clinica/internal/prefs"
	"github.com/clinicaortiz/clinica/internal/quiz"
	"github.com/clinicaortiz/clinica/internal/router"
	"github.com/clinicaortiz/clinica/internal/screen"
	"github.com/clinicaortiz/clinica/internal/store"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

// memRuns records appended runs.
type memRuns struct {
	runs []store.Run
	err  error
}

func (m *memRuns) Append(_ context.Context, run *store.Run) error {
	if m.err != nil {
		return m.err
	}
	run.RunID = "run-1"
	m.runs = append(m.runs, *run)
	return nil
}

func (m *memRuns) Recent(context.Context, int) ([]store.Run, error) {
	return m.runs, nil
}

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T, prog *prefs.Progress, best int) (*prefs.Prefs, *memRuns) {
	t.Helper()
	p := prefs.New(store.NewMemoryKV(), nil)
	ctx := context.Background()
	if prog != nil {
		require.NoError(t, p.SaveProgress(ctx, *prog))
	}
	if best > 0 {
		_, err := p.RecordScore(ctx, best)
		require.NoError(t, err)
	}
	return p, &memRuns{}
}

func record(t *testing.T, s *GameOverScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	require.NotNil(t, s.Summary())
}

func TestRecordsRunAndBest(t *testing.T) {
	started := now.Add(-83 * time.Second)
	p, runs := setup(t, &prefs.Progress{
		Points: 500, Lives: 1, Level: 2, Case: 1, StartedAt: started.UnixMilli(),
	}, 300)

	s := New(Deps{Prefs: p, Runs: runs, Now: func() time.Time { return now }}, "house", quiz.OutcomeExhausted)
	record(t, s)

	sum := s.Summary()
	assert.Equal(t, 500, sum.Points)
	assert.Equal(t, 500, sum.Best)
	assert.Equal(t, 83*time.Second, sum.Elapsed)
	assert.True(t, sum.NewRecord)
	assert.Equal(t, 500, p.BestScore(context.Background()))

	require.Len(t, runs.runs, 1)
	run := runs.runs[0]
	assert.Equal(t, "house", run.Player)
	assert.Equal(t, 2, run.Level)
	assert.Equal(t, 1, run.Lives)
	assert.Equal(t, now, run.EndedAt)
	assert.True(t, run.StartedAt.Equal(started))

	view := s.View(100, 30)
	assert.Contains(t, view, "Fin del Juego")
	assert.Contains(t, view, "01:23")
	assert.Contains(t, view, "¡Nuevo récord!")
}

func TestBestIsRunningMax(t *testing.T) {
	p, runs := setup(t, &prefs.Progress{Points: 100, Lives: 0}, 900)
	s := New(Deps{Prefs: p, Runs: runs}, "x", quiz.OutcomeExhausted)
	record(t, s)

	assert.Equal(t, 900, s.Summary().Best)
	assert.Equal(t, 900, p.BestScore(context.Background()))
	assert.NotContains(t, s.View(100, 30), "¡Nuevo récord!")
}

func TestTyingBestIsNotNewRecord(t *testing.T) {
	p, runs := setup(t, &prefs.Progress{Points: 400, Lives: 0}, 400)
	s := New(Deps{Prefs: p, Runs: runs}, "x", quiz.OutcomeExhausted)
	record(t, s)

	assert.Equal(t, 400, s.Summary().Best)
	assert.False(t, s.Summary().NewRecord)
	assert.NotContains(t, s.View(100, 30), "¡Nuevo récord!")
}

func TestUnknownStartShowsDash(t *testing.T) {
	p, runs := setup(t, &prefs.Progress{Points: 0, Lives: 3}, 0)
	s := New(Deps{Prefs: p, Runs: runs}, "x", quiz.OutcomeCompleted)
	record(t, s)

	assert.Zero(t, s.Summary().Elapsed)
	assert.Contains(t, s.View(100, 30), "—")
}

func TestRunFailureStillShowsSummary(t *testing.T) {
	p, runs := setup(t, &prefs.Progress{Points: 200}, 0)
	runs.err = errors.New("disk full")
	s := New(Deps{Prefs: p, Runs: runs}, "x", quiz.OutcomeExhausted)
	record(t, s)

	assert.Equal(t, 200, s.Summary().Points)
	assert.Empty(t, runs.runs)
}

func TestEnterRetries(t *testing.T) {
	s := New(Deps{NewGame: func() screen.Screen { return &stubScreen{title: "game"} }}, "x", quiz.OutcomeExhausted)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "game", replace.Screen.Title())
}

func TestEscReturnsToMenu(t *testing.T) {
	s := New(Deps{}, "x", quiz.OutcomeAbandoned)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestTitleAndHints(t *testing.T) {
	s := New(Deps{}, "x", quiz.OutcomeCompleted)
	assert.Equal(t, "Fin del Juego", s.Title())
	assert.Len(t, s.KeyHints(), 2)
	assert.Nil(t, s.HeaderStats())
}

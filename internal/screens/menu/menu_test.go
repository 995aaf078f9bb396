package menu

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/prefs"
	"github.com/clinicaortiz/clinica/internal/router"
	"github.com/clinicaortiz/clinica/internal/screen"
	"github.com/clinicaortiz/clinica/internal/store"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newTestMenu(t *testing.T) (*MenuScreen, *prefs.Prefs) {
	t.Helper()
	p := prefs.New(store.NewMemoryKV(), nil)
	m := New(Deps{
		Prefs:       p,
		Play:        func() screen.Screen { return &stubScreen{title: "game"} },
		Personalize: func() screen.Screen { return &stubScreen{title: "personalize"} },
	})
	return m, p
}

func TestMenuShowsNameAndBest(t *testing.T) {
	p := prefs.New(store.NewMemoryKV(), nil)
	ctx := context.Background()
	s := avatar.Defaults()
	s.Name = "house"
	require.NoError(t, p.SaveAvatar(ctx, s))
	_, err := p.RecordScore(ctx, 400)
	require.NoError(t, err)

	m := New(Deps{Prefs: p})
	view := m.View(100, 34)
	assert.Contains(t, view, "Dr. house")
	assert.Contains(t, view, "MEJOR PUNTAJE 400")
	assert.Equal(t, 400, m.HeaderStats()[0].Value)
}

func TestMenuPlayPushesGame(t *testing.T) {
	m, _ := newTestMenu(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "game", push.Screen.Title())
}

func TestMenuPersonalizePushes(t *testing.T) {
	m, _ := newTestMenu(t)
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "personalize", push.Screen.Title())
}

func TestMenuQuit(t *testing.T) {
	m, _ := newTestMenu(t)
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestMenuResumeRefreshesBest(t *testing.T) {
	m, p := newTestMenu(t)
	assert.Equal(t, 0, m.best)

	_, err := p.RecordScore(context.Background(), 700)
	require.NoError(t, err)
	m.Resume()
	assert.Equal(t, 700, m.best)
}

func TestMenuWithoutPlayDisablesEntry(t *testing.T) {
	m := New(Deps{})
	assert.True(t, m.menu.Items[0].Disabled)
	assert.Equal(t, 2, m.menu.Selected, "first enabled item is SALIR")
}

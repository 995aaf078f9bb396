package components

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func pickedIndex(t *testing.T, cmd tea.Cmd) int {
	t.Helper()
	require.NotNil(t, cmd, "expected a pick command")
	msg, ok := cmd().(AnswerPickedMsg)
	require.True(t, ok, "expected AnswerPickedMsg")
	return msg.Index
}

var answers = []string{"Gripe", "Migraña", "Apendicitis", "Anemia"}

func TestQuizCardShuffleKeepsMapping(t *testing.T) {
	for seed := uint64(0); seed < 32; seed++ {
		c := NewQuizCard("¿Diagnóstico?", answers, 2, rand.New(rand.NewPCG(seed, seed)))

		order := c.Order()
		require.Len(t, order, 4)
		assert.ElementsMatch(t, []int{0, 1, 2, 3}, order, "seed %d", seed)

		opts := c.Options()
		correct := 0
		for pos, orig := range order {
			assert.Equal(t, answers[orig], opts[pos])
			if orig == 2 {
				correct++
				assert.Equal(t, pos, c.CorrectPosition())
			}
		}
		assert.Equal(t, 1, correct, "exactly one correct option")
	}
}

func TestQuizCardReportsOriginalIndexOnce(t *testing.T) {
	c := NewQuizCard("¿Diagnóstico?", answers, 2, rand.New(rand.NewPCG(7, 7)))
	pos := c.CorrectPosition()

	for i := 0; i < pos; i++ {
		c, _ = c.Update(specialKey(tea.KeyDown))
	}
	c, cmd := c.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 2, pickedIndex(t, cmd))
	assert.True(t, c.Locked())

	got, ok := c.Picked()
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	// Locked: further picks are ignored.
	c, cmd = c.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	_, cmd = c.Update(keyPress('a'))
	assert.Nil(t, cmd)
}

func TestQuizCardLetterKeys(t *testing.T) {
	c := NewQuizCard("q", answers, 0, rand.New(rand.NewPCG(1, 2)))
	order := c.Order()

	_, cmd := c.Update(keyPress('b'))
	assert.Equal(t, order[1], pickedIndex(t, cmd))

	_, cmd = c.Update(keyPress('4'))
	assert.Equal(t, order[3], pickedIndex(t, cmd))

	_, cmd = c.Update(keyPress('z'))
	assert.Nil(t, cmd, "out of range letter")
}

func TestQuizCardCursorBounds(t *testing.T) {
	c := NewQuizCard("q", answers, 0, nil)
	c, _ = c.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 0, c.Selected)
	for i := 0; i < 10; i++ {
		c, _ = c.Update(specialKey(tea.KeyDown))
	}
	assert.Equal(t, 3, c.Selected)
}

func TestQuizCardViewMarksAfterPick(t *testing.T) {
	c := NewQuizCard("¿Qué tiene?", answers, 1, rand.New(rand.NewPCG(3, 3)))
	view := c.View(60)
	assert.Contains(t, view, "¿Qué tiene?")
	assert.NotContains(t, view, "✓")

	wrong := (c.CorrectPosition() + 1) % 4
	c, _ = c.pick(wrong)
	view = c.View(60)
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "✗")
}

func TestDialogueFinishesOnce(t *testing.T) {
	d := NewDialogue("Dr. Chapatín", "Paciente", Alternating("Hola", "Me duele", "¿Dónde?"))
	assert.Equal(t, "Dr. Chapatín", d.Speaker(0))
	assert.Equal(t, "Paciente", d.Speaker(1))

	var cmd tea.Cmd
	for i := 0; i < 2; i++ {
		d, cmd = d.Update(specialKey(tea.KeyEnter))
		assert.Nil(t, cmd)
		assert.False(t, d.Finished())
	}
	assert.Equal(t, 2, d.Position())
	assert.Contains(t, d.View(60), "3 / 3")

	d, cmd = d.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, ok := cmd().(DialogueFinishedMsg)
	assert.True(t, ok)
	assert.True(t, d.Finished())

	_, cmd = d.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd, "finished is reported once")
}

func TestDialogueReset(t *testing.T) {
	d := NewDialogue("A", "B", Alternating("uno"))
	d, _ = d.Advance()
	require.True(t, d.Finished())

	d.Reset(Alternating("dos", "tres"))
	assert.False(t, d.Finished())
	assert.Equal(t, 0, d.Position())
	assert.Contains(t, d.View(40), "dos")
	assert.NotContains(t, d.View(40), "tres")
}

func TestDialogueSpeakersFollowRoles(t *testing.T) {
	d := NewDialogue("Dr. Chapatín", "Paciente", []DialogueLine{
		{Role: RoleFrontDesk, Text: "Pase al consultorio"},
		{Role: RoleDoctor, Text: "Gracias"},
		{Role: RolePatient, Text: "Me duele"},
	})
	assert.Equal(t, FrontDeskName, d.Speaker(0))
	assert.Equal(t, "Dr. Chapatín", d.Speaker(1))
	assert.Equal(t, "Paciente", d.Speaker(2))
	assert.Equal(t, "", d.Speaker(3))
	assert.Contains(t, d.View(60), FrontDeskName+":")
}

func TestDialogueIgnoresOtherKeys(t *testing.T) {
	d := NewDialogue("A", "B", Alternating("uno", "dos"))
	d, cmd := d.Update(keyPress('x'))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, d.Position())
}

func TestFolder(t *testing.T) {
	f := Folder{Label: "Expediente del paciente #1"}
	assert.False(t, f.IsOpen())

	f.Open()
	view := f.View(60)
	assert.Contains(t, view, "Expediente del paciente #1")
	assert.Contains(t, view, EmptyNotes)

	f.Notes = []string{"fiebre", "respuesta correcta"}
	view = f.View(60)
	assert.Contains(t, view, ". fiebre")
	assert.Contains(t, view, ". respuesta correcta")
	assert.NotContains(t, view, EmptyNotes)

	f, _ = f.Update(specialKey(tea.KeyEscape))
	assert.False(t, f.IsOpen())
}

func TestHearts(t *testing.T) {
	tests := []struct {
		n          int
		full, hole int
	}{
		{3, 3, 0},
		{2, 2, 1},
		{0, 0, 3},
		{-1, 0, 3},
		{5, 3, 0},
	}
	for _, tt := range tests {
		got := Hearts(tt.n, 3)
		assert.Equal(t, tt.full, strings.Count(got, "♥"), "n=%d", tt.n)
		assert.Equal(t, tt.hole, strings.Count(got, "♡"), "n=%d", tt.n)
	}
}

func TestSelectorCycles(t *testing.T) {
	s := NewSelector("Ojos", []string{"default", "happy", "wink"}, "happy")
	assert.Equal(t, "happy", s.Value())

	s, changed := s.Update(specialKey(tea.KeyRight))
	assert.True(t, changed)
	assert.Equal(t, "wink", s.Value())

	s, _ = s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, "default", s.Value(), "wraps forward")

	s, _ = s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, "wink", s.Value(), "wraps backward")

	s.Disabled = true
	s, changed = s.Update(specialKey(tea.KeyLeft))
	assert.False(t, changed)
	assert.Equal(t, "wink", s.Value())
}

func TestSelectorKeepsUnknownValue(t *testing.T) {
	s := NewSelector("Pelo", []string{"bob", "bun"}, "custom")
	assert.Equal(t, "custom", s.Value())
	assert.Equal(t, []string{"custom", "bob", "bun"}, s.Options)
}

func TestMenuSkipsDisabled(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{
		{Label: "JUGAR", Disabled: true},
		{Label: "PERSONALIZAR", Action: func() tea.Cmd { called = true; return nil }},
		{Label: "SALIR"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyEnter))
	assert.True(t, called)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, m.Selected)
	assert.Contains(t, m.View(), "▸ SALIR")
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("Casos", 1, 4, 40)
	assert.InDelta(t, 0.25, p.Percent(), 1e-9)
	assert.Contains(t, p.View(), "1/4")

	assert.Zero(t, NewProgressBar("", 1, 0, 20).Percent())
	assert.Equal(t, 1.0, NewProgressBar("", 9, 3, 20).Percent())
}

func TestButtonPress(t *testing.T) {
	pressed := 0
	b := NewButton("Reintentar", true, func() tea.Cmd { pressed++; return nil })
	b.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, pressed)

	b.Active = false
	b.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, pressed)
}

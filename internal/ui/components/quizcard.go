package components

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicaortiz/clinica/internal/ui/theme"
)

// AnswerPickedMsg reports the answer chosen on a QuizCard. Index refers to
// the original answer order, not the shuffled display order.
type AnswerPickedMsg struct {
	Index int
}

var optionLetters = []string{"A", "B", "C", "D", "E", "F"}

// QuizCard shows a question with its options in shuffled order. The first
// pick locks the card; later input is ignored.
type QuizCard struct {
	Question string

	answers []string
	order   []int // display position -> original index
	correct int   // original index

	Selected int // display position under the cursor
	picked   int // original index, -1 until picked
}

// NewQuizCard shuffles answers with r. A nil r uses the global source.
func NewQuizCard(question string, answers []string, correctIndex int, r *rand.Rand) QuizCard {
	order := make([]int, len(answers))
	for i := range order {
		order[i] = i
	}

	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	// Fisher–Yates
	for i := len(order) - 1; i > 0; i-- {
		j := intN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	return QuizCard{
		Question: question,
		answers:  answers,
		order:    order,
		correct:  correctIndex,
		picked:   -1,
	}
}

// Init returns nil.
func (c QuizCard) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and picks an answer. Enter picks the option under
// the cursor; letter and number keys pick directly.
func (c QuizCard) Update(msg tea.Msg) (QuizCard, tea.Cmd) {
	if c.Locked() {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
		return c, nil
	case "down", "j":
		if c.Selected < len(c.order)-1 {
			c.Selected++
		}
		return c, nil
	case "enter":
		return c.pick(c.Selected)
	}

	if len(key) == 1 {
		switch ch := key[0]; {
		case ch >= '1' && ch <= '9':
			return c.pick(int(ch - '1'))
		case ch >= 'a' && ch <= 'z':
			return c.pick(int(ch - 'a'))
		}
	}
	return c, nil
}

func (c QuizCard) pick(pos int) (QuizCard, tea.Cmd) {
	if pos < 0 || pos >= len(c.order) {
		return c, nil
	}
	c.Selected = pos
	c.picked = c.order[pos]
	index := c.picked
	return c, func() tea.Msg { return AnswerPickedMsg{Index: index} }
}

// Locked reports whether an answer has been picked.
func (c QuizCard) Locked() bool {
	return c.picked >= 0
}

// Picked returns the original index of the picked answer.
func (c QuizCard) Picked() (int, bool) {
	return c.picked, c.picked >= 0
}

// Order returns the original index shown at each display position.
func (c QuizCard) Order() []int {
	return append([]int(nil), c.order...)
}

// Options returns the answers in display order.
func (c QuizCard) Options() []string {
	out := make([]string, len(c.order))
	for pos, orig := range c.order {
		out[pos] = c.answers[orig]
	}
	return out
}

// CorrectPosition returns the display position of the correct answer, or -1.
func (c QuizCard) CorrectPosition() int {
	for pos, orig := range c.order {
		if orig == c.correct {
			return pos
		}
	}
	return -1
}

// View renders the question and options. After the pick, the correct option
// is marked and a wrong pick is flagged.
func (c QuizCard) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render(c.Question))
	b.WriteString("\n\n")

	for pos, orig := range c.order {
		label := optionLetters[pos%len(optionLetters)]
		text := c.answers[orig]
		if text == "" {
			text = "—"
		}

		prefix := "  "
		if pos == c.Selected && !c.Locked() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, text)

		switch {
		case c.Locked() && orig == c.correct:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case c.Locked() && orig == c.picked:
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		case c.Locked():
			b.WriteString(theme.Disabled.Render(line))
		case pos == c.Selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/bank"
	"github.com/clinicaortiz/clinica/internal/prefs"
	"github.com/clinicaortiz/clinica/internal/quiz"
	"github.com/clinicaortiz/clinica/internal/router"
	"github.com/clinicaortiz/clinica/internal/screen"
	"github.com/clinicaortiz/clinica/internal/ui/components"
	"github.com/clinicaortiz/clinica/internal/ui/layout"
)

// PatientLabel names the other side of the dialogue.
const PatientLabel = "Paciente"

// Deps are the collaborators of the game screen.
type Deps struct {
	Prefs *prefs.Prefs

	// Levels builds the levels of a new game.
	Levels func() []bank.PlayLevel

	// Rand shuffles the answer options; nil uses the global source.
	Rand *rand.Rand

	Logger *zap.Logger
	Now    func() time.Time

	// GameOver builds the screen that replaces the game once it ends.
	GameOver func(player string, outcome quiz.Outcome) screen.Screen
}

// GameScreen drives a quiz.Game: briefing, dialogue, question, feedback
// and level summary, plus the patient file overlay.
type GameScreen struct {
	deps     Deps
	game     *quiz.Game
	settings avatar.Settings

	dialogue components.Dialogue
	card     components.QuizCard
	folder   components.Folder

	// shownQID and shownPhase record what dialogue and card were built for.
	shownQID   string
	shownPhase quiz.Phase

	exhaustScheduled bool
	done             bool
}

var (
	_ screen.Screen          = (*GameScreen)(nil)
	_ screen.KeyHintProvider = (*GameScreen)(nil)
	_ screen.StatsProvider   = (*GameScreen)(nil)
	_ screen.EscapeHandler   = (*GameScreen)(nil)
)

// New creates a GameScreen. The game starts once Init's load completes.
func New(deps Deps) *GameScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &GameScreen{deps: deps, shownPhase: -1}
}

func (s *GameScreen) Init() tea.Cmd {
	return s.load()
}

func (s *GameScreen) Title() string {
	if s.game == nil {
		return "Consulta"
	}
	if lvl := s.game.Level(); lvl != nil && lvl.Title != "" {
		return lvl.Title
	}
	return fmt.Sprintf("Nivel %d", s.game.LevelIndex()+1)
}

func (s *GameScreen) HeaderStats() []layout.Stat {
	if s.game == nil {
		return nil
	}
	return []layout.Stat{
		{Icon: "✚", Value: s.game.Points()},
		{Icon: "♥", Value: s.game.Lives()},
	}
}

// CapturesEscape keeps Esc for closing the patient file, and holds it once
// lives ran out so the game cannot be left before game over.
func (s *GameScreen) CapturesEscape() bool {
	return s.folder.IsOpen() || (s.game != nil && s.game.Exhausted())
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.game == nil:
		return nil
	case s.folder.IsOpen():
		return []layout.KeyHint{{Key: "Esc", Description: "Cerrar expediente"}}
	case s.game.Feedback() != nil:
		return []layout.KeyHint{{Key: "Enter", Description: "Continuar"}}
	}

	switch s.game.Phase() {
	case quiz.PhaseConversation:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Siguiente"},
			{Key: "f", Description: "Expediente"},
			{Key: "Esc", Description: "Menú"},
		}
	case quiz.PhaseQuiz:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Elegir"},
			{Key: "A-D", Description: "Responder"},
			{Key: "f", Description: "Expediente"},
			{Key: "Esc", Description: "Menú"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continuar"},
			{Key: "Esc", Description: "Menú"},
		}
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gameLoadedMsg:
		return s.handleLoaded(msg)

	case toastExpiredMsg:
		if s.game != nil {
			s.game.DismissToast(msg.Seq)
		}
		return s, nil

	case exhaustedMsg:
		if s.game == nil {
			return s, nil
		}
		s.game.Finish()
		return s, s.sync()

	case components.DialogueFinishedMsg:
		if s.game == nil {
			return s, nil
		}
		s.game.FinishDialogue()
		return s, s.sync()

	case components.AnswerPickedMsg:
		return s.handleAnswer(msg.Index)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// load reads the player profile and builds the levels off the UI goroutine.
func (s *GameScreen) load() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		settings := avatar.Defaults()
		if deps.Prefs != nil {
			settings = deps.Prefs.Avatar(context.Background())
		}
		var levels []bank.PlayLevel
		if deps.Levels != nil {
			levels = deps.Levels()
		}
		return gameLoadedMsg{Settings: settings, Levels: levels}
	}
}

func (s *GameScreen) handleLoaded(msg gameLoadedMsg) (screen.Screen, tea.Cmd) {
	s.settings = msg.Settings

	opts := quiz.Options{
		Name:   msg.Settings.Name,
		Now:    s.deps.Now,
		Logger: s.deps.Logger,
	}
	if s.deps.Prefs != nil {
		opts.Progress = s.deps.Prefs
	}
	s.game = quiz.New(msg.Levels, opts)
	s.dialogue = components.NewDialogue("Dr. "+s.settings.Name, PatientLabel, nil)
	s.deps.Logger.Info("game started",
		zap.String("player", s.game.Name()),
		zap.Int("levels", s.game.LevelCount()))

	return s, s.sync()
}

func (s *GameScreen) handleAnswer(index int) (screen.Screen, tea.Cmd) {
	if s.game == nil {
		return s, nil
	}
	res := s.game.Answer(index)
	if res.Ignored {
		return s, nil
	}

	var cmds []tea.Cmd
	if res.Toast != nil {
		seq := res.Toast.Seq
		cmds = append(cmds, tea.Tick(quiz.ToastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{Seq: seq}
		}))
	}
	cmds = append(cmds, s.scheduleExhaustion(), s.sync())
	return s, tea.Batch(cmds...)
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.game == nil {
		return s, nil
	}
	key := msg.String()

	// Any key dismisses the toast early; its timer then fires as a no-op.
	if t := s.game.Toast(); t != nil {
		s.game.DismissToast(t.Seq)
	}

	// Patient file overlay.
	if s.folder.IsOpen() {
		s.folder, _ = s.folder.Update(msg)
		return s, nil
	}

	// Blocking feedback modal.
	if s.game.Feedback() != nil {
		switch key {
		case "enter", "space", " ":
			s.game.DismissFeedback()
			return s, tea.Batch(s.scheduleExhaustion(), s.sync())
		}
		return s, nil
	}

	if key == "f" && s.inCase() {
		s.folder.Open()
		return s, nil
	}

	var cmd tea.Cmd
	switch s.game.Phase() {
	case quiz.PhaseLevelContext:
		if key == "enter" || key == "space" || key == " " {
			s.game.Acknowledge()
			return s, s.sync()
		}
	case quiz.PhaseConversation:
		s.dialogue, cmd = s.dialogue.Update(msg)
	case quiz.PhaseQuiz:
		s.card, cmd = s.card.Update(msg)
	case quiz.PhaseLevelComplete:
		if key == "enter" || key == "space" || key == " " {
			s.game.Continue()
			return s, s.sync()
		}
	}
	return s, cmd
}

// inCase reports whether a patient case is on screen.
func (s *GameScreen) inCase() bool {
	p := s.game.Phase()
	return p == quiz.PhaseConversation || p == quiz.PhaseQuiz
}

// scheduleExhaustion starts the delay towards game over once lives ran out.
func (s *GameScreen) scheduleExhaustion() tea.Cmd {
	if !s.game.Exhausted() || s.exhaustScheduled {
		return nil
	}
	s.exhaustScheduled = true
	return tea.Tick(quiz.ExhaustionDelay, func(time.Time) tea.Msg {
		return exhaustedMsg{}
	})
}

// sync rebuilds the dialogue, quiz card and patient file after a
// transition, and leaves the screen when the game is over.
func (s *GameScreen) sync() tea.Cmd {
	g := s.game
	if g.Over() {
		return s.finish()
	}

	q := g.Current()
	s.folder.Label = fmt.Sprintf("Expediente del paciente #%s", q.CaseID)
	s.folder.Notes = g.Notes()

	if q.ID == s.shownQID && g.Phase() == s.shownPhase {
		return nil
	}
	switch g.Phase() {
	case quiz.PhaseConversation:
		s.dialogue.Reset(dialogueLines(q.Dialogue))
	case quiz.PhaseQuiz:
		s.card = components.NewQuizCard(q.Question, q.Answers[:], q.CorrectIndex, s.deps.Rand)
	}
	s.shownQID, s.shownPhase = q.ID, g.Phase()
	return nil
}

func dialogueLines(lines []bank.Line) []components.DialogueLine {
	out := make([]components.DialogueLine, len(lines))
	for i, l := range lines {
		out[i] = components.DialogueLine{Role: components.RoleDoctor, Text: l.Text}
		switch l.Speaker {
		case bank.SpeakerPatient:
			out[i].Role = components.RolePatient
		case bank.SpeakerFrontDesk:
			out[i].Role = components.RoleFrontDesk
		}
	}
	return out
}

func (s *GameScreen) finish() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	s.folder.Close()
	s.deps.Logger.Info("game over",
		zap.Stringer("outcome", s.game.Outcome()),
		zap.Int("points", s.game.Points()))

	if s.deps.GameOver == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	next := s.deps.GameOver(s.game.Name(), s.game.Outcome())
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

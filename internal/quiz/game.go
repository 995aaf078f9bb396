package quiz

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/clinicaortiz/clinica/internal/bank"
	"github.com/clinicaortiz/clinica/internal/prefs"
)

// ProgressWriter persists game snapshots.
type ProgressWriter interface {
	SaveProgress(ctx context.Context, p prefs.Progress) error
}

// Options configures a Game. Every field is optional.
type Options struct {
	Name     string
	Progress ProgressWriter
	Now      func() time.Time
	Logger   *zap.Logger
}

// Game is the quiz flow state machine for one play session. It is driven
// from a single goroutine; mutators called outside their phase are no-ops.
type Game struct {
	levels []bank.PlayLevel

	level  int
	cas    int
	phase  Phase
	name   string
	points int
	lives  int
	notes  []string

	toast    *Toast
	toastSeq int
	feedback *Feedback

	exhausted bool
	outcome   Outcome
	startedAt time.Time

	progress ProgressWriter
	now      func() time.Time
	log      *zap.Logger
}

// New starts a game over levels and persists the initial snapshot.
func New(levels []bank.PlayLevel, opts Options) *Game {
	g := &Game{
		levels:   levels,
		name:     opts.Name,
		lives:    MaxLives,
		progress: opts.Progress,
		now:      opts.Now,
		log:      opts.Logger,
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	g.startedAt = g.now()

	if len(levels) == 0 {
		g.phase = PhaseGameOver
		g.outcome = OutcomeCompleted
		g.notes = []string{}
		g.persist()
		return g
	}
	g.enterLevel(0)
	return g
}

// Acknowledge dismisses the level briefing.
func (g *Game) Acknowledge() {
	if g.terminal() || g.phase != PhaseLevelContext {
		return
	}
	g.setPhase(PhaseConversation)
}

// FinishDialogue moves from the conversation to the question.
func (g *Game) FinishDialogue() {
	if g.terminal() || g.phase != PhaseConversation {
		return
	}
	g.setPhase(PhaseQuiz)
}

// Answer submits the option at index, in original answer order.
func (g *Game) Answer(index int) Result {
	q, ok := g.question()
	if !ok {
		return Result{Ignored: true, Points: g.points, Lives: g.lives}
	}
	return g.AnswerCorrect(index == q.CorrectIndex)
}

// AnswerCorrect submits an already evaluated answer.
func (g *Game) AnswerCorrect(correct bool) Result {
	if g.terminal() || g.phase != PhaseQuiz || g.feedback != nil {
		return Result{Ignored: true, Points: g.points, Lives: g.lives}
	}
	q, _ := g.question()

	res := Result{Correct: correct}
	g.toastSeq++
	if correct {
		g.points += PointsPerCorrect
		g.notes = append(g.notes, NoteCorrect)
		g.toast = &Toast{Seq: g.toastSeq, Text: ToastCorrect, Correct: true}
		g.log.Debug("answer", zap.String("qid", q.ID), zap.Bool("correct", true))
		g.advance()
	} else {
		g.lives = max(0, g.lives-1)
		g.notes = append(g.notes, NoteIncorrect)
		g.toast = &Toast{Seq: g.toastSeq, Text: ToastIncorrect}
		text := q.FeedbackIncorrect
		if text == "" {
			text = FeedbackFallback
		}
		g.feedback = &Feedback{Text: text, CorrectAnswer: q.Answers[q.CorrectIndex]}
		g.log.Debug("answer", zap.String("qid", q.ID), zap.Bool("correct", false), zap.Int("lives", g.lives))
		g.persist()
	}
	g.guard()

	res.Points = g.points
	res.Lives = g.lives
	res.Toast = g.toast
	res.Feedback = g.feedback
	res.Exhausted = g.exhausted
	return res
}

// DismissFeedback closes the incorrect-answer modal and advances, unless
// the lives are exhausted.
func (g *Game) DismissFeedback() {
	if g.feedback == nil {
		return
	}
	g.feedback = nil
	if g.terminal() {
		return
	}
	g.advance()
	g.guard()
}

// DismissToast clears the toast identified by seq. Stale sequence numbers
// are ignored.
func (g *Game) DismissToast(seq int) {
	if g.toast != nil && g.toast.Seq == seq {
		g.toast = nil
	}
}

// Continue leaves the level summary for the next level, or ends the game
// after the last one.
func (g *Game) Continue() {
	if g.terminal() || g.phase != PhaseLevelComplete {
		return
	}
	if g.level+1 < len(g.levels) {
		g.enterLevel(g.level + 1)
		return
	}
	g.outcome = OutcomeCompleted
	g.setPhase(PhaseGameOver)
}

// Finish ends the game. The host calls it ExhaustionDelay after lives run
// out, or when the player leaves. It is idempotent.
func (g *Game) Finish() {
	if g.phase == PhaseGameOver {
		return
	}
	g.feedback = nil
	if g.exhausted {
		g.outcome = OutcomeExhausted
	} else {
		g.outcome = OutcomeAbandoned
	}
	g.setPhase(PhaseGameOver)
}

// guard is the any-state edge towards game over: once lives reach zero the
// game is terminal and only Finish moves it.
func (g *Game) guard() {
	if g.lives <= 0 && !g.exhausted {
		g.exhausted = true
		g.log.Info("lives exhausted", zap.Int("points", g.points))
	}
}

func (g *Game) terminal() bool {
	return g.exhausted || g.phase == PhaseGameOver
}

func (g *Game) enterLevel(i int) {
	g.level = i
	g.cas = 0
	g.resetNotes()
	if g.levels[i].HasBriefing() {
		g.setPhase(PhaseLevelContext)
	} else {
		g.setPhase(PhaseConversation)
	}
}

func (g *Game) advance() {
	if g.cas+1 < len(g.levels[g.level].Questions) {
		g.cas++
		g.resetNotes()
		g.setPhase(PhaseConversation)
		return
	}
	g.setPhase(PhaseLevelComplete)
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	g.persist()
}

func (g *Game) resetNotes() {
	q, _ := g.question()
	g.notes = slices.Clone(q.Notes)
	if g.notes == nil {
		g.notes = []string{}
	}
}

func (g *Game) persist() {
	if g.progress == nil {
		return
	}
	if err := g.progress.SaveProgress(context.Background(), g.Snapshot()); err != nil {
		g.log.Warn("save progress", zap.Error(err))
	}
}

// question returns the question at the current position.
func (g *Game) question() (bank.FlatQuestion, bool) {
	if g.level < 0 || g.level >= len(g.levels) {
		return placeholder(), false
	}
	qs := g.levels[g.level].Questions
	if g.cas < 0 || g.cas >= len(qs) {
		return placeholder(), false
	}
	return qs[g.cas], true
}

func placeholder() bank.FlatQuestion {
	return bank.FlatQuestion{Question: Placeholder, Notes: []string{}}
}

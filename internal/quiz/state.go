package quiz

import "time"

// Phase is the current step of the quiz flow.
type Phase int

const (
	PhaseLevelContext  Phase = iota // Level briefing, once per level
	PhaseConversation               // Dialogue for the current case
	PhaseQuiz                       // Question awaiting an answer
	PhaseLevelComplete              // End-of-level summary
	PhaseGameOver                   // Terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseLevelContext:
		return "levelContext"
	case PhaseConversation:
		return "conversation"
	case PhaseQuiz:
		return "quiz"
	case PhaseLevelComplete:
		return "levelComplete"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Outcome explains why a game ended.
type Outcome int

const (
	OutcomeNone      Outcome = iota // Still playing
	OutcomeCompleted                // Every level finished
	OutcomeExhausted                // Lives ran out
	OutcomeAbandoned                // Player left early
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeAbandoned:
		return "abandoned"
	default:
		return "none"
	}
}

const (
	// MaxLives is the number of lives a game starts with.
	MaxLives = 3

	// PointsPerCorrect is awarded for every correct answer.
	PointsPerCorrect = 100

	// ToastDuration is how long the answer notification stays up.
	ToastDuration = 1200 * time.Millisecond

	// ExhaustionDelay separates running out of lives from game over.
	ExhaustionDelay = 600 * time.Millisecond
)

// Player-facing texts.
const (
	NoteCorrect      = "respuesta correcta"
	NoteIncorrect    = "respuesta incorrecta"
	ToastCorrect     = "¡Correcto!"
	ToastIncorrect   = "Incorrecto"
	FeedbackFallback = "Esa no era la respuesta. Revisa el expediente del paciente."
	Placeholder      = "Cargando..."
)

// Toast is a transient answer notification. Seq identifies it so a stale
// auto-dismiss timer cannot clear a newer toast.
type Toast struct {
	Seq     int
	Text    string
	Correct bool
}

// Feedback is the blocking modal shown after an incorrect answer.
type Feedback struct {
	Text          string
	CorrectAnswer string
}

// Result reports what an answer did.
type Result struct {
	// Ignored is set when the answer arrived outside the quiz phase.
	Ignored bool

	Correct   bool
	Points    int
	Lives     int
	Toast     *Toast
	Feedback  *Feedback
	Exhausted bool
}

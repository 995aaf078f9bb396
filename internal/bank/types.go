package bank

// MaxLevels is the number of level slots a bank can define (level_1..level_5).
const MaxLevels = 5

// AnswerCount is the fixed number of answer options per question.
const AnswerCount = 4

// FlatQuestion is the normalized, playable unit produced from a raw case record.
type FlatQuestion struct {
	// ID is human readable and encodes level and case, e.g. "N1-C2".
	ID string

	// CaseID is the raw case identifier inside its level.
	CaseID string

	Question string

	// Answers always holds four entries; missing answers are empty strings.
	Answers [AnswerCount]string

	// CorrectIndex is 0-based and always within [0, 3].
	CorrectIndex int

	// Notes are the default symptom notes shown in the patient file.
	Notes []string

	// Dialogue is the conversation before the question. Never empty.
	Dialogue []Line

	FeedbackCorrect   string
	FeedbackIncorrect string
}

// Speaker says a dialogue line.
type Speaker int

const (
	SpeakerDoctor Speaker = iota
	SpeakerPatient
	SpeakerFrontDesk
)

// Line is one line of a case dialogue.
type Line struct {
	Speaker Speaker
	Text    string
}

// LevelSummary is shown when a level is completed.
type LevelSummary struct {
	Achievements []string
	NextLevel    string
}

// PlayLevel is an ordered group of questions sharing a briefing.
type PlayLevel struct {
	// Key is the bank key of the level, e.g. "level_3".
	Key string

	// Number is the 1-based level number.
	Number int

	Title string

	// Context is the optional briefing shown once at the start of the level.
	Context string

	Questions []FlatQuestion

	// Summary is nil when the bank defines none.
	Summary *LevelSummary
}

// HasBriefing reports whether the level-context phase applies to this level.
func (l PlayLevel) HasBriefing() bool {
	return l.Context != ""
}

package bank

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Build normalizes a raw bank into an ordered list of playable levels.
// It never fails: unknown shapes yield no levels, malformed cases are
// skipped and levels left without cases are dropped.
func Build(raw any, sampler Sampler) []PlayLevel {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	if sampler == nil {
		sampler = DefaultSampler()
	}

	switch detectBankShape(root) {
	case shapeLeveled:
		return buildLeveled(root, sampler)
	case shapeFlatLegacy:
		return buildFlatLegacy(root, sampler)
	}
	return nil
}

func buildLeveled(root map[string]any, sampler Sampler) []PlayLevel {
	var levels []PlayLevel
	for n := 1; n <= MaxLevels; n++ {
		key, rec, ok := findLevel(root, n)
		if !ok {
			continue
		}
		level := PlayLevel{
			Key:     key,
			Number:  n,
			Title:   toString(rec["titulo"]),
			Context: toString(rec["contexto"]),
			Summary: parseSummary(rec["resumen"]),
		}
		if level.Title == "" {
			level.Title = fmt.Sprintf("Nivel %d", n)
		}
		level.Questions = buildQuestions(n, collectCases(rec["casos"]), sampler)
		if len(level.Questions) == 0 {
			continue
		}
		levels = append(levels, level)
	}
	return levels
}

func buildFlatLegacy(root map[string]any, sampler Sampler) []PlayLevel {
	cases := make(map[string]map[string]any, len(root))
	for id, v := range root {
		if obj, ok := v.(map[string]any); ok {
			cases[id] = obj
		}
	}
	questions := buildQuestions(1, cases, sampler)
	if len(questions) == 0 {
		return nil
	}
	return []PlayLevel{{
		Key:       "level_1",
		Number:    1,
		Title:     "Nivel 1",
		Questions: questions,
	}}
}

// buildQuestions parses every case, drops the unplayable ones, sorts the
// identifiers numerically and lets the sampler pick the playing order.
func buildQuestions(level int, cases map[string]map[string]any, sampler Sampler) []FlatQuestion {
	parsed := make(map[string]FlatQuestion, len(cases))
	ids := make([]string, 0, len(cases))
	for id, rec := range cases {
		q, ok := parseCase(level, id, rec)
		if !ok {
			continue
		}
		parsed[id] = q
		ids = append(ids, id)
	}
	sortCaseIDs(ids)

	selected := sampler.Sample(ids)
	out := make([]FlatQuestion, 0, len(selected))
	for _, id := range selected {
		if q, ok := parsed[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

// parseCase normalizes one case record. It reports false when the record
// lacks an introduction or a correct-answer field.
func parseCase(level int, id string, rec map[string]any) (FlatQuestion, bool) {
	var fields map[string]any
	switch detectCaseShape(rec) {
	case caseNested:
		fields = rec["preguntas"].(map[string]any)
	case caseFlat:
		fields = rec
	default:
		return FlatQuestion{}, false
	}

	intro := toString(fields["introduccion"])
	correct, hasCorrect := fields["correcta"]
	if intro == "" || !hasCorrect {
		return FlatQuestion{}, false
	}

	q := FlatQuestion{
		ID:           QuestionID(level, id),
		CaseID:       id,
		Question:     intro,
		Answers:      parseAnswers(fields),
		CorrectIndex: CorrectIndex(correct),
		Notes:        toStrings(rec["sintomas"]),
	}
	if q.Notes == nil {
		q.Notes = []string{}
	}

	dialogue := parseDialogue(rec["dialogos"])
	if len(dialogue) == 0 {
		dialogue = parseDialogue(fields["dialogos"])
	}
	if len(dialogue) == 0 {
		dialogue = synthesizeDialogue(intro, q.Notes)
	}
	q.Dialogue = dialogue

	q.FeedbackCorrect, q.FeedbackIncorrect = parseFeedback(rec)
	return q, true
}

// QuestionID derives the human readable identifier of a case.
func QuestionID(level int, caseID string) string {
	return fmt.Sprintf("N%d-C%s", level, caseID)
}

func parseAnswers(fields map[string]any) [AnswerCount]string {
	var answers [AnswerCount]string
	if list, ok := fields["respuestas"].([]any); ok {
		for i := 0; i < AnswerCount && i < len(list); i++ {
			answers[i] = toString(list[i])
		}
		return answers
	}
	for i := range answers {
		answers[i] = toString(fields[strconv.Itoa(i+1)])
	}
	return answers
}

// CorrectIndex converts a raw 1-based correct-answer number into a 0-based
// index clamped to [0, 3]. Non-numeric and zero values count as 1.
func CorrectIndex(raw any) int {
	n, ok := toNumber(raw)
	if !ok || n == 0 || math.IsNaN(n) {
		n = 1
	}
	// Out-of-range floats do not convert to int portably.
	n = max(1, min(AnswerCount, n))
	return ClampIndex(int(math.Trunc(n)))
}

// ClampIndex returns clamp(correctNumber-1, 0, 3).
func ClampIndex(correctNumber int) int {
	return max(0, min(AnswerCount-1, correctNumber-1))
}

// parseDialogue accepts freeform lines, which alternate doctor and patient,
// or {recepcion, doctor} pairs, front desk first.
func parseDialogue(v any) []Line {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var lines []Line
	freeform := 0
	for _, item := range list {
		switch x := item.(type) {
		case map[string]any:
			if s := toString(x["recepcion"]); s != "" {
				lines = append(lines, Line{Speaker: SpeakerFrontDesk, Text: s})
			}
			if s := toString(x["doctor"]); s != "" {
				lines = append(lines, Line{Speaker: SpeakerDoctor, Text: s})
			}
		default:
			if s := toString(x); s != "" {
				speaker := SpeakerDoctor
				if freeform%2 == 1 {
					speaker = SpeakerPatient
				}
				lines = append(lines, Line{Speaker: speaker, Text: s})
				freeform++
			}
		}
	}
	return lines
}

// synthesizeDialogue builds a minimal exchange so the conversation phase
// always has something to show.
func synthesizeDialogue(intro string, notes []string) []Line {
	lines := []Line{{Speaker: SpeakerDoctor, Text: "Buenos días, pase por favor. ¿Qué le trae a consulta?"}}
	if len(notes) == 0 {
		return append(lines, Line{Speaker: SpeakerPatient, Text: intro})
	}
	return append(lines,
		Line{Speaker: SpeakerPatient, Text: notes[0]},
		Line{Speaker: SpeakerDoctor, Text: "Entiendo. " + intro})
}

func parseFeedback(rec map[string]any) (correct, incorrect string) {
	if fb, ok := rec["feedback"].(map[string]any); ok {
		correct = toString(fb["correcta"])
		incorrect = toString(fb["incorrecta"])
	}
	if correct == "" {
		correct = toString(rec["feedback_correcta"])
	}
	if incorrect == "" {
		incorrect = toString(rec["feedback_incorrecta"])
	}
	return correct, incorrect
}

func parseSummary(v any) *LevelSummary {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	s := &LevelSummary{
		Achievements: toStrings(obj["logros"]),
		NextLevel:    toString(obj["siguiente"]),
	}
	if len(s.Achievements) == 0 && s.NextLevel == "" {
		return nil
	}
	return s
}

// Stats describes a built bank for diagnostics.
type Stats struct {
	Shape     string
	Levels    int
	Questions int
	PerLevel  map[string]int
}

// Describe reports the detected shape and counts of a raw bank built with
// every case selected.
func Describe(raw any) Stats {
	st := Stats{Shape: shapeUnknown.String(), PerLevel: map[string]int{}}
	root, ok := raw.(map[string]any)
	if !ok {
		return st
	}
	st.Shape = detectBankShape(root).String()
	levels := Build(raw, FirstN{})
	st.Levels = len(levels)
	for _, l := range levels {
		st.PerLevel[l.Key] = len(l.Questions)
		st.Questions += len(l.Questions)
	}
	return st
}

// SortedKeys returns the PerLevel keys in order.
func (s Stats) SortedKeys() []string {
	keys := make([]string, 0, len(s.PerLevel))
	for k := range s.PerLevel {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

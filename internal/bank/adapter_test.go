package bank

import (
	"math"
	"slices"
	"testing"
)

func flatCase(intro string, correct any) map[string]any {
	return map[string]any{
		"introduccion": intro,
		"1":            "A",
		"2":            "B",
		"3":            "C",
		"4":            "D",
		"correcta":     correct,
	}
}

func TestClampIndex(t *testing.T) {
	for c := -10; c <= 10; c++ {
		want := c - 1
		if want < 0 {
			want = 0
		}
		if want > 3 {
			want = 3
		}
		if got := ClampIndex(c); got != want {
			t.Errorf("ClampIndex(%d) = %d, want %d", c, got, want)
		}
	}
}

func TestCorrectIndex(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int
	}{
		{"first", float64(1), 0},
		{"last", float64(4), 3},
		{"out of range high", float64(5), 3},
		{"negative", float64(-2), 0},
		{"zero counts as one", float64(0), 0},
		{"numeric string", "3", 2},
		{"non numeric", "abc", 0},
		{"nil", nil, 0},
		{"fraction truncates", 2.7, 1},
		{"yaml int", 2, 1},
		{"huge", 1e300, 3},
		{"huge negative", -1e300, 0},
		{"infinity", math.Inf(1), 3},
		{"negative infinity", math.Inf(-1), 0},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CorrectIndex(tt.raw); got != tt.want {
				t.Errorf("CorrectIndex(%v) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuild_OutOfRangeCorrectClamps(t *testing.T) {
	raw := map[string]any{
		"level_1": map[string]any{
			"casos": map[string]any{
				"1": flatCase("uno", float64(1)),
				"2": flatCase("dos", float64(5)),
				"3": flatCase("tres", float64(2)),
			},
		},
	}

	levels := Build(raw, FirstN{})
	if len(levels) != 1 || len(levels[0].Questions) != 3 {
		t.Fatalf("expected 1 level with 3 questions, got %+v", levels)
	}

	q := levels[0].Questions[1]
	if q.ID != "N1-C2" {
		t.Errorf("ID = %q, want N1-C2", q.ID)
	}
	if q.CorrectIndex != 3 {
		t.Errorf("CorrectIndex = %d, want 3", q.CorrectIndex)
	}
}

func TestBuild_NumericCaseOrder(t *testing.T) {
	raw := map[string]any{
		"level_1": map[string]any{
			"casos": map[string]any{
				"10": flatCase("diez", 1),
				"2":  flatCase("dos", 1),
				"1":  flatCase("uno", 1),
				"x":  flatCase("equis", 1),
			},
		},
	}

	levels := Build(raw, FirstN{})
	if len(levels) != 1 {
		t.Fatalf("expected 1 level, got %d", len(levels))
	}

	var ids []string
	for _, q := range levels[0].Questions {
		ids = append(ids, q.CaseID)
	}
	if want := []string{"1", "2", "10", "x"}; !slices.Equal(ids, want) {
		t.Errorf("case order = %v, want %v", ids, want)
	}
}

func TestSortCaseIDs(t *testing.T) {
	ids := []string{"b", "10", "a", "2", "1"}
	sortCaseIDs(ids)
	if want := []string{"1", "2", "10", "a", "b"}; !slices.Equal(ids, want) {
		t.Errorf("sortCaseIDs = %v, want %v", ids, want)
	}
}

func TestBuild_LevelOrderAndFlaggedLevel(t *testing.T) {
	raw := map[string]any{
		"level_2": map[string]any{"casos": map[string]any{"1": flatCase("dos", 1)}},
		"level_1": map[string]any{"casos": map[string]any{"1": flatCase("uno", 1)}},
		"extra": map[string]any{
			"nivel": float64(5),
			"casos": map[string]any{"1": flatCase("cinco", 1)},
		},
	}

	levels := Build(raw, FirstN{})
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}
	numbers := []int{levels[0].Number, levels[1].Number, levels[2].Number}
	if want := []int{1, 2, 5}; !slices.Equal(numbers, want) {
		t.Errorf("level numbers = %v, want %v", numbers, want)
	}
	if levels[2].Key != "level_5" {
		t.Errorf("Key = %q, want level_5", levels[2].Key)
	}
	if levels[2].Title != "Nivel 5" {
		t.Errorf("Title = %q, want %q", levels[2].Title, "Nivel 5")
	}
	if id := levels[2].Questions[0].ID; id != "N5-C1" {
		t.Errorf("ID = %q, want N5-C1", id)
	}
}

func TestBuild_ExplicitLevelKeyWinsOverFlag(t *testing.T) {
	raw := map[string]any{
		"level_5": map[string]any{"casos": map[string]any{"1": flatCase("explicito", 1)}},
		"extra": map[string]any{
			"nivel": float64(5),
			"casos": map[string]any{"1": flatCase("marcado", 1)},
		},
	}

	levels := Build(raw, FirstN{})
	if len(levels) != 1 {
		t.Fatalf("expected 1 level, got %d", len(levels))
	}
	if got := levels[0].Questions[0].Question; got != "explicito" {
		t.Errorf("Question = %q, want explicito", got)
	}
}

func TestBuild_CasesAsList(t *testing.T) {
	raw := map[string]any{
		"level_1": map[string]any{
			"casos": []any{
				map[string]any{
					"id":           "7",
					"introduccion": "con id",
					"respuestas":   []any{"a", float64(2), true},
					"correcta":     float64(2),
				},
				flatCase("sin id", 1),
			},
		},
	}

	levels := Build(raw, FirstN{})
	if len(levels) != 1 || len(levels[0].Questions) != 2 {
		t.Fatalf("expected 1 level with 2 questions, got %+v", levels)
	}
	qs := levels[0].Questions

	if qs[0].CaseID != "2" || qs[0].Question != "sin id" {
		t.Errorf("first case = %q %q, want position id 2", qs[0].CaseID, qs[0].Question)
	}
	if qs[1].CaseID != "7" {
		t.Errorf("CaseID = %q, want 7", qs[1].CaseID)
	}
	if want := [AnswerCount]string{"a", "2", "true", ""}; qs[1].Answers != want {
		t.Errorf("Answers = %q, want %q", qs[1].Answers, want)
	}
	if qs[1].CorrectIndex != 1 {
		t.Errorf("CorrectIndex = %d, want 1", qs[1].CorrectIndex)
	}
}

func TestBuild_FlatLegacy(t *testing.T) {
	raw := map[string]any{
		"2": map[string]any{
			"preguntas": flatCase("segundo", float64(3)),
			"sintomas":  []any{"Tos"},
		},
		"1": map[string]any{
			"preguntas": flatCase("primero", float64(1)),
		},
	}

	levels := Build(raw, FirstN{})
	if len(levels) != 1 {
		t.Fatalf("expected 1 level, got %d", len(levels))
	}
	l := levels[0]
	if l.Key != "level_1" {
		t.Errorf("Key = %q, want level_1", l.Key)
	}
	if l.HasBriefing() {
		t.Error("expected no briefing for a legacy bank")
	}
	if len(l.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(l.Questions))
	}
	if l.Questions[0].Question != "primero" {
		t.Errorf("first Question = %q, want primero", l.Questions[0].Question)
	}
	if !slices.Equal(l.Questions[1].Notes, []string{"Tos"}) {
		t.Errorf("Notes = %v, want [Tos]", l.Questions[1].Notes)
	}
	if l.Questions[1].CorrectIndex != 2 {
		t.Errorf("CorrectIndex = %d, want 2", l.Questions[1].CorrectIndex)
	}
}

func TestBuild_SkipsMalformedCases(t *testing.T) {
	raw := map[string]any{
		"level_1": map[string]any{
			"casos": map[string]any{
				"1": flatCase("", 1),
				"2": map[string]any{"introduccion": "sin correcta", "1": "A"},
				"3": "not an object",
				"4": flatCase("bueno", 2),
			},
		},
		"level_2": map[string]any{
			"contexto": "vacío",
			"casos":    map[string]any{"1": flatCase("", 1)},
		},
	}

	levels := Build(raw, FirstN{})
	if len(levels) != 1 {
		t.Fatalf("expected levels without playable cases to be dropped, got %d levels", len(levels))
	}
	if len(levels[0].Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(levels[0].Questions))
	}
	if id := levels[0].Questions[0].ID; id != "N1-C4" {
		t.Errorf("ID = %q, want N1-C4", id)
	}
}

func TestBuild_UnknownShapes(t *testing.T) {
	for _, raw := range []any{nil, []any{1, 2}, map[string]any{"foo": "bar"}} {
		if got := Build(raw, nil); got != nil {
			t.Errorf("Build(%v) = %+v, want nil", raw, got)
		}
	}
}

func TestBuild_MissingAnswersAreEmpty(t *testing.T) {
	raw := map[string]any{
		"level_1": map[string]any{
			"casos": map[string]any{
				"1": map[string]any{"introduccion": "solo dos", "1": "A", "3": float64(3), "correcta": 1},
			},
		},
	}

	q := Build(raw, FirstN{})[0].Questions[0]
	if want := [AnswerCount]string{"A", "", "3", ""}; q.Answers != want {
		t.Errorf("Answers = %q, want %q", q.Answers, want)
	}
	if q.Notes == nil || len(q.Notes) != 0 {
		t.Errorf("Notes = %#v, want an empty non-nil slice", q.Notes)
	}
}

func TestBuild_Dialogue(t *testing.T) {
	doctor := func(s string) Line { return Line{Speaker: SpeakerDoctor, Text: s} }
	patient := func(s string) Line { return Line{Speaker: SpeakerPatient, Text: s} }
	frontDesk := func(s string) Line { return Line{Speaker: SpeakerFrontDesk, Text: s} }

	tests := []struct {
		name string
		rec  map[string]any
		want []Line
	}{
		{
			name: "freeform lines alternate",
			rec: func() map[string]any {
				c := flatCase("intro", 1)
				c["dialogos"] = []any{"hola", "", "me duele", "¿dónde?"}
				return c
			}(),
			want: []Line{doctor("hola"), patient("me duele"), doctor("¿dónde?")},
		},
		{
			name: "structured pairs keep their speakers",
			rec: func() map[string]any {
				c := flatCase("intro", 1)
				c["dialogos"] = []any{
					map[string]any{"recepcion": "pase", "doctor": "gracias"},
					map[string]any{"doctor": "siguiente"},
				}
				return c
			}(),
			want: []Line{frontDesk("pase"), doctor("gracias"), doctor("siguiente")},
		},
		{
			name: "synthesized from first symptom",
			rec: func() map[string]any {
				c := flatCase("¿Qué tiene?", 1)
				c["sintomas"] = []any{"Fiebre", "Tos"}
				return c
			}(),
			want: []Line{
				doctor("Buenos días, pase por favor. ¿Qué le trae a consulta?"),
				patient("Fiebre"),
				doctor("Entiendo. ¿Qué tiene?"),
			},
		},
		{
			name: "synthesized without symptoms",
			rec:  flatCase("¿Qué tiene?", 1),
			want: []Line{
				doctor("Buenos días, pase por favor. ¿Qué le trae a consulta?"),
				patient("¿Qué tiene?"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := parseCase(1, "1", tt.rec)
			if !ok {
				t.Fatal("expected the case to parse")
			}
			if !slices.Equal(q.Dialogue, tt.want) {
				t.Errorf("Dialogue = %+v, want %+v", q.Dialogue, tt.want)
			}
		})
	}
}

func TestBuild_Feedback(t *testing.T) {
	c := flatCase("intro", 1)
	c["feedback"] = map[string]any{"incorrecta": "mal"}
	c["feedback_correcta"] = "bien"

	q, ok := parseCase(1, "1", c)
	if !ok {
		t.Fatal("expected the case to parse")
	}
	if q.FeedbackCorrect != "bien" {
		t.Errorf("FeedbackCorrect = %q, want bien", q.FeedbackCorrect)
	}
	if q.FeedbackIncorrect != "mal" {
		t.Errorf("FeedbackIncorrect = %q, want mal", q.FeedbackIncorrect)
	}
}

func TestBuild_LevelMetadata(t *testing.T) {
	raw := map[string]any{
		"level_1": map[string]any{
			"titulo":   "Consulta",
			"contexto": "Bienvenido",
			"resumen": map[string]any{
				"logros":    []any{"uno", "dos"},
				"siguiente": "Nivel 2",
			},
			"casos": map[string]any{"1": flatCase("intro", 1)},
		},
	}

	l := Build(raw, FirstN{})[0]
	if l.Title != "Consulta" {
		t.Errorf("Title = %q, want Consulta", l.Title)
	}
	if !l.HasBriefing() {
		t.Error("expected a briefing")
	}
	if l.Summary == nil {
		t.Fatal("expected a summary")
	}
	if !slices.Equal(l.Summary.Achievements, []string{"uno", "dos"}) {
		t.Errorf("Achievements = %v, want [uno dos]", l.Summary.Achievements)
	}
	if l.Summary.NextLevel != "Nivel 2" {
		t.Errorf("NextLevel = %q, want %q", l.Summary.NextLevel, "Nivel 2")
	}
}

func TestBuild_NilSamplerUsesDefault(t *testing.T) {
	cases := map[string]any{}
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		cases[id] = flatCase("caso "+id, 1)
	}
	raw := map[string]any{"level_1": map[string]any{"casos": cases}}

	levels := Build(raw, nil)
	if len(levels) != 1 {
		t.Fatalf("expected 1 level, got %d", len(levels))
	}
	if got := len(levels[0].Questions); got != DefaultSampleSize {
		t.Errorf("questions = %d, want %d", got, DefaultSampleSize)
	}
}

func TestDescribe(t *testing.T) {
	raw, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	st := Describe(raw)
	if st.Shape != "leveled" {
		t.Errorf("Shape = %q, want leveled", st.Shape)
	}
	if st.Levels != 5 {
		t.Errorf("Levels = %d, want 5", st.Levels)
	}
	wantKeys := []string{"level_1", "level_2", "level_3", "level_4", "level_5"}
	if keys := st.SortedKeys(); !slices.Equal(keys, wantKeys) {
		t.Errorf("SortedKeys = %v, want %v", keys, wantKeys)
	}
	if st.PerLevel["level_1"] != 4 {
		t.Errorf("level_1 cases = %d, want 4", st.PerLevel["level_1"])
	}
	if st.PerLevel["level_5"] != 3 {
		t.Errorf("level_5 cases = %d, want 3", st.PerLevel["level_5"])
	}
	if st.Questions != 16 {
		t.Errorf("Questions = %d, want 16", st.Questions)
	}
	if shape := Describe("nope").Shape; shape != "unknown" {
		t.Errorf("Describe(non-map).Shape = %q, want unknown", shape)
	}
}

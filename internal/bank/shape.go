package bank

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// bankShape identifies one of the historical top-level layouts of a bank.
type bankShape int

const (
	shapeUnknown bankShape = iota

	// shapeLeveled keys levels as level_1..level_5, or flags a level with a
	// numeric "nivel" field under an arbitrary key.
	shapeLeveled

	// shapeFlatLegacy is a single pool of numbered cases, each holding a
	// nested "preguntas" object. It plays as one level.
	shapeFlatLegacy
)

func (s bankShape) String() string {
	switch s {
	case shapeLeveled:
		return "leveled"
	case shapeFlatLegacy:
		return "flat-legacy"
	default:
		return "unknown"
	}
}

// caseShape identifies the layout of a single case record.
type caseShape int

const (
	caseUnknown caseShape = iota
	caseNested            // {"preguntas": {...}, "sintomas": [...]}
	caseFlat              // {"introduccion": ..., "1": ..., "correcta": ...}
)

// detectBankShape inspects the top-level object of a raw bank.
func detectBankShape(root map[string]any) bankShape {
	for key, v := range root {
		if _, ok := levelNumberFromKey(key); ok {
			return shapeLeveled
		}
		if obj, ok := v.(map[string]any); ok {
			if _, ok := flaggedLevel(obj); ok {
				return shapeLeveled
			}
		}
	}
	for _, v := range root {
		obj, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if detectCaseShape(obj) != caseUnknown {
			return shapeFlatLegacy
		}
	}
	return shapeUnknown
}

// detectCaseShape inspects a case record.
func detectCaseShape(rec map[string]any) caseShape {
	if q, ok := rec["preguntas"].(map[string]any); ok && q != nil {
		return caseNested
	}
	if _, ok := rec["introduccion"]; ok {
		return caseFlat
	}
	return caseUnknown
}

// levelNumberFromKey parses "level_N" keys with N in [1, MaxLevels].
func levelNumberFromKey(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, "level_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > MaxLevels {
		return 0, false
	}
	return n, true
}

// flaggedLevel reads the numeric "nivel" flag of the looser level shape.
func flaggedLevel(obj map[string]any) (int, bool) {
	v, ok := obj["nivel"]
	if !ok {
		return 0, false
	}
	f, ok := toNumber(v)
	if !ok || f != math.Trunc(f) || f < 1 || f > MaxLevels {
		return 0, false
	}
	return int(f), true
}

// findLevel returns the raw record of level n. An explicit level_N key wins
// over a flagged record.
func findLevel(root map[string]any, n int) (string, map[string]any, bool) {
	key := fmt.Sprintf("level_%d", n)
	if obj, ok := root[key].(map[string]any); ok {
		return key, obj, true
	}

	keys := make([]string, 0, len(root))
	for k := range root {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, isLevelKey := levelNumberFromKey(k); isLevelKey {
			continue
		}
		obj, ok := root[k].(map[string]any)
		if !ok {
			continue
		}
		if flagged, ok := flaggedLevel(obj); ok && flagged == n {
			return key, obj, true
		}
	}
	return key, nil, false
}

// collectCases accepts "casos" as a mapping of id to record, or as a list
// whose items carry an "id" field or use their 1-based position.
func collectCases(v any) map[string]map[string]any {
	out := make(map[string]map[string]any)
	switch cs := v.(type) {
	case map[string]any:
		for id, rec := range cs {
			if obj, ok := rec.(map[string]any); ok {
				out[id] = obj
			}
		}
	case []any:
		for i, rec := range cs {
			obj, ok := rec.(map[string]any)
			if !ok {
				continue
			}
			id := strconv.Itoa(i + 1)
			if raw, ok := obj["id"]; ok {
				if s := toString(raw); s != "" {
					id = s
				}
			}
			out[id] = obj
		}
	}
	return out
}

// sortCaseIDs orders identifiers numerically ("2" before "10"). Non-numeric
// identifiers sort after numeric ones, lexicographically.
func sortCaseIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, aErr := strconv.Atoi(ids[i])
		b, bErr := strconv.Atoi(ids[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}

// toString coerces scalar JSON/YAML values to text. Missing values are "".
func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, !math.IsNaN(x)
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// toStrings coerces a list to non-empty strings. Anything else yields nil.
func toStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := toString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

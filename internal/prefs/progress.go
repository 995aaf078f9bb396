package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Progress is the persisted snapshot of a game in progress.
type Progress struct {
	Points    int    `json:"points"`
	Lives     int    `json:"lives"`
	Level     int    `json:"level"`
	Case      int    `json:"case"`
	QID       string `json:"qid,omitempty"`
	StartedAt int64  `json:"startedAt,omitempty"` // unix milliseconds
}

// Started returns StartedAt as a time, zero when unknown.
func (p Progress) Started() time.Time {
	if p.StartedAt <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(p.StartedAt)
}

// Elapsed returns the time since the game started, or 0 when unknown.
func (p Progress) Elapsed(now time.Time) time.Duration {
	start := p.Started()
	if start.IsZero() || now.Before(start) {
		return 0
	}
	return now.Sub(start)
}

// Progress returns the stored snapshot and whether one exists.
func (p *Prefs) Progress(ctx context.Context) (Progress, bool) {
	data, ok := p.get(ctx, KeyProgress)
	if !ok {
		return Progress{}, false
	}
	var prog Progress
	if err := json.Unmarshal(data, &prog); err != nil {
		return Progress{}, false
	}
	return prog, true
}

// SaveProgress merges prog into the stored snapshot. Fields this version
// does not know are preserved. A zero StartedAt keeps the stored start.
func (p *Prefs) SaveProgress(ctx context.Context, prog Progress) error {
	existing, _ := p.get(ctx, KeyProgress)
	obj := decodeObject(existing)

	fields, err := json.Marshal(prog)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	for k, v := range decodeObject(fields) {
		obj[k] = v
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := p.kv.Set(ctx, KeyProgress, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

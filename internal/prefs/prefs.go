// Package prefs is the persisted settings store: typed access to the avatar
// settings, the in-progress game snapshot and the best score, on top of a
// key-value store. Reads never fail; absent or malformed values yield
// defaults.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/store"
)

// Storage keys.
const (
	KeyAvatar    = "avatar-settings"
	KeyProgress  = "game-state"
	KeyBestScore = "best-score"
)

// Keys lists every key owned by this package.
var Keys = []string{KeyAvatar, KeyProgress, KeyBestScore}

// Prefs reads and writes player preferences and progress.
type Prefs struct {
	kv  store.KV
	log *zap.Logger
}

// New returns a Prefs over kv. A nil logger discards read failures.
func New(kv store.KV, logger *zap.Logger) *Prefs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prefs{kv: kv, log: logger}
}

func (p *Prefs) get(ctx context.Context, key string) ([]byte, bool) {
	data, ok, err := p.kv.Get(ctx, key)
	if err != nil {
		p.log.Warn("read preference", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return data, ok
}

// Avatar returns the stored avatar settings, per-field defaulted.
func (p *Prefs) Avatar(ctx context.Context) avatar.Settings {
	data, ok := p.get(ctx, KeyAvatar)
	if !ok {
		return avatar.Defaults()
	}
	return avatar.Decode(data)
}

// SaveAvatar stores s.
func (p *Prefs) SaveAvatar(ctx context.Context, s avatar.Settings) error {
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("encode avatar settings: %w", err)
	}
	if err := p.kv.Set(ctx, KeyAvatar, data); err != nil {
		return fmt.Errorf("save avatar settings: %w", err)
	}
	return nil
}

// ResetAvatar removes the stored avatar settings.
func (p *Prefs) ResetAvatar(ctx context.Context) error {
	if err := p.kv.Delete(ctx, KeyAvatar); err != nil {
		return fmt.Errorf("reset avatar settings: %w", err)
	}
	return nil
}

// BestScore returns the highest score ever recorded, or 0.
func (p *Prefs) BestScore(ctx context.Context) int {
	data, ok := p.get(ctx, KeyBestScore)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// RecordScore folds points into the running best score and returns the
// resulting best.
func (p *Prefs) RecordScore(ctx context.Context, points int) (int, error) {
	best := max(p.BestScore(ctx), points)
	if err := p.kv.Set(ctx, KeyBestScore, []byte(strconv.Itoa(best))); err != nil {
		return best, fmt.Errorf("save best score: %w", err)
	}
	return best, nil
}

// Reset removes every stored preference.
func (p *Prefs) Reset(ctx context.Context) error {
	for _, key := range Keys {
		if err := p.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

func decodeObject(data []byte) map[string]json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return map[string]json.RawMessage{}
	}
	return obj
}

package game

import (
	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/bank"
)

// gameLoadedMsg carries the player profile and the levels for a new game.
type gameLoadedMsg struct {
	Settings avatar.Settings
	Levels   []bank.PlayLevel
}

// toastExpiredMsg is sent when the toast with sequence number Seq should go.
type toastExpiredMsg struct {
	Seq int
}

// exhaustedMsg is sent ExhaustionDelay after the lives ran out.
type exhaustedMsg struct{}

package app

import (
	"context"

	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/quiz"
	"github.com/clinicaortiz/clinica/internal/screen"
	"github.com/clinicaortiz/clinica/internal/screens/game"
	"github.com/clinicaortiz/clinica/internal/screens/gameover"
	"github.com/clinicaortiz/clinica/internal/screens/menu"
	"github.com/clinicaortiz/clinica/internal/screens/personalize"
	"github.com/clinicaortiz/clinica/internal/screens/welcome"
)

// factories builds screens with the application's collaborators. Screens
// that lead to each other receive these methods instead of importing one
// another.
type factories struct {
	opts Options
}

func (f *factories) welcome() screen.Screen {
	doctor := avatar.Defaults()
	if f.opts.Prefs != nil {
		doctor = f.opts.Prefs.Avatar(context.Background())
	}
	return welcome.New(doctor, f.menu)
}

func (f *factories) menu() screen.Screen {
	return menu.New(menu.Deps{
		Prefs:       f.opts.Prefs,
		Play:        f.game,
		Personalize: f.personalize,
	})
}

func (f *factories) game() screen.Screen {
	return game.New(game.Deps{
		Prefs:    f.opts.Prefs,
		Levels:   f.opts.Levels,
		Rand:     f.opts.Rand,
		Logger:   f.opts.Logger,
		GameOver: f.gameOver,
	})
}

func (f *factories) gameOver(player string, outcome quiz.Outcome) screen.Screen {
	return gameover.New(gameover.Deps{
		Prefs:   f.opts.Prefs,
		Runs:    f.opts.Runs,
		Logger:  f.opts.Logger,
		NewGame: f.game,
	}, player, outcome)
}

func (f *factories) personalize() screen.Screen {
	return personalize.New(personalize.Deps{
		Prefs:   f.opts.Prefs,
		Catalog: f.opts.Catalog,
		Logger:  f.opts.Logger,
	})
}

package game

import (
	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/scene/playing"
	"github.com/younwookim/invaders/internal/application/scene/result"
	"github.com/younwookim/invaders/internal/application/scene/start"
	"github.com/younwookim/invaders/internal/application/simulation"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/event"
	"github.com/younwookim/invaders/internal/infrastructure/config"
	"github.com/younwookim/invaders/internal/infrastructure/input"
)

// ArcadeOptions configures NewArcade
type ArcadeOptions struct {
	Config     *config.GameConfig
	Input      *input.Reader
	Events     *event.Dispatcher
	Seed       func() int64
	RecordPath string
}

// Arcade is the Game wired with the start, playing and result screens
type Arcade struct {
	*Game
	Machine *state.Machine
	Playing *playing.Playing
}

// NewArcade builds the scene graph: start -> playing -> result -> playing.
// One Playing scene is reused; every entry resets its session.
func NewArcade(opts ArcadeOptions) *Arcade {
	cfg := opts.Config
	machine := state.NewMachine()
	w, h := cfg.Stage.Width, cfg.Stage.Height

	a := &Arcade{Machine: machine}
	toPlaying := func() scene.Scene { return a.Playing }

	a.Playing = playing.New(playing.Options{
		Config:     cfg,
		Machine:    machine,
		Input:      opts.Input,
		Events:     opts.Events,
		Seed:       opts.Seed,
		RecordPath: opts.RecordPath,
		Result: func(o simulation.Outcome) scene.Scene {
			return result.New(machine, opts.Input, o, w, h, toPlaying)
		},
	})

	a.Game = New(start.New(machine, opts.Input, w, h, toPlaying), int(w), int(h))
	a.SetDT(1.0 / float64(cfg.Timing.Framerate))
	return a
}

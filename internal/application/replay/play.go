package replay

import (
	"math"
	"math/rand"

	"github.com/younwookim/invaders/internal/application/simulation"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// Result summarizes a headless playback
type Result struct {
	Frames    int
	Score     int
	Over      bool
	Concluded bool
	Outcome   simulation.Outcome
	Stats     simulation.Stats
}

// Play runs data through a fresh simulation without a window.
// After the recorded frames it idles long enough for a pending
// victory or game-over transition to come due.
func Play(cfg *config.GameConfig, data ReplayData) Result {
	sim := simulation.New(cfg, nil)
	sim.Reset(1, rand.New(rand.NewSource(data.Seed)))

	p := NewReplayer(data)
	dt := p.DT()
	for {
		in, ok := p.GetInput()
		if !ok {
			break
		}
		sim.Tick(dt, in)
		if _, done := sim.Outcome(); done {
			break
		}
	}

	if sim.Over() {
		delay := max(cfg.Timing.VictoryDelayMs, cfg.Timing.GameOverDelayMs)
		idle := int(math.Ceil(float64(delay)/1000/dt)) + 1
		for i := 0; i < idle; i++ {
			if _, done := sim.Outcome(); done {
				break
			}
			sim.Tick(dt, system.InputState{})
		}
	}

	res := Result{
		Frames: p.CurrentFrame(),
		Score:  sim.Score(),
		Over:   sim.Over(),
		Stats:  sim.Stats(),
	}
	res.Outcome, res.Concluded = sim.Outcome()
	return res
}

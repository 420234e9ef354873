// Package result provides the victory and game-over screens.
package result

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/simulation"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/infrastructure/input"
)

// Result shows a finished session and restarts on the restart key
type Result struct {
	machine *state.Machine
	input   *input.Reader
	outcome simulation.Outcome
	next    func() scene.Scene
	width   float64
	height  float64
}

// New creates the screen for outcome. next builds the playing scene.
func New(machine *state.Machine, in *input.Reader, outcome simulation.Outcome, width, height float64, next func() scene.Scene) *Result {
	return &Result{
		machine: machine,
		input:   in,
		outcome: outcome,
		next:    next,
		width:   width,
		height:  height,
	}
}

// Outcome returns the outcome being shown
func (r *Result) Outcome() simulation.Outcome {
	return r.outcome
}

// Update starts a new session on restart
func (r *Result) Update(_ float64) (scene.Scene, error) {
	if !r.input.JustPressed(input.ActionRestart) {
		return nil, nil
	}
	if err := r.machine.Transition(state.StatePlaying); err != nil {
		return nil, fmt.Errorf("restart session: %w", err)
	}
	return r.next(), nil
}

// Draw renders the headline and score breakdown
func (r *Result) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ColorBG)
	cx := r.width / 2
	y := r.height / 3

	if r.outcome.State == state.StateVictory {
		scene.DrawCentered(screen, "VICTORY", cx, y, 3, scene.ColorTitle)
		scene.DrawCentered(screen, fmt.Sprintf("score %d", r.outcome.Score), cx, y+70, 1.5, scene.ColorText)
		scene.DrawCentered(screen, fmt.Sprintf("time bonus %d", r.outcome.TimeBonus), cx, y+100, 1.5, scene.ColorText)
		scene.DrawCentered(screen, fmt.Sprintf("total %d", r.outcome.Total()), cx, y+130, 2, scene.ColorTitle)
	} else {
		scene.DrawCentered(screen, "GAME OVER", cx, y, 3, scene.ColorWarn)
		scene.DrawCentered(screen, fmt.Sprintf("score %d", r.outcome.Score), cx, y+70, 1.5, scene.ColorText)
	}

	scene.DrawCentered(screen, "press enter to play again", cx, r.height-80, 1, scene.ColorDim)
}

// OnEnter is called when entering this scene
func (r *Result) OnEnter() {}

// OnExit is called when leaving this scene
func (r *Result) OnExit() {}

// Package start provides the title screen.
package start

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/infrastructure/input"
)

// Start waits for any key, then begins a session
type Start struct {
	machine *state.Machine
	input   *input.Reader
	next    func() scene.Scene
	width   float64
	height  float64
	frames  int
}

// New creates the title screen. next builds the playing scene.
func New(machine *state.Machine, in *input.Reader, width, height float64, next func() scene.Scene) *Start {
	return &Start{
		machine: machine,
		input:   in,
		next:    next,
		width:   width,
		height:  height,
	}
}

// Update starts a session on the first key press
func (s *Start) Update(_ float64) (scene.Scene, error) {
	s.frames++
	if !s.input.JustPressed(input.ActionStart) {
		return nil, nil
	}
	if err := s.machine.Transition(state.StatePlaying); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return s.next(), nil
}

// Draw renders the title and a blinking prompt
func (s *Start) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ColorBG)
	cx := s.width / 2
	scene.DrawCentered(screen, "SPACE INVADERS", cx, s.height/3, 3, scene.ColorTitle)
	if (s.frames/30)%2 == 0 {
		scene.DrawCentered(screen, "press any key", cx, s.height/2, 1.5, scene.ColorText)
	}
	scene.DrawCentered(screen, "arrows: move   shift: boost   space: fire   M: mute   F3: stats", cx, s.height-40, 1, scene.ColorDim)
}

// OnEnter resets the prompt blink
func (s *Start) OnEnter() {
	s.frames = 0
}

// OnExit is called when leaving this scene
func (s *Start) OnExit() {}

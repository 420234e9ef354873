package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/invaders/internal/application/simulation"
	"github.com/younwookim/invaders/internal/infrastructure/input"
)

// Controls dispatches toggle actions to handlers once per key press
type Controls struct {
	input    *input.Reader
	handlers map[input.Action]func()
}

// NewControls creates a controls overlay over in
func NewControls(in *input.Reader) *Controls {
	return &Controls{input: in, handlers: make(map[input.Action]func())}
}

// Handle registers fn for a
func (c *Controls) Handle(a input.Action, fn func()) {
	c.handlers[a] = fn
}

// Update fires handlers for actions pressed this frame
func (c *Controls) Update() error {
	c.input.Dispatch(func(a input.Action) {
		if fn, ok := c.handlers[a]; ok {
			fn()
		}
	})
	return nil
}

// Draw implements Overlay
func (c *Controls) Draw(*ebiten.Image) {}

// Stats prints simulation counters in the corner when visible
type Stats struct {
	source  func() simulation.Stats
	visible bool
}

// NewStats creates a hidden stats overlay reading from source
func NewStats(source func() simulation.Stats, visible bool) *Stats {
	return &Stats{source: source, visible: visible}
}

// Toggle flips visibility and returns the new value
func (s *Stats) Toggle() bool {
	s.visible = !s.visible
	return s.visible
}

// Visible reports whether the overlay is drawn
func (s *Stats) Visible() bool {
	return s.visible
}

// Update implements Overlay
func (s *Stats) Update() error { return nil }

// Text formats the current counters
func (s *Stats) Text() string {
	st := s.source()
	return fmt.Sprintf("FPS %.0f TPS %.0f\ntick %d\nentities %d\nenemies %d\nmissiles %d\nexplosions %d\nchecks %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), st.Tick, st.Entities, st.Enemies, st.Missiles, st.Explosions, st.Checks)
}

// Draw prints the counters when visible
func (s *Stats) Draw(screen *ebiten.Image) {
	if !s.visible {
		return
	}
	ebitenutil.DebugPrintAt(screen, s.Text(), 10, 50)
}

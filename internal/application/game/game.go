// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/invaders/internal/application/scene"
)

// Overlay runs on every frame regardless of the current scene
type Overlay interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current  scene.Scene
	overlays []Overlay
	screenW  int
	screenH  int
	dt       float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// AddOverlay registers o. Overlays update before the scene and draw after it.
func (g *Game) AddOverlay(o Overlay) {
	g.overlays = append(g.overlays, o)
}

// Update updates overlays and the current scene, then handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	for _, o := range g.overlays {
		if err := o.Update(); err != nil {
			return err
		}
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		log.Printf("Scene %T -> %T", g.current, next)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene, then overlays.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
	for _, o := range g.overlays {
		o.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Shutdown exits the current scene once the loop has stopped
func (g *Game) Shutdown() {
	g.current.OnExit()
}

// Package input samples the keyboard for the simulation and
// turns key transitions into one-shot actions.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/invaders/internal/application/system"
)

// Keys is the keyboard as seen by a Reader
type Keys interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
}

type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

// Action is a one-shot command fired on a key press
type Action int

const (
	ActionStart Action = iota
	ActionRestart
	ActionToggleMute
	ActionToggleStats
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionToggleMute:
		return "ToggleMute"
	case ActionToggleStats:
		return "ToggleStats"
	default:
		return "Unknown"
	}
}

// Bindings maps controls to keys
type Bindings struct {
	Left, Right, Boost, Shoot []ebiten.Key
	Restart, Mute, Stats      []ebiten.Key
}

// DefaultBindings returns arrow keys, shift to boost and space to shoot
func DefaultBindings() Bindings {
	return Bindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Boost:   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		Shoot:   []ebiten.Key{ebiten.KeySpace},
		Restart: []ebiten.Key{ebiten.KeyEnter},
		Mute:    []ebiten.Key{ebiten.KeyM},
		Stats:   []ebiten.Key{ebiten.KeyF3},
	}
}

// Reader reads the keyboard once per tick
type Reader struct {
	keys     Keys
	bindings Bindings
	scratch  []ebiten.Key
}

// NewReader creates a reader over the ebiten keyboard
func NewReader() *Reader {
	return NewReaderWithKeys(ebitenKeys{}, DefaultBindings())
}

// NewReaderWithKeys creates a reader over an arbitrary keyboard
func NewReaderWithKeys(keys Keys, b Bindings) *Reader {
	return &Reader{keys: keys, bindings: b}
}

// Sample returns the held controls for this tick
func (r *Reader) Sample() system.InputState {
	return system.InputState{
		Left:  r.held(r.bindings.Left),
		Right: r.held(r.bindings.Right),
		Boost: r.held(r.bindings.Boost),
		Shoot: r.held(r.bindings.Shoot),
	}
}

// AnyJustPressed reports whether any key went down this tick
func (r *Reader) AnyJustPressed() bool {
	r.scratch = r.keys.AppendJustPressedKeys(r.scratch[:0])
	return len(r.scratch) > 0
}

// JustPressed reports whether a fired this tick.
// ActionStart fires on any key.
func (r *Reader) JustPressed(a Action) bool {
	switch a {
	case ActionStart:
		return r.AnyJustPressed()
	case ActionRestart:
		return r.pressed(r.bindings.Restart)
	case ActionToggleMute:
		return r.pressed(r.bindings.Mute)
	case ActionToggleStats:
		return r.pressed(r.bindings.Stats)
	}
	return false
}

// Dispatch calls fn once for every toggle action pressed this tick
func (r *Reader) Dispatch(fn func(Action)) {
	for _, a := range []Action{ActionToggleMute, ActionToggleStats} {
		if r.JustPressed(a) {
			fn(a)
		}
	}
}

func (r *Reader) held(keys []ebiten.Key) bool {
	for _, k := range keys {
		if r.keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (r *Reader) pressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if r.keys.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

package input

import "github.com/hajimehoshi/ebiten/v2"

// FakeKeys is a scripted keyboard for tests and headless runs.
// Call Step between ticks to clear one-shot presses.
type FakeKeys struct {
	Held    map[ebiten.Key]bool
	Pressed map[ebiten.Key]bool
}

// NewFakeKeys creates an idle keyboard
func NewFakeKeys() *FakeKeys {
	return &FakeKeys{
		Held:    make(map[ebiten.Key]bool),
		Pressed: make(map[ebiten.Key]bool),
	}
}

// Press marks k as pressed this tick and held afterwards
func (f *FakeKeys) Press(k ebiten.Key) {
	f.Pressed[k] = true
	f.Held[k] = true
}

// Release lets go of k
func (f *FakeKeys) Release(k ebiten.Key) {
	delete(f.Held, k)
}

// Step ends the tick, clearing one-shot presses
func (f *FakeKeys) Step() {
	clear(f.Pressed)
}

func (f *FakeKeys) IsKeyPressed(k ebiten.Key) bool     { return f.Held[k] }
func (f *FakeKeys) IsKeyJustPressed(k ebiten.Key) bool { return f.Pressed[k] }

func (f *FakeKeys) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	for k := range f.Pressed {
		keys = append(keys, k)
	}
	return keys
}

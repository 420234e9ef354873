package result

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/simulation"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/infrastructure/input"
)

type stubScene struct{ id int }

func (*stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (*stubScene) Draw(*ebiten.Image)                  {}
func (*stubScene) OnEnter()                            {}
func (*stubScene) OnExit()                             {}

func concluded(t *testing.T, to state.GameState) *state.Machine {
	t.Helper()
	m := state.NewMachine()
	require.NoError(t, m.Transition(state.StatePlaying))
	require.NoError(t, m.Conclude(m.Session(), to))
	return m
}

func TestResult_RestartOnEnter(t *testing.T) {
	keys := input.NewFakeKeys()
	m := concluded(t, state.StateGameOver)
	next := &stubScene{id: 1}
	o := simulation.Outcome{Session: 1, State: state.StateGameOver, Score: 300}
	r := New(m, input.NewReaderWithKeys(keys, input.DefaultBindings()), o, 800, 600, func() scene.Scene { return next })

	keys.Press(ebiten.KeySpace)
	got, err := r.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Nil(t, got, "only enter restarts")

	keys.Press(ebiten.KeyEnter)
	got, err = r.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Same(t, next, got)
	assert.Equal(t, state.StatePlaying, m.Current())
	assert.Equal(t, uint64(2), m.Session())
	assert.Equal(t, 300, r.Outcome().Score)
}

func TestResult_Draw(t *testing.T) {
	img := ebiten.NewImage(800, 600)
	for _, st := range []state.GameState{state.StateVictory, state.StateGameOver} {
		r := New(concluded(t, st), input.NewReaderWithKeys(input.NewFakeKeys(), input.DefaultBindings()),
			simulation.Outcome{State: st, Score: 100, TimeBonus: 4000}, 800, 600, nil)
		assert.NotPanics(t, func() { r.Draw(img) })
	}
}

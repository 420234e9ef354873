package simulation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/event"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

const frame = 1.0 / 60.0

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func newTestSim(t *testing.T, cfg *config.GameConfig) (*Simulation, *eventLog) {
	t.Helper()
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log, event.All...)

	s := New(cfg, d)
	s.Reset(1, testRNG())
	return s, log
}

// scenario clears the spawned wave and places only the given entities
func scenario(s *Simulation, player entity.Vec2) {
	s.World().Clear()
	s.World().Spawn(entity.KindPlayer, player)
}

func TestReset_SpawnsWave(t *testing.T) {
	s, log := newTestSim(t, config.Default())

	p, ok := s.World().Player()
	require.True(t, ok)
	assert.Equal(t, entity.Vec2{X: 0, Y: 200}, p.Pos)
	assert.Equal(t, 32, s.World().CountEnemies())
	assert.Equal(t, 0, s.Score())
	assert.False(t, s.Over())
	assert.Equal(t, 1, log.count(event.SessionStarted))
}

func TestTick_EnemyKill(t *testing.T) {
	cfg := config.Default()
	cfg.Enemy.Size = config.Size{20, 20}
	s, log := newTestSim(t, cfg)
	scenario(s, entity.Vec2{X: 0, Y: 200})
	e := s.World().Spawn(entity.KindEnemy, entity.Vec2{X: 100, Y: 0})
	m := s.World().Spawn(entity.KindPlayerMissile, entity.Vec2{X: 100, Y: 0})
	s.World().Spawn(entity.KindEnemy, entity.Vec2{X: -300, Y: -200})

	s.Tick(0, system.InputState{})

	assert.False(t, s.World().Exists(e.Head().ID))
	assert.False(t, s.World().Exists(m.Head().ID))
	require.Len(t, s.World().Explosions(), 1)
	x := s.World().Explosions()[0]
	assert.Equal(t, entity.KindEnemyExplosion, x.Kind)
	assert.Equal(t, entity.Vec2{X: 100, Y: 0}, x.Pos)
	assert.Equal(t, 100, s.Score())
	assert.Equal(t, 1, s.Combo())
	assert.Equal(t, 1.0, s.Multiplier())

	require.Equal(t, 1, log.count(event.EnemyKilled))
	for _, ev := range log.events {
		if ev.Type == event.EnemyKilled {
			assert.Equal(t, 100, ev.Data.(event.KillData).Awarded)
		}
	}
	assert.Equal(t, 1, log.count(event.ExplosionSpawned))
}

func TestTick_VictoryExactlyOnce(t *testing.T) {
	cfg := config.Default()
	s, log := newTestSim(t, cfg)
	scenario(s, entity.Vec2{X: 0, Y: 200})
	s.World().Spawn(entity.KindEnemy, entity.Vec2{X: 0, Y: 0})
	s.World().Spawn(entity.KindPlayerMissile, entity.Vec2{X: 0, Y: 5})

	var outcomes []Outcome
	s.OnOutcome = func(o Outcome) { outcomes = append(outcomes, o) }

	s.Tick(frame, system.InputState{})
	require.Equal(t, 0, s.World().CountEnemies())
	assert.False(t, s.Over(), "victory is detected on the next tick")

	s.Tick(frame, system.InputState{})
	assert.True(t, s.Over())
	_, ok := s.Outcome()
	assert.False(t, ok, "transition is delayed")

	for i := 0; i < 120; i++ {
		s.Tick(frame, system.InputState{Shoot: true})
	}

	require.Len(t, outcomes, 1)
	o := outcomes[0]
	assert.Equal(t, state.StateVictory, o.State)
	assert.Equal(t, 100, o.Score)
	assert.Equal(t, uint64(1), o.Session)
	assert.InDelta(t, 5000, o.TimeBonus, 5)
	assert.Equal(t, o.Score+o.TimeBonus, o.Total())
	assert.Equal(t, 1, log.count(event.Victory))
	assert.Equal(t, 0, log.count(event.MissileFired), "no input after the session ends")

	got, ok := s.Outcome()
	require.True(t, ok)
	assert.Equal(t, o, got)
}

func TestTick_VictoryDelay(t *testing.T) {
	cfg := config.Default()
	s, _ := newTestSim(t, cfg)
	scenario(s, entity.Vec2{X: 0, Y: 200})

	fired := 0
	s.OnOutcome = func(Outcome) { fired++ }

	s.Tick(0.1, system.InputState{})
	require.True(t, s.Over())
	s.Tick(0.49, system.InputState{})
	assert.Equal(t, 0, fired)
	s.Tick(0.02, system.InputState{})
	assert.Equal(t, 1, fired)
}

func TestTick_MissileKillsPlayer(t *testing.T) {
	cfg := config.Default()
	s, log := newTestSim(t, cfg)
	scenario(s, entity.Vec2{X: 0, Y: 200})
	s.World().Spawn(entity.KindEnemy, entity.Vec2{X: 0, Y: -200})
	m := s.World().Spawn(entity.KindEnemyMissile, entity.Vec2{X: 0, Y: 195})

	var outcome *Outcome
	s.OnOutcome = func(o Outcome) { outcome = &o }

	s.Tick(0, system.InputState{})

	assert.True(t, s.Over())
	_, ok := s.World().Player()
	assert.False(t, ok)
	assert.False(t, s.World().Exists(m.Head().ID))
	require.Len(t, s.World().Explosions(), 1)
	assert.Equal(t, entity.KindPlayerExplosion, s.World().Explosions()[0].Kind)
	assert.Equal(t, 1, log.count(event.PlayerKilled))

	for i := 0; i < 59; i++ {
		s.Tick(frame, system.InputState{})
	}
	assert.Nil(t, outcome, "game over waits one second")

	s.Tick(2*frame, system.InputState{})
	require.NotNil(t, outcome)
	assert.Equal(t, state.StateGameOver, outcome.State)
	assert.Equal(t, 0, outcome.TimeBonus)
	assert.Equal(t, 1, log.count(event.GameOver))
}

func TestTick_EnemyReachesPlayer(t *testing.T) {
	cfg := config.Default()
	s, log := newTestSim(t, cfg)
	scenario(s, entity.Vec2{X: 0, Y: 200})
	s.World().Spawn(entity.KindEnemy, entity.Vec2{X: -300, Y: 200})

	s.Tick(0, system.InputState{})

	assert.True(t, s.Over())
	assert.Equal(t, 1, log.count(event.PlayerKilled))
}

func TestReset_DropsStaleTransition(t *testing.T) {
	cfg := config.Default()
	cfg.Enemy.FireProbability = 0
	s, _ := newTestSim(t, cfg)
	scenario(s, entity.Vec2{X: 0, Y: 200})

	fired := 0
	s.OnOutcome = func(Outcome) { fired++ }

	s.Tick(frame, system.InputState{})
	require.True(t, s.Over())

	s.Reset(2, testRNG())
	for i := 0; i < 60; i++ {
		s.Tick(frame, system.InputState{})
	}

	assert.Equal(t, 0, fired)
	assert.Equal(t, uint64(2), s.Session())
	assert.False(t, s.Over())
}

func TestTick_OverFreezesWorld(t *testing.T) {
	cfg := config.Default()
	s, _ := newTestSim(t, cfg)
	scenario(s, entity.Vec2{X: 0, Y: 200})
	e := s.World().Spawn(entity.KindEnemy, entity.Vec2{X: 0, Y: 200}).(*entity.Enemy)

	s.Tick(frame, system.InputState{})
	require.True(t, s.Over())
	pos := e.Pos

	s.Tick(frame, system.InputState{})
	assert.Equal(t, pos, e.Pos)
}

func TestTick_PlayerFires(t *testing.T) {
	s, log := newTestSim(t, config.Default())

	s.Tick(frame, system.InputState{Shoot: true})

	missiles := s.World().Missiles(entity.KindPlayerMissile)
	require.Len(t, missiles, 1)
	assert.Equal(t, 1, log.count(event.MissileFired))
}

func TestExplosionFinished(t *testing.T) {
	s, log := newTestSim(t, config.Default())
	x := s.World().Spawn(entity.KindEnemyExplosion, entity.Vec2{})
	p, _ := s.World().Player()

	assert.False(t, s.ExplosionFinished(p.ID), "only explosions")
	assert.True(t, s.ExplosionFinished(x.Head().ID))
	assert.False(t, s.ExplosionFinished(x.Head().ID))
	assert.False(t, s.ExplosionFinished(9999))
	assert.Equal(t, 1, log.count(event.ExplosionRemoved))
}

func TestStats(t *testing.T) {
	s, _ := newTestSim(t, config.Default())
	s.Tick(frame, system.InputState{})

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Tick)
	assert.Equal(t, 32, st.Enemies)
	assert.GreaterOrEqual(t, st.Entities, 33)
	assert.InDelta(t, float64(time.Second/60), float64(s.Now()), float64(time.Microsecond))
}

func TestDeterministicWithSameSeed(t *testing.T) {
	script := func(i int) system.InputState {
		return system.InputState{
			Left:  (i/90)%2 == 0,
			Right: (i/90)%2 == 1,
			Shoot: i%7 == 0,
		}
	}

	run := func() (int, Stats, bool) {
		s := New(config.Default(), nil)
		s.Reset(1, rand.New(rand.NewSource(42)))
		for i := 0; i < 3000; i++ {
			s.Tick(frame, script(i))
		}
		return s.Score(), s.Stats(), s.Over()
	}

	score1, stats1, over1 := run()
	score2, stats2, over2 := run()

	assert.Equal(t, score1, score2)
	assert.Equal(t, stats1, stats2)
	assert.Equal(t, over1, over2)
}

func TestTick_MissileOffscreenPublished(t *testing.T) {
	cfg := config.Default()
	cfg.Enemy.FireProbability = 0
	s, log := newTestSim(t, cfg)
	scenario(s, entity.Vec2{X: 0, Y: 200})
	s.World().Spawn(entity.KindEnemy, entity.Vec2{X: -300, Y: -250})
	m := s.World().Spawn(entity.KindPlayerMissile, entity.Vec2{X: 100, Y: -318})

	s.Tick(frame, system.InputState{})

	assert.False(t, s.World().Exists(m.Head().ID))
	require.Equal(t, 1, log.count(event.MissileOffscreen))
	for _, e := range log.events {
		if e.Type == event.MissileOffscreen {
			assert.Equal(t, m.Head().ID, e.Data.(event.EntityData).ID)
		}
	}
	assert.False(t, s.Over())
}

// Package simulation owns one play session: the entity world, the
// subsystems that act on it, and the per-tick orchestration.
package simulation

import (
	"time"

	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/ecs"
	"github.com/younwookim/invaders/internal/event"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// Outcome is the result of a finished session
type Outcome struct {
	Session   uint64
	State     state.GameState // StateVictory or StateGameOver
	Score     int
	TimeBonus int
	Elapsed   time.Duration
}

// Total returns score plus time bonus
func (o Outcome) Total() int {
	return o.Score + o.TimeBonus
}

// Stats is a snapshot for the debug overlay
type Stats struct {
	Tick       uint64
	Entities   int
	Enemies    int
	Missiles   int
	Explosions int
	Checks     int
}

// Simulation is the explicit context every subsystem runs against
type Simulation struct {
	config *config.GameConfig
	events *event.Dispatcher

	world     *ecs.World
	formation *system.FormationSystem
	collision *system.CollisionSystem
	score     *system.ScoreTracker
	missiles  *system.MissileSystem
	player    *system.PlayerSystem
	scheduler *system.Scheduler

	session uint64
	now     time.Duration
	tick    uint64
	over    bool
	outcome *Outcome

	// OnOutcome is called once per session when its delayed
	// victory or game-over transition comes due.
	OnOutcome func(Outcome)
}

// New creates a simulation. Call Reset before the first Tick.
// events may be nil.
func New(cfg *config.GameConfig, events *event.Dispatcher) *Simulation {
	world := ecs.NewWorld(ecs.TemplatesFromConfig(cfg))
	return &Simulation{
		config:    cfg,
		events:    events,
		world:     world,
		formation: system.NewFormationSystem(cfg, world, nil),
		collision: system.NewCollisionSystem(world),
		score:     system.NewScoreTracker(cfg),
		missiles:  system.NewMissileSystem(cfg, world),
		player:    system.NewPlayerSystem(cfg, world),
		scheduler: system.NewScheduler(),
	}
}

// Reset discards the current session and starts a new one:
// pending timers are invalidated, the world is repopulated with the
// player and the enemy grid, and score and clock restart at zero.
func (s *Simulation) Reset(session uint64, rng system.Random) {
	s.scheduler.Invalidate()
	s.world.Clear()
	s.score.Reset()
	s.formation.Reset(rng)
	s.player.Reset()

	s.session = session
	s.now = 0
	s.tick = 0
	s.over = false
	s.outcome = nil

	s.world.Spawn(entity.KindPlayer, entity.Vec2{X: 0, Y: s.config.PlayerSpawnY()})
	s.formation.SpawnGrid()

	s.events.Publish(event.SessionStarted, session)
}

// Tick advances the session by dt seconds using the sampled input.
// Once the session is over only the clock and timers advance.
func (s *Simulation) Tick(dt float64, in system.InputState) {
	s.now += time.Duration(dt * float64(time.Second))
	s.tick++
	s.collision.ResetChecks()
	s.scheduler.Advance(s.now)

	if s.over {
		return
	}

	if s.world.CountEnemies() == 0 {
		s.triggerVictory()
		return
	}

	if m := s.player.Apply(in.Intents(), s.now, dt); m != nil {
		s.events.Publish(event.MissileFired, event.EntityDataOf(m))
	}

	s.formation.Advance(dt)
	if m, ok := s.formation.TryFire(s.now, dt); ok {
		s.events.Publish(event.MissileFired, event.EntityDataOf(m))
	}

	for _, m := range s.missiles.Update(dt) {
		s.events.Publish(event.MissileOffscreen, event.EntityDataOf(m))
	}

	if hit := s.collision.CheckEnemyPlayer(); hit.Hit {
		s.killPlayer()
		return
	}
	if hit := s.collision.CheckMissilePlayer(); hit.Hit {
		s.world.Remove(hit.Missile.ID)
		s.killPlayer()
		return
	}

	if hit := s.collision.CheckMissileEnemy(); hit.Hit {
		s.killEnemy(hit.Missile, hit.Enemy)
	}
}

func (s *Simulation) killEnemy(m *entity.Missile, e *entity.Enemy) {
	s.world.Remove(m.ID)
	e.Alive = false
	s.world.Remove(e.ID)
	s.spawnExplosion(entity.KindEnemyExplosion, e.Pos)

	awarded := s.score.AddScore(s.config.Enemy.Points, s.now)
	s.events.Publish(event.EnemyKilled, event.KillData{
		EntityData: event.EntityDataOf(e),
		Awarded:    awarded,
		Combo:      s.score.Combo(),
		Multiplier: s.score.Multiplier(),
	})
}

func (s *Simulation) killPlayer() {
	p, ok := s.world.Player()
	if !ok {
		return
	}
	p.Alive = false
	s.world.Remove(p.ID)
	s.spawnExplosion(entity.KindPlayerExplosion, p.Pos)
	s.events.Publish(event.PlayerKilled, event.EntityDataOf(p))

	s.over = true
	outcome := Outcome{
		Session: s.session,
		State:   state.StateGameOver,
		Score:   s.score.Score(),
		Elapsed: s.now,
	}
	s.scheduler.After(s.now, config.Millis(s.config.Timing.GameOverDelayMs), func() {
		s.conclude(outcome)
	})
}

func (s *Simulation) triggerVictory() {
	s.over = true
	outcome := Outcome{
		Session:   s.session,
		State:     state.StateVictory,
		Score:     s.score.Score(),
		TimeBonus: s.score.TimeBonus(s.now),
		Elapsed:   s.now,
	}
	s.scheduler.After(s.now, config.Millis(s.config.Timing.VictoryDelayMs), func() {
		s.conclude(outcome)
	})
}

func (s *Simulation) conclude(o Outcome) {
	s.outcome = &o

	t := event.GameOver
	if o.State == state.StateVictory {
		t = event.Victory
	}
	s.events.Publish(t, event.OutcomeData{Score: o.Score, TimeBonus: o.TimeBonus})

	if s.OnOutcome != nil {
		s.OnOutcome(o)
	}
}

func (s *Simulation) spawnExplosion(kind entity.Kind, pos entity.Vec2) {
	x := s.world.Spawn(kind, pos)
	s.events.Publish(event.ExplosionSpawned, event.EntityDataOf(x))
}

// ExplosionFinished removes an explosion whose animation has ended.
// Unknown or already removed ids are ignored.
func (s *Simulation) ExplosionFinished(id entity.EntityID) bool {
	e, ok := s.world.Get(id)
	if !ok || !e.Head().Kind.IsExplosion() {
		return false
	}
	s.world.Remove(id)
	s.events.Publish(event.ExplosionRemoved, event.EntityDataOf(e))
	return true
}

// World returns the entity store for read access
func (s *Simulation) World() *ecs.World { return s.world }

// Score returns the accumulated score
func (s *Simulation) Score() int { return s.score.Score() }

// Combo returns the current combo length
func (s *Simulation) Combo() int { return s.score.Combo() }

// Multiplier returns the current combo multiplier
func (s *Simulation) Multiplier() float64 { return s.score.Multiplier() }

// Now returns the simulation clock since Reset
func (s *Simulation) Now() time.Duration { return s.now }

// Session returns the session token given to Reset
func (s *Simulation) Session() uint64 { return s.session }

// Over reports whether the session has ended (victory or death)
func (s *Simulation) Over() bool { return s.over }

// Outcome returns the concluded outcome, if the delayed transition has fired
func (s *Simulation) Outcome() (Outcome, bool) {
	if s.outcome == nil {
		return Outcome{}, false
	}
	return *s.outcome, true
}

// Stats returns counters for the debug overlay
func (s *Simulation) Stats() Stats {
	return Stats{
		Tick:       s.tick,
		Entities:   s.world.Len(),
		Enemies:    s.world.CountEnemies(),
		Missiles:   len(s.world.AllMissiles()),
		Explosions: len(s.world.Explosions()),
		Checks:     s.collision.ChecksPerformed(),
	}
}

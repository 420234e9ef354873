package system

import (
	"math"
	"slices"
	"time"

	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/ecs"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// Random is the subset of *rand.Rand the formation draws from
type Random interface {
	Float64() float64
	Intn(n int) int
}

// FormationStep describes what Advance did to the formation
type FormationStep struct {
	Moved   int     // alive enemies displaced
	Dropped bool    // true when the formation reversed and dropped a row
	DX, DY  float64 // displacement applied to every moved enemy
}

// FormationSystem moves the enemy grid as one block and picks shooters
type FormationSystem struct {
	config *config.GameConfig
	world  *ecs.World
	rng    Random

	direction float64 // +1 right, -1 left
	lastFire  time.Duration
}

// NewFormationSystem creates a formation sweeping right
func NewFormationSystem(cfg *config.GameConfig, world *ecs.World, rng Random) *FormationSystem {
	return &FormationSystem{
		config:    cfg,
		world:     world,
		rng:       rng,
		direction: 1,
	}
}

// Reset restores the initial sweep direction and fire clock
func (s *FormationSystem) Reset(rng Random) {
	s.rng = rng
	s.direction = 1
	s.lastFire = 0
}

// Direction returns +1 while sweeping right and -1 while sweeping left
func (s *FormationSystem) Direction() float64 {
	return s.direction
}

// SpawnGrid adds rows × columns enemies centered horizontally,
// with the first row a third of the stage above center.
func (s *FormationSystem) SpawnGrid() []*entity.Enemy {
	ec := s.config.Enemy
	top := -s.config.Stage.Height / 3
	half := float64(ec.Columns-1) / 2

	enemies := make([]*entity.Enemy, 0, ec.Rows*ec.Columns)
	for row := 0; row < ec.Rows; row++ {
		for col := 0; col < ec.Columns; col++ {
			pos := entity.Vec2{
				X: (float64(col) - half) * ec.SpacingX,
				Y: top + float64(row)*ec.SpacingY,
			}
			e := s.world.Spawn(entity.KindEnemy, pos).(*entity.Enemy)
			e.Row, e.Col = row, col
			enemies = append(enemies, e)
		}
	}
	return enemies
}

// Advance moves every alive enemy by the same step.
// If any enemy would pass the stage bound the formation instead
// reverses and drops one row, with no horizontal motion this tick.
func (s *FormationSystem) Advance(dt float64) FormationStep {
	alive := s.world.AliveEnemies()
	if len(alive) == 0 {
		return FormationStep{}
	}

	dx := s.config.Enemy.Speed * dt * s.direction
	bound := s.config.Stage.HalfSpan()

	reverse := false
	for _, e := range alive {
		if math.Abs(e.Pos.X+dx) > bound {
			reverse = true
			break
		}
	}

	step := FormationStep{Moved: len(alive), Dropped: reverse, DX: dx}
	if reverse {
		s.direction = -s.direction
		step.DX = 0
		step.DY = s.config.Enemy.SpacingY
	}

	for _, e := range alive {
		e.Pos.X += step.DX
		e.Pos.Y += step.DY
	}
	return step
}

// FireChance returns the per-tick fire probability for a tick of dt seconds.
// At the reference framerate it equals the configured probability.
func (s *FormationSystem) FireChance(dt float64) float64 {
	p := s.config.Enemy.FireProbability
	frames := dt * float64(s.config.Timing.Framerate)
	return 1 - math.Pow(1-p, frames)
}

// TryFire fires one enemy missile if the cooldown has elapsed and
// the random draw succeeds. The shooter is the front enemy of a
// uniformly chosen column.
func (s *FormationSystem) TryFire(now time.Duration, dt float64) (*entity.Missile, bool) {
	if now-s.lastFire <= config.Millis(s.config.Enemy.FireCooldownMs) {
		return nil, false
	}
	if s.rng.Float64() >= s.FireChance(dt) {
		return nil, false
	}

	fronts := FrontEnemies(s.world.AliveEnemies())
	if len(fronts) == 0 {
		return nil, false
	}

	shooter := fronts[s.rng.Intn(len(fronts))]
	m := s.world.Spawn(entity.KindEnemyMissile, shooter.Pos).(*entity.Missile)
	s.lastFire = now
	return m, true
}

// FrontEnemies groups enemies by rounded x and returns, per column,
// the one closest to the player (largest y). Columns are ordered by x.
func FrontEnemies(enemies []*entity.Enemy) []*entity.Enemy {
	front := make(map[int64]*entity.Enemy)
	for _, e := range enemies {
		col := int64(math.Round(e.Pos.X))
		if cur, ok := front[col]; !ok || e.Pos.Y > cur.Pos.Y {
			front[col] = e
		}
	}

	cols := make([]int64, 0, len(front))
	for c := range front {
		cols = append(cols, c)
	}
	slices.Sort(cols)

	out := make([]*entity.Enemy, len(cols))
	for i, c := range cols {
		out[i] = front[c]
	}
	return out
}

package system

import (
	"math"
	"time"

	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/ecs"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// PlayerSystem applies player intents: movement, clamping and firing
type PlayerSystem struct {
	config *config.GameConfig
	world  *ecs.World

	lastFire time.Duration
	hasFired bool
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.GameConfig, world *ecs.World) *PlayerSystem {
	return &PlayerSystem{config: cfg, world: world}
}

// Reset forgets the fire cooldown
func (s *PlayerSystem) Reset() {
	s.lastFire = 0
	s.hasFired = false
}

// CanFire reports whether the cooldown allows a shot at now
func (s *PlayerSystem) CanFire(now time.Duration) bool {
	return !s.hasFired || now-s.lastFire >= config.Millis(s.config.Missile.CooldownMs)
}

// Apply executes intents for the current tick.
// It returns the missile fired this tick, or nil.
func (s *PlayerSystem) Apply(intents []Intent, now time.Duration, dt float64) *entity.Missile {
	player, ok := s.world.Player()
	if !ok || !player.Alive {
		return nil
	}

	var fired *entity.Missile
	moved := false

	for _, in := range intents {
		switch it := in.(type) {
		case FireIntent:
			if fired != nil || !s.CanFire(now) {
				continue
			}
			fired = s.world.Spawn(entity.KindPlayerMissile, player.Pos).(*entity.Missile)
			s.lastFire = now
			s.hasFired = true
		case MoveIntent:
			s.move(player, it, dt)
			moved = true
		}
	}

	if !moved {
		player.Velocity = entity.Vec2{}
	}
	return fired
}

func (s *PlayerSystem) move(player *entity.Player, it MoveIntent, dt float64) {
	boost := 1.0
	if it.Boost {
		boost = s.config.Player.BoostMultiplier
	}
	player.Velocity = entity.Vec2{X: float64(it.Direction) * boost}

	bound := s.config.Stage.HalfSpan()
	x := player.Pos.X + player.Velocity.X*s.config.Player.Speed*dt
	player.Pos.X = math.Max(-bound, math.Min(bound, x))
}

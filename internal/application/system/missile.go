package system

import (
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/ecs"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// MissileSystem advances missiles and culls the ones leaving the stage
type MissileSystem struct {
	config *config.GameConfig
	world  *ecs.World
}

// NewMissileSystem creates a new missile system
func NewMissileSystem(cfg *config.GameConfig, world *ecs.World) *MissileSystem {
	return &MissileSystem{config: cfg, world: world}
}

// Update moves every missile by its velocity and removes those
// beyond the stage plus one missile height. Removed missiles are returned.
func (s *MissileSystem) Update(dt float64) []*entity.Missile {
	var removed []*entity.Missile
	half := s.config.Stage.Height / 2

	// Copy: removal compacts the world's slice.
	missiles := append([]*entity.Missile(nil), s.world.AllMissiles()...)
	for _, m := range missiles {
		nextY := m.Pos.Y + m.VY()*dt
		if nextY < -half-m.Size.H || nextY > half+m.Size.H {
			s.world.Remove(m.ID)
			removed = append(removed, m)
			continue
		}
		m.Pos.Y = nextY
	}
	return removed
}

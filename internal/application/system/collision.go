package system

import (
	"cmp"
	"slices"

	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/ecs"
)

// MissileEnemyHit is the result of CheckMissileEnemy
type MissileEnemyHit struct {
	Hit     bool
	Missile *entity.Missile
	Enemy   *entity.Enemy
}

// MissilePlayerHit is the result of CheckMissilePlayer
type MissilePlayerHit struct {
	Hit     bool
	Missile *entity.Missile
}

// EnemyPlayerHit is the result of CheckEnemyPlayer
type EnemyPlayerHit struct {
	Hit   bool
	Enemy *entity.Enemy
}

// CollisionSystem answers collision queries against the world.
// Queries never modify entities.
type CollisionSystem struct {
	world  *ecs.World
	checks int
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *ecs.World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

// ChecksPerformed returns box tests run since the last ResetChecks
func (s *CollisionSystem) ChecksPerformed() int {
	return s.checks
}

// ResetChecks zeroes the box test counter
func (s *CollisionSystem) ResetChecks() {
	s.checks = 0
}

func (s *CollisionSystem) overlaps(a, b entity.Bounds) bool {
	s.checks++
	return a.Overlaps(b)
}

// CheckMissileEnemy finds the first player missile overlapping an alive enemy.
// Missiles are scanned bottom to top, enemies top to bottom, so the scan
// over enemies stops as soon as they lie wholly below the missile.
func (s *CollisionSystem) CheckMissileEnemy() MissileEnemyHit {
	missiles := s.world.Missiles(entity.KindPlayerMissile)
	if len(missiles) == 0 {
		return MissileEnemyHit{}
	}
	enemies := s.world.AliveEnemies()
	if len(enemies) == 0 {
		return MissileEnemyHit{}
	}

	slices.SortStableFunc(missiles, func(a, b *entity.Missile) int {
		return cmp.Or(
			cmp.Compare(b.Bounds().Bottom, a.Bounds().Bottom),
			cmp.Compare(a.ID, b.ID),
		)
	})
	slices.SortStableFunc(enemies, func(a, b *entity.Enemy) int {
		return cmp.Or(
			cmp.Compare(a.Bounds().Top, b.Bounds().Top),
			cmp.Compare(a.ID, b.ID),
		)
	})

	for _, m := range missiles {
		mb := m.Bounds()
		for _, e := range enemies {
			eb := e.Bounds()
			if eb.Top >= mb.Bottom {
				break
			}
			if eb.Bottom <= mb.Top {
				continue
			}
			if s.overlaps(mb, eb) {
				return MissileEnemyHit{Hit: true, Missile: m, Enemy: e}
			}
		}
	}
	return MissileEnemyHit{}
}

// CheckMissilePlayer finds the first enemy missile overlapping the alive player
func (s *CollisionSystem) CheckMissilePlayer() MissilePlayerHit {
	player, ok := s.world.Player()
	if !ok || !player.Alive {
		return MissilePlayerHit{}
	}

	pb := player.Bounds()
	for _, m := range s.world.Missiles(entity.KindEnemyMissile) {
		if s.overlaps(m.Bounds(), pb) {
			return MissilePlayerHit{Hit: true, Missile: m}
		}
	}
	return MissilePlayerHit{}
}

// CheckEnemyPlayer reports whether any alive enemy has descended to the
// player's row. The reported enemy is the lowest one.
func (s *CollisionSystem) CheckEnemyPlayer() EnemyPlayerHit {
	player, ok := s.world.Player()
	if !ok || !player.Alive {
		return EnemyPlayerHit{}
	}

	var lowest *entity.Enemy
	for _, e := range s.world.Enemies() {
		if !e.Alive {
			continue
		}
		if lowest == nil || e.Pos.Y > lowest.Pos.Y {
			lowest = e
		}
	}
	if lowest == nil || lowest.Pos.Y < player.Pos.Y {
		return EnemyPlayerHit{}
	}
	return EnemyPlayerHit{Hit: true, Enemy: lowest}
}

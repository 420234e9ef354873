package system

import (
	"testing"

	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/ecs"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

func benchWorld() *ecs.World {
	cfg := config.Default()
	cfg.Enemy.Rows = 6
	cfg.Enemy.Columns = 11
	w := newTestWorld(cfg)
	NewFormationSystem(cfg, w, testRNG()).SpawnGrid()
	for i := 0; i < 16; i++ {
		spawnMissile(w, entity.KindPlayerMissile, float64(i*40-320), 250-float64(i*10))
	}
	return w
}

func BenchmarkCheckMissileEnemy_Pruned(b *testing.B) {
	w := benchWorld()
	s := NewCollisionSystem(w)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ResetChecks()
		s.CheckMissileEnemy()
	}
}

func BenchmarkCheckMissileEnemy_BruteForce(b *testing.B) {
	w := benchWorld()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bruteForceAny(w)
	}
}

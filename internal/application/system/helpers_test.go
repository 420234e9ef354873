package system

import (
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/ecs"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

func newTestWorld(cfg *config.GameConfig) *ecs.World {
	return ecs.NewWorld(ecs.TemplatesFromConfig(cfg))
}

func spawnEnemy(w *ecs.World, x, y float64) *entity.Enemy {
	return w.Spawn(entity.KindEnemy, entity.Vec2{X: x, Y: y}).(*entity.Enemy)
}

func spawnMissile(w *ecs.World, kind entity.Kind, x, y float64) *entity.Missile {
	return w.Spawn(kind, entity.Vec2{X: x, Y: y}).(*entity.Missile)
}

func spawnPlayer(w *ecs.World, x, y float64) *entity.Player {
	return w.Spawn(entity.KindPlayer, entity.Vec2{X: x, Y: y}).(*entity.Player)
}

// fakeRandom replays fixed draws, then returns zero
type fakeRandom struct {
	floats []float64
	ints   []int
}

func (r *fakeRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *fakeRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

package ecs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/younwookim/invaders/internal/domain/entity"
)

// ErrDuplicateEntity is returned by Add when the id is already stored
var ErrDuplicateEntity = errors.New("ecs: duplicate entity id")

// Templates holds the kind-specific defaults applied by Create
type Templates struct {
	Sizes        map[entity.Kind]entity.Size
	MissileSpeed float64 // px/s
}

// World owns every live entity of a session.
// Iteration order within a kind is insertion order.
type World struct {
	nextID    entity.EntityID
	templates Templates

	index      map[entity.EntityID]entity.Entity
	player     *entity.Player
	enemies    []*entity.Enemy
	missiles   []*entity.Missile
	explosions []*entity.Explosion
}

// NewWorld creates a new empty world
func NewWorld(t Templates) *World {
	return &World{
		nextID:    1, // 0 is "nil"
		templates: t,
		index:     make(map[entity.EntityID]entity.Entity),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Create builds an entity of the given kind at pos with a fresh id.
// The entity is not stored until Add is called. Unknown kinds panic.
func (w *World) Create(kind entity.Kind, pos entity.Vec2) entity.Entity {
	if !kind.Valid() {
		panic(fmt.Sprintf("ecs: unknown entity kind %d", int(kind)))
	}
	id := w.NewEntity()
	size := w.templates.Sizes[kind]

	switch {
	case kind == entity.KindPlayer:
		return entity.NewPlayer(id, pos, size)
	case kind == entity.KindEnemy:
		return entity.NewEnemy(id, pos, size)
	case kind.IsMissile():
		return entity.NewMissile(id, kind, pos, size, w.templates.MissileSpeed)
	default:
		return entity.NewExplosion(id, kind, pos, size)
	}
}

// Spawn creates and stores an entity in one step
func (w *World) Spawn(kind entity.Kind, pos entity.Vec2) entity.Entity {
	e := w.Create(kind, pos)
	// Fresh ids cannot collide.
	_ = w.Add(e)
	return e
}

// Add stores e. It fails if an entity with the same id is present.
func (w *World) Add(e entity.Entity) error {
	h := e.Head()
	if _, ok := w.index[h.ID]; ok {
		return fmt.Errorf("add %s %d: %w", h.Kind, h.ID, ErrDuplicateEntity)
	}

	switch v := e.(type) {
	case *entity.Player:
		if w.player != nil {
			delete(w.index, w.player.ID)
		}
		w.player = v
	case *entity.Enemy:
		w.enemies = append(w.enemies, v)
	case *entity.Missile:
		w.missiles = append(w.missiles, v)
	case *entity.Explosion:
		w.explosions = append(w.explosions, v)
	}
	w.index[h.ID] = e
	return nil
}

// Remove deletes the entity with the given id.
// It reports whether anything was removed; absent ids are a no-op.
func (w *World) Remove(id entity.EntityID) bool {
	e, ok := w.index[id]
	if !ok {
		return false
	}
	delete(w.index, id)

	switch e.(type) {
	case *entity.Player:
		w.player = nil
	case *entity.Enemy:
		w.enemies = slices.DeleteFunc(w.enemies, func(x *entity.Enemy) bool { return x.ID == id })
	case *entity.Missile:
		w.missiles = slices.DeleteFunc(w.missiles, func(x *entity.Missile) bool { return x.ID == id })
	case *entity.Explosion:
		w.explosions = slices.DeleteFunc(w.explosions, func(x *entity.Explosion) bool { return x.ID == id })
	}
	return true
}

// Get returns the entity with the given id
func (w *World) Get(id entity.EntityID) (entity.Entity, bool) {
	e, ok := w.index[id]
	return e, ok
}

// Exists checks if an entity is stored
func (w *World) Exists(id entity.EntityID) bool {
	_, ok := w.index[id]
	return ok
}

// Len returns the number of stored entities
func (w *World) Len() int {
	return len(w.index)
}

// Player returns the stored player, if any
func (w *World) Player() (*entity.Player, bool) {
	return w.player, w.player != nil
}

// Enemies returns stored enemies in insertion order.
// The slice is owned by the world and must not be modified.
func (w *World) Enemies() []*entity.Enemy {
	return w.enemies
}

// AliveEnemies returns a fresh slice of the enemies still alive
func (w *World) AliveEnemies() []*entity.Enemy {
	alive := make([]*entity.Enemy, 0, len(w.enemies))
	for _, e := range w.enemies {
		if e.Alive {
			alive = append(alive, e)
		}
	}
	return alive
}

// CountEnemies returns the number of alive enemies
func (w *World) CountEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// Missiles returns stored missiles of the given kind in insertion order
func (w *World) Missiles(kind entity.Kind) []*entity.Missile {
	out := make([]*entity.Missile, 0, len(w.missiles))
	for _, m := range w.missiles {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// AllMissiles returns every stored missile.
// The slice is owned by the world and must not be modified.
func (w *World) AllMissiles() []*entity.Missile {
	return w.missiles
}

// Explosions returns stored explosions in insertion order.
// The slice is owned by the world and must not be modified.
func (w *World) Explosions() []*entity.Explosion {
	return w.explosions
}

// Each calls fn for every stored entity: player, enemies, missiles, explosions
func (w *World) Each(fn func(entity.Entity)) {
	if w.player != nil {
		fn(w.player)
	}
	for _, e := range w.enemies {
		fn(e)
	}
	for _, m := range w.missiles {
		fn(m)
	}
	for _, x := range w.explosions {
		fn(x)
	}
}

// Clear removes every entity. Ids keep increasing across clears.
func (w *World) Clear() {
	w.index = make(map[entity.EntityID]entity.Entity)
	w.player = nil
	w.enemies = nil
	w.missiles = nil
	w.explosions = nil
}

package entity

// Entity is the closed set of things living in the simulation.
// Concrete variants are *Player, *Enemy, *Missile and *Explosion.
type Entity interface {
	Head() *Header
	isEntity()
}

// Header holds the fields shared by every variant
type Header struct {
	ID   EntityID
	Kind Kind
	Pos  Vec2
	Size Size
}

// Head returns the shared header
func (h *Header) Head() *Header { return h }

// Bounds returns the box centered on the entity's position
func (h *Header) Bounds() Bounds {
	return BoundsAt(h.Pos, h.Size)
}

// Player is the user-controlled cannon
type Player struct {
	Header
	Velocity Vec2
	Alive    bool
}

func (*Player) isEntity() {}

// NewPlayer creates a live player
func NewPlayer(id EntityID, pos Vec2, size Size) *Player {
	return &Player{
		Header: Header{ID: id, Kind: KindPlayer, Pos: pos, Size: size},
		Alive:  true,
	}
}

// Enemy is a member of the invader formation
type Enemy struct {
	Header
	Alive bool
	// Row and Col are the enemy's slot in the initial grid.
	Row, Col int
}

func (*Enemy) isEntity() {}

// NewEnemy creates a live enemy
func NewEnemy(id EntityID, pos Vec2, size Size) *Enemy {
	return &Enemy{
		Header: Header{ID: id, Kind: KindEnemy, Pos: pos, Size: size},
		Alive:  true,
	}
}

// Missile travels vertically at a fixed speed.
// Player missiles move up, enemy missiles move down.
type Missile struct {
	Header
	vy float64
}

func (*Missile) isEntity() {}

// NewMissile creates a missile of the given kind with speed px/s.
// It panics if kind is not a missile kind.
func NewMissile(id EntityID, kind Kind, pos Vec2, size Size, speed float64) *Missile {
	if !kind.IsMissile() {
		panic("entity: NewMissile with non-missile kind " + kind.String())
	}
	return &Missile{
		Header: Header{ID: id, Kind: kind, Pos: pos, Size: size},
		vy:     MissileDirection(kind) * speed,
	}
}

// VY returns the vertical velocity in px/s.
// The sign is fixed by the missile's kind at creation.
func (m *Missile) VY() float64 { return m.vy }

// FromPlayer reports whether the player fired the missile
func (m *Missile) FromPlayer() bool { return m.Kind == KindPlayerMissile }

// MissileDirection returns -1 for player missiles and +1 for enemy missiles
func MissileDirection(kind Kind) float64 {
	if kind == KindPlayerMissile {
		return -1
	}
	return 1
}

// Explosion is a transient visual marker.
// It is removed once the presentation layer reports its animation done.
type Explosion struct {
	Header
}

func (*Explosion) isEntity() {}

// NewExplosion creates an explosion of the given kind.
// It panics if kind is not an explosion kind.
func NewExplosion(id EntityID, kind Kind, pos Vec2, size Size) *Explosion {
	if !kind.IsExplosion() {
		panic("entity: NewExplosion with non-explosion kind " + kind.String())
	}
	return &Explosion{Header: Header{ID: id, Kind: kind, Pos: pos, Size: size}}
}

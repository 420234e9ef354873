package entity

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Kind tags the variant of an Entity
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlayerMissile
	KindEnemyMissile
	KindPlayerExplosion
	KindEnemyExplosion
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindPlayerMissile:
		return "PlayerMissile"
	case KindEnemyMissile:
		return "EnemyMissile"
	case KindPlayerExplosion:
		return "PlayerExplosion"
	case KindEnemyExplosion:
		return "EnemyExplosion"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	return k >= KindPlayer && k <= KindEnemyExplosion
}

// IsMissile reports whether k is a missile kind
func (k Kind) IsMissile() bool {
	return k == KindPlayerMissile || k == KindEnemyMissile
}

// IsExplosion reports whether k is an explosion kind
func (k Kind) IsExplosion() bool {
	return k == KindPlayerExplosion || k == KindEnemyExplosion
}

// Vec2 is a point or displacement in world space.
// The origin is the stage center, +Y points down.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Size is the width and height of an entity's bounding box
type Size struct {
	W, H float64
}

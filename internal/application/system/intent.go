package system

// Intent represents an action the player wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent represents a horizontal movement intention
type MoveIntent struct {
	Direction int // -1 for left, 1 for right
	Boost     bool
}

func (MoveIntent) isIntent() {}

// FireIntent represents a request to fire a missile
type FireIntent struct{}

func (FireIntent) isIntent() {}

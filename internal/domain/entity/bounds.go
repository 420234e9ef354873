package entity

// Bounds is an axis-aligned box in world space
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// BoundsAt returns the box of the given size centered on pos
func BoundsAt(pos Vec2, size Size) Bounds {
	hw, hh := size.W/2, size.H/2
	return Bounds{
		Left:   pos.X - hw,
		Right:  pos.X + hw,
		Top:    pos.Y - hh,
		Bottom: pos.Y + hh,
	}
}

// Overlaps reports whether the interiors of a and b intersect.
// Boxes that only share an edge do not overlap.
func (a Bounds) Overlaps(b Bounds) bool {
	return a.Left < b.Right && a.Right > b.Left &&
		a.Top < b.Bottom && a.Bottom > b.Top
}

// Width returns the horizontal extent
func (a Bounds) Width() float64 { return a.Right - a.Left }

// Height returns the vertical extent
func (a Bounds) Height() float64 { return a.Bottom - a.Top }

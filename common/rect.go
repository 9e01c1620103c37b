package common

// Rect is an axis-aligned rectangle in world pixels. X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether the two rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// OverlapsX reports whether the horizontal spans overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X
}

// OverlapsY reports whether the vertical spans overlap.
func (r Rect) OverlapsY(other Rect) bool {
	return r.Y < other.Y+other.Height && r.Y+r.Height > other.Y
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

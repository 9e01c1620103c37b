package component

import "github.com/milk9111/reaperrun/common"

// Positioner is anything a hitbox can follow.
type Positioner interface {
	Position() (x, y float64)
}

// HitboxOffsets shrink (usually negative values) and shift a hitbox relative
// to its owner's draw rectangle.
type HitboxOffsets struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Hitbox is the collision rectangle of an entity. It never outlives the owner
// and must be updated once per tick before any collision check.
type Hitbox struct {
	X, Y          float64
	Width, Height float64
	Offsets       HitboxOffsets

	owner Positioner
}

// NewHitbox creates a hitbox for owner with the given base size.
func NewHitbox(owner Positioner, width, height float64, offsets HitboxOffsets) *Hitbox {
	h := &Hitbox{
		Width:   width + offsets.Width,
		Height:  height + offsets.Height,
		Offsets: offsets,
		owner:   owner,
	}
	h.Update()
	return h
}

// Update recomputes the position from the owner.
func (h *Hitbox) Update() {
	if h == nil || h.owner == nil {
		return
	}
	x, y := h.owner.Position()
	h.X = x - h.Offsets.X
	h.Y = y - h.Offsets.Y
}

// Rect returns the box as a rectangle.
func (h *Hitbox) Rect() common.Rect {
	if h == nil {
		return common.Rect{}
	}
	return common.Rect{X: h.X, Y: h.Y, Width: h.Width, Height: h.Height}
}

// Intersects reports whether two hitboxes overlap.
func (h *Hitbox) Intersects(other *Hitbox) bool {
	if h == nil || other == nil {
		return false
	}
	return h.Rect().Intersects(other.Rect())
}

func (h *Hitbox) Right() float64  { return h.X + h.Width }
func (h *Hitbox) Bottom() float64 { return h.Y + h.Height }

package component

import "github.com/milk9111/reaperrun/common"

// Playback controls what happens when an animation sweeps past its last frame.
type Playback int

const (
	// PlayOnce stops one frame past the boundary so Finished stays true.
	PlayOnce Playback = iota
	// PlayLoop wraps back to the first frame of the sweep.
	PlayLoop
	// PlayHold stays on the last frame.
	PlayHold
)

// AnimationDef describes one row of a directional sprite sheet.
type AnimationDef struct {
	Row        int
	FrameCount int
	Playback   Playback
}

// SpriteAnimation tracks the current frame column of a directional sprite
// sheet. Right-facing sheets are read left-to-right starting at column 0 and
// left-facing (mirrored) sheets are read right-to-left starting at
// MaxFrameCount, so the same logical frame i lives at column i on the right
// sheet and at MaxFrameCount-i on the left one.
type SpriteAnimation struct {
	MaxFrameCount int

	// FrameTicks is how many updates each frame is shown for (defaults to 1).
	FrameTicks int

	Def      AnimationDef
	Position int

	tick int
}

// NewSpriteAnimation creates an animator for a sheet with maxFrameCount+1 columns.
func NewSpriteAnimation(maxFrameCount, frameTicks int) SpriteAnimation {
	if frameTicks <= 0 {
		frameTicks = 1
	}
	return SpriteAnimation{MaxFrameCount: maxFrameCount, FrameTicks: frameTicks}
}

// Play switches to def and rewinds to the first frame for dir. Calling it
// repeatedly with the same arguments leaves the animation in the same place.
func (a *SpriteAnimation) Play(def AnimationDef, dir common.Direction) {
	a.Def = def
	a.Position = a.start(dir)
	a.tick = 0
}

func (a *SpriteAnimation) start(dir common.Direction) int {
	if dir == common.Left {
		return a.MaxFrameCount
	}
	return 0
}

// Finished reports whether the sweep has crossed the frame-count boundary for
// the current direction.
func (a *SpriteAnimation) Finished(dir common.Direction) bool {
	return FrameBoundaryCrossed(a.Position, a.Def.FrameCount, a.MaxFrameCount, dir)
}

// FrameBoundaryCrossed is the direction-aware "animation finished" rule.
func FrameBoundaryCrossed(pos, frameCount, maxFrameCount int, dir common.Direction) bool {
	if dir == common.Left {
		return pos < maxFrameCount-frameCount+1
	}
	return pos > frameCount-1
}

// Step advances the animation by one update.
func (a *SpriteAnimation) Step(dir common.Direction) {
	if a.Def.FrameCount <= 0 {
		return
	}
	if a.Def.Playback == PlayOnce && a.Finished(dir) {
		return
	}
	frameTicks := a.FrameTicks
	if frameTicks <= 0 {
		frameTicks = 1
	}
	a.tick++
	if a.tick < frameTicks {
		return
	}
	a.tick = 0

	step := 1
	if dir == common.Left {
		step = -1
	}
	next := a.Position + step
	crossed := FrameBoundaryCrossed(next, a.Def.FrameCount, a.MaxFrameCount, dir)
	switch {
	case !crossed, a.Def.Playback == PlayOnce:
		a.Position = next
	case a.Def.Playback == PlayLoop:
		a.Position = a.start(dir)
	}
	// PlayHold: stay on the last frame
}

// Mirror keeps the same logical frame when the sheet direction flips.
func (a *SpriteAnimation) Mirror() {
	a.Position = a.MaxFrameCount - a.Position
}

// Frame returns the logical frame index (0 based, independent of direction).
func (a *SpriteAnimation) Frame(dir common.Direction) int {
	if dir == common.Left {
		return a.MaxFrameCount - a.Position
	}
	return a.Position
}

// Column returns the sheet column to draw. Positions swept past the last
// frame are clamped back onto it.
func (a *SpriteAnimation) Column(dir common.Direction) int {
	if a.Def.FrameCount <= 0 {
		return common.ClampInt(a.Position, 0, a.MaxFrameCount)
	}
	frame := common.ClampInt(a.Frame(dir), 0, a.Def.FrameCount-1)
	if dir == common.Left {
		return a.MaxFrameCount - frame
	}
	return frame
}

package obj

import "github.com/milk9111/reaperrun/common"

// CrystalConfig holds the look and pickup tuning of crystals.
type CrystalConfig struct {
	Width, Height float64
	Sprite        SpriteConfig
	// Inset narrows the horizontal pickup window on both sides.
	Inset float64
}

// Crystal is a pickup that refills the slide move.
type Crystal struct {
	X, Y          float64
	Width, Height float64
	Row           int
	IsPickedUp    bool

	cfg  CrystalConfig
	env  Env
	tick int
}

func NewCrystal(cfg CrystalConfig, x, y float64, env Env) *Crystal {
	return &Crystal{
		X:      x,
		Y:      y,
		Width:  cfg.Width,
		Height: cfg.Height,
		cfg:    cfg,
		env:    env,
	}
}

// Update bobs the crystal between its two sheet rows and checks for pickup.
func (c *Crystal) Update() {
	c.animate()
	c.pickUp()
}

func (c *Crystal) animate() {
	ticks := max(c.cfg.Sprite.FrameTicks, 1)
	c.tick++
	if c.tick < ticks {
		return
	}
	c.tick = 0
	c.Row = 1 - c.Row
}

func (c *Crystal) pickUp() {
	if c.IsPickedUp {
		return
	}
	pl := c.env.Player()
	if pl == nil {
		return
	}
	hb := pl.Hitbox
	if hb.Right() >= c.X+c.cfg.Inset && hb.X < c.X+c.Width-c.cfg.Inset && hb.Bottom() >= c.Y {
		c.IsPickedUp = true
		pl.AddCrystal()
		c.env.Sound().Play(SoundPickup)
	}
}

// Shift moves the crystal with the scrolling world.
func (c *Crystal) Shift(dx float64) {
	c.X += dx
}

func (c *Crystal) Rect() common.Rect {
	return common.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

func (c *Crystal) Draw(s Surface) {
	s.DrawSprite(c.cfg.Sprite.Sheet(common.Right), c.cfg.Sprite.Source(0, c.Row), c.Rect())
}

// PruneCrystals drops crystals that were picked up.
func PruneCrystals(list []*Crystal) []*Crystal {
	kept := list[:0]
	for _, c := range list {
		if !c.IsPickedUp {
			kept = append(kept, c)
		}
	}
	clear(list[len(kept):])
	return kept
}

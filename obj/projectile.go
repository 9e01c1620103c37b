package obj

import (
	"github.com/milk9111/reaperrun/common"
	"github.com/milk9111/reaperrun/component"
)

// Origin identifies who fired a projectile and therefore whom it can hit.
type Origin int

const (
	OriginPlayer Origin = iota
	OriginBoss
)

func (o Origin) String() string {
	if o == OriginBoss {
		return "boss"
	}
	return "player"
}

// Projectile is a shot owned by the character that fired it.
type Projectile struct {
	X, Y          float64
	Width, Height float64
	Direction     common.Direction
	Speed         float64
	Origin        Origin

	SpritePosition int
	// Remove marks the projectile for the end-of-tick sweep.
	Remove bool
	Hitbox *component.Hitbox

	cfg    ProjectileConfig
	env    Env
	cycles int
}

// NewProjectile creates a projectile at (x, y) travelling in dir.
func NewProjectile(origin Origin, cfg ProjectileConfig, x, y float64, dir common.Direction, env Env) *Projectile {
	p := &Projectile{
		X:         x,
		Y:         y,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Direction: dir,
		Speed:     cfg.Speed,
		Origin:    origin,
		cfg:       cfg,
		env:       env,
	}
	p.Hitbox = component.NewHitbox(p, cfg.Width, cfg.Height, cfg.Hitbox)
	return p
}

func (p *Projectile) Position() (float64, float64) { return p.X, p.Y }

// Update moves, animates and resolves collisions for one tick.
func (p *Projectile) Update() {
	p.move()
	p.checkOffscreen()
	p.animate()
	p.Hitbox.Update()
	if !p.Remove {
		p.collide()
	}
}

func (p *Projectile) move() {
	if p.Origin == OriginBoss {
		return
	}
	p.X += p.Direction.Sign() * p.Speed
}

func (p *Projectile) checkOffscreen() {
	if p.X+p.Width < 0 || p.X > p.env.ViewportWidth() {
		p.Remove = true
	}
}

func (p *Projectile) animate() {
	if p.SpritePosition > p.cfg.LoopAt {
		switch {
		case p.Origin == OriginPlayer:
			p.SpritePosition = p.cfg.LoopTo
		case p.cycles < p.cfg.Cycles:
			p.SpritePosition = p.cfg.LoopTo
			p.cycles++
		default:
			p.Remove = true
		}
	}
	p.SpritePosition++
}

func (p *Projectile) collide() {
	switch p.Origin {
	case OriginPlayer:
		for _, e := range p.env.Enemies() {
			if e.IsDead {
				continue
			}
			if s := e.State(); s == EnemyHurt || s == EnemyDying {
				continue
			}
			if p.Hitbox.Intersects(e.Hitbox) {
				e.Hurt()
				p.Remove = true
				return
			}
		}
	case OriginBoss:
		pl := p.env.Player()
		if pl == nil || pl.State() == PlayerDying {
			return
		}
		if p.Hitbox.Intersects(pl.Hitbox) {
			pl.Hurt()
			p.Remove = true
		}
	}
}

// Shift moves the projectile with the scrolling world.
func (p *Projectile) Shift(dx float64) {
	p.X += dx
	p.Hitbox.Update()
}

// Rect is the draw rectangle.
func (p *Projectile) Rect() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Projectile) Draw(s Surface) {
	col := max(p.SpritePosition, 0)
	s.DrawSprite(p.cfg.Sprite.Sheet(p.Direction), p.cfg.Sprite.Source(col, p.cfg.Row), p.Rect())
}

func pruneProjectiles(list []*Projectile) []*Projectile {
	kept := list[:0]
	for _, p := range list {
		if !p.Remove {
			kept = append(kept, p)
		}
	}
	clear(list[len(kept):])
	return kept
}

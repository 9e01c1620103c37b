package obj

import (
	"log"

	"github.com/milk9111/reaperrun/common"
	"github.com/milk9111/reaperrun/component"
	"golang.org/x/image/colornames"
)

const (
	// attack reach around the enemy hitbox
	attackReachBack  = 50.0
	attackReachFront = 20.0

	bossProjectileOffsetY     = 10.0
	bossProjectileOffsetRight = 40.0
	bossProjectileOffsetLeft  = 20.0
	bossLifeBarHeight         = 8.0
	bossLifeBarGap            = 15.0
)

// Enemy is a zombie or the boss. Kind is fixed at construction.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Direction     common.Direction
	Kind          EnemyKind

	HP          component.Counter
	Anim        component.SpriteAnimation
	Hitbox      *component.Hitbox
	Projectiles []*Projectile
	// IsDead marks the enemy for removal at the end of the tick.
	IsDead bool

	cfg   EnemyConfig
	env   Env
	state EnemyState

	attackCooldown component.Cooldown
	hurtCooldown   component.Cooldown

	winSent bool
}

// NewEnemy creates an idle enemy at world position (x, y).
func NewEnemy(cfg EnemyConfig, x, y float64, env Env) *Enemy {
	e := &Enemy{
		X:              x,
		Y:              y,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Direction:      common.Left,
		Kind:           cfg.Kind,
		HP:             component.NewCounter(cfg.HP, cfg.HP),
		Anim:           component.NewSpriteAnimation(cfg.Sprite.MaxFrameCount, cfg.Sprite.FrameTicks),
		cfg:            cfg,
		env:            env,
		attackCooldown: component.NewCooldown(cfg.AttackCooldown),
		hurtCooldown:   component.NewCooldown(cfg.HurtCooldown),
	}
	e.Hitbox = component.NewHitbox(e, cfg.Width, cfg.Height, cfg.Hitbox)
	e.setState(EnemyIdle)
	if env != nil && env.Debug() {
		log.Printf("NewEnemy: kind=%s x=%.0f y=%.0f hp=%d", e.Kind, x, y, e.HP.Current)
	}
	return e
}

func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }

// State is the current state of the enemy state machine.
func (e *Enemy) State() EnemyState { return e.state }

func (e *Enemy) setState(s EnemyState) {
	prev := e.state
	e.state = s
	if e.env != nil && e.env.Debug() {
		log.Printf("enemy %s: %s -> %s", e.Kind, prev, s)
	}
	e.enterState()
}

func (e *Enemy) play(tag AnimTag) {
	e.Anim.Play(e.cfg.Animations[tag], e.Direction)
}

func (e *Enemy) setDirection(dir common.Direction) {
	if dir == e.Direction {
		return
	}
	e.Direction = dir
	e.Anim.Mirror()
}

// facePlayer turns toward the player.
func (e *Enemy) facePlayer(pl *Player) {
	if pl.X > e.X {
		e.setDirection(common.Right)
		return
	}
	e.setDirection(common.Left)
}

// Update runs one tick of the enemy.
func (e *Enemy) Update() {
	if e.IsDead {
		return
	}
	if e.HP.Empty() && e.state != EnemyDying {
		e.setState(EnemyDying)
	}
	e.checkForAction()
	e.updateState()
	e.Anim.Step(e.Direction)
	e.Hitbox.Update()
}

// Hurt costs one hit point unless the enemy is dying or was hurt recently.
func (e *Enemy) Hurt() {
	if e.IsDead || e.state == EnemyDying {
		return
	}
	if e.hurtCooldown.Active(e.env.Now()) {
		return
	}
	e.setState(EnemyHurt)
}

// Shift moves the enemy with the scrolling world.
func (e *Enemy) Shift(dx float64) {
	e.X += dx
	e.Hitbox.Update()
}

// inReach reports whether the player's hitbox is within horizontal attack reach.
func (e *Enemy) inReach(pl *Player) bool {
	ph, eh := pl.Hitbox, e.Hitbox
	return ph.Right() >= eh.X-attackReachBack && ph.X <= eh.Right()+attackReachFront
}

func (e *Enemy) fireProjectile() {
	x := e.X - bossProjectileOffsetLeft
	if e.Direction == common.Right {
		x = e.X + e.Width - bossProjectileOffsetRight
	}
	proj := NewProjectile(OriginBoss, e.cfg.Projectile, x, e.Y+bossProjectileOffsetY, e.Direction, e.env)
	e.Projectiles = append(e.Projectiles, proj)
	e.env.Sound().Play(e.cfg.Projectile.Sound)
}

// PruneProjectiles drops projectiles marked for removal.
func (e *Enemy) PruneProjectiles() {
	e.Projectiles = pruneProjectiles(e.Projectiles)
}

// Rect is the draw rectangle.
func (e *Enemy) Rect() common.Rect {
	return common.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Draw paints the enemy, its projectiles and, for the boss, a life bar.
func (e *Enemy) Draw(s Surface) {
	src := e.cfg.Sprite.Source(e.Anim.Column(e.Direction), e.Anim.Def.Row)
	s.DrawSprite(e.cfg.Sprite.Sheet(e.Direction), src, e.Rect())

	for _, proj := range e.Projectiles {
		proj.Draw(s)
	}

	if e.Kind == KindBoss {
		bar := common.Rect{X: e.X, Y: e.Y - bossLifeBarGap, Width: e.Width, Height: bossLifeBarHeight}
		s.FillRect(bar, colornames.Darkred)
		bar.Width *= e.HP.Fraction()
		s.FillRect(bar, colornames.Red)
	}
}

// DrawDebug outlines the hitboxes of the enemy and its projectiles.
func (e *Enemy) DrawDebug(s Surface) {
	s.StrokeRect(e.Hitbox.Rect(), colornames.Red)
	for _, proj := range e.Projectiles {
		s.StrokeRect(proj.Hitbox.Rect(), colornames.Orange)
	}
}

// PruneEnemies drops enemies marked dead.
func PruneEnemies(list []*Enemy) []*Enemy {
	kept := list[:0]
	for _, e := range list {
		if !e.IsDead {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}

package obj

import (
	"fmt"
	"log"

	"github.com/milk9111/reaperrun/common"
	"github.com/milk9111/reaperrun/component"
	"golang.org/x/image/colornames"
)

// Player is the character driven by keyboard input. Its X stays at the
// screen anchor; horizontal velocity is consumed by the world as scroll.
type Player struct {
	X, Y          float64
	Width, Height float64
	VelocityX     float64
	VelocityY     float64
	Direction     common.Direction

	HP          component.Counter
	Crystals    component.Counter
	Anim        component.SpriteAnimation
	Hitbox      *component.Hitbox
	Projectiles []*Projectile

	cfg   PlayerConfig
	env   Env
	state PlayerState

	hitCooldown   component.Cooldown
	slideCooldown component.Cooldown
	stompCooldown component.Cooldown

	gameOverSent bool
}

// NewPlayer creates a player standing idle at the configured position.
func NewPlayer(cfg PlayerConfig, env Env) *Player {
	p := &Player{
		X:             cfg.X,
		Y:             cfg.Y,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Direction:     common.Right,
		HP:            component.NewCounter(cfg.HP, cfg.HP),
		Crystals:      component.NewCounter(cfg.Crystals, 0),
		Anim:          component.NewSpriteAnimation(cfg.Sprite.MaxFrameCount, cfg.Sprite.FrameTicks),
		cfg:           cfg,
		env:           env,
		hitCooldown:   component.NewCooldown(cfg.HitCooldown),
		slideCooldown: component.NewCooldown(cfg.SlideCooldown),
		stompCooldown: component.NewCooldown(cfg.StompCooldown),
	}
	p.Hitbox = component.NewHitbox(p, cfg.Width, cfg.Height, cfg.Hitbox)
	p.setState(PlayerIdle)
	return p
}

func (p *Player) Position() (float64, float64) { return p.X, p.Y }

// State is the current state of the player state machine.
func (p *Player) State() PlayerState { return p.state }

// Config returns the tuning the player was built with.
func (p *Player) Config() PlayerConfig { return p.cfg }

func (p *Player) setState(s PlayerState) {
	prev := p.state
	p.state = s
	if p.env != nil && p.env.Debug() {
		log.Printf("player: %s -> %s", prev, s)
	}
	p.enterState()
}

func (p *Player) play(tag AnimTag) {
	p.Anim.Play(p.cfg.Animations[tag], p.Direction)
}

// setDirection turns the player and keeps the current animation frame.
func (p *Player) setDirection(dir common.Direction) {
	if dir == p.Direction {
		return
	}
	p.Direction = dir
	p.Anim.Mirror()
}

// IsOnGround reports whether the feet are at or below ground level.
func (p *Player) IsOnGround() bool {
	return p.Y >= p.env.GroundLevel()
}

// Update runs one tick: state machine, animation, gravity, hitbox.
func (p *Player) Update(in Input) {
	if p.HP.Empty() && p.state != PlayerDying {
		p.setState(PlayerDying)
	}

	p.handleInput(in)
	p.updateState()
	p.Anim.Step(p.Direction)
	p.applyGravity()
	p.Y += p.VelocityY
	p.Hitbox.Update()
}

func (p *Player) applyGravity() {
	if p.IsOnGround() {
		p.Y = p.env.GroundLevel()
		return
	}
	p.VelocityY += p.env.Gravity()
}

// Hurt costs one hit point unless the player is dying or was hit recently.
func (p *Player) Hurt() {
	if p.state == PlayerDying {
		return
	}
	if p.hitCooldown.Active(p.env.Now()) {
		return
	}
	p.setState(PlayerHurt)
}

// Bounce launches the player upward after stomping an enemy.
func (p *Player) Bounce() {
	if p.state == PlayerDying {
		return
	}
	p.VelocityY = p.cfg.JumpForce
	p.setState(PlayerAscending)
}

// HitOnCooldown reports whether the player is still invulnerable from a hit.
func (p *Player) HitOnCooldown() bool {
	return p.hitCooldown.Active(p.env.Now())
}

// StompOnCooldown reports whether a stomp landed recently.
func (p *Player) StompOnCooldown() bool {
	return p.stompCooldown.Active(p.env.Now())
}

// ArmStompCooldown starts the stomp cooldown.
func (p *Player) ArmStompCooldown() {
	p.stompCooldown.Arm(p.env.Now())
}

// SlideOnCooldown reports whether a slide finished recently.
func (p *Player) SlideOnCooldown() bool {
	return p.slideCooldown.Active(p.env.Now())
}

// AddCrystal is called when a crystal is picked up.
func (p *Player) AddCrystal() {
	p.Crystals.Inc()
}

func (p *Player) fireProjectile() {
	proj := NewProjectile(OriginPlayer, p.cfg.Projectile, p.X, p.Y, p.Direction, p.env)
	p.Projectiles = append(p.Projectiles, proj)
	p.env.Sound().Play(p.cfg.Projectile.Sound)
}

// PruneProjectiles drops projectiles marked for removal.
func (p *Player) PruneProjectiles() {
	p.Projectiles = pruneProjectiles(p.Projectiles)
}

// Rect is the draw rectangle.
func (p *Player) Rect() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Draw paints the player, its projectiles and the HUD.
func (p *Player) Draw(s Surface) {
	src := p.cfg.Sprite.Source(p.Anim.Column(p.Direction), p.Anim.Def.Row)
	s.DrawSprite(p.cfg.Sprite.Sheet(p.Direction), src, p.Rect())

	for _, proj := range p.Projectiles {
		proj.Draw(s)
	}

	s.DrawText(fmt.Sprintf("HP: %d", p.HP.Current), 20, 20)
	s.DrawText(fmt.Sprintf("Crystals: %d", p.Crystals.Current), 20, 40)
}

// DrawDebug outlines the hitboxes of the player and its projectiles.
func (p *Player) DrawDebug(s Surface) {
	s.StrokeRect(p.Hitbox.Rect(), colornames.Lime)
	for _, proj := range p.Projectiles {
		s.StrokeRect(proj.Hitbox.Rect(), colornames.Yellow)
	}
}

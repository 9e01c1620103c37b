package obj

import (
	"time"

	"github.com/milk9111/reaperrun/common"
	"github.com/milk9111/reaperrun/component"
)

// AnimTag names a row of a character sprite sheet.
type AnimTag string

const (
	AnimIdle        AnimTag = "idle"
	AnimWalking     AnimTag = "walking"
	AnimJumpStart   AnimTag = "jumpstart"
	AnimAscending   AnimTag = "ascending"
	AnimDescending  AnimTag = "descending"
	AnimSlashing    AnimTag = "slashing"
	AnimSlashingAir AnimTag = "slashing-air"
	AnimSliding     AnimTag = "sliding"
	AnimHurt        AnimTag = "hurt"
	AnimDying       AnimTag = "dying"
)

// SpriteConfig describes a sprite sheet pair (one per facing).
type SpriteConfig struct {
	SheetRight  string
	SheetLeft   string
	FrameWidth  float64
	FrameHeight float64

	// MaxFrameCount is the index of the last column on the sheet.
	MaxFrameCount int
	FrameTicks    int
}

// Sheet returns the sheet name for dir, falling back to the right-facing one.
func (s SpriteConfig) Sheet(dir common.Direction) string {
	if dir == common.Left && s.SheetLeft != "" {
		return s.SheetLeft
	}
	return s.SheetRight
}

// Source is the sheet rectangle of a frame.
func (s SpriteConfig) Source(col, row int) common.Rect {
	return common.Rect{
		X:      float64(col) * s.FrameWidth,
		Y:      float64(row) * s.FrameHeight,
		Width:  s.FrameWidth,
		Height: s.FrameHeight,
	}
}

// Animations maps tags to sheet rows.
type Animations map[AnimTag]component.AnimationDef

// PlayerConfig holds the tuning of the player character.
type PlayerConfig struct {
	X, Y          float64
	Width, Height float64
	HP            int
	Crystals      int
	Speed         float64
	JumpForce     float64
	DashSpeed     float64
	Hitbox        component.HitboxOffsets
	Sprite        SpriteConfig
	Animations    Animations

	HitCooldown   time.Duration
	SlideCooldown time.Duration
	StompCooldown time.Duration

	Projectile ProjectileConfig
}

// EnemyKind is the variant of an enemy. It is fixed at construction.
type EnemyKind int

const (
	KindZombie EnemyKind = iota
	KindZombieBrute
	KindBoss
)

func (k EnemyKind) String() string {
	switch k {
	case KindZombie:
		return "zombie"
	case KindZombieBrute:
		return "zombie-brute"
	case KindBoss:
		return "boss"
	}
	return "unknown"
}

// EnemyConfig holds the tuning of one enemy kind.
type EnemyConfig struct {
	Kind          EnemyKind
	Width, Height float64
	HP            int
	Speed         float64
	AggroRange    float64
	Hitbox        component.HitboxOffsets
	Sprite        SpriteConfig
	Animations    Animations

	AttackCooldown time.Duration
	HurtCooldown   time.Duration

	// Projectile is only used by the boss.
	Projectile ProjectileConfig
}

// ProjectileConfig holds the tuning of a projectile.
type ProjectileConfig struct {
	Width, Height float64
	Speed         float64
	Hitbox        component.HitboxOffsets
	Sprite        SpriteConfig
	Row           int
	// LoopAt is the last frame before the animation wraps to LoopTo+1.
	LoopAt int
	LoopTo int
	// Cycles is how many times a boss projectile replays before it expires.
	Cycles int
	Sound  string
}

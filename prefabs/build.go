package prefabs

import (
	"fmt"
	"sort"

	"github.com/milk9111/reaperrun/component"
	"github.com/milk9111/reaperrun/obj"
)

var enemyKinds = map[string]obj.EnemyKind{
	"zombie":       obj.KindZombie,
	"zombie-brute": obj.KindZombieBrute,
	"boss":         obj.KindBoss,
}

var playerAnimations = []obj.AnimTag{
	obj.AnimIdle, obj.AnimWalking, obj.AnimJumpStart, obj.AnimAscending, obj.AnimDescending,
	obj.AnimSlashing, obj.AnimSlashingAir, obj.AnimSliding, obj.AnimHurt, obj.AnimDying,
}

var enemyAnimations = []obj.AnimTag{
	obj.AnimIdle, obj.AnimWalking, obj.AnimSlashing, obj.AnimHurt, obj.AnimDying,
}

// ParseEnemyKind maps a prefab kind name onto an enemy kind.
func ParseEnemyKind(name string) (obj.EnemyKind, error) {
	kind, ok := enemyKinds[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, name)
	}
	return kind, nil
}

// ParsePlayback maps a prefab playback name onto a playback mode. Empty means once.
func ParsePlayback(name string) (component.Playback, error) {
	switch name {
	case "", "once":
		return component.PlayOnce, nil
	case "loop":
		return component.PlayLoop, nil
	case "hold":
		return component.PlayHold, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlayback, name)
}

// Validate checks the parts of the world file the game cannot run without.
func (s *WorldSpec) Validate() error {
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidWorld, s.Viewport.Width, s.Viewport.Height)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidWorld, s.TPS)
	}
	if s.Player.HP <= 0 {
		return fmt.Errorf("%w: player hp %d", ErrInvalidWorld, s.Player.HP)
	}
	if _, err := animations(s.Player.Animations, playerAnimations); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	for _, name := range sortedKeys(s.Enemies) {
		if _, err := ParseEnemyKind(name); err != nil {
			return err
		}
		if _, err := animations(s.Enemies[name].Animations, enemyAnimations); err != nil {
			return fmt.Errorf("enemy %s: %w", name, err)
		}
	}
	for i, spawn := range s.Spawns {
		if _, err := ParseEnemyKind(spawn.Kind); err != nil {
			return fmt.Errorf("spawn %d: %w", i, err)
		}
		if _, ok := s.Enemies[spawn.Kind]; !ok {
			return fmt.Errorf("spawn %d: %w: no prefab for %q", i, ErrInvalidWorld, spawn.Kind)
		}
	}
	for i, bg := range s.Backgrounds {
		if bg.Divider <= 0 {
			return fmt.Errorf("background %d: %w: divider %v", i, ErrInvalidWorld, bg.Divider)
		}
	}
	return nil
}

func animations(specs map[string]AnimationDefSpec, required []obj.AnimTag) (obj.Animations, error) {
	out := make(obj.Animations, len(specs))
	for name, spec := range specs {
		playback, err := ParsePlayback(spec.Playback)
		if err != nil {
			return nil, fmt.Errorf("animation %s: %w", name, err)
		}
		out[obj.AnimTag(name)] = component.AnimationDef{Row: spec.Row, FrameCount: spec.Frames, Playback: playback}
	}
	for _, tag := range required {
		if _, ok := out[tag]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingAnimation, tag)
		}
	}
	return out, nil
}

func (s SpriteSpec) config() obj.SpriteConfig {
	return obj.SpriteConfig{
		SheetRight:    s.Right,
		SheetLeft:     s.Left,
		FrameWidth:    s.FrameWidth,
		FrameHeight:   s.FrameHeight,
		MaxFrameCount: s.MaxFrame,
		FrameTicks:    s.FrameTicks,
	}
}

func (h HitboxSpec) offsets() component.HitboxOffsets {
	return component.HitboxOffsets{X: h.OffsetX, Y: h.OffsetY, Width: h.OffsetWidth, Height: h.OffsetHeight}
}

func (p ProjectileSpec) config() obj.ProjectileConfig {
	return obj.ProjectileConfig{
		Width:  p.Width,
		Height: p.Height,
		Speed:  p.Speed,
		Hitbox: p.Hitbox.offsets(),
		Sprite: p.Sprite.config(),
		Row:    p.Row,
		LoopAt: p.LoopAt,
		LoopTo: p.LoopTo,
		Cycles: p.Cycles,
		Sound:  p.Sound,
	}
}

// PlayerConfig builds the player tuning. The player starts on the ground.
func (s *WorldSpec) PlayerConfig() (obj.PlayerConfig, error) {
	p := s.Player
	anims, err := animations(p.Animations, playerAnimations)
	if err != nil {
		return obj.PlayerConfig{}, fmt.Errorf("player: %w", err)
	}
	return obj.PlayerConfig{
		X:             p.X,
		Y:             s.GroundLevel,
		Width:         p.Width,
		Height:        p.Height,
		HP:            p.HP,
		Crystals:      p.Crystals,
		Speed:         p.Speed,
		JumpForce:     p.JumpForce,
		DashSpeed:     p.DashSpeed,
		Hitbox:        p.Hitbox.offsets(),
		Sprite:        p.Sprite.config(),
		Animations:    anims,
		HitCooldown:   p.Cooldowns.Hit,
		SlideCooldown: p.Cooldowns.Slide,
		StompCooldown: p.Cooldowns.Stomp,
		Projectile:    p.Projectile.config(),
	}, nil
}

// EnemyConfig builds the tuning of the named enemy kind.
func (s *WorldSpec) EnemyConfig(name string) (obj.EnemyConfig, error) {
	kind, err := ParseEnemyKind(name)
	if err != nil {
		return obj.EnemyConfig{}, err
	}
	e, ok := s.Enemies[name]
	if !ok {
		return obj.EnemyConfig{}, fmt.Errorf("%w: no prefab for %q", ErrInvalidWorld, name)
	}
	anims, err := animations(e.Animations, enemyAnimations)
	if err != nil {
		return obj.EnemyConfig{}, fmt.Errorf("enemy %s: %w", name, err)
	}
	cfg := obj.EnemyConfig{
		Kind:           kind,
		Width:          e.Width,
		Height:         e.Height,
		HP:             e.HP,
		Speed:          e.Speed,
		AggroRange:     e.AggroRange,
		Hitbox:         e.Hitbox.offsets(),
		Sprite:         e.Sprite.config(),
		Animations:     anims,
		AttackCooldown: e.Cooldowns.Attack,
		HurtCooldown:   e.Cooldowns.Hurt,
	}
	if e.Projectile != nil {
		cfg.Projectile = e.Projectile.config()
	}
	return cfg, nil
}

// SpawnY is where an enemy stands: the given y, or feet level with the player.
func (s *WorldSpec) SpawnY(spawn SpawnSpec) float64 {
	if spawn.Y != nil {
		return *spawn.Y
	}
	return s.GroundLevel + s.Player.Height - s.Enemies[spawn.Kind].Height
}

// CrystalConfig builds the crystal tuning.
func (s *WorldSpec) CrystalConfig() obj.CrystalConfig {
	return obj.CrystalConfig{
		Width:  s.Crystals.Width,
		Height: s.Crystals.Height,
		Sprite: s.Crystals.Sprite.config(),
		Inset:  s.Crystals.Inset,
	}
}

// Images lists every sheet the world refers to.
func (s *WorldSpec) Images() []string {
	seen := map[string]bool{}
	add := func(names ...string) {
		for _, n := range names {
			if n != "" {
				seen[n] = true
			}
		}
	}
	add(s.Player.Sprite.Right, s.Player.Sprite.Left, s.Player.Projectile.Sprite.Right, s.Player.Projectile.Sprite.Left)
	for _, e := range s.Enemies {
		add(e.Sprite.Right, e.Sprite.Left)
		if e.Projectile != nil {
			add(e.Projectile.Sprite.Right, e.Projectile.Sprite.Left)
		}
	}
	add(s.Crystals.Sprite.Right, s.Crystals.Sprite.Left)
	for _, bg := range s.Backgrounds {
		add(bg.Image)
	}
	return sortedKeys(seen)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

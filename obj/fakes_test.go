package obj

import (
	"fmt"
	"image/color"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/milk9111/reaperrun/common"
	"github.com/milk9111/reaperrun/component"
)

const (
	testGround   = 350.0
	testGravity  = 1.0
	testViewport = 960.0
	testMaxFrame = 23
)

type fakeEnv struct {
	player  *Player
	enemies []*Enemy
	clock   *clock.Mock
	sound   *recordingSound
	life    *recordingLifecycle
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		clock: clock.NewMock(),
		sound: &recordingSound{},
		life:  &recordingLifecycle{},
	}
}

func (e *fakeEnv) Player() *Player        { return e.player }
func (e *fakeEnv) Enemies() []*Enemy      { return e.enemies }
func (e *fakeEnv) GroundLevel() float64   { return testGround }
func (e *fakeEnv) Gravity() float64       { return testGravity }
func (e *fakeEnv) ViewportWidth() float64 { return testViewport }
func (e *fakeEnv) Now() time.Time         { return e.clock.Now() }
func (e *fakeEnv) Sound() Sound           { return e.sound }
func (e *fakeEnv) Lifecycle() Lifecycle   { return e.life }
func (e *fakeEnv) Debug() bool            { return false }

type recordingSound struct {
	played []string
}

func (s *recordingSound) Play(name string) { s.played = append(s.played, name) }
func (s *recordingSound) Stop(string)      {}

type recordingLifecycle struct {
	gameOvers int
	wins      int
}

func (l *recordingLifecycle) OnGameOver() { l.gameOvers++ }
func (l *recordingLifecycle) OnWin()      { l.wins++ }

// keys is an Input that holds a fixed set of keys.
type keys map[Key]bool

func (k keys) Pressed(key Key) bool { return k[key] }
func (k keys) Idle() bool {
	for _, held := range k {
		if held {
			return false
		}
	}
	return true
}

func press(ks ...Key) keys {
	k := keys{}
	for _, key := range ks {
		k[key] = true
	}
	return k
}

type recordingSurface struct {
	ops []string
}

func (s *recordingSurface) DrawSprite(sheet string, src, dst common.Rect) {
	s.ops = append(s.ops, fmt.Sprintf("sprite %s col=%.0f", sheet, src.X))
}

func (s *recordingSurface) FillRect(r common.Rect, c color.Color) {
	s.ops = append(s.ops, fmt.Sprintf("fill w=%.0f", r.Width))
}

func (s *recordingSurface) StrokeRect(r common.Rect, c color.Color) {
	s.ops = append(s.ops, "stroke")
}

func (s *recordingSurface) DrawText(str string, x, y float64) {
	s.ops = append(s.ops, "text "+str)
}

func testSprite(name string) SpriteConfig {
	return SpriteConfig{
		SheetRight:    name + "-right",
		SheetLeft:     name + "-left",
		FrameWidth:    1,
		FrameHeight:   1,
		MaxFrameCount: testMaxFrame,
		FrameTicks:    1,
	}
}

func testPlayerConfig() PlayerConfig {
	return PlayerConfig{
		X:         200,
		Y:         testGround,
		Width:     100,
		Height:    100,
		HP:        10,
		Speed:     10,
		JumpForce: -20,
		DashSpeed: 20,
		Hitbox:    component.HitboxOffsets{X: -25, Y: -20, Width: -50, Height: -20},
		Sprite:    testSprite("player"),
		Animations: Animations{
			AnimDying:       {Row: 0, FrameCount: 14},
			AnimDescending:  {Row: 1, FrameCount: 5, Playback: component.PlayHold},
			AnimHurt:        {Row: 2, FrameCount: 11},
			AnimIdle:        {Row: 3, FrameCount: 17, Playback: component.PlayLoop},
			AnimAscending:   {Row: 4, FrameCount: 5, Playback: component.PlayHold},
			AnimJumpStart:   {Row: 5, FrameCount: 5},
			AnimWalking:     {Row: 6, FrameCount: 23, Playback: component.PlayLoop},
			AnimSlashing:    {Row: 9, FrameCount: 11},
			AnimSlashingAir: {Row: 10, FrameCount: 11},
			AnimSliding:     {Row: 11, FrameCount: 5},
		},
		HitCooldown:   time.Second,
		SlideCooldown: 2 * time.Second,
		StompCooldown: 300 * time.Millisecond,
		Projectile:    testPlayerProjectile(),
	}
}

func testPlayerProjectile() ProjectileConfig {
	return ProjectileConfig{
		Width:  150,
		Height: 100,
		Speed:  15,
		Hitbox: component.HitboxOffsets{X: -50, Y: -40, Width: -80, Height: -70},
		Sprite: testSprite("player-proj"),
		LoopAt: 15,
		LoopTo: 10,
		Sound:  SoundPlayerProjectile,
	}
}

func testBossProjectile() ProjectileConfig {
	return ProjectileConfig{
		Width:  80,
		Height: 100,
		Hitbox: component.HitboxOffsets{X: -15, Y: -20, Width: -40, Height: -20},
		Sprite: testSprite("boss-proj"),
		LoopAt: 51,
		LoopTo: -1,
		Cycles: 2,
		Sound:  SoundReaperFlame,
	}
}

func testEnemyConfig(kind EnemyKind) EnemyConfig {
	cfg := EnemyConfig{
		Kind:   kind,
		Width:  100,
		Height: 100,
		HP:     3,
		Speed:  2,
		Hitbox: component.HitboxOffsets{X: -25, Y: -20, Width: -50, Height: -20},
		Sprite: testSprite("zombie"),
		Animations: Animations{
			AnimDying:    {Row: 0, FrameCount: 14},
			AnimHurt:     {Row: 2, FrameCount: 11},
			AnimIdle:     {Row: 3, FrameCount: 17, Playback: component.PlayLoop},
			AnimWalking:  {Row: 6, FrameCount: 23, Playback: component.PlayLoop},
			AnimSlashing: {Row: 9, FrameCount: 11},
		},
		AttackCooldown: 2 * time.Second,
		HurtCooldown:   500 * time.Millisecond,
	}
	if kind == KindBoss {
		cfg.HP = 5
		cfg.Projectile = testBossProjectile()
	}
	return cfg
}

// newTestPlayer places a player in env.
func newTestPlayer(env *fakeEnv) *Player {
	p := NewPlayer(testPlayerConfig(), env)
	env.player = p
	return p
}

// tickUntil updates the player until cond holds or the tick budget runs out.
func tickUntil(p *Player, in Input, limit int, cond func() bool) int {
	for i := 1; i <= limit; i++ {
		p.Update(in)
		if cond() {
			return i
		}
	}
	return -1
}

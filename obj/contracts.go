package obj

import (
	"image/color"
	"time"

	"github.com/milk9111/reaperrun/common"
)

// Key is a normalized game key. Raw key codes are mapped onto these by the
// input implementation.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyJump
	KeyAttack
	KeySlide
)

var keyNames = [...]string{
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyJump:   "jump",
	KeyAttack: "attack",
	KeySlide:  "slide",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// AllKeys lists every normalized key.
var AllKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyJump, KeyAttack, KeySlide}

// Input is the pressed-key set for the current tick.
type Input interface {
	Pressed(k Key) bool
	// Idle is true when no key is held.
	Idle() bool
}

// Sound plays named sound events. Failures are the implementation's problem.
type Sound interface {
	Play(name string)
	Stop(name string)
}

// Lifecycle receives the end-of-session signals.
type Lifecycle interface {
	OnGameOver()
	OnWin()
}

// Surface is what entities draw to. A zero src rectangle in DrawSprite means
// the whole sheet.
type Surface interface {
	DrawSprite(sheet string, src, dst common.Rect)
	FillRect(r common.Rect, c color.Color)
	StrokeRect(r common.Rect, c color.Color)
	DrawText(s string, x, y float64)
}

// Env is the lookup-only view entities have of the world they live in.
type Env interface {
	Player() *Player
	Enemies() []*Enemy
	GroundLevel() float64
	Gravity() float64
	ViewportWidth() float64
	Now() time.Time
	Sound() Sound
	Lifecycle() Lifecycle
	Debug() bool
}

// Sound event names.
const (
	SoundBackgroundMusic  = "backgroundMusic"
	SoundPlayerProjectile = "playerProj"
	SoundPickup           = "pickup"
	SoundZombieAttack     = "zombieAttack"
	SoundReaperFlame      = "reaperFlame"
	SoundBoss             = "bossSound"
)

// NopSound discards every event.
type NopSound struct{}

func (NopSound) Play(string) {}
func (NopSound) Stop(string) {}

// NopLifecycle ignores end-of-session signals.
type NopLifecycle struct{}

func (NopLifecycle) OnGameOver() {}
func (NopLifecycle) OnWin()      {}

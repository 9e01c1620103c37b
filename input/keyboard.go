package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/reaperrun/obj"
)

// Bindings maps every game key to the physical keys that trigger it.
type Bindings map[obj.Key][]ebiten.Key

// DefaultBindings is WASD plus arrows, Space to jump, F to attack and
// Control to slide.
func DefaultBindings() Bindings {
	return Bindings{
		obj.KeyLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
		obj.KeyRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
		obj.KeyUp:     {ebiten.KeyW, ebiten.KeyArrowUp},
		obj.KeyDown:   {ebiten.KeyS, ebiten.KeyArrowDown},
		obj.KeyJump:   {ebiten.KeySpace},
		obj.KeyAttack: {ebiten.KeyF},
		obj.KeySlide:  {ebiten.KeyControl},
	}
}

// Keyboard samples the physical keyboard once per tick.
type Keyboard struct {
	Bindings Bindings

	state   Snapshot
	pressed func(ebiten.Key) bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		Bindings: DefaultBindings(),
		state:    Snapshot{},
		pressed:  ebiten.IsKeyPressed,
	}
}

// Update refreshes the pressed set. Call it once at the start of a tick.
func (k *Keyboard) Update() {
	for key, codes := range k.Bindings {
		down := false
		for _, c := range codes {
			if k.pressed(c) {
				down = true
				break
			}
		}
		k.state[key] = down
	}
}

func (k *Keyboard) Pressed(key obj.Key) bool { return k.state.Pressed(key) }
func (k *Keyboard) Idle() bool               { return k.state.Idle() }

// Snapshot copies the current pressed set.
func (k *Keyboard) Snapshot() Snapshot {
	out := make(Snapshot, len(k.state))
	for key, down := range k.state {
		if down {
			out[key] = true
		}
	}
	return out
}

// PausePressed reports a fresh Escape press.
func PausePressed() bool { return inpututil.IsKeyJustPressed(ebiten.KeyEscape) }

// MutePressed reports a fresh M press.
func MutePressed() bool { return inpututil.IsKeyJustPressed(ebiten.KeyM) }

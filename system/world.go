package system

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/milk9111/reaperrun/obj"
	"github.com/milk9111/reaperrun/prefabs"
	"golang.org/x/image/colornames"
)

// Options carries the collaborators a world is built with.
type Options struct {
	Clock     clock.Clock
	Sound     obj.Sound
	Lifecycle obj.Lifecycle
	Debug     bool
}

// World owns the player, enemies, crystals and background rows of a session
// and advances them in a fixed order every tick.
type World struct {
	Spec *prefabs.WorldSpec

	player      *obj.Player
	enemies     []*obj.Enemy
	crystals    []*obj.Crystal
	backgrounds []obj.BackgroundRow

	clock     clock.Clock
	sound     obj.Sound
	lifecycle obj.Lifecycle
	debug     bool
}

// NewWorld creates a world and spawns everything the world file places.
func NewWorld(spec *prefabs.WorldSpec, opts Options) (*World, error) {
	if spec == nil {
		return nil, fmt.Errorf("system: world spec is nil")
	}
	w := &World{
		Spec:      spec,
		clock:     opts.Clock,
		sound:     opts.Sound,
		lifecycle: opts.Lifecycle,
		debug:     opts.Debug,
	}
	if w.clock == nil {
		w.clock = clock.New()
	}
	if w.sound == nil {
		w.sound = obj.NopSound{}
	}
	if w.lifecycle == nil {
		w.lifecycle = obj.NopLifecycle{}
	}
	if err := w.Reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset rebuilds the session from the world file.
func (w *World) Reset() error {
	pc, err := w.Spec.PlayerConfig()
	if err != nil {
		return fmt.Errorf("system: reset: %w", err)
	}
	w.player = obj.NewPlayer(pc, w)

	enemies, err := w.spawnEnemies()
	if err != nil {
		return fmt.Errorf("system: reset: %w", err)
	}
	w.enemies = enemies
	w.crystals = w.spawnCrystals()
	w.backgrounds = w.spawnBackgrounds()

	w.sound.Stop(obj.SoundBackgroundMusic)
	w.sound.Play(obj.SoundBackgroundMusic)
	return nil
}

func (w *World) Player() *obj.Player              { return w.player }
func (w *World) Enemies() []*obj.Enemy            { return w.enemies }
func (w *World) Crystals() []*obj.Crystal         { return w.crystals }
func (w *World) Backgrounds() []obj.BackgroundRow { return w.backgrounds }
func (w *World) GroundLevel() float64             { return w.Spec.GroundLevel }
func (w *World) Gravity() float64                 { return w.Spec.Gravity }
func (w *World) ViewportWidth() float64           { return float64(w.Spec.Viewport.Width) }
func (w *World) Now() time.Time                   { return w.clock.Now() }
func (w *World) Sound() obj.Sound                 { return w.sound }
func (w *World) Lifecycle() obj.Lifecycle         { return w.lifecycle }
func (w *World) Debug() bool                      { return w.debug }

// Update advances the session by one tick.
func (w *World) Update(in obj.Input) {
	w.player.Update(in)
	w.scroll(-w.player.VelocityX * w.Spec.ScrollFactor)
	w.updateBackgrounds()

	for _, e := range w.enemies {
		e.Update()
	}
	w.updateProjectiles()

	ResolveCombat(w.player, w.enemies, w.Spec.SideTolerance)

	w.sweepProjectiles()
	w.crystals = obj.PruneCrystals(w.crystals)
	for _, c := range w.crystals {
		c.Update()
	}
	w.enemies = obj.PruneEnemies(w.enemies)
}

// scroll moves every world-relative object; the player stays at its anchor.
func (w *World) scroll(dx float64) {
	if dx == 0 {
		return
	}
	for _, e := range w.enemies {
		e.Shift(dx)
		for _, p := range e.Projectiles {
			p.Shift(dx)
		}
	}
	for _, p := range w.player.Projectiles {
		p.Shift(dx)
	}
	for _, c := range w.crystals {
		c.Shift(dx)
	}
}

func (w *World) updateBackgrounds() {
	width := w.ViewportWidth()
	for i, row := range w.backgrounds {
		row.Scroll(w.player.VelocityX)
		w.backgrounds[i] = row.Recycle(width)
	}
}

func (w *World) updateProjectiles() {
	for _, e := range w.enemies {
		for _, p := range e.Projectiles {
			p.Update()
		}
	}
	for _, p := range w.player.Projectiles {
		p.Update()
	}
}

func (w *World) sweepProjectiles() {
	w.player.PruneProjectiles()
	for _, e := range w.enemies {
		e.PruneProjectiles()
	}
}

// Draw paints the session back to front. It does not change any state.
func (w *World) Draw(s obj.Surface) {
	for _, row := range w.backgrounds {
		row.Draw(s)
	}
	for _, e := range w.enemies {
		e.Draw(s)
	}
	w.player.Draw(s)
	for _, c := range w.crystals {
		c.Draw(s)
	}

	if !w.debug {
		return
	}
	for _, e := range w.enemies {
		e.DrawDebug(s)
	}
	w.player.DrawDebug(s)
	for _, c := range w.crystals {
		s.StrokeRect(c.Rect(), colornames.Cyan)
	}
}

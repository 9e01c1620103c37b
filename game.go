package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/reaperrun/assets"
	"github.com/milk9111/reaperrun/audio"
	"github.com/milk9111/reaperrun/input"
	"github.com/milk9111/reaperrun/prefabs"
	"github.com/milk9111/reaperrun/render"
	"github.com/milk9111/reaperrun/system"
)

type sessionState int

const (
	sessionPlaying sessionState = iota
	sessionLost
	sessionWon
)

type Game struct {
	frames int
	debug  bool

	spec   *prefabs.WorldSpec
	world  *system.World
	keys   *input.Keyboard
	sound  *audio.Manager
	cache  *assets.Cache
	screen *render.Screen

	watcher      *prefabs.Watcher
	settingsPath string

	paused  bool
	state   sessionState
	pauseUI *ebitenui.UI
	endUI   *ebitenui.UI
}

type GameOptions struct {
	Debug        bool
	Cache        *assets.Cache
	Sound        *audio.Manager
	Watcher      *prefabs.Watcher
	SettingsPath string
}

func NewGame(spec *prefabs.WorldSpec, opts GameOptions) (*Game, error) {
	g := &Game{
		debug:        opts.Debug,
		spec:         spec,
		keys:         input.NewKeyboard(),
		sound:        opts.Sound,
		cache:        opts.Cache,
		watcher:      opts.Watcher,
		settingsPath: opts.SettingsPath,
	}
	g.screen = render.NewScreen(g.cache, hudColor(spec))
	g.pauseUI = NewPauseUI(g)

	world, err := system.NewWorld(spec, g.worldOptions())
	if err != nil {
		return nil, err
	}
	g.world = world
	return g, nil
}

func (g *Game) worldOptions() system.Options {
	return system.Options{
		Sound:     g.sound,
		Lifecycle: g,
		Debug:     g.debug,
	}
}

func hudColor(spec *prefabs.WorldSpec) color.Color {
	if spec.HUDColor == nil {
		return nil
	}
	return spec.HUDColor.Color
}

// OnGameOver is called by the world once the player's dying animation ends.
func (g *Game) OnGameOver() {
	g.sound.StopAll()
	g.state = sessionLost
	g.endUI = NewEndUI(g, "Game Over")
}

// OnWin is called by the world once the boss is dead.
func (g *Game) OnWin() {
	g.sound.StopAll()
	g.state = sessionWon
	g.endUI = NewEndUI(g, "You Won!")
}

// Restart throws the current session away and starts a new one.
func (g *Game) Restart() {
	g.paused = false
	g.state = sessionPlaying
	g.endUI = nil
	if err := g.world.Reset(); err != nil {
		log.Printf("restart: %v", err)
	}
}

func (g *Game) toggleMute() {
	muted := g.sound.ToggleMute()
	if g.settingsPath == "" {
		return
	}
	if err := audio.SaveSettings(g.settingsPath, audio.Settings{Muted: muted}); err != nil {
		log.Printf("save settings: %v", err)
	}
}

// drainWatcher reloads the world file after it changes on disk and starts a
// fresh session with it. A broken file keeps the current session running.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", name)
			changed = true
			continue
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
			continue
		default:
		}
		break
	}
	if changed {
		g.reload()
	}
}

func (g *Game) reload() {
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	g.sound.StopAll()
	g.sound.SetSounds(spec.Sounds)
	g.cache.Forget()

	world, err := system.NewWorld(spec, g.worldOptions())
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	g.spec = spec
	g.world = world
	g.screen.TextColor = hudColor(spec)
	if g.screen.TextColor == nil {
		g.screen.TextColor = color.White
	}
	g.paused = false
	g.state = sessionPlaying
	g.endUI = nil
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	if input.MutePressed() {
		g.toggleMute()
	}

	if g.state != sessionPlaying {
		if g.endUI != nil {
			g.endUI.Update()
		}
		return nil
	}

	if input.PausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.keys.Update()
	g.world.Update(g.keys)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.world.Draw(g.screen.Target(screen))

	if g.debug {
		p := g.world.Player()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"Frames: %d    FPS: %.2f\nstate: %s  vx: %.1f  vy: %.1f\nenemies: %d  crystals: %d\nkeys: %s",
			g.frames, ebiten.ActualFPS(),
			p.State(), p.VelocityX, p.VelocityY,
			len(g.world.Enemies()), len(g.world.Crystals()),
			g.keys.Snapshot(),
		), 0, 60)
	}

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
	if g.endUI != nil {
		g.endUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Viewport.Width, g.spec.Viewport.Height
}

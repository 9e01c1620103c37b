package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/reaperrun/assets"
	"github.com/milk9111/reaperrun/audio"
	"github.com/milk9111/reaperrun/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw hitboxes and log state transitions")
	watch := flag.Bool("watch", false, "reload prefabs/world.yaml when it changes")
	mute := flag.Bool("mute", false, "start muted")
	assetsDir := flag.String("assets", "", "load sprites and sounds from this directory instead of the embedded copy")
	flag.Parse()

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}

	settingsPath, err := audio.SettingsPath()
	if err != nil {
		log.Printf("settings: %v", err)
	}
	settings, err := audio.LoadSettings(settingsPath)
	if err != nil {
		log.Printf("settings: %v", err)
	}

	cache := assets.NewCache(assets.FS(*assetsDir))
	if missing := cache.Preload(spec.Images()); len(missing) > 0 {
		log.Printf("assets: %d sheets missing, drawing placeholders", len(missing))
	}
	sound := audio.NewManager(ebaudio.NewContext(audio.SampleRate), cache.ReadFile, spec.Sounds, settings.Muted || *mute)

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	game, err := NewGame(spec, GameOptions{
		Debug:        *debug,
		Cache:        cache,
		Sound:        sound,
		Watcher:      watcher,
		SettingsPath: settingsPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetTPS(spec.TPS)
	ebiten.SetWindowSize(spec.Viewport.Width, spec.Viewport.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(spec.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/reaperrun/assets"
	"github.com/milk9111/reaperrun/common"
	"github.com/milk9111/reaperrun/obj"
	"github.com/milk9111/reaperrun/prefabs"
	"github.com/milk9111/reaperrun/render"
)

const (
	windowSize = 512
	drawSize   = 384
)

type previewGame struct {
	preview *preview
	screen  *render.Screen
	paused  bool
}

func (g *previewGame) Update() error {
	p := g.preview
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		p.face(common.Left)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		p.face(common.Right)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		p.cycle(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		p.cycle(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		p.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	}
	if g.paused && !inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		return nil
	}
	p.step()
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	p := g.preview
	off := float64(windowSize-drawSize) / 2
	g.screen.Target(screen).DrawSprite(p.sprite.Sheet(p.dir), p.source(), common.Rect{X: off, Y: off, Width: drawSize, Height: drawSize})
	ebitenutil.DebugPrint(screen, p.status()+"\narrows: face/tag  R: restart  space: pause  .: step")
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize, windowSize
}

func main() {
	name := flag.String("c", "player", "character: player or an enemy kind")
	tag := flag.String("tag", string(obj.AnimIdle), "animation tag to start with")
	left := flag.Bool("left", false, "start facing left")
	assetsDir := flag.String("assets", "", "load sheets from this directory instead of the embedded copy")
	flag.Parse()

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}
	p, err := loadPreview(spec, *name)
	if err != nil {
		log.Fatal(err)
	}
	if *left {
		p.face(common.Left)
	}
	if !p.selectTag(obj.AnimTag(*tag)) {
		log.Printf("%s has no %q animation, showing %s", *name, *tag, p.tag())
	}

	cache := assets.NewCache(assets.FS(*assetsDir))
	g := &previewGame{preview: p, screen: render.NewScreen(cache, nil)}

	ebiten.SetTPS(spec.TPS)
	ebiten.SetWindowSize(windowSize, windowSize)
	ebiten.SetWindowTitle("spsa: " + *name)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/reaperrun/assets"
	"github.com/milk9111/reaperrun/common"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Placeholder is drawn in place of sheets that failed to load.
var Placeholder color.Color = colornames.Magenta

// Screen draws world objects onto an ebiten image. Point it at the frame's
// screen with Target before drawing.
type Screen struct {
	cache *assets.Cache
	face  ebtext.Face
	dst   *ebiten.Image

	// TextColor is used for DrawText.
	TextColor color.Color
}

func NewScreen(cache *assets.Cache, textColor color.Color) *Screen {
	if textColor == nil {
		textColor = color.White
	}
	return &Screen{
		cache:     cache,
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
		TextColor: textColor,
	}
}

// Target sets the image the next draw calls go to.
func (s *Screen) Target(dst *ebiten.Image) *Screen {
	s.dst = dst
	return s
}

// DrawSprite copies src of sheet scaled into dst. A zero src means the whole
// sheet.
func (s *Screen) DrawSprite(sheet string, src, dst common.Rect) {
	img, ok := s.cache.Image(sheet)
	if !ok || img == nil {
		s.FillRect(dst, Placeholder)
		return
	}
	if !isZero(src) {
		sub, ok := img.SubImage(rectangle(src)).(*ebiten.Image)
		if ok {
			img = sub
		}
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	sx, sy := scale(b, dst)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

func (s *Screen) FillRect(r common.Rect, c color.Color) {
	vector.FillRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (s *Screen) StrokeRect(r common.Rect, c color.Color) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1.0, c, false)
}

func (s *Screen) DrawText(str string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.TextColor)
	ebtext.Draw(s.dst, str, s.face, op)
}

func isZero(r common.Rect) bool {
	return r.Width == 0 && r.Height == 0
}

// rectangle rounds a sheet rect outwards to whole pixels.
func rectangle(r common.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)),
		int(math.Ceil(r.Y+r.Height)),
	)
}

func scale(src image.Rectangle, dst common.Rect) (float64, float64) {
	return dst.Width / float64(src.Dx()), dst.Height / float64(src.Dy())
}

package obj

import "github.com/milk9111/reaperrun/common"

// BackgroundTilesPerRow is the number of tiles that make up one parallax row.
const BackgroundTilesPerRow = 3

// Background is one viewport-sized tile of a parallax layer.
type Background struct {
	X, Y          float64
	Width, Height float64
	Sheet         string
	Divider       float64
}

// BackgroundRow is a ring of tiles of the same layer, ordered left to right.
type BackgroundRow []*Background

// NewBackgroundRow lays out the tiles of a layer side by side starting at 0.
func NewBackgroundRow(sheet string, divider, width, height float64) BackgroundRow {
	if divider == 0 {
		divider = 1
	}
	row := make(BackgroundRow, BackgroundTilesPerRow)
	for i := range row {
		row[i] = &Background{
			X:       float64(i) * width,
			Width:   width,
			Height:  height,
			Sheet:   sheet,
			Divider: divider,
		}
	}
	return row
}

// Scroll moves every tile by the parallax share of the player velocity.
func (r BackgroundRow) Scroll(velocityX float64) {
	for _, b := range r {
		b.X -= velocityX / b.Divider
	}
}

// Recycle moves the tile that left the viewport to the other end of the row
// so the row keeps covering the screen.
func (r BackgroundRow) Recycle(viewportWidth float64) BackgroundRow {
	if len(r) < 2 {
		return r
	}
	if mid := r[1]; mid.X+mid.Width < 0 {
		head, tail := r[0], r[len(r)-1]
		head.X = tail.X + tail.Width
		r = append(r[1:], head)
	}
	if mid := r[1]; mid.X > viewportWidth {
		head, tail := r[0], r[len(r)-1]
		tail.X = head.X - head.Width
		r = append(BackgroundRow{tail}, r[:len(r)-1]...)
	}
	return r
}

func (r BackgroundRow) Draw(s Surface) {
	for _, b := range r {
		s.DrawSprite(b.Sheet, common.Rect{}, common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height})
	}
}

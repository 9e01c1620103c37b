package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
)

// NewEndUI builds the game over / victory screen.
func NewEndUI(g *Game, title string) *ebitenui.UI {
	m := newMenu(title, g.spec.Viewport.Width, g.spec.Viewport.Height)
	if p := g.world.Player(); p != nil {
		m.label(fmt.Sprintf("Crystals: %d", p.Crystals.Current))
	}
	m.button("Play Again", g.Restart)
	return m.ui()
}

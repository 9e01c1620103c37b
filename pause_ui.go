package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	menuTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuPanelColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	menuButtonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	menuButtonDown = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

// menu is a centered panel with a title and a column of buttons.
type menu struct {
	face  ebtext.Face
	panel *widget.Container
}

func newMenu(title string, width, height int) *menu {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(menuPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, menuTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	return &menu{face: face, panel: panel}
}

func (m *menu) label(s string) {
	m.panel.AddChild(widget.NewText(
		widget.TextOpts.Text(s, &m.face, menuTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
}

func (m *menu) button(s string, clicked func()) {
	m.panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(menuButtonIdle),
			Pressed: imageui.NewNineSliceColor(menuButtonDown),
		}),
		widget.ButtonOpts.Text(s, &m.face, &widget.ButtonTextColor{Idle: menuTextColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			clicked()
		}),
	))
}

func (m *menu) ui() *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(m.panel)
	return &ebitenui.UI{Container: root}
}

// NewPauseUI builds the Escape menu.
func NewPauseUI(g *Game) *ebitenui.UI {
	m := newMenu("Paused", g.spec.Viewport.Width, g.spec.Viewport.Height)
	m.label("A/D move  Space jump  F fireball  Ctrl slide  M mute")
	m.button("Resume", func() { g.paused = false })
	m.button("Restart", g.Restart)
	return m.ui()
}

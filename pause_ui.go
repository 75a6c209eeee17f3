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
	textColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor = &widget.ButtonTextColor{Idle: textColor}
)

// Overlay is a centred panel with a title, a detail line and one button.
// The menu, pause and end screens are all built from it.
type Overlay struct {
	UI     *ebitenui.UI
	detail *widget.Text
}

// SetDetail replaces the line under the title.
func (o *Overlay) SetDetail(s string) {
	if o == nil || o.detail == nil {
		return
	}
	o.detail.Label = s
}

func newOverlay(title, button string, onClick func()) *Overlay {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	centred := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	titleText := widget.NewText(
		widget.TextOpts.Text(title, &face, textColor),
		widget.TextOpts.WidgetOpts(centred),
	)
	detailText := widget.NewText(
		widget.TextOpts.Text("", &face, textColor),
		widget.TextOpts.WidgetOpts(centred),
	)
	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(button, &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centred),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(titleText)
	panel.AddChild(detailText)
	panel.AddChild(btn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &Overlay{UI: &ebitenui.UI{Container: root}, detail: detailText}
}

// NewMenuUI is shown in the main menu.
func NewMenuUI(g *Game) *Overlay {
	o := newOverlay("Exploding Skulls", "Start", g.start)
	o.SetDetail("WASD move, Q/E turn, Space fire, Esc pause")
	return o
}

// NewPauseUI is shown while a game is paused.
func NewPauseUI(g *Game) *Overlay {
	return newOverlay("Paused", "Resume", g.session.TogglePause)
}

// NewEndUI is shown after the player's death with the final score.
func NewEndUI(g *Game) *Overlay {
	return newOverlay("Game Over", "Play again", g.start)
}

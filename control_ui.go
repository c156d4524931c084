package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// controlUI is the viewer's side panel. Labels are refreshed from the game
// state every frame.
type controlUI struct {
	ui    *ebitenui.UI
	title *widget.Text
	speed *widget.Text
	pause *widget.Button
}

func newControlUI(g *Game) *controlUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	c := &controlUI{}
	c.title = widget.NewText(widget.TextOpts.Text("", &face, white))
	c.speed = widget.NewText(widget.TextOpts.Text("", &face, white))

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	c.pause = button("Pause", g.togglePause)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(c.title)
	panel.AddChild(button("Restart (R)", g.restart))
	panel.AddChild(button("Next tween (N)", g.nextTween))
	panel.AddChild(c.pause)
	panel.AddChild(c.speed)
	panel.AddChild(button("Slower", func() { g.setSpeed(g.tweens.Speed / 2) }))
	panel.AddChild(button("Faster", func() { g.setSpeed(g.tweens.Speed * 2) }))
	panel.AddChild(button("Copy state (C)", g.copySnapshot))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	c.ui = &ebitenui.UI{Container: root}
	return c
}

func (c *controlUI) refresh(g *Game) {
	c.title.Label = g.entityName + " / " + g.tweenName
	c.speed.Label = "speed " + formatSpeed(g.tweens.Speed)
	if t := c.pause.Text(); t != nil {
		if g.paused {
			t.Label = "Resume (Space)"
		} else {
			t.Label = "Pause (Space)"
		}
	}
}

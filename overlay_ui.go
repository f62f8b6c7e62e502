package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/carpark/prefabs"
	"golang.org/x/image/font/basicfont"
)

var (
	defaultButtonColor = color.NRGBA{R: 0xff, G: 0xc8, B: 0x41, A: 0xff}
	defaultButtonText  = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
)

// NewPlayNowUI builds the end-scene call to action: one button centred on the
// screen, pushed down by OffsetY. buttonImg may be nil.
func NewPlayNowUI(spec prefabs.ButtonSpec, buttonImg *ebiten.Image, onClick func()) *ebitenui.UI {
	fill := spec.Color.Or(defaultButtonColor)
	pressedImg := imageui.NewNineSliceColor(fill)
	idleImg := pressedImg
	if buttonImg != nil {
		b := buttonImg.Bounds()
		idleImg = imageui.NewNineSliceSimple(buttonImg, b.Dx()/3, b.Dx()/3)
	}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: spec.TextColor.Or(defaultButtonText)}

	playBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idleImg, Pressed: pressedImg}),
		widget.ButtonOpts.Text(spec.Label, &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(spec.Width, spec.Height),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)

	// Top padding of twice the offset moves the button centre down by the
	// offset while the column stays centred.
	top := 0
	bottom := 0
	if spec.OffsetY > 0 {
		top = spec.OffsetY * 2
	} else {
		bottom = -spec.OffsetY * 2
	}
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: top, Bottom: bottom}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	column.AddChild(playBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(column)

	return &ebitenui.UI{Container: root}
}

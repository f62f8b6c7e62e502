package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
)

type RenderSystem struct {
	Background color.Color
}

func NewRenderSystem(background color.Color) *RenderSystem {
	return &RenderSystem{Background: background}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if r.Background != nil {
		screen.Fill(r.Background)
	}

	entities := drawOrder(w)
	for _, e := range entities {
		alpha := Alpha(w, e)
		if alpha <= 0 {
			continue
		}

		if tr, ok := ecs.Get(w, e, component.TrailComponent.Kind()); ok {
			drawTrail(screen, tr, alpha)
			continue
		}

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil || s.Hidden {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.Filter = ebiten.FilterLinear

		screen.DrawImage(s.Image, op)
	}
}

// drawOrder returns every drawable entity sorted by render layer, then id.
func drawOrder(w *ecs.World) []ecs.Entity {
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	entities = append(entities, w.Query(component.TrailComponent.Kind())...)

	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(entities[i]), layerOf(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}

func drawTrail(screen *ebiten.Image, tr *component.Trail, alpha float64) {
	if !tr.Visible || len(tr.Points) == 0 {
		return
	}

	clr := tr.Color
	if clr == nil {
		clr = color.White
	}
	clr = scaleAlpha(clr, alpha)

	width := tr.Width
	if width <= 0 {
		width = 1
	}
	radius := width / 2

	for i := 1; i < len(tr.Points); i++ {
		a, b := tr.Points[i-1], tr.Points[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, tr.AntiAlias)
	}
	// round joints and caps
	for _, p := range tr.Points {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, clr, tr.AntiAlias)
	}
}

// scaleAlpha multiplies a colour by alpha. RGBA values are premultiplied, so
// every channel scales.
func scaleAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}

package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tweens/common"
	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const baseFontSize = 13

// RenderSystem draws every entity with a Transform: its panel, then its
// sprite, then its text, all multiplied by the entity's Group alpha.
type RenderSystem struct {
	pixel *ebiten.Image
	face  *text.GoXFace
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}

	entities := ecs.Query(w, component.TransformComponent.Kind())
	sortByLayer(w, entities)

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		alpha := 1.0
		if g, ok := ecs.Get(w, e, component.GroupComponent.Kind()); ok {
			alpha = common.Clamp01(g.Alpha)
		}
		if alpha == 0 {
			continue
		}

		if p, ok := ecs.Get(w, e, component.PanelComponent.Kind()); ok {
			r.drawPanel(screen, t, p, alpha)
		}
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			r.drawSprite(screen, t, s, alpha)
		}
		if txt, ok := ecs.Get(w, e, component.TextComponent.Kind()); ok && txt.Value != "" {
			r.drawText(screen, t, txt, alpha)
		}
	}
}

func sortByLayer(w *ecs.World, entities []ecs.Entity) {
	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}

// place applies the entity transform after the local origin offset.
func place(m *ebiten.GeoM, t *component.Transform, originX, originY float64) {
	m.Translate(-originX, -originY)
	m.Scale(t.Scale.X, t.Scale.Y)
	m.Rotate(t.Rotation.Euler().Z * math.Pi / 180)
	m.Translate(t.Position.X, t.Position.Y)
}

func (r *RenderSystem) drawPanel(screen *ebiten.Image, t *component.Transform, p *component.Panel, alpha float64) {
	if p.Width <= 0 || p.Height <= 0 {
		return
	}

	track := &ebiten.DrawImageOptions{}
	track.GeoM.Scale(p.Width, p.Height)
	place(&track.GeoM, t, 0, 0)
	track.ColorScale.ScaleWithColor(p.Color)
	track.ColorScale.ScaleAlpha(float32(alpha * 0.25))
	screen.DrawImage(r.pixel, track)

	fill := common.Clamp01(p.Fill)
	if fill == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Width*fill, p.Height)
	place(&op.GeoM, t, 0, 0)
	op.ColorScale.ScaleWithColor(p.Color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(r.pixel, op)
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, t *component.Transform, s *component.Sprite, alpha float64) {
	img := s.Image
	if img == nil {
		img = r.pixel
	}
	b := img.Bounds()
	width, height := s.Width, s.Height
	if width == 0 {
		width = float64(b.Dx())
	}
	if height == 0 {
		height = float64(b.Dy())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(b.Dx()), height/float64(b.Dy()))
	place(&op.GeoM, t, s.OriginX, s.OriginY)
	op.ColorScale.ScaleWithColor(s.Color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawText(screen *ebiten.Image, t *component.Transform, txt *component.Text, alpha float64) {
	size := txt.Size
	if size <= 0 {
		return
	}
	s := float64(size) / baseFontSize

	op := &text.DrawOptions{}
	op.GeoM.Scale(s, s)
	place(&op.GeoM, t, 0, float64(size)+4)
	op.ColorScale.ScaleWithColor(txt.Color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, txt.Value, r.face, op)
}

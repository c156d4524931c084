package animate

import (
	"fmt"
	"strings"

	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/component"
	"github.com/milk9111/tweens/tween"
)

// Capability is one way of reaching a property on an entity.
type Capability[T any] struct {
	Name  string
	Match func(w *ecs.World, e ecs.Entity) bool
	Build func(a *Animation) (*tween.Builder[T], error)
}

// Resolve builds the property through the first matching capability.
func Resolve[T any](a *Animation, property string, caps []Capability[T]) (*tween.Builder[T], error) {
	names := make([]string, 0, len(caps))
	for _, c := range caps {
		if c.Match(a.w, a.e) {
			return c.Build(a)
		}
		names = append(names, c.Name)
	}
	return nil, fmt.Errorf("animate: %s on %s needs one of %s: %w", property, a.e, strings.Join(names, ", "), ErrMissingCapability)
}

func has[C any](kind component.ComponentKind[C]) func(*ecs.World, ecs.Entity) bool {
	return func(w *ecs.World, e ecs.Entity) bool { return ecs.Has(w, e, kind) }
}

func colorOf[C any](name string, kind component.ComponentKind[C], field func(*C) *tween.Color) Capability[tween.Color] {
	return Capability[tween.Color]{
		Name:  name,
		Match: has(kind),
		Build: func(a *Animation) (*tween.Builder[tween.Color], error) {
			return Component(a, kind, tween.ColorOps,
				func(c *C) tween.Color { return *field(c) },
				func(c *C, v tween.Color) { *field(c) = v })
		},
	}
}

func alphaOf(c Capability[tween.Color]) Capability[float64] {
	return Capability[float64]{
		Name:  c.Name,
		Match: c.Match,
		Build: func(a *Animation) (*tween.Builder[float64], error) {
			b, err := c.Build(a)
			if err != nil {
				return nil, err
			}
			return tween.ColorA(b), nil
		},
	}
}

var (
	panelColor  = colorOf("panel", component.PanelComponent.Kind(), func(p *component.Panel) *tween.Color { return &p.Color })
	textColor   = colorOf("text", component.TextComponent.Kind(), func(t *component.Text) *tween.Color { return &t.Color })
	spriteColor = colorOf("sprite", component.SpriteComponent.Kind(), func(s *component.Sprite) *tween.Color { return &s.Color })
)

var ColorCapabilities = []Capability[tween.Color]{panelColor, textColor, spriteColor}

var AlphaCapabilities = []Capability[float64]{
	alphaOf(panelColor),
	alphaOf(textColor),
	alphaOf(spriteColor),
	{
		Name:  "group",
		Match: has(component.GroupComponent.Kind()),
		Build: (*Animation).GroupAlpha,
	},
}

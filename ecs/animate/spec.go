package animate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/milk9111/tweens/easing"
	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/prefabs"
	"github.com/milk9111/tweens/tween"
)

type propertyFn func(a *Animation, ch prefabs.ChannelSpec, ease easing.Easing) error

var properties = map[string]propertyFn{
	"position":    vec3Property((*Animation).Position),
	"position.x":  channel(part((*Animation).Position, tween.Vec3X), toFloat),
	"position.y":  channel(part((*Animation).Position, tween.Vec3Y), toFloat),
	"position.z":  channel(part((*Animation).Position, tween.Vec3Z), toFloat),
	"scale":       vec3Property((*Animation).Scale),
	"scale.x":     channel(part((*Animation).Scale, tween.Vec3X), toFloat),
	"scale.y":     channel(part((*Animation).Scale, tween.Vec3Y), toFloat),
	"scale.z":     channel(part((*Animation).Scale, tween.Vec3Z), toFloat),
	"rotation":    channel((*Animation).EulerAngles, toVec3),
	"rotation.x":  channel(part((*Animation).EulerAngles, tween.Vec3X), toFloat),
	"rotation.y":  channel(part((*Animation).EulerAngles, tween.Vec3Y), toFloat),
	"rotation.z":  channel(part((*Animation).EulerAngles, tween.Vec3Z), toFloat),
	"color":       channel((*Animation).Color, toColor),
	"color.r":     channel(part((*Animation).Color, tween.ColorR), toFloat),
	"color.g":     channel(part((*Animation).Color, tween.ColorG), toFloat),
	"color.b":     channel(part((*Animation).Color, tween.ColorB), toFloat),
	"color.a":     channel(part((*Animation).Color, tween.ColorA), toFloat),
	"alpha":       channel((*Animation).Alpha, toFloat),
	"group.alpha": channel((*Animation).GroupAlpha, toFloat),
	"volume":      channel((*Animation).Volume, toFloat),
	"font_size":   channel((*Animation).FontSize, toInt),
	"fill":        channel((*Animation).FillAmount, toFloat),
}

// Properties lists the property names accepted in tween specs.
func Properties() []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load builds the named tween spec for e.
func Load(w *ecs.World, e ecs.Entity, name string) (*Animation, error) {
	spec, err := prefabs.LoadTweenSpec(prefabs.TweenPath(name))
	if err != nil {
		return nil, err
	}
	return Build(w, e, spec)
}

// Build turns a tween spec into an animation on e. Capabilities are resolved
// here, so a spec that names a property the entity cannot provide fails
// before anything plays.
func Build(w *ecs.World, e ecs.Entity, spec prefabs.TweenSpec) (*Animation, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("animate: %s: %w", spec.Name, err)
	}
	a := New(w, e).Named(spec.Name)
	for i, p := range spec.Phases {
		if i > 0 {
			if err := a.Then(); err != nil {
				return nil, err
			}
		}
		if err := a.SetDurationSeconds(p.Duration); err != nil {
			return nil, fmt.Errorf("animate: %s phase %d: %w", spec.Name, i, err)
		}
		for j, ch := range p.Channels {
			if err := buildChannel(a, ch); err != nil {
				return nil, fmt.Errorf("animate: %s phase %d channel %d: %w", spec.Name, i, j, err)
			}
		}
		if p.StopWhen != "" {
			pred, err := compileStopWhen(a, p.StopWhen)
			if err != nil {
				return nil, fmt.Errorf("animate: %s phase %d: %w", spec.Name, i, err)
			}
			if err := a.StopWhen(pred); err != nil {
				return nil, err
			}
		}
		if p.DestroyAfter {
			if err := a.ThenDestroy(); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

func buildChannel(a *Animation, ch prefabs.ChannelSpec) error {
	ease, ok := easing.ByName(ch.Easing)
	if !ok {
		return fmt.Errorf("unknown easing %q", ch.Easing)
	}
	fn, ok := properties[strings.ToLower(strings.TrimSpace(ch.Property))]
	if !ok {
		return fmt.Errorf("%q: %w", ch.Property, ErrUnknownProperty)
	}
	if err := fn(a, ch, ease); err != nil {
		return fmt.Errorf("%s: %w", ch.Property, err)
	}
	return nil
}

func channel[T any](build func(*Animation) (*tween.Builder[T], error), conv func(prefabs.Value) (T, error)) propertyFn {
	return func(a *Animation, ch prefabs.ChannelSpec, ease easing.Easing) error {
		b, err := build(a)
		if err != nil {
			return err
		}
		return apply(b.Ease(ease), ch, conv)
	}
}

func part[P, C any](build func(*Animation) (*tween.Builder[P], error), sub func(*tween.Builder[P]) *tween.Builder[C]) func(*Animation) (*tween.Builder[C], error) {
	return func(a *Animation) (*tween.Builder[C], error) {
		b, err := build(a)
		if err != nil {
			return nil, err
		}
		return sub(b), nil
	}
}

// vec3Property animates only X and Y when the target has two numbers.
func vec3Property(build func(*Animation) (*tween.Builder[tween.Vec3], error)) propertyFn {
	full := channel(build, toVec3)
	planar := channel(part(build, tween.Vec3XY), toVec2)
	return func(a *Animation, ch prefabs.ChannelSpec, ease easing.Easing) error {
		target := ch.To
		if ch.Add.Set {
			target = ch.Add
		}
		if len(target.Numbers) == 2 {
			return planar(a, ch, ease)
		}
		return full(a, ch, ease)
	}
}

func apply[T any](b *tween.Builder[T], ch prefabs.ChannelSpec, conv func(prefabs.Value) (T, error)) error {
	if ch.From.Set {
		v, err := conv(ch.From)
		if err != nil {
			return fmt.Errorf("from: %w", err)
		}
		b.From(v)
	}
	if ch.Add.Set {
		v, err := conv(ch.Add)
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
		return b.Add(v)
	}
	v, err := conv(ch.To)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}
	return b.To(v)
}

func toFloat(v prefabs.Value) (float64, error) {
	return v.Float()
}

func toInt(v prefabs.Value) (int, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

func toVec2(v prefabs.Value) (tween.Vec2, error) {
	if len(v.Numbers) != 2 {
		return tween.Vec2{}, fmt.Errorf("want 2 numbers, got %s", v)
	}
	return tween.Vec2{X: v.Numbers[0], Y: v.Numbers[1]}, nil
}

// toVec3 also accepts a single number, applied to every axis.
func toVec3(v prefabs.Value) (tween.Vec3, error) {
	switch len(v.Numbers) {
	case 1:
		n := v.Numbers[0]
		return tween.Vec3{X: n, Y: n, Z: n}, nil
	case 3:
		return tween.Vec3{X: v.Numbers[0], Y: v.Numbers[1], Z: v.Numbers[2]}, nil
	default:
		return tween.Vec3{}, fmt.Errorf("want 1 or 3 numbers, got %s", v)
	}
}

// toColor takes a color or 3-4 channel values in [0,1]; alpha defaults to 1.
func toColor(v prefabs.Value) (tween.Color, error) {
	if v.IsColor() {
		return tween.ColorFrom(v.Color), nil
	}
	n := v.Numbers
	switch len(n) {
	case 3:
		return tween.Color{R: n[0], G: n[1], B: n[2], A: 1}, nil
	case 4:
		return tween.Color{R: n[0], G: n[1], B: n[2], A: n[3]}, nil
	default:
		return tween.Color{}, fmt.Errorf("want a color or 3-4 numbers, got %s", v)
	}
}

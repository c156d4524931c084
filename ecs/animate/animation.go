// Package animate binds tween timelines to ECS entities: typed builders for
// component properties, capability lookup for color and alpha, and timelines
// built from YAML tween specs.
package animate

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/component"
	"github.com/milk9111/tweens/tween"
)

var (
	ErrMissingCapability = errors.New("animate: entity has no component for property")
	ErrUnknownProperty   = errors.New("animate: unknown property")
)

// Animation is a timeline targeting one entity. When a phase flagged with
// ThenDestroy completes, the entity is destroyed.
type Animation struct {
	w     *ecs.World
	e     ecs.Entity
	tl    *tween.Timeline
	track *component.TweenTrack

	euler *tween.Builder[tween.Vec3]
}

func New(w *ecs.World, e ecs.Entity) *Animation {
	tl := tween.New(e)
	_ = tl.OnDestroy(func(target any) {
		if ent, ok := target.(ecs.Entity); ok {
			ecs.DestroyEntity(w, ent)
		}
	})
	return &Animation{
		w:     w,
		e:     e,
		tl:    tl,
		track: &component.TweenTrack{Timeline: tl},
	}
}

// Named labels the animation in events and logs.
func (a *Animation) Named(name string) *Animation {
	a.track.Name = name
	return a
}

func (a *Animation) Name() string              { return a.track.Name }
func (a *Animation) Entity() ecs.Entity        { return a.e }
func (a *Animation) World() *ecs.World         { return a.w }
func (a *Animation) Timeline() *tween.Timeline { return a.tl }

// Seconds and Frames report how long the animation has been playing.
func (a *Animation) Seconds() float64 { return a.track.Seconds }
func (a *Animation) Frames() int      { return a.track.Frames }

func (a *Animation) SetDuration(d time.Duration) error  { return a.tl.SetDuration(d) }
func (a *Animation) SetDurationSeconds(s float64) error { return a.tl.SetDurationSeconds(s) }
func (a *Animation) StopWhen(predicate func() bool) error {
	return a.tl.StopWhen(predicate)
}
func (a *Animation) ThenDestroy() error { return a.tl.ThenDestroy() }
func (a *Animation) Then() error        { return a.tl.Then() }

// Play starts the timeline and hands it to the tween system. Several
// animations may play on one entity at once.
func (a *Animation) Play() error {
	if !ecs.IsAlive(a.w, a.e) {
		return fmt.Errorf("animate: play %q on %s: %w", a.track.Name, a.e, component.ErrEntityNotAlive)
	}
	if err := a.tl.Start(); err != nil {
		return fmt.Errorf("animate: play %q: %w", a.track.Name, err)
	}
	if tw, ok := ecs.Get(a.w, a.e, component.TweenComponent.Kind()); ok {
		tw.Tracks = append(tw.Tracks, a.track)
		return nil
	}
	return ecs.Add(a.w, a.e, component.TweenComponent.Kind(), &component.Tween{
		Tracks: []*component.TweenTrack{a.track},
	})
}

// Component starts a channel over a field of any component. The entity must
// hold the component when the channel is built; if the component is removed
// later the getter reads the zero value and the setter does nothing.
func Component[C, T any](a *Animation, kind component.ComponentKind[C], ops tween.Ops[T], get func(*C) T, set func(*C, T)) (*tween.Builder[T], error) {
	if !ecs.Has(a.w, a.e, kind) {
		var c C
		return nil, fmt.Errorf("animate: %T on %s: %w", c, a.e, ErrMissingCapability)
	}
	w, e := a.w, a.e
	getter := func() T {
		c, ok := ecs.Get(w, e, kind)
		if !ok {
			var zero T
			return zero
		}
		return get(c)
	}
	setter := func(v T) {
		if c, ok := ecs.Get(w, e, kind); ok {
			set(c, v)
		}
	}
	return tween.Prop(a.tl, ops, getter, setter), nil
}

func (a *Animation) Position() (*tween.Builder[tween.Vec3], error) {
	return Component(a, component.TransformComponent.Kind(), tween.Vec3Ops,
		func(t *component.Transform) tween.Vec3 { return t.Position },
		func(t *component.Transform, v tween.Vec3) { t.Position = v })
}

func (a *Animation) Scale() (*tween.Builder[tween.Vec3], error) {
	return Component(a, component.TransformComponent.Kind(), tween.Vec3Ops,
		func(t *component.Transform) tween.Vec3 { return t.Scale },
		func(t *component.Transform, v tween.Vec3) { t.Scale = v })
}

func (a *Animation) Rotation() (*tween.Builder[tween.Quat], error) {
	return Component(a, component.TransformComponent.Kind(), tween.QuatOps,
		func(t *component.Transform) tween.Quat { return t.Rotation },
		func(t *component.Transform, v tween.Quat) { t.Rotation = v })
}

// EulerAngles animates the rotation through its Euler angles in degrees.
// Every Euler channel of one animation shares the angles last written, so
// rotation.x and rotation.z can run side by side.
func (a *Animation) EulerAngles() (*tween.Builder[tween.Vec3], error) {
	if a.euler == nil {
		b, err := a.Rotation()
		if err != nil {
			return nil, err
		}
		a.euler = tween.QuatEuler(b)
	}
	return a.euler.Fork(), nil
}

// Color resolves to the first of Panel, Text or Sprite the entity holds.
func (a *Animation) Color() (*tween.Builder[tween.Color], error) {
	return Resolve(a, "color", ColorCapabilities)
}

// Alpha resolves to the color alpha of Panel, Text or Sprite, then to the
// Group alpha.
func (a *Animation) Alpha() (*tween.Builder[float64], error) {
	return Resolve(a, "alpha", AlphaCapabilities)
}

func (a *Animation) GroupAlpha() (*tween.Builder[float64], error) {
	return Component(a, component.GroupComponent.Kind(), tween.FloatOps,
		func(g *component.Group) float64 { return g.Alpha },
		func(g *component.Group, v float64) { g.Alpha = v })
}

func (a *Animation) Volume() (*tween.Builder[float64], error) {
	return Component(a, component.AudioComponent.Kind(), tween.FloatOps,
		func(au *component.Audio) float64 { return au.Volume },
		func(au *component.Audio, v float64) { au.Volume = v })
}

func (a *Animation) FontSize() (*tween.Builder[int], error) {
	return Component(a, component.TextComponent.Kind(), tween.IntOps,
		func(t *component.Text) int { return t.Size },
		func(t *component.Text, v int) { t.Size = v })
}

func (a *Animation) FillAmount() (*tween.Builder[float64], error) {
	return Component(a, component.PanelComponent.Kind(), tween.FloatOps,
		func(p *component.Panel) float64 { return p.Fill },
		func(p *component.Panel, v float64) { p.Fill = v })
}

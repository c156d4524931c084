package tween

import (
	"fmt"

	"github.com/milk9111/tweens/easing"
)

// Builder configures one property channel and appends it to the timeline's
// current phase when To or Add is called.
type Builder[T any] struct {
	tl     *Timeline
	ops    Ops[T]
	get    func() T
	set    func(T)
	easing easing.Easing

	from    T
	hasFrom bool
}

// Prop starts a channel over any value type.
func Prop[T any](tl *Timeline, ops Ops[T], get func() T, set func(T)) *Builder[T] {
	return &Builder[T]{tl: tl, ops: ops, get: get, set: set, easing: easing.Default}
}

func Float(tl *Timeline, get func() float64, set func(float64)) *Builder[float64] {
	return Prop(tl, FloatOps, get, set)
}

func Int(tl *Timeline, get func() int, set func(int)) *Builder[int] {
	return Prop(tl, IntOps, get, set)
}

func Vector2(tl *Timeline, get func() Vec2, set func(Vec2)) *Builder[Vec2] {
	return Prop(tl, Vec2Ops, get, set)
}

func Vector3(tl *Timeline, get func() Vec3, set func(Vec3)) *Builder[Vec3] {
	return Prop(tl, Vec3Ops, get, set)
}

func RGBA(tl *Timeline, get func() Color, set func(Color)) *Builder[Color] {
	return Prop(tl, ColorOps, get, set)
}

func Rotation(tl *Timeline, get func() Quat, set func(Quat)) *Builder[Quat] {
	return Prop(tl, QuatOps, get, set)
}

// From fixes the start value instead of reading the live property.
func (b *Builder[T]) From(v T) *Builder[T] {
	b.from = v
	b.hasFrom = true
	return b
}

func (b *Builder[T]) Ease(e easing.Easing) *Builder[T] {
	b.easing = e
	return b
}

// To animates toward an absolute target.
func (b *Builder[T]) To(v T) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.commit(NewRange(b.provider(), v))
}

// Add animates by an offset from the start value.
func (b *Builder[T]) Add(v T) error {
	if err := b.check(); err != nil {
		return err
	}
	rng, err := NewOffsetRange(b.provider(), v, b.ops.Add)
	if err != nil {
		return err
	}
	return b.commit(rng)
}

// Fork returns a fresh builder over the same property, without b's From or
// easing.
func (b *Builder[T]) Fork() *Builder[T] {
	return Prop(b.tl, b.ops, b.get, b.set)
}

// Value reads the live property.
func (b *Builder[T]) Value() T { return b.get() }

func (b *Builder[T]) Timeline() *Timeline { return b.tl }

func (b *Builder[T]) check() error {
	if b.get == nil || b.set == nil {
		return ErrNilAccessor
	}
	if b.ops.Lerp == nil {
		return fmt.Errorf("tween: no lerp for %T: %w", b.from, ErrUnsupported)
	}
	return nil
}

func (b *Builder[T]) provider() func() T {
	if b.hasFrom {
		from := b.from
		return func() T { return from }
	}
	return b.get
}

func (b *Builder[T]) commit(rng *ValueRange[T]) error {
	return b.tl.AddTweener(NewChannel(rng, b.easing, b.ops.Lerp, b.set))
}

// derive builds an independent channel over one part of a composite value.
// Its getter reads the parent's live value and its setter writes the parent
// back with only that part replaced.
func derive[P, C any](b *Builder[P], ops Ops[C], read func(P) C, write func(P, C) P) *Builder[C] {
	if b.get == nil || b.set == nil {
		return Prop[C](b.tl, ops, nil, nil)
	}
	get := func() C { return read(b.get()) }
	set := func(v C) { b.set(write(b.get(), v)) }
	return Prop(b.tl, ops, get, set)
}

func Vec2X(b *Builder[Vec2]) *Builder[float64] {
	return derive(b, FloatOps, func(p Vec2) float64 { return p.X }, func(p Vec2, v float64) Vec2 { p.X = v; return p })
}

func Vec2Y(b *Builder[Vec2]) *Builder[float64] {
	return derive(b, FloatOps, func(p Vec2) float64 { return p.Y }, func(p Vec2, v float64) Vec2 { p.Y = v; return p })
}

func Vec3X(b *Builder[Vec3]) *Builder[float64] {
	return derive(b, FloatOps, func(p Vec3) float64 { return p.X }, func(p Vec3, v float64) Vec3 { p.X = v; return p })
}

func Vec3Y(b *Builder[Vec3]) *Builder[float64] {
	return derive(b, FloatOps, func(p Vec3) float64 { return p.Y }, func(p Vec3, v float64) Vec3 { p.Y = v; return p })
}

func Vec3Z(b *Builder[Vec3]) *Builder[float64] {
	return derive(b, FloatOps, func(p Vec3) float64 { return p.Z }, func(p Vec3, v float64) Vec3 { p.Z = v; return p })
}

// Vec3XY animates X and Y together and leaves Z alone.
func Vec3XY(b *Builder[Vec3]) *Builder[Vec2] {
	return derive(b, Vec2Ops, Vec3.XY, func(p Vec3, v Vec2) Vec3 { p.X, p.Y = v.X, v.Y; return p })
}

func ColorR(b *Builder[Color]) *Builder[float64] {
	return derive(b, FloatOps, func(c Color) float64 { return c.R }, func(c Color, v float64) Color { c.R = v; return c })
}

func ColorG(b *Builder[Color]) *Builder[float64] {
	return derive(b, FloatOps, func(c Color) float64 { return c.G }, func(c Color, v float64) Color { c.G = v; return c })
}

func ColorB(b *Builder[Color]) *Builder[float64] {
	return derive(b, FloatOps, func(c Color) float64 { return c.B }, func(c Color, v float64) Color { c.B = v; return c })
}

func ColorA(b *Builder[Color]) *Builder[float64] {
	return derive(b, FloatOps, func(c Color) float64 { return c.A }, func(c Color, v float64) Color { c.A = v; return c })
}

// QuatEuler animates a rotation through its Euler angles in degrees, which
// also makes offsets available for rotations. While the rotation still holds
// the quaternion this channel last wrote, reads return the angles that
// produced it, so X past 90 degrees is not folded back by the decomposition.
func QuatEuler(b *Builder[Quat]) *Builder[Vec3] {
	var (
		wrote   Quat
		angles  Vec3
		written bool
	)
	read := func(q Quat) Vec3 {
		if written && q == wrote {
			return angles
		}
		return q.Euler()
	}
	write := func(_ Quat, e Vec3) Quat {
		q := QuatFromEuler(e)
		wrote, angles, written = q, e, true
		return q
	}
	return derive(b, Vec3Ops, read, write)
}

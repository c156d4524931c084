package tween

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tweens/common"
)

// Ops supplies the per-type arithmetic a channel needs. Add may be nil for
// types without a meaningful sum; offset ranges over such types are rejected.
type Ops[T any] struct {
	Lerp func(from, to T, t float64) T
	Add  func(a, b T) T
}

// Vec2 is a 2D vector.
type Vec2 = cp.Vector

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: common.Lerp(v.X, o.X, t),
		Y: common.Lerp(v.Y, o.Y, t),
		Z: common.Lerp(v.Z, o.Z, t),
	}
}

// XY drops the Z component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Color is a straight-alpha color with float channels nominally in [0, 1].
// Channels may leave that range mid-tween; RGBA clamps them.
type Color struct {
	R, G, B, A float64
}

// ColorFrom converts any color.Color into straight-alpha float channels.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 0xff,
		G: float64(n.G) / 0xff,
		B: float64(n.B) / 0xff,
		A: float64(n.A) / 0xff,
	}
}

func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: common.Lerp(c.R, o.R, t),
		G: common.Lerp(c.G, o.G, t),
		B: common.Lerp(c.B, o.B, t),
		A: common.Lerp(c.A, o.A, t),
	}
}

// NRGBA clamps and quantizes the color.
func (c Color) NRGBA() color.NRGBA {
	q := func(v float64) uint8 {
		return uint8(math.Round(common.Clamp01(v) * 0xff))
	}
	return color.NRGBA{R: q(c.R), G: q(c.G), B: q(c.B), A: q(c.A)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FloatOps interpolates float64 values.
var FloatOps = Ops[float64]{
	Lerp: common.Lerp,
	Add:  func(a, b float64) float64 { return a + b },
}

// IntOps interpolates ints in floating point and truncates toward from.
var IntOps = Ops[int]{
	Lerp: func(from, to int, t float64) int {
		return from + int(float64(to-from)*t)
	},
	Add: func(a, b int) int { return a + b },
}

var Vec2Ops = Ops[Vec2]{
	Lerp: func(from, to Vec2, t float64) Vec2 { return from.Lerp(to, t) },
	Add:  func(a, b Vec2) Vec2 { return a.Add(b) },
}

var Vec3Ops = Ops[Vec3]{
	Lerp: func(from, to Vec3, t float64) Vec3 { return from.Lerp(to, t) },
	Add:  func(a, b Vec3) Vec3 { return a.Add(b) },
}

var ColorOps = Ops[Color]{
	Lerp: func(from, to Color, t float64) Color { return from.Lerp(to, t) },
	Add:  func(a, b Color) Color { return a.Add(b) },
}

// QuatOps has no Add: rotations do not compose by offset.
var QuatOps = Ops[Quat]{
	Lerp: func(from, to Quat, t float64) Quat { return from.Lerp(to, t) },
}

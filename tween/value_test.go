package tween

import (
	"image/color"
	"math"
	"testing"
)

func TestIntLerpTruncatesTowardFrom(t *testing.T) {
	cases := []struct {
		from, to int
		t        float64
		want     int
	}{
		{0, 10, 0.55, 5},
		{10, 0, 0.55, 5},
		{0, 10, 0.99, 9},
		{0, 10, 1, 10},
		{0, 10, -0.15, -1},
		{0, 10, 1.19, 11},
		{-3, 3, 0.5, 0},
	}
	for _, c := range cases {
		if got := IntOps.Lerp(c.from, c.to, c.t); got != c.want {
			t.Errorf("IntOps.Lerp(%d, %d, %v) = %d, want %d", c.from, c.to, c.t, got, c.want)
		}
	}
}

func TestFloatLerpEndpointsExact(t *testing.T) {
	pairs := [][2]float64{{0.1, 0.7}, {-3.3, 1e9}, {0.3, 0.1}}
	for _, p := range pairs {
		if got := FloatOps.Lerp(p[0], p[1], 0); got != p[0] {
			t.Errorf("Lerp(%v, %v, 0) = %v", p[0], p[1], got)
		}
		if got := FloatOps.Lerp(p[0], p[1], 1); got != p[1] {
			t.Errorf("Lerp(%v, %v, 1) = %v", p[0], p[1], got)
		}
	}
	if got := FloatOps.Lerp(0, 10, 1.5); got != 15 {
		t.Errorf("Lerp(0, 10, 1.5) = %v, want 15 (unclamped)", got)
	}
}

func TestCompositeLerp(t *testing.T) {
	v := Vec3Ops.Lerp(Vec3{0, 0, 0}, Vec3{10, 20, 30}, 0.5)
	if v != (Vec3{5, 10, 15}) {
		t.Fatalf("Vec3 lerp = %+v", v)
	}
	v2 := Vec2Ops.Lerp(Vec2{X: 0, Y: 4}, Vec2{X: 8, Y: 0}, 0.25)
	if v2.X != 2 || v2.Y != 3 {
		t.Fatalf("Vec2 lerp = %+v", v2)
	}
	c := ColorOps.Lerp(Color{0, 0, 0, 1}, Color{1, 0.5, 0, 0}, 0.5)
	if c != (Color{0.5, 0.25, 0, 0.5}) {
		t.Fatalf("Color lerp = %+v", c)
	}
}

func TestColorConversion(t *testing.T) {
	c := ColorFrom(color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	if c.R != 1 || c.G != 0 || math.Abs(c.B-0.2) > 1e-9 || c.A != 1 {
		t.Fatalf("ColorFrom = %+v", c)
	}
	over := Color{R: 1.4, G: -0.2, B: 0.5, A: 1}
	n := over.NRGBA()
	if n.R != 255 || n.G != 0 || n.B != 128 || n.A != 255 {
		t.Fatalf("NRGBA clamp = %+v", n)
	}
}

func TestQuatEulerRoundTrip(t *testing.T) {
	cases := []Vec3{
		{30, 45, 60},
		{10, 200, 350},
		{0, 0, 90},
		{80, 10, 20},
	}
	for _, e := range cases {
		got := QuatFromEuler(e).Euler()
		if math.Abs(got.X-e.X) > 1e-6 || math.Abs(got.Y-e.Y) > 1e-6 || math.Abs(got.Z-e.Z) > 1e-6 {
			t.Errorf("Euler(QuatFromEuler(%+v)) = %+v", e, got)
		}
	}
}

func TestQuatLerpStaysUnit(t *testing.T) {
	a := QuatFromEuler(Vec3{0, 0, 0})
	b := QuatFromEuler(Vec3{0, 0, 90})
	for _, f := range []float64{-0.2, 0, 0.3, 0.5, 1, 1.2} {
		q := a.Lerp(b, f)
		if n := q.Dot(q); math.Abs(n-1) > 1e-9 {
			t.Fatalf("Lerp(%v) norm^2 = %v", f, n)
		}
	}
	mid := a.Lerp(b, 0.5).Euler()
	if math.Abs(mid.Z-45) > 1e-6 {
		t.Fatalf("midpoint Z = %v, want 45", mid.Z)
	}
}

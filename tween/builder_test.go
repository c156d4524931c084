package tween

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/milk9111/tweens/easing"
)

func TestBuilderFromFixesStart(t *testing.T) {
	p := &prop[float64]{v: 50}
	tl := New(nil)
	_ = tl.SetDuration(time.Second)
	if err := Float(tl, p.get, p.set).From(0).To(10); err != nil {
		t.Fatal(err)
	}
	tl.Advance(500 * time.Millisecond)
	if p.v != 5 {
		t.Fatalf("value = %v, want 5", p.v)
	}
	if len(p.reads) != 0 {
		t.Fatalf("live getter read %d times, want 0", len(p.reads))
	}
}

func TestBuilderFromWithAdd(t *testing.T) {
	p := &prop[int]{v: 99}
	tl := New(nil)
	if err := Int(tl, p.get, p.set).From(10).Add(5); err != nil {
		t.Fatal(err)
	}
	tl.Advance(0)
	if p.v != 15 {
		t.Fatalf("value = %d, want 15", p.v)
	}
}

func TestBuilderErrors(t *testing.T) {
	tl := New(nil)
	q := &prop[Quat]{v: IdentityQuat}

	if err := Rotation(tl, q.get, q.set).Add(IdentityQuat); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("quat Add err = %v, want ErrUnsupported", err)
	}
	if err := Float(tl, nil, func(float64) {}).To(1); !errors.Is(err, ErrNilAccessor) {
		t.Fatalf("nil getter err = %v, want ErrNilAccessor", err)
	}
	if err := Prop(tl, Ops[string]{}, func() string { return "" }, func(string) {}).To("x"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("missing lerp err = %v, want ErrUnsupported", err)
	}
	if n := tl.Phase(0).Len(); n != 0 {
		t.Fatalf("failed builders left %d channels", n)
	}
}

func TestDerivedChannels(t *testing.T) {
	pos := &prop[Vec3]{v: Vec3{1, 2, 3}}
	col := &prop[Color]{v: Color{1, 1, 1, 1}}

	tl := New(nil)
	_ = tl.SetDuration(time.Second)
	if err := Vec3Y(Vector3(tl, pos.get, pos.set)).Add(8); err != nil {
		t.Fatal(err)
	}
	if err := ColorA(RGBA(tl, col.get, col.set)).To(0); err != nil {
		t.Fatal(err)
	}

	tl.Advance(500 * time.Millisecond)
	if pos.v != (Vec3{1, 6, 3}) {
		t.Fatalf("pos = %+v, want {1 6 3}", pos.v)
	}
	if col.v != (Color{1, 1, 1, 0.5}) {
		t.Fatalf("color = %+v", col.v)
	}
}

func TestDerivedChannelsShareParent(t *testing.T) {
	pos := &prop[Vec3]{}
	tl := New(nil)
	_ = tl.SetDuration(time.Second)
	parent := Vector3(tl, pos.get, pos.set)
	_ = Vec3X(parent).To(10)
	_ = Vec3Z(parent).Ease(easing.QuadIn).To(10)

	for !tl.Done() {
		tl.Advance(100 * time.Millisecond)
	}
	if pos.v != (Vec3{10, 0, 10}) {
		t.Fatalf("pos = %+v, want {10 0 10}", pos.v)
	}
}

func TestVec3XYKeepsZ(t *testing.T) {
	pos := &prop[Vec3]{v: Vec3{0, 0, -5}}
	tl := New(nil)
	if err := Vec3XY(Vector3(tl, pos.get, pos.set)).To(Vec2{X: 3, Y: 4}); err != nil {
		t.Fatal(err)
	}
	tl.Advance(0)
	if pos.v != (Vec3{3, 4, -5}) {
		t.Fatalf("pos = %+v", pos.v)
	}
}

func TestQuatEulerChannel(t *testing.T) {
	rot := &prop[Quat]{v: IdentityQuat}
	tl := New(nil)
	_ = tl.SetDuration(time.Second)
	if err := QuatEuler(Rotation(tl, rot.get, rot.set)).Add(Vec3{Z: 90}); err != nil {
		t.Fatal(err)
	}
	for !tl.Done() {
		tl.Advance(250 * time.Millisecond)
	}
	if z := rot.v.Euler().Z; math.Abs(z-90) > 1e-6 {
		t.Fatalf("final Z = %v, want 90", z)
	}
}

func TestQuatEulerAxisPastNinety(t *testing.T) {
	rot := &prop[Quat]{v: IdentityQuat}
	tl := New(nil)
	_ = tl.SetDuration(time.Second)
	if err := Vec3X(QuatEuler(Rotation(tl, rot.get, rot.set))).To(120); err != nil {
		t.Fatal(err)
	}

	for i := 1; !tl.Done(); i++ {
		if i > 20 {
			t.Fatal("timeline did not finish")
		}
		tl.Advance(100 * time.Millisecond)
		want := QuatFromEuler(Vec3{X: math.Min(12*float64(i), 120)})
		if d := math.Abs(rot.v.Dot(want)); math.Abs(d-1) > 1e-9 {
			t.Fatalf("tick %d: |dot| with X=%v rotation = %v", i, 12*float64(i), d)
		}
	}
	if want := QuatFromEuler(Vec3{X: 120}); rot.v != want {
		t.Fatalf("final rotation = %+v, want %+v", rot.v, want)
	}
}

func TestQuatEulerReadsExternalChange(t *testing.T) {
	rot := &prop[Quat]{v: IdentityQuat}
	tl := New(nil)
	b := QuatEuler(Rotation(tl, rot.get, rot.set))
	if err := Vec3X(b).To(30); err != nil {
		t.Fatal(err)
	}
	tl.Advance(0)

	rot.v = QuatFromEuler(Vec3{Z: 45})
	if got := b.Value(); math.Abs(got.X) > 1e-9 || math.Abs(got.Z-45) > 1e-9 {
		t.Fatalf("Value() after external write = %+v, want Z=45", got)
	}
}

package easing

import (
	"math"
	"testing"
)

const tolerance = 1e-4

func all() []Easing {
	out := make([]Easing, 0, len(registry))
	for _, name := range Names() {
		e, _ := ByName(name)
		out = append(out, e)
	}
	return out
}

func TestEaseBoundaries(t *testing.T) {
	for _, e := range all() {
		t.Run(e.Name(), func(t *testing.T) {
			for _, x := range []float64{-10, -1, -0.0001, 0} {
				if got := e.Ease(x); got != 0 {
					t.Fatalf("Ease(%v) = %v, want 0", x, got)
				}
			}
			for _, x := range []float64{1, 1.0001, 2, 100} {
				if got := e.Ease(x); got != 1 {
					t.Fatalf("Ease(%v) = %v, want 1", x, got)
				}
			}
		})
	}
}

func TestLinearIdentity(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		if got := Linear.Ease(x); got != x {
			t.Fatalf("Linear.Ease(%v) = %v", x, got)
		}
	}
}

func TestZeroValueIsLinear(t *testing.T) {
	var e Easing
	if got := e.Ease(0.3); got != 0.3 {
		t.Fatalf("zero Easing.Ease(0.3) = %v, want 0.3", got)
	}
	if e.Name() != "Linear" {
		t.Fatalf("zero Easing.Name() = %q", e.Name())
	}
}

func TestInOutMidpoint(t *testing.T) {
	cases := []Easing{
		SineInOut, QuadInOut, CubicInOut, QuartInOut, QuintInOut,
		ExpoInOut, CircInOut, BackInOut, ElasticInOut, BounceInOut,
	}
	for _, e := range cases {
		if got := e.Ease(0.5); math.Abs(got-0.5) > tolerance {
			t.Errorf("%s.Ease(0.5) = %v, want 0.5", e.Name(), got)
		}
	}
}

func TestReferenceSamples(t *testing.T) {
	cases := []struct {
		easing Easing
		at     float64
		want   float64
	}{
		{SineIn, 0.5, 0.292893},
		{SineOut, 0.25, 0.382683},
		{QuadIn, 0.5, 0.25},
		{QuadOut, 0.75, 0.9375},
		{CubicOut, 0.5, 0.875},
		{QuartOut, 0.25, 0.683594},
		{QuintIn, 0.75, 0.237305},
		{ExpoIn, 0.75, 0.176777},
		{ExpoOut, 0.5, 0.96875},
		{CircIn, 0.5, 0.133975},
		{CircOut, 0.5, 0.866025},
		{BackIn, 0.5, -0.087698},
		{BackOut, 0.5, 1.087697},
		{BackInOut, 0.25, -0.043849},
		{ElasticIn, 0.5, -0.015625},
		{ElasticOut, 0.25, 0.911612},
		{BounceOut, 0.5, 0.765625},
		{BounceIn, 0.25, 0.027344},
		{ExpoOutIn, 0.5, 0.500488},
		{ElasticOutIn, 0.5, 0.499756},
	}
	for _, c := range cases {
		if got := c.easing.Ease(c.at); math.Abs(got-c.want) > tolerance {
			t.Errorf("%s.Ease(%v) = %v, want %v", c.easing.Name(), c.at, got, c.want)
		}
	}
}

func TestOvershootFamilies(t *testing.T) {
	for _, e := range []Easing{BackIn, BackOut, ElasticIn, ElasticOut} {
		outside := false
		for i := 1; i < 100; i++ {
			v := e.Ease(float64(i) / 100)
			if v < 0 || v > 1 {
				outside = true
				break
			}
		}
		if !outside {
			t.Errorf("%s never left [0,1]", e.Name())
		}
	}
}

func TestByName(t *testing.T) {
	cases := []struct {
		in   string
		want Easing
		ok   bool
	}{
		{"QuadInOut", QuadInOut, true},
		{"quad_in_out", QuadInOut, true},
		{"bounce-out", BounceOut, true},
		{"", Linear, true},
		{"wobble", Easing{}, false},
	}
	for _, c := range cases {
		got, ok := ByName(c.in)
		if ok != c.ok {
			t.Fatalf("ByName(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
		if ok && got.Name() != c.want.Name() {
			t.Fatalf("ByName(%q) = %s, want %s", c.in, got.Name(), c.want.Name())
		}
	}
	if n := len(Names()); n != 41 {
		t.Fatalf("len(Names()) = %d, want 41", n)
	}
}

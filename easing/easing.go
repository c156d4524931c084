// Package easing maps a normalized time fraction to an eased progress fraction.
package easing

import (
	"sort"
	"strings"
)

// Easing is a named curve. The zero value behaves like Linear.
type Easing struct {
	name string
	fn   func(t float64) float64
}

// New wraps a raw curve. fn is only called for fractions strictly inside (0, 1).
func New(name string, fn func(t float64) float64) Easing {
	return Easing{name: name, fn: fn}
}

// Ease returns 0 for t <= 0, 1 for t >= 1 and the raw curve otherwise. Interior
// values may leave [0, 1] for the Back and Elastic families.
func (e Easing) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if e.fn == nil {
		return t
	}
	return e.fn(t)
}

// Name returns the registered name, or "Linear" for the zero value.
func (e Easing) Name() string {
	if e.name == "" {
		return "Linear"
	}
	return e.name
}

func (e Easing) String() string { return e.Name() }

// Default is the easing used by channels that never set one.
var Default = Linear

var registry = map[string]Easing{}

func register(name string, fn func(float64) float64) Easing {
	e := New(name, fn)
	registry[strings.ToLower(name)] = e
	return e
}

// ByName looks a curve up case-insensitively. Underscores and dashes are
// ignored so "quad_in_out" and "QuadInOut" resolve to the same curve.
func ByName(name string) (Easing, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	if key == "" {
		return Default, true
	}
	e, ok := registry[key]
	return e, ok
}

// Names lists every registered curve, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

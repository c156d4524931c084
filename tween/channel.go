package tween

import "github.com/milk9111/tweens/easing"

// Tweener is anything a phase can drive with an elapsed fraction.
type Tweener interface {
	Advance(elapsedFraction float64)
}

// Channel animates one property through its setter.
type Channel[T any] struct {
	rng    *ValueRange[T]
	easing easing.Easing
	lerp   func(from, to T, t float64) T
	set    func(T)
}

func NewChannel[T any](rng *ValueRange[T], e easing.Easing, lerp func(from, to T, t float64) T, set func(T)) *Channel[T] {
	return &Channel[T]{rng: rng, easing: e, lerp: lerp, set: set}
}

// Advance eases the fraction and writes the unclamped interpolation.
func (c *Channel[T]) Advance(elapsedFraction float64) {
	eased := c.easing.Ease(elapsedFraction)
	c.set(c.lerp(c.rng.From(), c.rng.To(), eased))
}

func (c *Channel[T]) Range() *ValueRange[T] { return c.rng }

func (c *Channel[T]) Easing() easing.Easing { return c.easing }

// TweenerFunc adapts a plain function to Tweener.
type TweenerFunc func(elapsedFraction float64)

func (f TweenerFunc) Advance(elapsedFraction float64) { f(elapsedFraction) }

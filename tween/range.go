package tween

import "fmt"

// ValueRange is the interval a channel interpolates across. The start value is
// read from the provider once, on the first From or To, never at construction.
type ValueRange[T any] struct {
	provider func() T
	from     T
	captured bool

	to       T
	offset   T
	add      func(a, b T) T
	relative bool
	computed bool
}

// NewRange returns a range ending at the fixed value to.
func NewRange[T any](provider func() T, to T) *ValueRange[T] {
	return &ValueRange[T]{provider: provider, to: to}
}

// NewOffsetRange returns a range ending at add(from, offset). It fails with
// ErrUnsupported when the value type has no add.
func NewOffsetRange[T any](provider func() T, offset T, add func(a, b T) T) (*ValueRange[T], error) {
	if add == nil {
		return nil, fmt.Errorf("tween: offset range over %T: %w", offset, ErrUnsupported)
	}
	return &ValueRange[T]{provider: provider, offset: offset, add: add, relative: true}, nil
}

// From returns the captured start value, capturing it on first use.
func (r *ValueRange[T]) From() T {
	if !r.captured {
		r.from = r.provider()
		r.captured = true
	}
	return r.from
}

// To returns the end value. For offset ranges this forces From.
func (r *ValueRange[T]) To() T {
	if !r.relative {
		return r.to
	}
	if !r.computed {
		r.to = r.add(r.From(), r.offset)
		r.computed = true
	}
	return r.to
}

// Captured reports whether From has been read.
func (r *ValueRange[T]) Captured() bool { return r.captured }

// Relative reports whether the end value is an offset from the start.
func (r *ValueRange[T]) Relative() bool { return r.relative }

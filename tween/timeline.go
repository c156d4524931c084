// Package tween interpolates object properties over time in one or more
// sequential phases, driven by an external clock.
package tween

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnsupported      = errors.New("tween: unsupported operation")
	ErrStarted          = errors.New("tween: timeline already started")
	ErrNegativeDuration = errors.New("tween: negative duration")
	ErrNilAccessor      = errors.New("tween: nil getter or setter")
)

type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusCompleted
	StatusDestroyed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Timeline runs its phases strictly in order. Configuration calls apply to
// the last phase and are rejected once the timeline has started.
type Timeline struct {
	target  any
	destroy func(target any)

	phases  []*Phase
	cursor  int
	started bool
	status  Status
}

// New creates a timeline with one empty phase. The target is never
// dereferenced by the timeline; it is handed to the destroy func.
func New(target any) *Timeline {
	return &Timeline{target: target, phases: []*Phase{{}}}
}

func (t *Timeline) Target() any { return t.target }

// OnDestroy sets the callback run when a phase flagged with ThenDestroy
// completes.
func (t *Timeline) OnDestroy(fn func(target any)) error {
	if t.started {
		return ErrStarted
	}
	t.destroy = fn
	return nil
}

func (t *Timeline) current() *Phase {
	return t.phases[len(t.phases)-1]
}

func (t *Timeline) SetDuration(d time.Duration) error {
	if t.started {
		return ErrStarted
	}
	if d < 0 {
		return fmt.Errorf("tween: duration %s: %w", d, ErrNegativeDuration)
	}
	t.current().duration = d
	return nil
}

func (t *Timeline) SetDurationSeconds(seconds float64) error {
	return t.SetDuration(time.Duration(seconds * float64(time.Second)))
}

func (t *Timeline) AddTweener(tw Tweener) error {
	if t.started {
		return ErrStarted
	}
	if tw == nil {
		return fmt.Errorf("tween: add nil tweener: %w", ErrNilAccessor)
	}
	p := t.current()
	p.tweeners = append(p.tweeners, tw)
	return nil
}

// StopWhen ends the current phase early, without the final snap, on the first
// tick the predicate returns true.
func (t *Timeline) StopWhen(predicate func() bool) error {
	if t.started {
		return ErrStarted
	}
	t.current().stopWhen = predicate
	return nil
}

// ThenDestroy marks the current phase as the last: when it completes the
// destroy callback runs and no later phase starts.
func (t *Timeline) ThenDestroy() error {
	if t.started {
		return ErrStarted
	}
	t.current().destroyAfter = true
	return nil
}

// Then opens a new empty phase.
func (t *Timeline) Then() error {
	if t.started {
		return ErrStarted
	}
	t.phases = append(t.phases, &Phase{})
	return nil
}

func (t *Timeline) Len() int { return len(t.phases) }

func (t *Timeline) Phase(i int) *Phase {
	if i < 0 || i >= len(t.phases) {
		return nil
	}
	return t.phases[i]
}

// Cursor is the index of the phase the next tick drives.
func (t *Timeline) Cursor() int { return t.cursor }

func (t *Timeline) Start() error {
	if t.started {
		return ErrStarted
	}
	t.started = true
	t.status = StatusRunning
	return nil
}

func (t *Timeline) Started() bool  { return t.started }
func (t *Timeline) Status() Status { return t.status }

func (t *Timeline) Done() bool {
	return t.status == StatusCompleted || t.status == StatusDestroyed
}

// Advance drives one tick of dt, starting the timeline if needed. A phase
// that completes hands the same tick to the next phase. After the timeline
// is done Advance does nothing and returns the final status.
func (t *Timeline) Advance(dt time.Duration) Status {
	if !t.started {
		t.started = true
		t.status = StatusRunning
	}
	if t.status != StatusRunning {
		return t.status
	}

	for t.cursor < len(t.phases) {
		p := t.phases[t.cursor]
		if !p.step(dt) {
			return t.status
		}
		if p.destroyAfter {
			if t.destroy != nil {
				t.destroy(t.target)
			}
			t.status = StatusDestroyed
			return t.status
		}
		t.cursor++
	}

	t.status = StatusCompleted
	return t.status
}

func (t *Timeline) AdvanceSeconds(seconds float64) Status {
	return t.Advance(time.Duration(seconds * float64(time.Second)))
}

// Run advances once per value received until the timeline is done or steps
// is closed.
func (t *Timeline) Run(steps <-chan time.Duration) Status {
	for dt := range steps {
		if s := t.Advance(dt); s != StatusRunning {
			return s
		}
	}
	return t.status
}

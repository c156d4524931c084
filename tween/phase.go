package tween

import "time"

type PhaseState int

const (
	PhasePending PhaseState = iota
	PhaseRunning
	PhaseCompleted
)

func (s PhaseState) String() string {
	switch s {
	case PhasePending:
		return "pending"
	case PhaseRunning:
		return "running"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Phase is a group of channels sharing one duration and stop condition.
type Phase struct {
	tweeners     []Tweener
	duration     time.Duration
	stopWhen     func() bool
	destroyAfter bool

	elapsed time.Duration
	state   PhaseState
	stopped bool
}

func (p *Phase) Duration() time.Duration { return p.duration }
func (p *Phase) Elapsed() time.Duration  { return p.elapsed }
func (p *Phase) State() PhaseState       { return p.state }
func (p *Phase) DestroyAfter() bool      { return p.destroyAfter }
func (p *Phase) Len() int                { return len(p.tweeners) }

// Stopped reports whether the stop predicate ended the phase.
func (p *Phase) Stopped() bool { return p.stopped }

func (p *Phase) shouldStop() bool {
	return p.stopWhen != nil && p.stopWhen()
}

func (p *Phase) advance(fraction float64) {
	for _, tw := range p.tweeners {
		tw.Advance(fraction)
	}
}

// step runs one tick and reports whether the phase completed on it. The stop
// predicate is evaluated once per tick. A phase that runs out its duration
// snaps every channel to fraction 1 on the tick after its last partial step;
// a stopped phase keeps whatever its last partial step wrote.
func (p *Phase) step(dt time.Duration) bool {
	if p.state == PhaseCompleted {
		return true
	}
	if dt < 0 {
		dt = 0
	}
	p.state = PhaseRunning

	stop := p.shouldStop()
	if !stop && p.elapsed < p.duration {
		p.elapsed += dt
		p.advance(float64(p.elapsed) / float64(p.duration))
		return false
	}

	if !stop {
		p.advance(1)
	}
	p.stopped = stop
	p.state = PhaseCompleted
	return true
}

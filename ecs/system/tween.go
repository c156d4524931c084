package system

import (
	"log"
	"time"

	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/component"
	"github.com/milk9111/tweens/tween"
)

// DefaultStep is one frame at Ebiten's default 60 TPS.
const DefaultStep = time.Second / 60

// TweenSystem advances every playing timeline by one fixed step per Update.
// Speed scales the step; a destroy-flagged phase destroys its entity through
// the timeline's destroy callback.
type TweenSystem struct {
	Step  time.Duration
	Speed float64
	Debug bool
}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{Step: DefaultStep, Speed: 1}
}

func (s *TweenSystem) delta() time.Duration {
	dt := time.Duration(float64(s.Step) * s.Speed)
	if dt < 0 {
		return 0
	}
	return dt
}

func (s *TweenSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	dt := s.delta()
	ecs.ForEach(w, component.TweenComponent.Kind(), func(e ecs.Entity, tw *component.Tween) {
		if tw == nil {
			return
		}

		keep := make([]*component.TweenTrack, 0, len(tw.Tracks))
		for _, tr := range tw.Tracks {
			if tr == nil || tr.Timeline == nil {
				continue
			}
			tr.Seconds += dt.Seconds()
			tr.Frames++

			switch tr.Timeline.Advance(dt) {
			case tween.StatusRunning:
				keep = append(keep, tr)
			case tween.StatusCompleted:
				s.emit(w, ecs.EventTweenCompleted, e, tr)
			case tween.StatusDestroyed:
				s.emit(w, ecs.EventTweenDestroyed, e, tr)
			}

			if !ecs.IsAlive(w, e) {
				return
			}
		}

		if len(keep) == 0 {
			ecs.Remove(w, e, component.TweenComponent.Kind())
			return
		}
		tw.Tracks = keep
	})
}

func (s *TweenSystem) emit(w *ecs.World, kind string, e ecs.Entity, tr *component.TweenTrack) {
	if s.Debug {
		log.Printf("tween %q on %s: %s after %d frames (%.3fs)", tr.Name, e, kind, tr.Frames, tr.Seconds)
	}
	w.Events().Push(ecs.Event{
		Type: kind,
		Data: ecs.TweenEvent{Entity: e, Name: tr.Name, Frames: tr.Frames},
	})
}

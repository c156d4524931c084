package component

import "github.com/milk9111/tweens/tween"

// TweenTrack is one playing timeline with the clock the tween system keeps
// for it.
type TweenTrack struct {
	Name     string
	Timeline *tween.Timeline
	Seconds  float64
	Frames   int
}

// Tween holds the timelines playing on an entity. The tween system advances
// each track every tick and removes the component once all are done.
type Tween struct {
	Tracks []*TweenTrack
}

var TweenComponent = NewComponent[Tween]()

package component

import "github.com/milk9111/tweens/tween"

// Panel is a filled UI bar. Fill in [0,1] is the drawn fraction of Width.
type Panel struct {
	Width  float64
	Height float64
	Fill   float64
	Color  tween.Color
}

var PanelComponent = NewComponent[Panel]()

package component

import "github.com/hajimehoshi/ebiten/v2/audio"

type Audio struct {
	Clip   string
	Player *audio.Player
	Volume float64
	Loop   bool
	Play   bool
}

var AudioComponent = NewComponent[Audio]()

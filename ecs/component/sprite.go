package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tweens/tween"
)

// Sprite draws Image tinted by Color. A nil Image draws a solid Width by
// Height rectangle instead.
type Sprite struct {
	Image   *ebiten.Image
	Width   float64
	Height  float64
	OriginX float64
	OriginY float64
	Color   tween.Color
}

var SpriteComponent = NewComponent[Sprite]()

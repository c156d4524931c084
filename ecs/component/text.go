package component

import "github.com/milk9111/tweens/tween"

type Text struct {
	Value string
	Size  int
	Color tween.Color
}

var TextComponent = NewComponent[Text]()

package system

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/tweens/common"
	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/component"
)

// AudioSystem pushes each Audio component's volume into its player and
// pauses players whose entity was destroyed.
type AudioSystem struct {
	players map[ecs.Entity]*audio.Player
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{players: make(map[ecs.Entity]*audio.Player)}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	for e, player := range a.players {
		if !ecs.Has(w, e, component.AudioComponent.Kind()) {
			if player.IsPlaying() {
				player.Pause()
			}
			delete(a.players, e)
		}
	}

	ecs.ForEach(w, component.AudioComponent.Kind(), func(e ecs.Entity, au *component.Audio) {
		if au == nil || au.Player == nil {
			return
		}
		a.players[e] = au.Player
		au.Player.SetVolume(common.Clamp01(au.Volume))

		if !au.Play {
			return
		}
		if !au.Player.IsPlaying() {
			_ = au.Player.Rewind()
			au.Player.Play()
		}
		au.Play = false
	})
}

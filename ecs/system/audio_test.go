package system

import (
	"testing"

	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/component"
)

func TestAudioSystemWithoutPlayers(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	au := &component.Audio{Volume: 2, Play: true}
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), au); err != nil {
		t.Fatal(err)
	}

	s := NewAudioSystem()
	s.Update(w)
	if !au.Play {
		t.Fatal("play request consumed without a player")
	}
	if len(s.players) != 0 {
		t.Fatalf("tracked %d players", len(s.players))
	}
	var nilSystem *AudioSystem
	nilSystem.Update(w)
}

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	entityName := flag.String("entity", "", "entity prefab in prefabs/entities (basename, .yaml optional)")
	tweenName := flag.String("tween", "", "tween spec in prefabs/tweens (basename, .yaml optional)")
	speed := flag.Float64("speed", 0, "playback speed multiplier (0 keeps the saved speed)")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", true, "reload prefabs when they change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	settings := OpenSettings("tweens_viewer")
	settings.Update(func(s *ViewerSettings) {
		if *entityName != "" {
			s.Entity = *entityName
		}
		if *tweenName != "" {
			s.Tween = *tweenName
		}
		if *speed > 0 {
			s.Speed = *speed
		}
	})

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("tweens")

	game := NewGame(settings, *debug, *watch)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

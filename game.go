package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"slices"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/tweens/common"
	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/animate"
	"github.com/milk9111/tweens/ecs/entity"
	"github.com/milk9111/tweens/ecs/system"
	"github.com/milk9111/tweens/prefabs"
)

const (
	minSpeed = 0.125
	maxSpeed = 8
)

var background = color.NRGBA{R: 0x1e, G: 0x1f, B: 0x26, A: 0xff}

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	tweens    *system.TweenSystem
	render    *system.RenderSystem

	settings  *SettingsStore
	watcher   *prefabs.Watcher
	ui        *controlUI
	clipboard bool

	entityName string
	tweenName  string
	target     ecs.Entity
	paused     bool
	status     string
}

func NewGame(settings *SettingsStore, debug, watch bool) *Game {
	s := settings.Settings()
	tweens := system.NewTweenSystem()
	tweens.Speed = s.Speed
	tweens.Debug = debug

	g := &Game{
		debug:      debug,
		world:      ecs.NewWorld(),
		tweens:     tweens,
		scheduler:  ecs.NewScheduler(tweens, system.NewAudioSystem()),
		render:     system.NewRenderSystem(),
		settings:   settings,
		entityName: s.Entity,
		tweenName:  s.Tween,
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	if watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.ui = newControlUI(g)
	g.restart()
	return g
}

// restart respawns the entity prefab and plays the tween spec on it from
// scratch.
func (g *Game) restart() {
	if g.target.Valid() {
		ecs.DestroyEntity(g.world, g.target)
		g.target = 0
	}
	g.world.Events().Drain()

	e, err := entity.Spawn(g.world, g.entityName)
	if err != nil {
		g.fail(fmt.Errorf("spawn %s: %w", g.entityName, err))
		return
	}
	g.target = e

	a, err := animate.Load(g.world, e, g.tweenName)
	if err != nil {
		g.fail(err)
		return
	}
	if err := a.Play(); err != nil {
		g.fail(err)
		return
	}
	g.status = fmt.Sprintf("playing %s on %s", g.tweenName, g.entityName)
}

func (g *Game) fail(err error) {
	g.status = err.Error()
	log.Printf("viewer: %v", err)
	if errors.Is(err, animate.ErrMissingCapability) {
		g.status += " (try another -entity)"
	}
}

func (g *Game) nextTween() {
	names := prefabs.List(prefabs.TweensDir)
	if len(names) == 0 {
		return
	}
	i := slices.Index(names, g.tweenName)
	g.tweenName = names[(i+1)%len(names)]
	g.settings.Update(func(s *ViewerSettings) { s.Tween = g.tweenName })
	g.restart()
}

func (g *Game) togglePause() {
	g.paused = !g.paused
}

func (g *Game) setSpeed(speed float64) {
	speed = common.Clamp(speed, minSpeed, maxSpeed)
	g.tweens.Speed = speed
	g.settings.Update(func(s *ViewerSettings) { s.Speed = speed })
}

func (g *Game) copySnapshot() {
	data, err := SnapshotYAML(g.world, g.target)
	if err != nil {
		g.fail(err)
		return
	}
	if !g.clipboard {
		log.Printf("snapshot:\n%s", data)
		g.status = "snapshot written to log"
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.status = "snapshot copied"
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if g.debug {
				log.Printf("prefab changed: %s", name)
			}
			if name == prefabs.TweenPath(g.tweenName) || name == prefabs.EntityPath(g.entityName) {
				g.restart()
				g.status = "reloaded " + name
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) drainEvents() {
	for _, evt := range g.world.Events().Drain() {
		te, ok := evt.Data.(ecs.TweenEvent)
		if !ok {
			continue
		}
		g.status = fmt.Sprintf("%s: %s after %d frames", te.Name, evt.Type, te.Frames)
	}
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.nextTween()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copySnapshot()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.togglePause()
	}

	if !g.paused {
		g.scheduler.Update(g.world)
	}
	g.drainEvents()

	g.ui.refresh(g)
	g.ui.ui.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.render.Draw(g.world, screen)
	g.ui.ui.Draw(screen)

	hud := fmt.Sprintf("FPS: %.2f  frame %d\n%s", ebiten.ActualFPS(), g.frames, g.status)
	if g.debug {
		hud += fmt.Sprintf("\nentities: %d", len(ecs.Entities(g.world)))
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func formatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'g', 4, 64) + "x"
}

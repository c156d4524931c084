package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/milk9111/tweens/assets"
	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/component"
	"github.com/milk9111/tweens/prefabs"
	"github.com/milk9111/tweens/tween"
)

type buildContext struct {
	PrefabPath string
	// NoAudio skips creating audio players; the component still carries
	// its volume so it can be tweened.
	NoAudio bool
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":    addTransform,
	"sprite":       addSprite,
	"panel":        addPanel,
	"text":         addText,
	"group":        addGroup,
	"audio":        addAudio,
	"render_layer": addRenderLayer,
}

var componentBuildOrder = []string{
	"transform",
	"sprite",
	"panel",
	"text",
	"group",
	"audio",
	"render_layer",
}

// Option adjusts how a prefab is built.
type Option func(*buildContext)

// WithoutAudio builds audio components without players, for headless use.
func WithoutAudio() Option {
	return func(c *buildContext) { c.NoAudio = true }
}

// Spawn builds the entity prefab with the given bare name.
func Spawn(w *ecs.World, name string, opts ...Option) (ecs.Entity, error) {
	return BuildEntity(w, prefabs.EntityPath(name), opts...)
}

func BuildEntity(w *ecs.World, prefabPath string, opts ...Option) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}
	for _, opt := range opts {
		opt(ctx)
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := build(name); err != nil {
				ecs.DestroyEntity(w, e)
				return 0, err
			}
		}
	}

	return e, nil
}

// SetEntityTransform moves e, adding a default transform if it has none.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		fresh := component.NewTransform()
		t = &fresh
	}
	t.Position.X = x
	t.Position.Y = y
	t.Rotation = tween.QuatFromEuler(tween.Vec3{Z: rotation})
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := component.NewTransform()
	t.Position = tween.Vec3{X: spec.X, Y: spec.Y, Z: spec.Z}
	if spec.ScaleX != nil {
		t.Scale.X = *spec.ScaleX
	}
	if spec.ScaleY != nil {
		t.Scale.Y = *spec.ScaleY
	}
	t.Rotation = tween.QuatFromEuler(tween.Vec3{Z: spec.Rotation})
	return ecs.Add(w, e, component.TransformComponent.Kind(), &t)
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{
		Width:   spec.Width,
		Height:  spec.Height,
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
		Color:   tween.ColorFrom(spec.Color.Or(color.White)),
	}
	if spec.Image != "" {
		img, err := assets.Image(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
		b := img.Bounds()
		if sprite.Width == 0 {
			sprite.Width = float64(b.Dx())
		}
		if sprite.Height == 0 {
			sprite.Height = float64(b.Dy())
		}
	}
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero {
		sprite.OriginX = sprite.Width / 2
		sprite.OriginY = sprite.Height / 2
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type panelSpec = prefabs.PanelComponentSpec

func addPanel(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[panelSpec](raw)
	if err != nil {
		return fmt.Errorf("decode panel spec: %w", err)
	}
	fill := 1.0
	if spec.Fill != nil {
		fill = *spec.Fill
	}
	return ecs.Add(w, e, component.PanelComponent.Kind(), &component.Panel{
		Width:  spec.Width,
		Height: spec.Height,
		Fill:   fill,
		Color:  tween.ColorFrom(spec.Color.Or(color.White)),
	})
}

type textSpec = prefabs.TextComponentSpec

func addText(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[textSpec](raw)
	if err != nil {
		return fmt.Errorf("decode text spec: %w", err)
	}
	if spec.Size <= 0 {
		spec.Size = 13
	}
	return ecs.Add(w, e, component.TextComponent.Kind(), &component.Text{
		Value: spec.Value,
		Size:  spec.Size,
		Color: tween.ColorFrom(spec.Color.Or(color.White)),
	})
}

type groupSpec = prefabs.GroupComponentSpec

func addGroup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[groupSpec](raw)
	if err != nil {
		return fmt.Errorf("decode group spec: %w", err)
	}
	alpha := 1.0
	if spec.Alpha != nil {
		alpha = *spec.Alpha
	}
	return ecs.Add(w, e, component.GroupComponent.Kind(), &component.Group{Alpha: alpha})
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	comp := &component.Audio{
		Clip:   spec.File,
		Volume: 1,
		Loop:   spec.Loop,
		Play:   spec.Autoplay,
	}
	if spec.Volume != nil {
		comp.Volume = *spec.Volume
	}
	if ctx.NoAudio {
		return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
	}

	switch {
	case spec.File != "":
		comp.Player, err = assets.LoadAudioPlayer(spec.File, spec.Loop)
	case spec.Tone > 0:
		comp.Clip = fmt.Sprintf("tone:%gHz", spec.Tone)
		comp.Player, err = assets.TonePlayer(spec.Tone, spec.Seconds, spec.Loop)
	}
	if err != nil {
		return fmt.Errorf("audio %q: %w", comp.Clip, err)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

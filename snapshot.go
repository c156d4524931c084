package main

import (
	"fmt"

	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/component"
	"github.com/milk9111/tweens/tween"
	"gopkg.in/yaml.v3"
)

type trackSnapshot struct {
	Name    string  `yaml:"name"`
	Phase   int     `yaml:"phase"`
	Status  string  `yaml:"status"`
	Seconds float64 `yaml:"seconds"`
	Frames  int     `yaml:"frames"`
}

// entitySnapshot mirrors the property names used by tween specs so a copied
// snapshot can be pasted back as from/to values.
type entitySnapshot struct {
	Entity   string          `yaml:"entity"`
	Alive    bool            `yaml:"alive"`
	Position []float64       `yaml:"position,omitempty"`
	Scale    []float64       `yaml:"scale,omitempty"`
	Rotation []float64       `yaml:"rotation,omitempty"`
	Color    string          `yaml:"color,omitempty"`
	Alpha    *float64        `yaml:"group.alpha,omitempty"`
	Volume   *float64        `yaml:"volume,omitempty"`
	FontSize *int            `yaml:"font_size,omitempty"`
	Fill     *float64        `yaml:"fill,omitempty"`
	Tracks   []trackSnapshot `yaml:"tracks,omitempty"`
}

func snapshotEntity(w *ecs.World, e ecs.Entity) entitySnapshot {
	snap := entitySnapshot{Entity: e.String(), Alive: ecs.IsAlive(w, e)}
	if !snap.Alive {
		return snap
	}

	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		rot := t.Rotation.Euler()
		snap.Position = []float64{t.Position.X, t.Position.Y, t.Position.Z}
		snap.Scale = []float64{t.Scale.X, t.Scale.Y, t.Scale.Z}
		snap.Rotation = []float64{rot.X, rot.Y, rot.Z}
	}
	if p, ok := ecs.Get(w, e, component.PanelComponent.Kind()); ok {
		snap.Color = hexColor(p.Color)
		snap.Fill = &p.Fill
	} else if txt, ok := ecs.Get(w, e, component.TextComponent.Kind()); ok {
		snap.Color = hexColor(txt.Color)
	} else if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		snap.Color = hexColor(s.Color)
	}
	if txt, ok := ecs.Get(w, e, component.TextComponent.Kind()); ok {
		snap.FontSize = &txt.Size
	}
	if g, ok := ecs.Get(w, e, component.GroupComponent.Kind()); ok {
		snap.Alpha = &g.Alpha
	}
	if a, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		snap.Volume = &a.Volume
	}
	if tw, ok := ecs.Get(w, e, component.TweenComponent.Kind()); ok {
		for _, tr := range tw.Tracks {
			if tr == nil || tr.Timeline == nil {
				continue
			}
			snap.Tracks = append(snap.Tracks, trackSnapshot{
				Name:    tr.Name,
				Phase:   tr.Timeline.Cursor(),
				Status:  tr.Timeline.Status().String(),
				Seconds: tr.Seconds,
				Frames:  tr.Frames,
			})
		}
	}
	return snap
}

// SnapshotYAML renders the live animatable values of e.
func SnapshotYAML(w *ecs.World, e ecs.Entity) ([]byte, error) {
	data, err := yaml.Marshal(snapshotEntity(w, e))
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", e, err)
	}
	return data, nil
}

func hexColor(c tween.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Z      float64  `yaml:"z"`
	ScaleX *float64 `yaml:"scale_x"`
	ScaleY *float64 `yaml:"scale_y"`
	// Rotation in degrees around the screen axis.
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image              string    `yaml:"image"`
	Width              float64   `yaml:"width"`
	Height             float64   `yaml:"height"`
	OriginX            float64   `yaml:"origin_x"`
	OriginY            float64   `yaml:"origin_y"`
	CenterOriginIfZero bool      `yaml:"center_origin_if_zero"`
	Color              YAMLColor `yaml:"color"`
}

type TextComponentSpec struct {
	Value string    `yaml:"value"`
	Size  int       `yaml:"size"`
	Color YAMLColor `yaml:"color"`
}

type PanelComponentSpec struct {
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Fill   *float64  `yaml:"fill"`
	Color  YAMLColor `yaml:"color"`
}

type GroupComponentSpec struct {
	Alpha *float64 `yaml:"alpha"`
}

// AudioComponentSpec plays File when set, otherwise a generated sine Tone
// (Hz) lasting Seconds.
type AudioComponentSpec struct {
	File     string   `yaml:"file"`
	Tone     float64  `yaml:"tone"`
	Seconds  float64  `yaml:"seconds"`
	Volume   *float64 `yaml:"volume"`
	Loop     bool     `yaml:"loop"`
	Autoplay bool     `yaml:"autoplay"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

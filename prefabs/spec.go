package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TweenSpec describes a timeline: phases run in order, channels within a
// phase run together.
type TweenSpec struct {
	Name   string      `yaml:"name"`
	Phases []PhaseSpec `yaml:"phases"`
}

type PhaseSpec struct {
	// Duration in seconds.
	Duration     float64       `yaml:"duration"`
	Channels     []ChannelSpec `yaml:"channels"`
	StopWhen     string        `yaml:"stop_when"`
	DestroyAfter bool          `yaml:"destroy_after"`
}

type ChannelSpec struct {
	Property string `yaml:"property"`
	From     Value  `yaml:"from"`
	To       Value  `yaml:"to"`
	Add      Value  `yaml:"add"`
	Easing   string `yaml:"easing"`
}

func LoadTweenSpec(filename string) (TweenSpec, error) {
	spec, err := LoadSpec[TweenSpec](filename)
	if err != nil {
		return spec, err
	}
	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

// Validate checks the structure only. Property names and easing names are
// resolved by the animation builder.
func (s TweenSpec) Validate() error {
	if len(s.Phases) == 0 {
		return fmt.Errorf("no phases: %w", ErrInvalidSpec)
	}
	for i, p := range s.Phases {
		if p.Duration < 0 {
			return fmt.Errorf("phase %d: negative duration %v: %w", i, p.Duration, ErrInvalidSpec)
		}
		for j, ch := range p.Channels {
			if ch.Property == "" {
				return fmt.Errorf("phase %d channel %d: missing property: %w", i, j, ErrInvalidSpec)
			}
			if ch.To.Set == ch.Add.Set {
				return fmt.Errorf("phase %d channel %d (%s): need exactly one of to or add: %w", i, j, ch.Property, ErrInvalidSpec)
			}
		}
	}
	return nil
}

// Value is a channel endpoint: a number, a list of numbers, or a color.
type Value struct {
	Numbers []float64
	Color   color.Color
	Set     bool
}

func Number(v float64) Value {
	return Value{Numbers: []float64{v}, Set: true}
}

func Numbers(v ...float64) Value {
	return Value{Numbers: v, Set: true}
}

func (v Value) IsColor() bool {
	return v.Color != nil
}

// Float returns the value as a single number.
func (v Value) Float() (float64, error) {
	if len(v.Numbers) != 1 {
		return 0, fmt.Errorf("want a number, got %s", v)
	}
	return v.Numbers[0], nil
}

func (v Value) String() string {
	switch {
	case !v.Set:
		return "<unset>"
	case v.Color != nil:
		return fmt.Sprintf("color%v", v.Color)
	case len(v.Numbers) == 1:
		return strconv.FormatFloat(v.Numbers[0], 'g', -1, 64)
	default:
		return fmt.Sprint(v.Numbers)
	}
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*v = Value{}
			return nil
		}
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			*v = Number(f)
			return nil
		}
		c, err := ParseColor(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: value %q is neither a number nor a color", node.Line, node.Value)
		}
		*v = Value{Color: c, Set: true}
		return nil
	case yaml.SequenceNode:
		nums := make([]float64, 0, len(node.Content))
		for _, item := range node.Content {
			f, err := strconv.ParseFloat(item.Value, 64)
			if err != nil || item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: list entry %q is not a number", item.Line, item.Value)
			}
			nums = append(nums, f)
		}
		if len(nums) < 2 || len(nums) > 4 {
			return fmt.Errorf("line %d: list needs 2 to 4 numbers, got %d", node.Line, len(nums))
		}
		*v = Numbers(nums...)
		return nil
	default:
		return fmt.Errorf("line %d: value must be a number, list or color", node.Line)
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// Or returns the parsed color, or fallback when none was given.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

// ParseColor accepts #rrggbb, #rrggbbaa or an SVG color name.
func ParseColor(v string) (color.Color, error) {
	s := strings.TrimSpace(v)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return nil, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return nil, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return nil, fmt.Errorf("parse blue component: %w", err)
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, fmt.Errorf("parse alpha component: %w", err)
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

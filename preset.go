package shimmer

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Preset is the YAML form of a shimmer configuration, for data-driven themes
// and tooling. Omitted fields keep the builder defaults (alpha highlight,
// see NewBuilder). Colors are hex strings, "#RRGGBB" or "#AARRGGBB".
//
// Example:
//
//	shape: linear
//	direction: leftToRight
//	tilt: 20
//	durationMs: 1200
//	repeatDelayMs: 300
//	baseAlpha: 0.4
type Preset struct {
	Shape          string   `yaml:"shape"`
	Direction      string   `yaml:"direction"`
	BaseColor      string   `yaml:"baseColor"`
	HighlightColor string   `yaml:"highlightColor"`
	BaseAlpha      *float64 `yaml:"baseAlpha"`
	HighlightAlpha *float64 `yaml:"highlightAlpha"`

	Tilt        *float64 `yaml:"tilt"`
	WidthRatio  *float64 `yaml:"widthRatio"`
	HeightRatio *float64 `yaml:"heightRatio"`
	Intensity   *float64 `yaml:"intensity"`
	Dropoff     *float64 `yaml:"dropoff"`
	FixedWidth  int      `yaml:"fixedWidth"`
	FixedHeight int      `yaml:"fixedHeight"`

	Stops []PresetStop `yaml:"stops"`

	DurationMs    int    `yaml:"durationMs"`
	RepeatDelayMs int    `yaml:"repeatDelayMs"`
	StartDelayMs  int    `yaml:"startDelayMs"`
	RepeatCount   *int   `yaml:"repeatCount"`
	RepeatMode    string `yaml:"repeatMode"`

	AutoStart           *bool `yaml:"autoStart"`
	ClipToOpaqueContent *bool `yaml:"clipToOpaqueContent"`
	MaskByAlpha         *bool `yaml:"maskByAlpha"`
}

// PresetStop is one explicit gradient stop in a Preset.
type PresetStop struct {
	Color    string  `yaml:"color"`
	Position float64 `yaml:"position"`
}

// LoadPreset parses YAML preset data into a validated Config.
func LoadPreset(data []byte) (Config, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Config{}, fmt.Errorf("parse shimmer preset: %w", err)
	}
	return p.Config()
}

// LoadPresetFile reads and parses a YAML preset file.
func LoadPresetFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read shimmer preset: %w", err)
	}
	cfg, err := LoadPreset(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Config applies the preset on top of the builder defaults and validates it.
func (p *Preset) Config() (Config, error) {
	b := NewBuilder()

	if p.Shape != "" {
		shape, err := parseShape(p.Shape)
		if err != nil {
			return Config{}, err
		}
		b.SetShape(shape)
	}
	if p.Direction != "" {
		dir, err := parseDirection(p.Direction)
		if err != nil {
			return Config{}, err
		}
		b.SetDirection(dir)
	}
	if p.BaseColor != "" {
		c, err := parseARGB(p.BaseColor)
		if err != nil {
			return Config{}, fmt.Errorf("baseColor: %w", err)
		}
		b.SetBaseColor(c)
	}
	if p.HighlightColor != "" {
		c, err := parseARGB(p.HighlightColor)
		if err != nil {
			return Config{}, fmt.Errorf("highlightColor: %w", err)
		}
		b.SetHighlightColor(c)
	}
	if p.BaseAlpha != nil {
		b.SetBaseAlpha(*p.BaseAlpha)
	}
	if p.HighlightAlpha != nil {
		b.SetHighlightAlpha(*p.HighlightAlpha)
	}
	if p.Tilt != nil {
		b.SetTilt(*p.Tilt)
	}
	if p.WidthRatio != nil {
		b.SetWidthRatio(*p.WidthRatio)
	}
	if p.HeightRatio != nil {
		b.SetHeightRatio(*p.HeightRatio)
	}
	if p.Intensity != nil {
		b.SetIntensity(*p.Intensity)
	}
	if p.Dropoff != nil {
		b.SetDropoff(*p.Dropoff)
	}
	if p.FixedWidth != 0 {
		b.SetFixedWidth(p.FixedWidth)
	}
	if p.FixedHeight != 0 {
		b.SetFixedHeight(p.FixedHeight)
	}
	if len(p.Stops) > 0 {
		colors := make([]ARGB, len(p.Stops))
		positions := make([]float64, len(p.Stops))
		for i, stop := range p.Stops {
			c, err := parseARGB(stop.Color)
			if err != nil {
				return Config{}, fmt.Errorf("stops[%d]: %w", i, err)
			}
			colors[i] = c
			positions[i] = stop.Position
		}
		b.SetGradientStops(colors, positions)
	}
	if p.DurationMs != 0 {
		b.SetDuration(time.Duration(p.DurationMs) * time.Millisecond)
	}
	if p.RepeatDelayMs != 0 {
		b.SetRepeatDelay(time.Duration(p.RepeatDelayMs) * time.Millisecond)
	}
	if p.StartDelayMs != 0 {
		b.SetStartDelay(time.Duration(p.StartDelayMs) * time.Millisecond)
	}
	if p.RepeatCount != nil {
		b.SetRepeatCount(*p.RepeatCount)
	}
	if p.RepeatMode != "" {
		switch p.RepeatMode {
		case "restart":
			b.SetRepeatMode(RepeatRestart)
		case "reverse":
			b.SetRepeatMode(RepeatReverse)
		default:
			return Config{}, fmt.Errorf("unknown repeat mode %q", p.RepeatMode)
		}
	}
	if p.AutoStart != nil {
		b.SetAutoStart(*p.AutoStart)
	}
	if p.ClipToOpaqueContent != nil {
		b.SetClipToOpaqueContent(*p.ClipToOpaqueContent)
	}
	if p.MaskByAlpha != nil {
		b.SetMaskByAlpha(*p.MaskByAlpha)
	}
	return b.Build()
}

func parseShape(s string) (Shape, error) {
	switch s {
	case "linear":
		return ShapeLinear, nil
	case "radial":
		return ShapeRadial, nil
	case "breathe":
		return ShapeBreathe, nil
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

func parseDirection(s string) (Direction, error) {
	switch s {
	case "leftToRight":
		return LeftToRight, nil
	case "rightToLeft":
		return RightToLeft, nil
	case "topToBottom":
		return TopToBottom, nil
	case "bottomToTop":
		return BottomToTop, nil
	case "stationary":
		return Stationary, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// parseARGB parses "#RRGGBB" (opaque) or "#AARRGGBB" hex colors.
func parseARGB(s string) (ARGB, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return ARGB(v), nil
}

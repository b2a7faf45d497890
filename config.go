package shimmer

import (
	"fmt"
	"math"
	"time"
)

// maxStops is the largest number of gradient stops the Kage gradient shaders
// accept, including the stops added at 0 and 1 during normalization.
const maxStops = 8

// Config is the immutable parameter set for one shimmer effect. Build one
// through a Builder and hand it to a Drawable; reconfigure by building a new
// Config and calling SetConfig again, never by mutating fields in place.
type Config struct {
	Shape     Shape
	Direction Direction

	// Colors and Positions are the resolved gradient stops. They are
	// normalized at build time: same length, at least two entries,
	// non-decreasing positions with first = 0 and last = 1.
	Colors    []ARGB
	Positions []float64

	// BaseColor and HighlightColor feed the derived gradient stops and, for
	// ShapeBreathe, the pulsing fill color.
	BaseColor      ARGB
	HighlightColor ARGB

	TiltDegrees float64
	WidthRatio  float64
	HeightRatio float64
	Intensity   float64
	Dropoff     float64

	// FixedWidth and FixedHeight, when positive, override the ratio-derived
	// band size.
	FixedWidth  int
	FixedHeight int

	AnimationDuration time.Duration
	RepeatDelay       time.Duration
	StartDelay        time.Duration
	RepeatCount       int // RepeatInfinite repeats until stopped
	RepeatMode        RepeatMode

	AutoStart           bool
	ClipToOpaqueContent bool
	MaskByAlpha         bool
}

// BandWidth returns the gradient band width for the given bounds width.
func (c *Config) BandWidth(boundsWidth float64) float64 {
	if c.FixedWidth > 0 {
		return float64(c.FixedWidth)
	}
	return math.Round(c.WidthRatio * boundsWidth)
}

// BandHeight returns the gradient band height for the given bounds height.
func (c *Config) BandHeight(boundsHeight float64) float64 {
	if c.FixedHeight > 0 {
		return float64(c.FixedHeight)
	}
	return math.Round(c.HeightRatio * boundsHeight)
}

// Translucent reports whether the shimmer output can leave the surface
// non-opaque. Hosts can use an opaque report to skip alpha compositing.
func (c *Config) Translucent() bool {
	return c.ClipToOpaqueContent || c.MaskByAlpha
}

// Builder accumulates shimmer parameters and validates them into a Config.
// The zero value is not usable; start from NewBuilder or NewColorBuilder.
type Builder struct {
	cfg       Config
	colors    []ARGB
	positions []float64
}

// NewBuilder returns a builder preconfigured for an alpha highlight: the
// shimmer masks the surface by its own alpha, so the highlight picks up the
// surface's colors. This is the common loading-placeholder setup.
func NewBuilder() *Builder {
	b := &Builder{cfg: defaultConfig()}
	b.cfg.MaskByAlpha = true
	return b
}

// NewColorBuilder returns a builder preconfigured for a color highlight: the
// shimmer draws its own colors, confined to the surface's opaque content.
func NewColorBuilder() *Builder {
	return &Builder{cfg: defaultConfig()}
}

func defaultConfig() Config {
	return Config{
		Shape:               ShapeLinear,
		Direction:           LeftToRight,
		BaseColor:           0x4CFFFFFF,
		HighlightColor:      0xFFFFFFFF,
		TiltDegrees:         20,
		WidthRatio:          1,
		HeightRatio:         1,
		Intensity:           0,
		Dropoff:             0.5,
		AnimationDuration:   time.Second,
		RepeatCount:         RepeatInfinite,
		RepeatMode:          RepeatRestart,
		AutoStart:           true,
		ClipToOpaqueContent: true,
	}
}

// SetShape sets the highlight geometry.
func (b *Builder) SetShape(s Shape) *Builder {
	b.cfg.Shape = s
	return b
}

// SetDirection sets the band's travel direction.
func (b *Builder) SetDirection(d Direction) *Builder {
	b.cfg.Direction = d
	return b
}

// SetTilt sets the band's rotation in degrees relative to the horizontal axis.
func (b *Builder) SetTilt(degrees float64) *Builder {
	b.cfg.TiltDegrees = degrees
	return b
}

// SetBaseColor sets the color outside the highlight band.
func (b *Builder) SetBaseColor(c ARGB) *Builder {
	b.cfg.BaseColor = c
	return b
}

// SetHighlightColor sets the color at the center of the highlight band.
func (b *Builder) SetHighlightColor(c ARGB) *Builder {
	b.cfg.HighlightColor = c
	return b
}

// SetBaseAlpha replaces the base color's alpha channel. alpha is in [0, 1].
func (b *Builder) SetBaseAlpha(alpha float64) *Builder {
	b.cfg.BaseColor = b.cfg.BaseColor.WithAlpha(uint8(math.Round(clamp01(alpha) * 255)))
	return b
}

// SetHighlightAlpha replaces the highlight color's alpha channel.
// alpha is in [0, 1].
func (b *Builder) SetHighlightAlpha(alpha float64) *Builder {
	b.cfg.HighlightColor = b.cfg.HighlightColor.WithAlpha(uint8(math.Round(clamp01(alpha) * 255)))
	return b
}

// SetIntensity widens the fully-lit center of the band.
func (b *Builder) SetIntensity(v float64) *Builder {
	b.cfg.Intensity = v
	return b
}

// SetDropoff widens the falloff from highlight back to base color.
func (b *Builder) SetDropoff(v float64) *Builder {
	b.cfg.Dropoff = v
	return b
}

// SetWidthRatio scales the band width relative to the bounds width.
func (b *Builder) SetWidthRatio(v float64) *Builder {
	b.cfg.WidthRatio = v
	return b
}

// SetHeightRatio scales the band height relative to the bounds height.
func (b *Builder) SetHeightRatio(v float64) *Builder {
	b.cfg.HeightRatio = v
	return b
}

// SetFixedWidth pins the band width in pixels, overriding the width ratio.
func (b *Builder) SetFixedWidth(px int) *Builder {
	b.cfg.FixedWidth = px
	return b
}

// SetFixedHeight pins the band height in pixels, overriding the height ratio.
func (b *Builder) SetFixedHeight(px int) *Builder {
	b.cfg.FixedHeight = px
	return b
}

// SetGradientStops replaces the intensity/dropoff-derived gradient with
// explicit stops. Both slices must have the same length, at least two
// entries, with positions non-decreasing in [0, 1].
func (b *Builder) SetGradientStops(colors []ARGB, positions []float64) *Builder {
	b.colors = colors
	b.positions = positions
	return b
}

// SetDuration sets the time one sweep takes, excluding the repeat delay.
func (b *Builder) SetDuration(d time.Duration) *Builder {
	b.cfg.AnimationDuration = d
	return b
}

// SetRepeatDelay sets the pause between consecutive sweeps.
func (b *Builder) SetRepeatDelay(d time.Duration) *Builder {
	b.cfg.RepeatDelay = d
	return b
}

// SetRepeatCount sets how many times the animation repeats after the first
// sweep. Use RepeatInfinite to repeat until stopped.
func (b *Builder) SetRepeatCount(n int) *Builder {
	b.cfg.RepeatCount = n
	return b
}

// SetRepeatMode sets whether repeats restart from zero or reverse direction.
func (b *Builder) SetRepeatMode(m RepeatMode) *Builder {
	b.cfg.RepeatMode = m
	return b
}

// SetStartDelay sets the pause before the first sweep after Start.
func (b *Builder) SetStartDelay(d time.Duration) *Builder {
	b.cfg.StartDelay = d
	return b
}

// SetAutoStart controls whether the animation starts as soon as the drawable
// is attached to a live host.
func (b *Builder) SetAutoStart(v bool) *Builder {
	b.cfg.AutoStart = v
	return b
}

// SetClipToOpaqueContent controls whether the host should treat the surface
// as translucent so the shimmer only shows over drawn content.
func (b *Builder) SetClipToOpaqueContent(v bool) *Builder {
	b.cfg.ClipToOpaqueContent = v
	return b
}

// SetMaskByAlpha selects the masking blend: true masks the surface by the
// shimmer's alpha (destination-in), false draws the shimmer's colors into the
// surface's opaque regions (source-in).
func (b *Builder) SetMaskByAlpha(v bool) *Builder {
	b.cfg.MaskByAlpha = v
	return b
}

// Build validates the accumulated parameters and returns the Config.
func (b *Builder) Build() (Config, error) {
	cfg := b.cfg

	if cfg.AnimationDuration <= 0 {
		return Config{}, fmt.Errorf("shimmer: animation duration must be positive, got %v", cfg.AnimationDuration)
	}
	if cfg.RepeatDelay < 0 {
		return Config{}, fmt.Errorf("shimmer: repeat delay must not be negative, got %v", cfg.RepeatDelay)
	}
	if cfg.StartDelay < 0 {
		return Config{}, fmt.Errorf("shimmer: start delay must not be negative, got %v", cfg.StartDelay)
	}
	if cfg.RepeatCount < 0 && cfg.RepeatCount != RepeatInfinite {
		return Config{}, fmt.Errorf("shimmer: repeat count must be >= 0 or RepeatInfinite, got %d", cfg.RepeatCount)
	}
	if cfg.WidthRatio <= 0 {
		return Config{}, fmt.Errorf("shimmer: width ratio must be positive, got %v", cfg.WidthRatio)
	}
	if cfg.HeightRatio <= 0 {
		return Config{}, fmt.Errorf("shimmer: height ratio must be positive, got %v", cfg.HeightRatio)
	}
	if cfg.Intensity < 0 {
		return Config{}, fmt.Errorf("shimmer: intensity must not be negative, got %v", cfg.Intensity)
	}
	if cfg.Dropoff < 0 {
		return Config{}, fmt.Errorf("shimmer: dropoff must not be negative, got %v", cfg.Dropoff)
	}

	colors, positions, err := resolveStops(&cfg, b.colors, b.positions)
	if err != nil {
		return Config{}, err
	}
	cfg.Colors = colors
	cfg.Positions = positions
	return cfg, nil
}

// MustBuild is Build for static configurations that are known to be valid.
// It panics on a validation error.
func (b *Builder) MustBuild() Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

// resolveStops produces the normalized gradient stop arrays: explicit stops
// when given, otherwise four stops derived from intensity and dropoff. The
// result always starts at position 0 and ends at position 1; missing
// endpoints are padded with a copy of the edge color, which matches clamp
// tiling exactly.
func resolveStops(cfg *Config, colors []ARGB, positions []float64) ([]ARGB, []float64, error) {
	if colors == nil && positions == nil {
		colors, positions = derivedStops(cfg)
	} else {
		if len(colors) != len(positions) {
			return nil, nil, fmt.Errorf("shimmer: %d gradient colors but %d positions", len(colors), len(positions))
		}
		if len(colors) < 2 {
			return nil, nil, fmt.Errorf("shimmer: need at least 2 gradient stops, got %d", len(colors))
		}
		prev := 0.0
		for i, p := range positions {
			if p < 0 || p > 1 {
				return nil, nil, fmt.Errorf("shimmer: gradient position %d out of range: %v", i, p)
			}
			if p < prev {
				return nil, nil, fmt.Errorf("shimmer: gradient positions must be non-decreasing, got %v after %v", p, prev)
			}
			prev = p
		}
		// Copy so the caller's slices stay independent of the Config.
		colors = append([]ARGB(nil), colors...)
		positions = append([]float64(nil), positions...)
	}

	if positions[0] > 0 {
		colors = append([]ARGB{colors[0]}, colors...)
		positions = append([]float64{0}, positions...)
	}
	if last := len(positions) - 1; positions[last] < 1 {
		colors = append(colors, colors[last])
		positions = append(positions, 1)
	}
	if len(colors) > maxStops {
		return nil, nil, fmt.Errorf("shimmer: at most %d gradient stops after normalization, got %d", maxStops, len(colors))
	}
	return colors, positions, nil
}

// derivedStops builds the classic shimmer ramp base -> highlight -> highlight
// -> base. Intensity holds the center at full highlight; dropoff stretches
// the fade on both sides.
func derivedStops(cfg *Config) ([]ARGB, []float64) {
	colors := []ARGB{cfg.BaseColor, cfg.HighlightColor, cfg.HighlightColor, cfg.BaseColor}
	positions := []float64{
		math.Max((1-cfg.Intensity-cfg.Dropoff)/2, 0),
		math.Max((1-cfg.Intensity-0.001)/2, 0),
		math.Min((1+cfg.Intensity+0.001)/2, 1),
		math.Min((1+cfg.Intensity+cfg.Dropoff)/2, 1),
	}
	return colors, positions
}

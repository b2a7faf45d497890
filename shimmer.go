package shimmer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ARGB is a packed 32-bit color in 0xAARRGGBB order. Channels are
// non-premultiplied sRGB; premultiplication occurs at render submission time.
type ARGB uint32

// NewARGB packs four 8-bit channels into an ARGB color.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB(a)<<24 | ARGB(r)<<16 | ARGB(g)<<8 | ARGB(b)
}

// A returns the alpha channel.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c ARGB) B() uint8 { return uint8(c) }

// WithAlpha returns the color with its alpha channel replaced.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return ARGB(a)<<24 | c&0x00FFFFFF
}

// channels returns the four channels normalized to [0, 1], alpha first.
func (c ARGB) channels() (a, r, g, b float64) {
	return float64(c.A()) / 255, float64(c.R()) / 255, float64(c.G()) / 255, float64(c.B()) / 255
}

// Shape selects the highlight geometry.
type Shape uint8

const (
	ShapeLinear  Shape = iota // moving gradient band
	ShapeRadial               // moving radial glow
	ShapeBreathe              // pulsing solid color wash, no gradient
)

// Direction selects the travel axis of the gradient band.
// Meaningful only for ShapeLinear and ShapeRadial.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
	Stationary // band does not translate; combine with alpha for a glow
)

// vertical reports whether the gradient axis runs along the bounds height.
func (d Direction) vertical() bool {
	return d == TopToBottom || d == BottomToTop
}

// RepeatMode selects what happens when a shimmer cycle completes.
type RepeatMode uint8

const (
	RepeatRestart RepeatMode = iota // progress jumps back to 0
	RepeatReverse                   // progress oscillates back and forth
)

// RepeatInfinite makes the animation repeat until stopped.
const RepeatInfinite = -1

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle has no renderable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// blendDstIn keeps destination pixels weighted by source alpha: the drawn
// highlight acts as an alpha mask over what is already on the surface.
var blendDstIn = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorZero,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
	BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// blendSrcIn keeps source pixels weighted by destination alpha: the highlight
// is confined to regions the surface has already made opaque.
var blendSrcIn = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationAlpha,
	BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
	BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
	BlendFactorDestinationAlpha: ebiten.BlendFactorZero,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// whitePixel is a 1x1 white image used to fill solid-color rectangles.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

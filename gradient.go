package shimmer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Kage shader sources ---
// Both shaders use //kage:unit pixels as required by Ebitengine.
// Stop colors are passed with straight alpha and premultiplied on output.
// The Inv uniform is the inverse of the gradient's local matrix, so each
// destination pixel is mapped back into gradient space; clamping t to [0, 1]
// reproduces clamp tiling, which keeps the edge colors once the band has
// been translated off the surface.

const linearGradientShaderSrc = `//kage:unit pixels
package main

var Inv [6]float
var Axis vec2
var Colors [8]vec4
var Positions [8]float
var StopCount float

func rampColor(t float) vec4 {
	c := Colors[0]
	for i := 1; i < 8; i++ {
		if float(i) < StopCount {
			span := max(Positions[i]-Positions[i-1], 0.0001)
			w := clamp((t-Positions[i-1])/span, 0.0, 1.0)
			c = mix(c, Colors[i], w)
		}
	}
	return vec4(c.rgb*c.a, c.a)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := dst.xy - imageDstOrigin()
	q := vec2(Inv[0]*p.x+Inv[2]*p.y+Inv[4], Inv[1]*p.x+Inv[3]*p.y+Inv[5])
	t := clamp(dot(q, Axis)/dot(Axis, Axis), 0.0, 1.0)
	return rampColor(t)
}
`

const radialGradientShaderSrc = `//kage:unit pixels
package main

var Inv [6]float
var Center vec2
var Radius float
var Colors [8]vec4
var Positions [8]float
var StopCount float

func rampColor(t float) vec4 {
	c := Colors[0]
	for i := 1; i < 8; i++ {
		if float(i) < StopCount {
			span := max(Positions[i]-Positions[i-1], 0.0001)
			w := clamp((t-Positions[i-1])/span, 0.0, 1.0)
			c = mix(c, Colors[i], w)
		}
	}
	return vec4(c.rgb*c.a, c.a)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := dst.xy - imageDstOrigin()
	q := vec2(Inv[0]*p.x+Inv[2]*p.y+Inv[4], Inv[1]*p.x+Inv[3]*p.y+Inv[5])
	t := clamp(length(q-Center)/Radius, 0.0, 1.0)
	return rampColor(t)
}
`

// Shaders are compiled lazily on first use and cached for the process.

var (
	linearGradientShader *ebiten.Shader
	radialGradientShader *ebiten.Shader
)

func ensureLinearGradientShader() *ebiten.Shader {
	if linearGradientShader == nil {
		s, err := ebiten.NewShader([]byte(linearGradientShaderSrc))
		if err != nil {
			panic("shimmer: failed to compile linear gradient shader: " + err.Error())
		}
		linearGradientShader = s
	}
	return linearGradientShader
}

func ensureRadialGradientShader() *ebiten.Shader {
	if radialGradientShader == nil {
		s, err := ebiten.NewShader([]byte(radialGradientShaderSrc))
		if err != nil {
			panic("shimmer: failed to compile radial gradient shader: " + err.Error())
		}
		radialGradientShader = s
	}
	return radialGradientShader
}

// radialRadius returns the radius that lets a radial band cover the whole
// rectangle: half the diagonal of the bounding square, max(w, h)/sqrt(2).
func radialRadius(width, height float64) float64 {
	return math.Max(width, height) / math.Sqrt2
}

// gradient is the cached render state for ShapeLinear and ShapeRadial.
// It is rebuilt on bounds or configuration change; only the Inv uniform
// changes per frame.
type gradient struct {
	shader   *ebiten.Shader
	uniforms map[string]any

	// Persistent uniform buffers; the map above holds slice headers pointing
	// into these so per-frame updates do not allocate.
	inv       [6]float32
	axis      [2]float32
	center    [2]float32
	colors    [4 * maxStops]float32
	positions [maxStops]float32

	axisWidth  float64 // linear gradient endpoint, 0 when vertical
	axisHeight float64
}

// newGradient builds the gradient for the given configuration and bounds.
// Returns nil for zero-area bounds and for ShapeBreathe, which uses a flat
// interpolated color instead of a shader.
func newGradient(cfg *Config, bounds Rect) *gradient {
	if cfg.Shape == ShapeBreathe || bounds.Empty() {
		return nil
	}

	g := &gradient{uniforms: make(map[string]any, 6)}
	for i, c := range cfg.Colors {
		a, r, gg, bb := c.channels()
		g.colors[i*4+0] = float32(r)
		g.colors[i*4+1] = float32(gg)
		g.colors[i*4+2] = float32(bb)
		g.colors[i*4+3] = float32(a)
	}
	for i, p := range cfg.Positions {
		g.positions[i] = float32(p)
	}
	g.uniforms["Inv"] = g.inv[:]
	g.uniforms["Colors"] = g.colors[:]
	g.uniforms["Positions"] = g.positions[:]
	g.uniforms["StopCount"] = float32(len(cfg.Colors))

	width := cfg.BandWidth(bounds.Width)
	height := cfg.BandHeight(bounds.Height)

	switch cfg.Shape {
	case ShapeRadial:
		g.shader = ensureRadialGradientShader()
		g.center = [2]float32{float32(width / 2), float32(height / 2)}
		g.uniforms["Center"] = g.center[:]
		g.uniforms["Radius"] = float32(radialRadius(width, height))
	default: // ShapeLinear
		g.shader = ensureLinearGradientShader()
		if cfg.Direction.vertical() {
			g.axisHeight = height
		} else {
			g.axisWidth = width
		}
		g.axis = [2]float32{float32(g.axisWidth), float32(g.axisHeight)}
		g.uniforms["Axis"] = g.axis[:]
	}
	return g
}

// setLocalMatrix updates the per-frame inverse matrix uniform. local maps
// gradient space to bounds-relative surface space; the bounds offset is
// folded in so the shader works directly in destination pixels.
func (g *gradient) setLocalMatrix(local [6]float64, bounds Rect) {
	full := multiplyAffine([6]float64{1, 0, 0, 1, bounds.X, bounds.Y}, local)
	inv := invertAffine(full)
	for i, v := range inv {
		g.inv[i] = float32(v)
	}
}

// draw fills the bounds rectangle with the gradient through the given blend.
func (g *gradient) draw(dst *ebiten.Image, bounds Rect, blend ebiten.Blend) {
	var op ebiten.DrawRectShaderOptions
	op.GeoM.Translate(bounds.X, bounds.Y)
	op.Uniforms = g.uniforms
	op.Blend = blend
	dst.DrawRectShader(int(bounds.Width), int(bounds.Height), g.shader, &op)
}

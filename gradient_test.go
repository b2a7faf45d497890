package shimmer

import (
	"math"
	"testing"
)

func TestRadialRadius(t *testing.T) {
	cases := []struct {
		w, h float64
	}{
		{200, 100}, {100, 200}, {64, 64}, {1, 1000},
	}
	for _, tc := range cases {
		want := math.Max(tc.w, tc.h) / math.Sqrt2
		assertNear(t, "radius", radialRadius(tc.w, tc.h), want)
	}
}

func TestNewGradientZeroBounds(t *testing.T) {
	cfg := NewBuilder().MustBuild()
	if g := newGradient(&cfg, Rect{}); g != nil {
		t.Error("zero bounds must not build a gradient")
	}
	if g := newGradient(&cfg, Rect{Width: 100}); g != nil {
		t.Error("zero height must not build a gradient")
	}
}

func TestNewGradientBreathe(t *testing.T) {
	cfg := NewBuilder().SetShape(ShapeBreathe).MustBuild()
	if g := newGradient(&cfg, Rect{Width: 100, Height: 100}); g != nil {
		t.Error("breathe shape must not build a gradient")
	}
}

func TestLinearGradientAxis(t *testing.T) {
	bounds := Rect{Width: 200, Height: 100}

	horizontal := NewBuilder().MustBuild()
	g := newGradient(&horizontal, bounds)
	if g == nil {
		t.Fatal("expected a gradient")
	}
	assertNear(t, "axis width", g.axisWidth, 200)
	assertNear(t, "axis height", g.axisHeight, 0)

	vertical := NewBuilder().SetDirection(TopToBottom).MustBuild()
	g = newGradient(&vertical, bounds)
	assertNear(t, "vertical axis width", g.axisWidth, 0)
	assertNear(t, "vertical axis height", g.axisHeight, 100)
}

func TestLinearGradientAxisUsesBandRatio(t *testing.T) {
	cfg := NewBuilder().SetWidthRatio(2).MustBuild()
	g := newGradient(&cfg, Rect{Width: 200, Height: 100})
	assertNear(t, "scaled axis", g.axisWidth, 400)
}

func TestRadialGradientUniforms(t *testing.T) {
	cfg := NewBuilder().SetShape(ShapeRadial).MustBuild()
	g := newGradient(&cfg, Rect{Width: 200, Height: 100})
	if g == nil {
		t.Fatal("expected a gradient")
	}
	if g.center[0] != 100 || g.center[1] != 50 {
		t.Errorf("center = %v, want (100, 50)", g.center)
	}
	want := float32(radialRadius(200, 100))
	if g.uniforms["Radius"] != want {
		t.Errorf("Radius = %v, want %v", g.uniforms["Radius"], want)
	}
}

func TestGradientStopUniforms(t *testing.T) {
	cfg := NewBuilder().SetGradientStops(
		[]ARGB{0xFF000000, 0x80FF0000},
		[]float64{0, 1},
	).MustBuild()
	g := newGradient(&cfg, Rect{Width: 100, Height: 100})

	if g.uniforms["StopCount"] != float32(2) {
		t.Errorf("StopCount = %v, want 2", g.uniforms["StopCount"])
	}
	// Second stop: straight-alpha half-transparent red.
	r, gg, b, a := g.colors[4], g.colors[5], g.colors[6], g.colors[7]
	if r != 1 || gg != 0 || b != 0 {
		t.Errorf("stop 1 rgb = (%v, %v, %v), want (1, 0, 0)", r, gg, b)
	}
	if math.Abs(float64(a)-128.0/255) > 1e-6 {
		t.Errorf("stop 1 alpha = %v, want ~0.502", a)
	}
}

// setLocalMatrix must upload the inverse: mapping a gradient-space point
// through the local matrix and then through the uploaded uniform matrix
// returns the original point.
func TestSetLocalMatrixUploadsInverse(t *testing.T) {
	cfg := NewBuilder().MustBuild()
	bounds := Rect{X: 10, Y: 20, Width: 200, Height: 100}
	g := newGradient(&cfg, bounds)

	local := computeLocalTransform(0.3, bounds, 20, LeftToRight)
	g.setLocalMatrix(local, bounds)

	full := multiplyAffine([6]float64{1, 0, 0, 1, bounds.X, bounds.Y}, local)
	x, y := transformPoint(full, 42, 17)

	var inv [6]float64
	for i, v := range g.inv {
		inv[i] = float64(v)
	}
	bx, by := transformPoint(inv, x, y)
	if math.Abs(bx-42) > 1e-3 || math.Abs(by-17) > 1e-3 {
		t.Errorf("inverse round-trip = (%v, %v), want (42, 17)", bx, by)
	}
}

func TestGradientShadersCompile(t *testing.T) {
	if ensureLinearGradientShader() == nil {
		t.Error("linear gradient shader is nil")
	}
	if ensureRadialGradientShader() == nil {
		t.Error("radial gradient shader is nil")
	}
}

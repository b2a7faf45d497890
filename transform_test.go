package shimmer

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- translateExtents ---

func TestTranslateExtentsNoTilt(t *testing.T) {
	tw, th := translateExtents(Rect{Width: 200, Height: 100}, 0)
	assertNear(t, "translateWidth", tw, 200)
	assertNear(t, "translateHeight", th, 100)
}

func TestTranslateExtentsTilted(t *testing.T) {
	// tan(45°) = 1, so each extent gains the full other dimension.
	tw, th := translateExtents(Rect{Width: 200, Height: 100}, 45)
	assertNear(t, "translateWidth", tw, 300)
	assertNear(t, "translateHeight", th, 300)
}

// --- direction offsets ---

// Offsets are read back from the untilted matrix, where tx = dx and ty = dy.
func offsetsAt(progress float64, bounds Rect, dir Direction) (dx, dy float64) {
	m := computeLocalTransform(progress, bounds, 0, dir)
	return m[4], m[5]
}

func TestLeftToRightOffsets(t *testing.T) {
	bounds := Rect{Width: 200, Height: 100}

	dx, dy := offsetsAt(0, bounds, LeftToRight)
	assertNear(t, "dx at 0", dx, -200)
	assertNear(t, "dy at 0", dy, 0)

	dx, dy = offsetsAt(1, bounds, LeftToRight)
	assertNear(t, "dx at 1", dx, 200)
	assertNear(t, "dy at 1", dy, 0)

	for _, p := range []float64{0.25, 0.5, 0.75} {
		_, dy = offsetsAt(p, bounds, LeftToRight)
		assertNear(t, "dy stays 0", dy, 0)
	}
}

// 200x100 bounds, widthRatio 1, no tilt: the band crosses the center at
// progress 0.5.
func TestLeftToRightMidpoint(t *testing.T) {
	dx, _ := offsetsAt(0.5, Rect{Width: 200, Height: 100}, LeftToRight)
	assertNear(t, "dx at 0.5", dx, 0)
}

func TestRightToLeftOffsets(t *testing.T) {
	bounds := Rect{Width: 200, Height: 100}
	dx, _ := offsetsAt(0, bounds, RightToLeft)
	assertNear(t, "dx at 0", dx, 200)
	dx, _ = offsetsAt(1, bounds, RightToLeft)
	assertNear(t, "dx at 1", dx, -200)
}

func TestVerticalOffsets(t *testing.T) {
	bounds := Rect{Width: 200, Height: 100}

	dx, dy := offsetsAt(0, bounds, TopToBottom)
	assertNear(t, "dx", dx, 0)
	assertNear(t, "dy at 0", dy, -100)
	_, dy = offsetsAt(1, bounds, TopToBottom)
	assertNear(t, "dy at 1", dy, 100)

	_, dy = offsetsAt(0, bounds, BottomToTop)
	assertNear(t, "reversed dy at 0", dy, 100)
	_, dy = offsetsAt(1, bounds, BottomToTop)
	assertNear(t, "reversed dy at 1", dy, -100)
}

func TestStationaryNeverTranslates(t *testing.T) {
	bounds := Rect{Width: 200, Height: 100}
	for _, p := range []float64{0, 0.3, 0.7, 1} {
		m := computeLocalTransform(p, bounds, 0, Stationary)
		assertMatrix(t, "stationary", m, identityTransform)
	}
}

// --- tilt composition ---

// The rotation pivots about the bounds center, so the center maps to itself
// when there is no translation.
func TestTiltRotatesAboutCenter(t *testing.T) {
	bounds := Rect{Width: 200, Height: 100}
	m := computeLocalTransform(0.5, bounds, 30, Stationary)
	x, y := transformPoint(m, 100, 50)
	assertNear(t, "center x", x, 100)
	assertNear(t, "center y", y, 50)
}

// The translation is applied in the rotated frame: with a 90° tilt the
// rotation columns must be (0,1) and (-1,0) regardless of progress.
func TestTiltTranslatesInRotatedFrame(t *testing.T) {
	bounds := Rect{Width: 100, Height: 100}
	m := computeLocalTransform(1, bounds, 90, Stationary)

	assertNear(t, "a", m[0], 0)
	assertNear(t, "b", m[1], 1)
	assertNear(t, "c", m[2], -1)
	assertNear(t, "d", m[3], 0)
}

// --- affine helpers ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	assertMatrix(t, "translations", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 23})
}

func TestInvertAffineRoundTrip(t *testing.T) {
	m := computeLocalTransform(0.7, Rect{Width: 320, Height: 64}, 20, LeftToRight)
	inv := invertAffine(m)
	assertMatrix(t, "m*inv", multiplyAffine(m, inv), identityTransform)

	x, y := transformPoint(m, 12, 34)
	bx, by := transformPoint(inv, x, y)
	assertNear(t, "round-trip x", bx, 12)
	assertNear(t, "round-trip y", by, 34)
}

func TestInvertAffineSingular(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 5, 5}
	assertMatrix(t, "singular", invertAffine(m), identityTransform)
}

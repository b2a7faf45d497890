package shimmer

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// translateExtents returns the horizontal and vertical travel distances for
// the gradient band. Tilting the band lengthens the diagonal it must cover,
// so each extent is widened by the tilt's contribution from the other axis.
func translateExtents(bounds Rect, tiltDegrees float64) (translateWidth, translateHeight float64) {
	tiltTan := math.Tan(tiltDegrees * math.Pi / 180)
	translateWidth = bounds.Width + tiltTan*bounds.Height
	translateHeight = bounds.Height + tiltTan*bounds.Width
	return
}

// offset linearly interpolates between start and end.
func offset(start, end, progress float64) float64 {
	return start + (end-start)*progress
}

// computeLocalTransform computes the gradient's local matrix for a frame.
// Returns [a, b, c, d, tx, ty].
//
// The band travels between the negative and positive travel extent as
// progress goes 0 -> 1. Composition order: rotate by the tilt about the
// bounds center, then translate within the rotated frame, so the band moves
// along its own tilted axis rather than the surface's axes.
func computeLocalTransform(progress float64, bounds Rect, tiltDegrees float64, direction Direction) [6]float64 {
	translateWidth, translateHeight := translateExtents(bounds, tiltDegrees)

	var dx, dy float64
	switch direction {
	case RightToLeft:
		dx = offset(translateWidth, -translateWidth, progress)
	case TopToBottom:
		dy = offset(-translateHeight, translateHeight, progress)
	case BottomToTop:
		dy = offset(translateHeight, -translateHeight, progress)
	case Stationary:
		// band stays put; alpha pulsing supplies the motion
	default: // LeftToRight
		dx = offset(-translateWidth, translateWidth, progress)
	}

	sin, cos := math.Sincos(tiltDegrees * math.Pi / 180)
	px := bounds.Width / 2
	py := bounds.Height / 2

	// Rotate(tilt) about (px, py).
	m := [6]float64{
		cos, sin, -sin, cos,
		px - cos*px + sin*py,
		py - sin*px - cos*py,
	}
	// Pre-translate by (dx, dy): the translation happens in gradient space,
	// before the rotation.
	return multiplyAffine(m, [6]float64{1, 0, 0, 1, dx, dy})
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Package geom implements the scalar geometry queries behind wander's
// in-range triangle filter: distance from a point to a segment, and the
// orthogonal projection of a point onto a triangle's plane expressed in the
// triangle's own basis.
//
// Both queries are allocation-free and tolerate degenerate input (zero-length
// segments, zero-area triangles) without dividing by zero or inverting a
// singular matrix.
package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Below this squared length a segment or a triangle normal is treated as zero.
const degenerateEpsilon = 1e-12

// DistanceToSegment returns the Euclidean distance from p to the segment [a, b].
//
// The point is projected onto the infinite line through a and b, the
// projection parameter is clamped to [0, 1], and the distance to the clamped
// closest point is returned. A zero-length segment collapses to the point a.
func DistanceToSegment(p, a, b mgl64.Vec3) float64 {
	ab := b.Sub(a)

	t := 0.0
	if lenSqr := ab.LenSqr(); lenSqr > degenerateEpsilon {
		t = mgl64.Clamp(p.Sub(a).Dot(ab)/lenSqr, 0, 1)
	}

	closest := a.Add(ab.Mul(t))
	return p.Sub(closest).Len()
}

// DistanceToProjectionInTriangle orthogonally projects p onto the plane of
// the triangle (v1, v2, v3) and, when the projection falls inside the
// triangle, returns the distance from p to that projected point.
//
// The projection is found by expressing p relative to v1 in the local basis
// [edge1 | edge2 | normal], where edge1 = v2-v1, edge2 = v3-v1 and
// normal = edge1 × edge2. Inverting that 3×3 basis yields barycentric-like
// weights (a, b) along the two edges; the projection lies inside the triangle
// iff 0 ≤ a ≤ 1 and 0 ≤ b ≤ 1-a.
//
// The second return value is false when the projection lands outside the
// triangle, or when the triangle is degenerate (near-zero normal, so the
// basis is singular). Callers treat that as "no distance", equivalent to
// +infinity in comparisons.
func DistanceToProjectionInTriangle(v1, v2, v3, p mgl64.Vec3) (float64, bool) {
	edge1 := v2.Sub(v1)
	edge2 := v3.Sub(v1)
	normal := edge1.Cross(edge2)

	// Zero-area triangle: the basis below would be singular
	if normal.LenSqr() < degenerateEpsilon {
		return 0, false
	}

	// The determinant of this basis is |normal|², non-zero by the check above
	basis := mgl64.Mat3FromCols(edge1, edge2, normal)
	local := basis.Inv().Mul3x1(p.Sub(v1))

	a, b := local.X(), local.Y()
	if a < 0 || a > 1 || b < 0 || b > 1-a {
		return 0, false
	}

	// Back to world space: the in-plane point the weights describe
	projected := v1.Add(edge1.Mul(a)).Add(edge2.Mul(b))
	return p.Sub(projected).Len(), true
}

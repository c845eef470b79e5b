package wander

import (
	"github.com/akmonengine/wander/geom"
	"github.com/akmonengine/wander/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// candidate pairs an in-range face with its precomputed area. Area is
// proportional to the face's selection probability.
type candidate struct {
	tri  mesh.Triangle
	area float64
}

// collectCandidates runs the in-range filter over the mesh's faces and
// returns the candidate set for one sphere query. A non-nil grid restricts
// the scan to faces near the sphere; either way candidates come out in
// ascending face order, which keeps weighted selection deterministic for a
// given random sequence.
func collectCandidates(m *mesh.Mesh, grid *mesh.Grid, center mgl64.Vec3, radius float64) []candidate {
	sphereBounds := mesh.SphereBounds(center, radius)

	var candidates []candidate
	if grid != nil {
		// Query already rejects faces whose bounds miss the sphere's box
		for _, i := range grid.Query(sphereBounds) {
			candidates = appendIfInRange(candidates, m.Triangle(i), center, radius)
		}
		return candidates
	}

	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		if !tri.Bounds().Overlaps(sphereBounds) {
			continue
		}
		candidates = appendIfInRange(candidates, tri, center, radius)
	}

	return candidates
}

func appendIfInRange(candidates []candidate, tri mesh.Triangle, center mgl64.Vec3, radius float64) []candidate {
	if !inRange(tri, center, radius) {
		return candidates
	}

	return append(candidates, candidate{tri: tri, area: tri.Area()})
}

// inRange reports whether a face passes the sphere filter: one of its edges
// passes strictly within the radius of the center, or the center projects
// onto the face's interior at a distance under the radius. The second test
// covers a center hovering over a face so large that no edge comes near it.
//
// This is a conservative approximation, not an exact sphere-triangle
// intersection; it only promises that accepted faces are worth sampling.
// The retry loop in samplePoint rejects any point that still falls outside
// the sphere.
func inRange(tri mesh.Triangle, center mgl64.Vec3, radius float64) bool {
	if geom.DistanceToSegment(center, tri.V1, tri.V2) < radius ||
		geom.DistanceToSegment(center, tri.V2, tri.V3) < radius ||
		geom.DistanceToSegment(center, tri.V3, tri.V1) < radius {
		return true
	}

	if distance, ok := geom.DistanceToProjectionInTriangle(tri.V1, tri.V2, tri.V3, center); ok {
		return distance < radius
	}

	return false
}

// pickWeighted selects a face with probability proportional to its area:
// draw uniformly in [0, totalArea), walk the candidates accumulating area,
// and the first face whose cumulative area strictly exceeds the draw wins.
// Zero-area faces never win. Reports false when the set is empty or carries
// no area at all.
func pickWeighted(candidates []candidate, totalArea float64, src RandomSource) (mesh.Triangle, bool) {
	if len(candidates) == 0 || totalArea <= 0 {
		return mesh.Triangle{}, false
	}

	draw := src.Float64() * totalArea

	sum := 0.0
	last := -1
	for i, c := range candidates {
		sum += c.area
		if sum > draw {
			return c.tri, true
		}
		if c.area > 0 {
			last = i
		}
	}

	// Accumulated rounding can leave the draw unexceeded; settle on the last
	// face that carries any area
	if last >= 0 {
		return candidates[last].tri, true
	}

	return mesh.Triangle{}, false
}

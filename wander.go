// Package wander picks random positions on a triangle mesh, constrained to a
// sphere. The typical use is choosing a random navigation destination that is
// guaranteed to sit on walkable geometry within a given range of an agent.
//
// The position is approximately uniform by surface area over the portion of
// the mesh inside the sphere: faces in range of the sphere are selected with
// probability proportional to their whole area, then a barycentric point is
// drawn on the selected face and validated against the sphere, re-selecting
// on failure. Whole-face weighting plus rejection approximates (not exactly
// matches) uniform sampling over each face's spherical cap.
package wander

import (
	"fmt"
	"math/rand"

	"github.com/akmonengine/wander/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMaxAttempts bounds the sample/validate retry loop. The in-range
// filter is approximate, so a sampled point can land outside the sphere near
// a far corner of its face; re-rolling corrects for this.
const DefaultMaxAttempts = 100

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
// Thread safety of the source is the caller's concern.
type RandomSource interface {
	Float64() float64
}

// globalSource falls back on the process-wide math/rand source.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Sampler draws sphere-constrained positions from a fixed mesh, reusing a
// spatial grid across queries. The zero value is not usable; construct with
// NewSampler.
type Sampler struct {
	// Rand supplies uniform values in [0, 1). Nil uses the global math/rand
	// source.
	Rand RandomSource
	// MaxAttempts caps the sample/validate loop; values <= 0 mean
	// DefaultMaxAttempts.
	MaxAttempts int

	mesh *mesh.Mesh
	grid *mesh.Grid
}

// NewSampler builds a reusable sampler over m, hashing its faces into a
// spatial grid so repeated queries skip faces far from the sphere.
func NewSampler(m *mesh.Mesh) *Sampler {
	return &Sampler{
		mesh: m,
		grid: mesh.NewGrid(m),
	}
}

// SampleInSphere returns a position on the mesh inside the sphere
// (center, radius), approximately uniform by surface area.
//
// When no face is in range, or no valid point is found within the attempt
// budget, it returns center — a degenerate but valid result, not an error.
// Callers that need to tell the two apart can compare the result to center.
// Errors are reserved for contract violations (negative radius).
func (s *Sampler) SampleInSphere(center mgl64.Vec3, radius float64) (mgl64.Vec3, error) {
	if radius < 0 {
		return mgl64.Vec3{}, fmt.Errorf("negative radius %v", radius)
	}

	candidates := collectCandidates(s.mesh, s.grid, center, radius)

	return samplePoint(candidates, center, radius, s.source(), s.attempts()), nil
}

func (s *Sampler) source() RandomSource {
	if s.Rand != nil {
		return s.Rand
	}
	return globalSource{}
}

func (s *Sampler) attempts() int {
	if s.MaxAttempts > 0 {
		return s.MaxAttempts
	}
	return DefaultMaxAttempts
}

// SamplePositionOnMeshInSphere is the one-shot form: it validates the raw
// vertex/index arrays, then samples a single position on the mesh inside the
// sphere (center, radius). Every index triple in indices names one face's
// vertices.
//
// The whole call is self-contained and allocates no lasting state; for
// repeated queries against the same geometry, build a Sampler once instead.
func SamplePositionOnMeshInSphere(vertices []mgl64.Vec3, indices []int, center mgl64.Vec3, radius float64) (mgl64.Vec3, error) {
	if radius < 0 {
		return mgl64.Vec3{}, fmt.Errorf("negative radius %v", radius)
	}

	m, err := mesh.New(vertices, indices)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("invalid mesh: %w", err)
	}

	candidates := collectCandidates(m, nil, center, radius)

	return samplePoint(candidates, center, radius, globalSource{}, DefaultMaxAttempts), nil
}

// samplePoint runs the bounded select/sample/validate loop over the candidate
// set. Each attempt re-selects a face weighted by area, draws barycentric
// weights x ∈ [0,1) and y ∈ [0,1-x), and accepts the point iff it lies
// strictly inside the sphere. Exhausting the attempt budget falls back on the
// sphere center.
func samplePoint(candidates []candidate, center mgl64.Vec3, radius float64, src RandomSource, maxAttempts int) mgl64.Vec3 {
	if len(candidates) == 0 {
		return center
	}

	totalArea := 0.0
	for _, c := range candidates {
		totalArea += c.area
	}

	radiusSqr := radius * radius
	for attempt := 0; attempt < maxAttempts; attempt++ {
		tri, ok := pickWeighted(candidates, totalArea, src)
		if !ok {
			return center
		}

		x := src.Float64()
		y := src.Float64() * (1 - x)
		point := tri.PointAt(x, y)

		if point.Sub(center).LenSqr() < radiusSqr {
			return point
		}
	}

	return center
}

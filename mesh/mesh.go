// Package mesh holds the triangle mesh model that wander samples from: an
// indexed vertex/index pair validated at construction, plus the axis-aligned
// bounds and uniform spatial grid used to narrow sphere queries.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a single mesh face. Vertex order matters: it fixes the normal
// direction and the barycentric parameterization used for sampling.
type Triangle struct {
	V1, V2, V3 mgl64.Vec3
}

// Area returns the face's surface area, ‖(V2-V1) × (V3-V1)‖ / 2.
// Degenerate faces report 0.
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Len() / 2
}

// PointAt maps barycentric weights (x, y) to the world position
// V1 + x·(V2-V1) + y·(V3-V1). Points on the face satisfy x, y ≥ 0 and x+y ≤ 1.
func (t Triangle) PointAt(x, y float64) mgl64.Vec3 {
	return t.V1.Add(t.V2.Sub(t.V1).Mul(x)).Add(t.V3.Sub(t.V1).Mul(y))
}

// Bounds returns the face's axis-aligned bounding box.
func (t Triangle) Bounds() AABB {
	min := t.V1
	max := t.V1
	for _, v := range [2]mgl64.Vec3{t.V2, t.V3} {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}

	return AABB{Min: min, Max: max}
}

// Mesh is an indexed triangle mesh. Construct with New, which validates the
// index buffer; the mesh is read-only afterwards.
type Mesh struct {
	vertices []mgl64.Vec3
	indices  []int
}

// New wraps a vertex/index pair after validating the caller contract: the
// index count must be a multiple of 3 and every index must address a vertex.
// The slices are retained, not copied; callers must not mutate them while the
// mesh is in use.
func New(vertices []mgl64.Vec3, indices []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}

	for i, index := range indices {
		if index < 0 || index >= len(vertices) {
			return nil, fmt.Errorf("index %d at position %d is out of bounds (%d vertices)", index, i, len(vertices))
		}
	}

	return &Mesh{vertices: vertices, indices: indices}, nil
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.indices) / 3
}

// Triangle returns face i, built from the i-th consecutive index triple.
func (m *Mesh) Triangle(i int) Triangle {
	return Triangle{
		V1: m.vertices[m.indices[3*i]],
		V2: m.vertices[m.indices[3*i+1]],
		V3: m.vertices[m.indices[3*i+2]],
	}
}

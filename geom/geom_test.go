package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name     string
		p        mgl64.Vec3
		a        mgl64.Vec3
		b        mgl64.Vec3
		expected float64
	}{
		{
			name:     "point projects inside the segment",
			p:        mgl64.Vec3{0.5, 1, 0},
			a:        mgl64.Vec3{0, 0, 0},
			b:        mgl64.Vec3{1, 0, 0},
			expected: 1,
		},
		{
			name:     "point on the segment",
			p:        mgl64.Vec3{0.25, 0, 0},
			a:        mgl64.Vec3{0, 0, 0},
			b:        mgl64.Vec3{1, 0, 0},
			expected: 0,
		},
		{
			name:     "projection clamped to endpoint A",
			p:        mgl64.Vec3{-3, 4, 0},
			a:        mgl64.Vec3{0, 0, 0},
			b:        mgl64.Vec3{1, 0, 0},
			expected: 5,
		},
		{
			name:     "projection clamped to endpoint B",
			p:        mgl64.Vec3{4, 4, 0},
			a:        mgl64.Vec3{0, 0, 0},
			b:        mgl64.Vec3{1, 0, 0},
			expected: 5,
		},
		{
			name:     "zero-length segment collapses to a point",
			p:        mgl64.Vec3{0, 3, 4},
			a:        mgl64.Vec3{0, 0, 0},
			b:        mgl64.Vec3{0, 0, 0},
			expected: 5,
		},
		{
			name:     "segment off the axes",
			p:        mgl64.Vec3{0, 2, 0},
			a:        mgl64.Vec3{-1, 0, 0},
			b:        mgl64.Vec3{1, 0, 0},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceToSegment(tt.p, tt.a, tt.b)
			if !almostEqual(got, tt.expected) {
				t.Errorf("DistanceToSegment() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDistanceToProjectionInTriangle(t *testing.T) {
	// Right triangle in the XZ plane with the right angle at the origin
	v1 := mgl64.Vec3{0, 0, 0}
	v2 := mgl64.Vec3{1, 0, 0}
	v3 := mgl64.Vec3{0, 0, 1}

	t.Run("point above the interior", func(t *testing.T) {
		distance, ok := DistanceToProjectionInTriangle(v1, v2, v3, mgl64.Vec3{0.25, 2, 0.25})
		if !ok {
			t.Fatal("expected the projection to land inside the triangle")
		}
		if !almostEqual(distance, 2) {
			t.Errorf("distance = %v, expected 2", distance)
		}
	})

	t.Run("point above a vertex", func(t *testing.T) {
		distance, ok := DistanceToProjectionInTriangle(v1, v2, v3, mgl64.Vec3{0, -3, 0})
		if !ok {
			t.Fatal("expected the projection to land inside the triangle")
		}
		if !almostEqual(distance, 3) {
			t.Errorf("distance = %v, expected 3", distance)
		}
	})

	t.Run("point on the triangle", func(t *testing.T) {
		distance, ok := DistanceToProjectionInTriangle(v1, v2, v3, mgl64.Vec3{0.2, 0, 0.2})
		if !ok {
			t.Fatal("expected the projection to land inside the triangle")
		}
		if !almostEqual(distance, 0) {
			t.Errorf("distance = %v, expected 0", distance)
		}
	})

	t.Run("projection outside the triangle", func(t *testing.T) {
		if _, ok := DistanceToProjectionInTriangle(v1, v2, v3, mgl64.Vec3{2, 1, 2}); ok {
			t.Error("expected no distance for a projection outside the triangle")
		}
	})

	t.Run("projection past the hypotenuse", func(t *testing.T) {
		// a = b = 0.75 satisfies the per-edge bounds but not b <= 1-a
		if _, ok := DistanceToProjectionInTriangle(v1, v2, v3, mgl64.Vec3{0.75, 1, 0.75}); ok {
			t.Error("expected no distance for a projection past the hypotenuse")
		}
	})

	t.Run("degenerate triangle with two identical vertices", func(t *testing.T) {
		if _, ok := DistanceToProjectionInTriangle(v1, v2, v2, mgl64.Vec3{0.5, 1, 0}); ok {
			t.Error("expected no distance for a zero-area triangle")
		}
	})

	t.Run("degenerate collinear triangle", func(t *testing.T) {
		if _, ok := DistanceToProjectionInTriangle(v1, v2, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{0.5, 1, 0}); ok {
			t.Error("expected no distance for a collinear triangle")
		}
	})

	t.Run("triangle away from the origin", func(t *testing.T) {
		offset := mgl64.Vec3{10, -4, 7}
		distance, ok := DistanceToProjectionInTriangle(
			v1.Add(offset), v2.Add(offset), v3.Add(offset),
			mgl64.Vec3{0.25, 1.5, 0.25}.Add(offset),
		)
		if !ok {
			t.Fatal("expected the projection to land inside the triangle")
		}
		if !almostEqual(distance, 1.5) {
			t.Errorf("distance = %v, expected 1.5", distance)
		}
	})
}

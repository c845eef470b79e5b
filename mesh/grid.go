package mesh

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// cellKey - coordinates of a cell in 3D space
type cellKey struct {
	X, Y, Z int
}

// cell - container of face indices hashed into the cell
type cell struct {
	faceIndices []int
}

// Queries spanning more cells than this per axis degrade to a full scan over
// the per-face bounds; hashing no longer saves work at that point.
const maxQuerySpan = 64

// Grid is a uniform spatial hash over a mesh's faces. It answers conservative
// "which faces might touch this box" queries; callers still run their exact
// test on the returned faces. The mesh is static, so the grid is built once
// and never cleared.
type Grid struct {
	cellSize float64
	cells    []cell
	cellMask int
	bounds   []AABB // per-face bounds, indexed by face
}

// NewGrid hashes every face of m into a uniform grid. The cell size follows
// the largest face extent, so a face never occupies more than 8 cells.
func NewGrid(m *Mesh) *Grid {
	count := m.TriangleCount()

	bounds := make([]AABB, count)
	maxExtent := 0.0
	for i := 0; i < count; i++ {
		b := m.Triangle(i).Bounds()
		bounds[i] = b

		extent := b.Max.Sub(b.Min)
		maxExtent = math.Max(maxExtent, math.Max(extent.X(), math.Max(extent.Y(), extent.Z())))
	}

	cellSize := maxExtent
	if cellSize <= 0 {
		cellSize = 1 // empty or point-degenerate mesh
	}

	numCells := nextPowerOfTwo(max(count, 64))
	cells := make([]cell, numCells)

	g := &Grid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
		bounds:   bounds,
	}

	for i := 0; i < count; i++ {
		g.insert(i, bounds[i])
	}
	for i := range g.cells {
		if len(g.cells[i].faceIndices) > 1 {
			sort.Ints(g.cells[i].faceIndices)
		}
	}

	return g
}

// nextPowerOfTwo - rounds up to the next power of 2
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// insert - hashes a face into every cell its bounds occupy
func (g *Grid) insert(faceIndex int, bounds AABB) {
	minCell := g.worldToCell(bounds.Min)
	maxCell := g.worldToCell(bounds.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := g.hashCell(cellKey{x, y, z})

				g.cells[cellIdx].faceIndices = append(
					g.cells[cellIdx].faceIndices,
					faceIndex,
				)
			}
		}
	}
}

// Query returns the indices of faces whose bounds overlap query, in ascending
// face order so downstream candidate ordering stays deterministic.
func (g *Grid) Query(query AABB) []int {
	minCell := g.worldToCell(query.Min)
	maxCell := g.worldToCell(query.Max)

	if maxCell.X-minCell.X >= maxQuerySpan ||
		maxCell.Y-minCell.Y >= maxQuerySpan ||
		maxCell.Z-minCell.Z >= maxQuerySpan {
		return g.scanAll(query)
	}

	seen := make([]bool, len(g.bounds))
	var faces []int

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := g.hashCell(cellKey{x, y, z})

				for _, faceIndex := range g.cells[cellIdx].faceIndices {
					// Faces occupy several cells, and distinct cells can hash
					// to the same slot
					if seen[faceIndex] {
						continue
					}
					seen[faceIndex] = true

					if g.bounds[faceIndex].Overlaps(query) {
						faces = append(faces, faceIndex)
					}
				}
			}
		}
	}

	sort.Ints(faces)
	return faces
}

// scanAll - linear fallback for queries covering most of the grid
func (g *Grid) scanAll(query AABB) []int {
	var faces []int
	for faceIndex, bounds := range g.bounds {
		if bounds.Overlaps(query) {
			faces = append(faces, faceIndex)
		}
	}
	return faces
}

// worldToCell - converts a world position into cell coordinates
func (g *Grid) worldToCell(pos mgl64.Vec3) cellKey {
	return cellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
		Z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

// hashCell - hashes a cell to an index into the cells array
func (g *Grid) hashCell(key cellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}

package scene

import (
	"soft-render/core"
	"soft-render/math"
)

// DrawMode selects how a mesh's indices are interpreted by the renderer.
type DrawMode int

const (
	DrawTriangles DrawMode = iota // triples of indices form triangles (default)
	DrawLines                     // pairs of indices form line segments
)

// Mesh holds CPU-side vertex and index data.
//
// Triangle indices wind clockwise in model space when the face is viewed
// from outside; the viewport Y-flip turns that into the counter-clockwise
// screen-space winding the front-face test expects.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
	DrawMode DrawMode

	// Cached local-space AABB (computed by CreateMeshFromData).
	LocalAABB    AABB
	HasLocalAABB bool
}

func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]core.Vertex, 0),
		Indices:  make([]uint32, 0),
	}
}

// CreateMeshFromData builds a Mesh and pre-computes its local-space AABB.
func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
	if len(vertices) > 0 {
		m.LocalAABB = computeLocalAABB(vertices)
		m.HasLocalAABB = true
	}
	return m
}

func (m *Mesh) TriangleCount() int {
	if m.DrawMode != DrawTriangles {
		return 0
	}
	return len(m.Indices) / 3
}

// Triangle returns the three vertices of triangle i, in index order.
func (m *Mesh) Triangle(i int) (core.Vertex, core.Vertex, core.Vertex) {
	return m.Vertices[m.Indices[i*3]], m.Vertices[m.Indices[i*3+1]], m.Vertices[m.Indices[i*3+2]]
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

func computeLocalAABB(vertices []core.Vertex) AABB {
	min := vertices[0].Position
	max := vertices[0].Position
	for i := 1; i < len(vertices); i++ {
		p := vertices[i].Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return AABB{Min: min, Max: max}
}

// TransformAABB returns the world-space AABB of a local box under m,
// by taking the bounds of its 8 transformed corners.
func TransformAABB(local AABB, m math.Mat4) AABB {
	mn, mx := local.Min, local.Max
	corners := [8]math.Vec3{
		{X: mn.X, Y: mn.Y, Z: mn.Z},
		{X: mx.X, Y: mn.Y, Z: mn.Z},
		{X: mn.X, Y: mx.Y, Z: mn.Z},
		{X: mx.X, Y: mx.Y, Z: mn.Z},
		{X: mn.X, Y: mn.Y, Z: mx.Z},
		{X: mx.X, Y: mn.Y, Z: mx.Z},
		{X: mn.X, Y: mx.Y, Z: mx.Z},
		{X: mx.X, Y: mx.Y, Z: mx.Z},
	}
	first := m.MulPoint(corners[0])
	out := AABB{Min: first, Max: first}
	for i := 1; i < 8; i++ {
		wp := m.MulPoint(corners[i])
		if wp.X < out.Min.X {
			out.Min.X = wp.X
		}
		if wp.Y < out.Min.Y {
			out.Min.Y = wp.Y
		}
		if wp.Z < out.Min.Z {
			out.Min.Z = wp.Z
		}
		if wp.X > out.Max.X {
			out.Max.X = wp.X
		}
		if wp.Y > out.Max.Y {
			out.Max.Y = wp.Y
		}
		if wp.Z > out.Max.Z {
			out.Max.Z = wp.Z
		}
	}
	return out
}

// WorldAABB computes the world-space AABB of the mesh under worldMatrix,
// using the cached local box when available.
func (m *Mesh) WorldAABB(worldMatrix math.Mat4) AABB {
	if m.HasLocalAABB {
		return TransformAABB(m.LocalAABB, worldMatrix)
	}
	if len(m.Vertices) == 0 {
		return AABB{}
	}
	first := worldMatrix.MulPoint(m.Vertices[0].Position)
	out := AABB{Min: first, Max: first}
	for i := 1; i < len(m.Vertices); i++ {
		wp := worldMatrix.MulPoint(m.Vertices[i].Position)
		if wp.X < out.Min.X {
			out.Min.X = wp.X
		}
		if wp.Y < out.Min.Y {
			out.Min.Y = wp.Y
		}
		if wp.Z < out.Min.Z {
			out.Min.Z = wp.Z
		}
		if wp.X > out.Max.X {
			out.Max.X = wp.X
		}
		if wp.Y > out.Max.Y {
			out.Max.Y = wp.Y
		}
		if wp.Z > out.Max.Z {
			out.Max.Z = wp.Z
		}
	}
	return out
}

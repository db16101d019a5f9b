package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soft-render/core"
	"soft-render/math"
)

// assertOutwardClockwise checks that every non-degenerate triangle winds
// clockwise when viewed from outside the mesh: the counter-clockwise cross
// product of its edges must point inward, against the outward direction.
func assertOutwardClockwise(t *testing.T, m *Mesh, outward func(centroid math.Vec3) math.Vec3) {
	t.Helper()
	for i := 0; i < m.TriangleCount(); i++ {
		v0, v1, v2 := m.Triangle(i)
		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v1.Position)
		cross := e1.Cross(e2)
		if cross.LengthSqr() < 1e-10 {
			continue // pole caps on spheres collapse to zero area
		}
		centroid := v0.Position.Add(v1.Position).Add(v2.Position).Mul(1.0 / 3.0)
		assert.Negative(t, cross.Dot(outward(centroid)), "triangle %d winds counter-clockwise", i)
	}
}

func fromCenter(centroid math.Vec3) math.Vec3 { return centroid }

func TestCreateTriangle(t *testing.T) {
	m := CreateTriangle()
	require.Len(t, m.Vertices, 3)
	require.Len(t, m.Indices, 3)
	assertOutwardClockwise(t, m, func(math.Vec3) math.Vec3 { return math.Vec3Front })
}

func TestCreateQuad(t *testing.T) {
	m := CreateQuad()
	require.Len(t, m.Vertices, 4)
	require.Len(t, m.Indices, 6)
	assertOutwardClockwise(t, m, func(math.Vec3) math.Vec3 { return math.Vec3Front })
}

func TestCreateCube(t *testing.T) {
	m := CreateCube(2)
	require.Len(t, m.Vertices, 24)
	require.Len(t, m.Indices, 36)

	assertOutwardClockwise(t, m, fromCenter)

	// Winding also agrees with the authored face normals.
	for i := 0; i < m.TriangleCount(); i++ {
		v0, v1, v2 := m.Triangle(i)
		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v1.Position)
		assert.Negative(t, e1.Cross(e2).Dot(v0.Normal))
	}

	require.True(t, m.HasLocalAABB)
	assert.Equal(t, math.Vec3{X: -1, Y: -1, Z: -1}, m.LocalAABB.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, m.LocalAABB.Max)
}

func TestCreateColoredCube(t *testing.T) {
	m := CreateColoredCube(1)

	colors := make(map[[4]float32]bool)
	for _, v := range m.Vertices {
		colors[[4]float32{v.Color.R, v.Color.G, v.Color.B, v.Color.A}] = true
	}
	assert.Len(t, colors, 6, "one distinct color per face")
}

func TestCreateSphere(t *testing.T) {
	m := CreateSphere(2, 16, 12)
	require.NotEmpty(t, m.Vertices)

	for _, v := range m.Vertices {
		assert.InDelta(t, 2.0, v.Position.Length(), 1e-4)
		assert.InDelta(t, 1.0, v.Normal.Length(), 1e-4)
	}

	assertOutwardClockwise(t, m, fromCenter)
}

func TestCreateSphereClampsParameters(t *testing.T) {
	m := CreateSphere(1, 1, 1)
	// Clamped to 3 segments and 2 rings.
	assert.Len(t, m.Vertices, 4*3)
}

func TestCreatePlane(t *testing.T) {
	m := CreatePlane(4, 4, 2)
	require.Len(t, m.Vertices, 9)
	require.Len(t, m.Indices, 24)

	for _, v := range m.Vertices {
		assert.Equal(t, float32(0), v.Position.Y)
		assert.Equal(t, math.Vec3Up, v.Normal)
	}
	assertOutwardClockwise(t, m, func(math.Vec3) math.Vec3 { return math.Vec3Up })
}

func TestCreateGrid(t *testing.T) {
	m := CreateGrid(10, 5, core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1})

	assert.Equal(t, DrawLines, m.DrawMode)
	// 6 lines per axis, 2 vertices and 2 indices per line.
	assert.Len(t, m.Vertices, 24)
	assert.Len(t, m.Indices, 24)

	// All lines stay inside the half-extent.
	for _, v := range m.Vertices {
		assert.LessOrEqual(t, v.Position.X, float32(5))
		assert.GreaterOrEqual(t, v.Position.X, float32(-5))
		assert.Equal(t, float32(0), v.Position.Y)
	}
}

package scene

import (
	stdmath "math"

	"soft-render/core"
	"soft-render/math"
)

// Primitive generators. All triangle faces wind clockwise in model space
// when viewed from outside (see Mesh).

// CreateTriangle returns a single triangle in the z=0 plane with one red,
// one green and one blue corner.
func CreateTriangle() *Mesh {
	vertices := []core.Vertex{
		{Position: math.Vec3{X: 0, Y: -0.5, Z: 0}, Normal: math.Vec3Front, UV: math.Vec2{X: 0.5, Y: 0}, Color: core.ColorRed},
		{Position: math.Vec3{X: 0.5, Y: 0.5, Z: 0}, Normal: math.Vec3Front, UV: math.Vec2{X: 1, Y: 1}, Color: core.ColorGreen},
		{Position: math.Vec3{X: -0.5, Y: 0.5, Z: 0}, Normal: math.Vec3Front, UV: math.Vec2{X: 0, Y: 1}, Color: core.ColorBlue},
	}
	indices := []uint32{0, 2, 1}
	return CreateMeshFromData("Triangle", vertices, indices)
}

func CreateQuad() *Mesh {
	vertices := []core.Vertex{
		{Position: math.Vec3{X: -0.5, Y: -0.5, Z: 0}, Normal: math.Vec3Front, UV: math.Vec2{X: 0, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: 0.5, Y: -0.5, Z: 0}, Normal: math.Vec3Front, UV: math.Vec2{X: 1, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: 0.5, Y: 0.5, Z: 0}, Normal: math.Vec3Front, UV: math.Vec2{X: 1, Y: 1}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -0.5, Y: 0.5, Z: 0}, Normal: math.Vec3Front, UV: math.Vec2{X: 0, Y: 1}, Color: core.ColorWhite},
	}
	indices := []uint32{0, 2, 1, 2, 0, 3}
	return CreateMeshFromData("Quad", vertices, indices)
}

// CreateCube generates an axis-aligned cube with uniform vertex color.
func CreateCube(size float32) *Mesh {
	return createCube(size, [6]core.Color{
		core.ColorWhite, core.ColorWhite, core.ColorWhite,
		core.ColorWhite, core.ColorWhite, core.ColorWhite,
	})
}

// CreateColoredCube generates a cube with one color per face, in the order
// front, back, top, bottom, right, left.
func CreateColoredCube(size float32) *Mesh {
	return createCube(size, [6]core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue,
		core.ColorYellow, core.ColorCyan, core.ColorMagenta,
	})
}

func createCube(size float32, faceColors [6]core.Color) *Mesh {
	s := size / 2

	vertices := []core.Vertex{
		// Front face (+z)
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3Front, UV: math.Vec2{X: 0, Y: 0}, Color: faceColors[0]},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3Front, UV: math.Vec2{X: 1, Y: 0}, Color: faceColors[0]},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3Front, UV: math.Vec2{X: 1, Y: 1}, Color: faceColors[0]},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3Front, UV: math.Vec2{X: 0, Y: 1}, Color: faceColors[0]},
		// Back face (-z)
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3Back, UV: math.Vec2{X: 1, Y: 0}, Color: faceColors[1]},
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3Back, UV: math.Vec2{X: 0, Y: 0}, Color: faceColors[1]},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3Back, UV: math.Vec2{X: 0, Y: 1}, Color: faceColors[1]},
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3Back, UV: math.Vec2{X: 1, Y: 1}, Color: faceColors[1]},
		// Top face (+y)
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3Up, UV: math.Vec2{X: 0, Y: 0}, Color: faceColors[2]},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3Up, UV: math.Vec2{X: 1, Y: 0}, Color: faceColors[2]},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3Up, UV: math.Vec2{X: 1, Y: 1}, Color: faceColors[2]},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3Up, UV: math.Vec2{X: 0, Y: 1}, Color: faceColors[2]},
		// Bottom face (-y)
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3Down, UV: math.Vec2{X: 0, Y: 1}, Color: faceColors[3]},
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3Down, UV: math.Vec2{X: 1, Y: 1}, Color: faceColors[3]},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3Down, UV: math.Vec2{X: 1, Y: 0}, Color: faceColors[3]},
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3Down, UV: math.Vec2{X: 0, Y: 0}, Color: faceColors[3]},
		// Right face (+x)
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3Right, UV: math.Vec2{X: 0, Y: 0}, Color: faceColors[4]},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3Right, UV: math.Vec2{X: 1, Y: 0}, Color: faceColors[4]},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3Right, UV: math.Vec2{X: 1, Y: 1}, Color: faceColors[4]},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3Right, UV: math.Vec2{X: 0, Y: 1}, Color: faceColors[4]},
		// Left face (-x)
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3Left, UV: math.Vec2{X: 1, Y: 0}, Color: faceColors[5]},
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3Left, UV: math.Vec2{X: 0, Y: 0}, Color: faceColors[5]},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3Left, UV: math.Vec2{X: 0, Y: 1}, Color: faceColors[5]},
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3Left, UV: math.Vec2{X: 1, Y: 1}, Color: faceColors[5]},
	}

	indices := []uint32{
		0, 2, 1, 2, 0, 3,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 14, 13, 14, 12, 15,
		16, 17, 18, 18, 19, 16,
		20, 22, 21, 22, 20, 23,
	}

	return CreateMeshFromData("Cube", vertices, indices)
}

// CreatePlane generates a flat plane in the y=0 plane, facing up.
func CreatePlane(width, depth float32, subdivisions int) *Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}

	var vertices []core.Vertex
	var indices []uint32

	for row := 0; row <= subdivisions; row++ {
		for col := 0; col <= subdivisions; col++ {
			u := float32(col) / float32(subdivisions)
			v := float32(row) / float32(subdivisions)
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: (u - 0.5) * width, Y: 0, Z: (v - 0.5) * depth},
				Normal:   math.Vec3Up,
				UV:       math.Vec2{X: u, Y: v},
				Color:    core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1.0},
			})
		}
	}

	stride := uint32(subdivisions + 1)
	for row := 0; row < subdivisions; row++ {
		for col := 0; col < subdivisions; col++ {
			a := uint32(row)*stride + uint32(col)
			b := a + 1
			c := a + stride + 1
			d := a + stride
			indices = append(indices, a, b, c, a, c, d)
		}
	}

	return CreateMeshFromData("Plane", vertices, indices)
}

// CreateSphere generates a UV-sphere mesh.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * stdmath.Pi / float64(segments)
			sinTheta := float32(stdmath.Sin(theta))
			cosTheta := float32(stdmath.Cos(theta))

			normal := math.Vec3{X: sinPhi * cosTheta, Y: cosPhi, Z: sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       math.Vec2{X: float32(seg) / float32(segments), Y: float32(ring) / float32(rings)},
				Color:    core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1.0},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateGrid generates a line mesh of evenly spaced grid lines in the y=0
// plane, centered on the origin. Rendered with DrawLines.
func CreateGrid(size float32, divisions int, color core.Color) *Mesh {
	if divisions < 1 {
		divisions = 1
	}

	var vertices []core.Vertex
	var indices []uint32
	half := size / 2
	step := size / float32(divisions)

	addLine := func(a, b math.Vec3) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: math.Vec3Up, Color: color},
			core.Vertex{Position: b, Normal: math.Vec3Up, Color: color},
		)
		indices = append(indices, base, base+1)
	}

	for i := 0; i <= divisions; i++ {
		offset := -half + float32(i)*step
		addLine(math.Vec3{X: offset, Y: 0, Z: -half}, math.Vec3{X: offset, Y: 0, Z: half})
		addLine(math.Vec3{X: -half, Y: 0, Z: offset}, math.Vec3{X: half, Y: 0, Z: offset})
	}

	mesh := CreateMeshFromData("Grid", vertices, indices)
	mesh.DrawMode = DrawLines
	return mesh
}

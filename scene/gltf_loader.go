package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"soft-render/core"
	"soft-render/math"
)

// LoadGLTF opens a .glb or .gltf file and returns one Node per mesh-bearing
// glTF node. The glTF node hierarchy is baked into world space: every vertex
// is pre-transformed by its node's accumulated matrix and the returned Nodes
// carry identity transforms. glTF authors front faces counter-clockwise, so
// triangle winding is flipped to match the renderer's clockwise convention.
func LoadGLTF(path string) ([]*Node, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	meshes := make([][]*Mesh, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := loadGLTFPrimitive(doc, gm.Name, pi, *prim)
			if err != nil {
				return nil, fmt.Errorf("gltf mesh %d primitive %d: %w", mi, pi, err)
			}
			meshes[mi] = append(meshes[mi], m)
		}
	}

	var roots []int
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		roots = doc.Scenes[*doc.Scene].Nodes
	} else {
		hasParent := make([]bool, len(doc.Nodes))
		for _, gn := range doc.Nodes {
			for _, c := range gn.Children {
				if c < len(hasParent) {
					hasParent[c] = true
				}
			}
		}
		for i := range doc.Nodes {
			if !hasParent[i] {
				roots = append(roots, i)
			}
		}
	}

	var result []*Node
	for _, rootIdx := range roots {
		if rootIdx >= len(doc.Nodes) {
			continue
		}
		result = flattenGLTFNode(doc, meshes, rootIdx, math.Mat4Identity(), result)
	}
	return result, nil
}

func flattenGLTFNode(doc *gltf.Document, meshes [][]*Mesh, nodeIdx int, parent math.Mat4, out []*Node) []*Node {
	gn := doc.Nodes[nodeIdx]
	world := parent.Mul(gltfNodeMatrix(gn))

	if gn.Mesh != nil && *gn.Mesh < len(meshes) {
		name := gn.Name
		if name == "" {
			name = fmt.Sprintf("node_%d", nodeIdx)
		}
		for _, m := range meshes[*gn.Mesh] {
			out = append(out, NewNode(name, bakeMesh(m, world)))
		}
	}

	for _, childIdx := range gn.Children {
		if childIdx < len(doc.Nodes) {
			out = flattenGLTFNode(doc, meshes, childIdx, world, out)
		}
	}
	return out
}

func gltfNodeMatrix(gn *gltf.Node) math.Mat4 {
	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()

	translation := math.Mat4Translation(math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])})
	rotation := math.Quaternion{
		X: float32(r[0]), Y: float32(r[1]),
		Z: float32(r[2]), W: float32(r[3]),
	}.ToMat4()
	scale := math.Mat4Scale(math.Vec3{X: float32(s[0]), Y: float32(s[1]), Z: float32(s[2])})

	return translation.Mul(rotation).Mul(scale)
}

// bakeMesh returns a copy of m with positions and normals transformed by
// world. Shared between primitives of instanced meshes, so m is not mutated.
func bakeMesh(m *Mesh, world math.Mat4) *Mesh {
	verts := make([]core.Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		v.Position = world.MulPoint(v.Position)
		v.Normal = world.MulDir(v.Normal).Normalize()
		verts[i] = v
	}
	indices := make([]uint32, len(m.Indices))
	copy(indices, m.Indices)
	return CreateMeshFromData(m.Name, verts, indices)
}

func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var colors [][4]uint8

	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["COLOR_0"]; ok {
		colors, _ = modeler.ReadColor(doc, doc.Accessors[idx], nil)
	}

	baseColor := core.ColorWhite
	if prim.Material != nil && *prim.Material < len(doc.Materials) {
		if pbr := doc.Materials[*prim.Material].PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			baseColor = core.Color{
				R: float32(cf[0]), G: float32(cf[1]),
				B: float32(cf[2]), A: float32(cf[3]),
			}
		}
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3Up,
			Color:    baseColor,
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(colors) {
			c := colors[i]
			v.Color = v.Color.Modulate(core.Color{
				R: float32(c[0]) / 255.0,
				G: float32(c[1]) / 255.0,
				B: float32(c[2]) / 255.0,
				A: float32(c[3]) / 255.0,
			})
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	// CCW source data: swap the last two indices of every triangle.
	for i := 0; i+2 < len(indices); i += 3 {
		indices[i+1], indices[i+2] = indices[i+2], indices[i+1]
	}

	return CreateMeshFromData(name, verts, indices), nil
}

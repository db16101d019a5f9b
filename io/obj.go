package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"soft-render/core"
	"soft-render/math"
	"soft-render/scene"
)

// LoadOBJ parses a Wavefront .obj file into meshes, one per o/g group.
// Faces are fan-triangulated and re-wound: OBJ authors front faces
// counter-clockwise, the rasterizer expects clockwise. Material libraries
// (mtllib/usemtl) are ignored; vertices get a uniform light-gray color.
func LoadOBJ(path string) ([]*scene.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open OBJ file: %w", err)
	}
	defer f.Close()

	meshes, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return meshes, nil
}

// ParseOBJ reads OBJ text from r. Split out from LoadOBJ for testing and
// for loading from embedded or in-memory data.
func ParseOBJ(r io.Reader) ([]*scene.Mesh, error) {
	var positions []math.Vec3
	var normals []math.Vec3
	var uvs []math.Vec2

	var meshes []*scene.Mesh
	groupName := "default"
	var groupVerts []core.Vertex
	var groupIndices []uint32
	vertexMap := make(map[string]uint32) // "v/vt/vn" -> vertex index

	flush := func() {
		if len(groupVerts) > 0 {
			meshes = append(meshes, scene.CreateMeshFromData(groupName, groupVerts, groupIndices))
		}
		groupVerts = nil
		groupIndices = nil
		vertexMap = make(map[string]uint32)
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) >= 4 {
				x, _ := strconv.ParseFloat(parts[1], 32)
				y, _ := strconv.ParseFloat(parts[2], 32)
				z, _ := strconv.ParseFloat(parts[3], 32)
				positions = append(positions, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})
			}
		case "vn":
			if len(parts) >= 4 {
				x, _ := strconv.ParseFloat(parts[1], 32)
				y, _ := strconv.ParseFloat(parts[2], 32)
				z, _ := strconv.ParseFloat(parts[3], 32)
				normals = append(normals, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})
			}
		case "vt":
			if len(parts) >= 3 {
				u, _ := strconv.ParseFloat(parts[1], 32)
				v, _ := strconv.ParseFloat(parts[2], 32)
				uvs = append(uvs, math.Vec2{X: float32(u), Y: float32(v)})
			}
		case "f":
			faceVerts := make([]uint32, 0, len(parts)-1)
			for _, spec := range parts[1:] {
				if idx, ok := vertexMap[spec]; ok {
					faceVerts = append(faceVerts, idx)
					continue
				}

				vertex := parseFaceVertex(spec, positions, normals, uvs)
				newIdx := uint32(len(groupVerts))
				groupVerts = append(groupVerts, vertex)
				vertexMap[spec] = newIdx
				faceVerts = append(faceVerts, newIdx)
			}

			// Fan triangulation, winding flipped from the CCW source order.
			for i := 2; i < len(faceVerts); i++ {
				groupIndices = append(groupIndices,
					faceVerts[0], faceVerts[i], faceVerts[i-1])
			}

		case "o", "g":
			flush()
			groupName = "unnamed"
			if len(parts) > 1 {
				groupName = parts[1]
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no mesh data found")
	}
	return meshes, nil
}

// ExportOBJ writes meshes as a Wavefront .obj file. Winding is flipped back
// to the format's counter-clockwise convention, so a load/export round trip
// preserves face orientation.
func ExportOBJ(path string, meshes []*scene.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create OBJ file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	offset := uint32(0)
	for _, mesh := range meshes {
		fmt.Fprintf(w, "o %s\n", mesh.Name)

		for _, v := range mesh.Vertices {
			fmt.Fprintf(w, "v %f %f %f\n", v.Position.X, v.Position.Y, v.Position.Z)
		}
		for _, v := range mesh.Vertices {
			fmt.Fprintf(w, "vn %f %f %f\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
		}
		for _, v := range mesh.Vertices {
			fmt.Fprintf(w, "vt %f %f\n", v.UV.X, v.UV.Y)
		}

		// Faces are 1-indexed; swap the last two corners back to CCW.
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			i0 := mesh.Indices[i] + 1 + offset
			i1 := mesh.Indices[i+2] + 1 + offset
			i2 := mesh.Indices[i+1] + 1 + offset
			fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
				i0, i0, i0, i1, i1, i1, i2, i2, i2)
		}

		offset += uint32(len(mesh.Vertices))
		fmt.Fprintln(w)
	}

	return nil
}

// parseFaceVertex resolves an OBJ face vertex spec like "v/vt/vn".
// Negative indices count back from the end of the respective list.
func parseFaceVertex(spec string, positions []math.Vec3, normals []math.Vec3, uvs []math.Vec2) core.Vertex {
	v := core.Vertex{
		Normal: math.Vec3Up,
		Color:  core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1.0},
	}

	parts := strings.Split(spec, "/")

	if len(parts) >= 1 && parts[0] != "" {
		idx, _ := strconv.Atoi(parts[0])
		if idx < 0 {
			idx = len(positions) + idx + 1
		}
		if idx > 0 && idx <= len(positions) {
			v.Position = positions[idx-1]
		}
	}

	if len(parts) >= 2 && parts[1] != "" {
		idx, _ := strconv.Atoi(parts[1])
		if idx < 0 {
			idx = len(uvs) + idx + 1
		}
		if idx > 0 && idx <= len(uvs) {
			v.UV = uvs[idx-1]
		}
	}

	if len(parts) >= 3 && parts[2] != "" {
		idx, _ := strconv.Atoi(parts[2])
		if idx < 0 {
			idx = len(normals) + idx + 1
		}
		if idx > 0 && idx <= len(normals) {
			v.Normal = normals[idx-1]
		}
	}

	return v
}

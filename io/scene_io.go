package io

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"soft-render/core"
	"soft-render/math"
	"soft-render/scene"
)

// SceneFile is the top-level structure of the JSON scene format.
type SceneFile struct {
	Version    string       `json:"version"`
	Name       string       `json:"name"`
	Camera     CameraData   `json:"camera"`
	Background [4]float32   `json:"background"`
	Objects    []ObjectData `json:"objects"`
}

// CameraData stores camera state. FOV is in radians.
type CameraData struct {
	Position [3]float32 `json:"position"`
	Target   [3]float32 `json:"target"`
	FOV      float32    `json:"fov"`
	Near     float32    `json:"near"`
	Far      float32    `json:"far"`
}

// ObjectData stores one scene object. MeshType selects a primitive
// generator ("triangle", "quad", "cube", "colored_cube", "sphere",
// "plane", "grid") or "obj" with MeshFile pointing at a Wavefront file.
type ObjectData struct {
	Name     string     `json:"name"`
	Position [3]float32 `json:"position"`
	Rotation [4]float32 `json:"rotation"` // quaternion (x,y,z,w)
	Scale    [3]float32 `json:"scale"`
	Visible  bool       `json:"visible"`
	MeshType string     `json:"mesh_type"`
	MeshFile string     `json:"mesh_file,omitempty"`
}

// SaveScene serializes a scene file as indented JSON.
func SaveScene(path string, sf *SceneFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadScene deserializes a JSON scene file.
func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}

	sf := &SceneFile{}
	if err := json.Unmarshal(data, sf); err != nil {
		return nil, fmt.Errorf("parse scene file: %w", err)
	}
	return sf, nil
}

// BuildScene instantiates a loaded scene file: meshes are generated or
// loaded per object, transforms applied, and the camera configured with
// the given aspect ratio.
func BuildScene(sf *SceneFile, aspectRatio float32) (*scene.Scene, *scene.Camera, error) {
	sc := scene.NewScene()
	sc.Background = ArrayToColor(sf.Background)

	for _, obj := range sf.Objects {
		mesh, err := buildMesh(obj)
		if err != nil {
			return nil, nil, fmt.Errorf("object %q: %w", obj.Name, err)
		}
		node := scene.NewNode(obj.Name, mesh)
		node.Transform.Position = ArrayToVec3(obj.Position)
		rot := ArrayToQuat(obj.Rotation)
		if rot == (math.Quaternion{}) {
			rot = math.QuaternionIdentity()
		}
		node.Transform.Rotation = rot.Normalize()
		node.Transform.Scale = ArrayToVec3(obj.Scale)
		node.Visible = obj.Visible
		sc.AddNode(node)
	}

	cam := scene.NewCamera(sf.Camera.FOV, aspectRatio, sf.Camera.Near, sf.Camera.Far)
	cam.SetPosition(ArrayToVec3(sf.Camera.Position))
	cam.LookAt(ArrayToVec3(sf.Camera.Target))
	return sc, cam, nil
}

// CaptureScene snapshots a scene and camera into a serializable scene file.
// Objects carrying loaded or generated geometry that has no primitive name
// are recorded with their mesh name as MeshType.
func CaptureScene(name string, sc *scene.Scene, cam *scene.Camera) *SceneFile {
	sf := &SceneFile{
		Version:    "1.0",
		Name:       name,
		Background: ColorToArray(sc.Background),
		Camera: CameraData{
			Position: Vec3ToArray(cam.Position),
			Target:   Vec3ToArray(cam.Target),
			FOV:      cam.FOV,
			Near:     cam.NearPlane,
			Far:      cam.FarPlane,
		},
	}
	for _, node := range sc.Nodes {
		obj := ObjectData{
			Name:     node.Name,
			Position: Vec3ToArray(node.Transform.Position),
			Rotation: QuatToArray(node.Transform.Rotation),
			Scale:    Vec3ToArray(node.Transform.Scale),
			Visible:  node.Visible,
		}
		if node.Mesh != nil {
			obj.MeshType = meshTypeFor(node.Mesh)
		}
		sf.Objects = append(sf.Objects, obj)
	}
	return sf
}

func meshTypeFor(m *scene.Mesh) string {
	switch m.Name {
	case "Triangle", "Quad", "Cube", "Sphere", "Plane", "Grid":
		return strings.ToLower(m.Name)
	}
	return m.Name
}

func buildMesh(obj ObjectData) (*scene.Mesh, error) {
	switch obj.MeshType {
	case "triangle":
		return scene.CreateTriangle(), nil
	case "quad":
		return scene.CreateQuad(), nil
	case "cube":
		return scene.CreateCube(1.0), nil
	case "colored_cube":
		return scene.CreateColoredCube(1.0), nil
	case "sphere":
		return scene.CreateSphere(0.5, 24, 16), nil
	case "plane":
		return scene.CreatePlane(10, 10, 1), nil
	case "grid":
		return scene.CreateGrid(10, 10, core.Color{R: 0.35, G: 0.35, B: 0.35, A: 1}), nil
	case "obj":
		meshes, err := LoadOBJ(obj.MeshFile)
		if err != nil {
			return nil, err
		}
		return meshes[0], nil
	case "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown mesh type %q", obj.MeshType)
}

// Vec3ToArray converts a Vec3 to a [3]float32.
func Vec3ToArray(v math.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// ArrayToVec3 converts a [3]float32 to a Vec3.
func ArrayToVec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// ColorToArray converts a Color to a [4]float32.
func ColorToArray(c core.Color) [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// ArrayToColor converts a [4]float32 to a Color.
func ArrayToColor(a [4]float32) core.Color {
	return core.Color{R: a[0], G: a[1], B: a[2], A: a[3]}
}

// QuatToArray converts a Quaternion to a [4]float32.
func QuatToArray(q math.Quaternion) [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}

// ArrayToQuat converts a [4]float32 to a Quaternion.
func ArrayToQuat(a [4]float32) math.Quaternion {
	return math.Quaternion{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

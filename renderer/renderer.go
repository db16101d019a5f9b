package renderer

import (
	"fmt"

	"soft-render/core"
	"soft-render/math"
	"soft-render/raster"
	"soft-render/scene"
)

// Engine is the CPU rasterizing renderer. It owns the frame and depth
// buffers and keeps them sized together; the depth-tested fill assumes
// matching dimensions.
type Engine struct {
	Frame *raster.FrameBuffer
	Depth *raster.DepthBuffer

	FrustumCulling bool // disabled by default
	Wireframe      bool // draw triangle edges instead of filling
	Light          *DirectionalLight

	width  int
	height int

	// Per-frame stats (populated during RenderFrame)
	lastObjects   int
	lastVertices  int
	lastTriangles int
	lastCulled    int
}

func NewEngine() *Engine {
	return &Engine{
		Frame: raster.NewFrameBuffer(),
		Depth: raster.NewDepthBuffer(),
	}
}

// Init sizes both buffers to width x height. Fails closed: on out-of-range
// dimensions neither buffer is touched and false is returned.
func (e *Engine) Init(width, height int) bool {
	if width <= 0 || height <= 0 || width > raster.MaxWidth || height > raster.MaxHeight {
		return false
	}
	if !e.Frame.Init(width, height) {
		return false
	}
	if !e.Depth.Init(width, height) {
		return false
	}
	e.width = width
	e.height = height
	return true
}

func (e *Engine) Width() int  { return e.width }
func (e *Engine) Height() int { return e.height }

// Clear fills the framebuffer with a packed color. The depth buffer is
// cleared by RenderFrame, not here, so 2D hosts can clear and draw without
// paying for a depth pass.
func (e *Engine) Clear(packed uint32) {
	e.Frame.Clear(packed)
}

// RenderFrame rasterizes every visible node of the scene into the frame
// and depth buffers. It clears both buffers first, runs to completion, and
// touches no state outside the engine. Animation is the caller's business:
// update node transforms before calling.
func (e *Engine) RenderFrame(cam *scene.Camera, sc *scene.Scene) {
	e.Frame.Clear(raster.PackColor(sc.Background))
	e.Depth.Clear()

	view := cam.GetViewMatrix()
	proj := cam.GetProjectionMatrix()
	vp := proj.Mul(view)

	var frustum scene.Frustum
	if e.FrustumCulling {
		frustum = scene.FrustumFromVP(vp)
	}

	objects, vertices, triangles, culled := 0, 0, 0, 0

	for _, node := range sc.Nodes {
		if node.Mesh == nil || !node.Visible {
			continue
		}

		model := node.Transform.GetMatrix()

		if e.FrustumCulling {
			aabb := node.Mesh.WorldAABB(model)
			if !aabb.IntersectsFrustum(&frustum) {
				culled++
				continue
			}
		}

		mvp := vp.Mul(model)
		drawn := e.drawMesh(node.Mesh, mvp, model)

		objects++
		vertices += len(node.Mesh.Vertices)
		triangles += drawn
	}

	e.lastObjects = objects
	e.lastVertices = vertices
	e.lastTriangles = triangles
	e.lastCulled = culled
}

// drawMesh rasterizes one mesh and returns the number of triangles drawn
// (after near rejection and back-face culling). Line meshes return 0.
func (e *Engine) drawMesh(mesh *scene.Mesh, mvp, model math.Mat4) int {
	if mesh.DrawMode == scene.DrawLines {
		e.drawLineMesh(mesh, mvp)
		return 0
	}

	drawn := 0
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		v0 := mesh.Vertices[mesh.Indices[i]]
		v1 := mesh.Vertices[mesh.Indices[i+1]]
		v2 := mesh.Vertices[mesh.Indices[i+2]]

		c0 := WorldToClip(v0.Position, mvp)
		c1 := WorldToClip(v1.Position, mvp)
		c2 := WorldToClip(v2.Position, mvp)

		// No near-plane clipping: triangles that reach behind the camera
		// are dropped whole.
		if c0.W <= math.ClipWEpsilon || c1.W <= math.ClipWEpsilon || c2.W <= math.ClipWEpsilon {
			continue
		}

		s0 := NDCToScreen(ClipToNDC(c0), e.width, e.height)
		s1 := NDCToScreen(ClipToNDC(c1), e.width, e.height)
		s2 := NDCToScreen(ClipToNDC(c2), e.width, e.height)

		if !IsFrontFacing(s0.XY(), s1.XY(), s2.XY()) {
			continue
		}

		if e.Wireframe {
			e.strokeTriangle(s0, s1, s2, v0.Color)
			drawn++
			continue
		}

		sv0 := raster.Vertex{Position: s0, Color: e.shade(v0, model)}
		sv1 := raster.Vertex{Position: s1, Color: e.shade(v1, model)}
		sv2 := raster.Vertex{Position: s2, Color: e.shade(v2, model)}
		raster.FillTriangleDepthTested(e.Frame, e.Depth, sv0, sv1, sv2)
		drawn++
	}
	return drawn
}

func (e *Engine) shade(v core.Vertex, model math.Mat4) core.Color {
	if e.Light == nil {
		return v.Color
	}
	worldNormal := model.MulDir(v.Normal).Normalize()
	return e.Light.Shade(v.Color, worldNormal)
}

func (e *Engine) strokeTriangle(s0, s1, s2 math.Vec3, color core.Color) {
	packed := raster.PackColor(color)
	raster.DrawLine(e.Frame, int(s0.X), int(s0.Y), int(s1.X), int(s1.Y), packed)
	raster.DrawLine(e.Frame, int(s1.X), int(s1.Y), int(s2.X), int(s2.Y), packed)
	raster.DrawLine(e.Frame, int(s2.X), int(s2.Y), int(s0.X), int(s0.Y), packed)
}

// drawLineMesh draws index pairs as screen-space segments, used for grids
// and other helper geometry. No depth test and no culling.
func (e *Engine) drawLineMesh(mesh *scene.Mesh, mvp math.Mat4) {
	for i := 0; i+1 < len(mesh.Indices); i += 2 {
		a := mesh.Vertices[mesh.Indices[i]]
		b := mesh.Vertices[mesh.Indices[i+1]]

		ca := WorldToClip(a.Position, mvp)
		cb := WorldToClip(b.Position, mvp)
		if ca.W <= math.ClipWEpsilon || cb.W <= math.ClipWEpsilon {
			continue
		}

		sa := NDCToScreen(ClipToNDC(ca), e.width, e.height)
		sb := NDCToScreen(ClipToNDC(cb), e.width, e.height)
		raster.DrawLine(e.Frame, int(sa.X), int(sa.Y), int(sb.X), int(sb.Y), raster.PackColor(a.Color))
	}
}

// DrawStats returns the counts gathered by the last RenderFrame.
func (e *Engine) DrawStats() (objects, vertices, triangles, culled int) {
	return e.lastObjects, e.lastVertices, e.lastTriangles, e.lastCulled
}

// StatsString formats the last frame's stats for a HUD line.
func (e *Engine) StatsString() string {
	return fmt.Sprintf("obj %d  vtx %d  tri %d  culled %d",
		e.lastObjects, e.lastVertices, e.lastTriangles, e.lastCulled)
}

package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soft-render/core"
	"soft-render/math"
	"soft-render/raster"
	"soft-render/scene"
)

func testCamera() *scene.Camera {
	cam := scene.NewCamera(1.0472, 1.0, 0.1, 100.0) // 60 degrees FOV
	cam.SetPosition(math.Vec3{X: 0, Y: 0, Z: 5})
	cam.LookAt(math.Vec3Zero)
	return cam
}

func TestEngineInit(t *testing.T) {
	e := NewEngine()
	require.True(t, e.Init(64, 48))
	assert.Equal(t, 64, e.Width())
	assert.Equal(t, 48, e.Height())
	assert.Equal(t, 64, e.Frame.Width())
	assert.Equal(t, 48, e.Depth.Height())
}

func TestEngineInitFailsClosed(t *testing.T) {
	e := NewEngine()
	require.True(t, e.Init(64, 64))

	assert.False(t, e.Init(0, 64))
	assert.False(t, e.Init(64, -1))
	assert.False(t, e.Init(raster.MaxWidth+1, 64))
	assert.False(t, e.Init(64, raster.MaxHeight+1))

	// A rejected Init leaves the previous configuration in place.
	assert.Equal(t, 64, e.Width())
	assert.Equal(t, 64, e.Frame.Width())
	assert.Equal(t, 64, e.Depth.Width())
}

// Rendering a front-facing triangle colors exactly the pixels whose sample
// point passes the inside test, and a back-facing one colors none.
func TestRenderFrameTriangleCoverage(t *testing.T) {
	const size = 64

	e := NewEngine()
	require.True(t, e.Init(size, size))

	sc := scene.NewScene()
	sc.Background = core.ColorBlack
	tri := scene.CreateTriangle()
	sc.AddNode(scene.NewNode("tri", tri))

	cam := testCamera()
	e.RenderFrame(cam, sc)

	objects, _, triangles, _ := e.DrawStats()
	assert.Equal(t, 1, objects)
	assert.Equal(t, 1, triangles)

	// Recompute the screen-space vertices the engine produced.
	mvp := cam.GetViewProjectionMatrix()
	v0, v1, v2 := tri.Triangle(0)
	s0 := LocalToScreen(v0.Position, mvp, size, size)
	s1 := LocalToScreen(v1.Position, mvp, size, size)
	s2 := LocalToScreen(v2.Position, mvp, size, size)
	require.True(t, IsFrontFacing(s0.XY(), s1.XY(), s2.XY()))

	background := raster.PackColor(core.ColorBlack)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := math.Vec2{X: float32(x), Y: float32(y)}
			w0, w1, w2 := raster.Barycentric(s0.XY(), s1.XY(), s2.XY(), p)
			inside := w0 >= 0 && w1 >= 0 && w2 >= 0

			pixel, ok := e.Frame.GetPixel(x, y)
			require.True(t, ok)
			if inside {
				assert.NotEqual(t, background, pixel, "pixel (%d,%d) should be covered", x, y)
			} else {
				assert.Equal(t, background, pixel, "pixel (%d,%d) should be background", x, y)
			}
		}
	}
}

func TestRenderFrameBackFaceCulled(t *testing.T) {
	const size = 64

	e := NewEngine()
	require.True(t, e.Init(size, size))

	// Same triangle with reversed index order: every pixel stays background.
	tri := scene.CreateTriangle()
	tri.Indices = []uint32{tri.Indices[0], tri.Indices[2], tri.Indices[1]}

	sc := scene.NewScene()
	sc.Background = core.ColorBlack
	sc.AddNode(scene.NewNode("tri", tri))

	e.RenderFrame(testCamera(), sc)

	_, _, triangles, _ := e.DrawStats()
	assert.Equal(t, 0, triangles)

	background := raster.PackColor(core.ColorBlack)
	for _, pixel := range e.Frame.Pixels() {
		assert.Equal(t, background, pixel)
	}
}

func TestRenderFrameDepthOcclusion(t *testing.T) {
	const size = 64

	red := scene.CreateQuad()
	for i := range red.Vertices {
		red.Vertices[i].Color = core.ColorRed
	}
	green := scene.CreateQuad()
	for i := range green.Vertices {
		green.Vertices[i].Color = core.ColorGreen
	}

	nearNode := scene.NewNode("near", green)
	nearNode.Transform.Position = math.Vec3{X: 0, Y: 0, Z: 1}
	farNode := scene.NewNode("far", red)

	expectGreenCenter := func(t *testing.T, sc *scene.Scene) {
		e := NewEngine()
		require.True(t, e.Init(size, size))
		e.RenderFrame(testCamera(), sc)

		pixel, ok := e.Frame.GetPixel(size/2, size/2)
		require.True(t, ok)
		assert.Equal(t, raster.PackColor(core.ColorGreen), pixel)
	}

	t.Run("near drawn last", func(t *testing.T) {
		sc := scene.NewScene()
		sc.AddNode(farNode)
		sc.AddNode(nearNode)
		expectGreenCenter(t, sc)
	})

	t.Run("near drawn first", func(t *testing.T) {
		sc := scene.NewScene()
		sc.AddNode(nearNode)
		sc.AddNode(farNode)
		expectGreenCenter(t, sc)
	})
}

func TestRenderFrameFrustumCulling(t *testing.T) {
	e := NewEngine()
	require.True(t, e.Init(64, 64))
	e.FrustumCulling = true

	sc := scene.NewScene()
	visible := scene.NewNode("visible", scene.CreateCube(1))
	offscreen := scene.NewNode("offscreen", scene.CreateCube(1))
	offscreen.Transform.Position = math.Vec3{X: 1000, Y: 0, Z: 0}
	sc.AddNode(visible)
	sc.AddNode(offscreen)

	e.RenderFrame(testCamera(), sc)

	objects, _, _, culled := e.DrawStats()
	assert.Equal(t, 1, objects)
	assert.Equal(t, 1, culled)
}

func TestRenderFrameSkipsInvisibleNodes(t *testing.T) {
	e := NewEngine()
	require.True(t, e.Init(32, 32))

	sc := scene.NewScene()
	node := scene.NewNode("hidden", scene.CreateTriangle())
	node.Visible = false
	sc.AddNode(node)

	e.RenderFrame(testCamera(), sc)

	objects, _, _, _ := e.DrawStats()
	assert.Equal(t, 0, objects)
}

func TestRenderFrameLit(t *testing.T) {
	e := NewEngine()
	require.True(t, e.Init(64, 64))
	light := DefaultLight()
	e.Light = &light

	sc := scene.NewScene()
	white := scene.CreateQuad()
	sc.AddNode(scene.NewNode("quad", white))

	e.RenderFrame(testCamera(), sc)

	// The quad faces +z while the light comes in at an angle, so the lit
	// color is dimmer than the unlit vertex color but above the ambient floor.
	pixel, ok := e.Frame.GetPixel(32, 32)
	require.True(t, ok)
	lit := raster.UnpackColor(pixel)
	assert.Less(t, lit.R, float32(1.0))
	assert.GreaterOrEqual(t, lit.R, light.Ambient-1.0/255.0)
}

func TestEngineClearLeavesDepthAlone(t *testing.T) {
	e := NewEngine()
	require.True(t, e.Init(16, 16))

	require.True(t, e.Depth.TestAndSet(3, 3, 0.25))
	e.Clear(raster.PackColor(core.ColorBlue))

	assert.Equal(t, raster.PackColor(core.ColorBlue), e.Frame.Pixels()[0])
	assert.Equal(t, float32(0.25), e.Depth.At(3, 3))
}

func TestDirectionalLightShade(t *testing.T) {
	light := DefaultLight()

	// A normal pointing straight back at the light gets full intensity.
	facing := light.Shade(core.ColorWhite, light.Direction.Negate())
	assert.InDelta(t, 1.0, facing.R, 1e-3)

	// A normal pointing away gets only the ambient floor.
	away := light.Shade(core.ColorWhite, light.Direction)
	assert.InDelta(t, light.Ambient, away.R, 1e-3)

	// Alpha passes through untouched.
	half := core.Color{R: 1, G: 1, B: 1, A: 0.5}
	assert.Equal(t, float32(0.5), light.Shade(half, math.Vec3Up).A)
}

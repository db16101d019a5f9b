package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soft-render/math"
)

func TestCameraProjectsTargetToCenter(t *testing.T) {
	cam := NewCamera(1.0472, 16.0/9.0, 0.1, 100)
	cam.SetPosition(math.Vec3{X: 3, Y: 2, Z: 5})
	cam.LookAt(math.Vec3Zero)

	clip := math.Vec4{X: 0, Y: 0, Z: 0, W: 1}.MulMat(cam.GetViewProjectionMatrix())
	require.Positive(t, clip.W)
	assert.InDelta(t, 0, clip.X/clip.W, 1e-5)
	assert.InDelta(t, 0, clip.Y/clip.W, 1e-5)
}

func TestCameraViewProjectionComposition(t *testing.T) {
	cam := NewCamera(1.0472, 1.0, 0.1, 100)
	want := cam.GetProjectionMatrix().Mul(cam.GetViewMatrix())
	assert.Equal(t, want, cam.GetViewProjectionMatrix())
}

func TestCameraMatricesFollowposition(t *testing.T) {
	cam := NewCamera(1.0472, 1.0, 0.1, 100)
	before := cam.GetViewMatrix()

	cam.SetPosition(math.Vec3{X: 0, Y: 0, Z: 10})
	after := cam.GetViewMatrix()
	assert.NotEqual(t, before, after)
}

func TestCameraUpdateAspectRatio(t *testing.T) {
	cam := NewCamera(1.0472, 1.0, 0.1, 100)
	before := cam.GetProjectionMatrix()

	cam.UpdateAspectRatio(1920, 1080)
	assert.InDelta(t, 16.0/9.0, cam.AspectRatio, 1e-5)
	assert.NotEqual(t, before, cam.GetProjectionMatrix())
}

func TestCameraForward(t *testing.T) {
	cam := NewCamera(1.0472, 1.0, 0.1, 100)
	cam.SetPosition(math.Vec3{X: 0, Y: 0, Z: 5})
	cam.LookAt(math.Vec3Zero)

	fwd := cam.GetForward()
	assert.InDelta(t, 0, fwd.X, 1e-5)
	assert.InDelta(t, 0, fwd.Y, 1e-5)
	assert.InDelta(t, -1, fwd.Z, 1e-5)
}

func TestOrbitCameraDistance(t *testing.T) {
	target := math.Vec3{X: 1, Y: 0, Z: -2}
	cam := NewOrbitCamera(target, 4, 1.0472, 1.0)

	assert.InDelta(t, 4, cam.Position.Distance(target), 1e-4)

	cam.Orbit(0.7, -0.2)
	assert.InDelta(t, 4, cam.Position.Distance(target), 1e-4)
}

func TestOrbitCameraPitchClamp(t *testing.T) {
	cam := NewOrbitCamera(math.Vec3Zero, 4, 1.0472, 1.0)
	cam.Orbit(0, 10)
	assert.InDelta(t, 1.5, cam.Pitch, 1e-5)
	cam.Orbit(0, -20)
	assert.InDelta(t, -1.5, cam.Pitch, 1e-5)
}

func TestOrbitCameraZoomFloor(t *testing.T) {
	cam := NewOrbitCamera(math.Vec3Zero, 1, 1.0472, 1.0)
	cam.Zoom(-5)
	assert.InDelta(t, 0.1, cam.Distance, 1e-5)
}

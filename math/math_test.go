package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Componentwise multiplication and division
	result = v1.MulVec(v2)
	expected = NewVec3(4, 10, 18)
	if result != expected {
		t.Errorf("MulVec: expected %v, got %v", expected, result)
	}
	result = expected.DivVec(v2)
	if result != v1 {
		t.Errorf("DivVec: expected %v, got %v", v1, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}

	// LengthSqr = Dot(v, v)
	if v1.LengthSqr() != v1.Dot(v1) {
		t.Errorf("LengthSqr: expected %v, got %v", v1.Dot(v1), v1.LengthSqr())
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	// Any non-zero vector normalizes to length 1
	length := NewVec3(1, -2, 7).Normalize().Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}

	// The zero vector stays the zero vector instead of dividing by zero
	if Vec3Zero.Normalize() != Vec3Zero {
		t.Errorf("Normalize: expected zero vector, got %v", Vec3Zero.Normalize())
	}
}

func TestVec2Cross(t *testing.T) {
	// Counter-clockwise pair gives a positive area
	if c := NewVec2(1, 0).Cross(NewVec2(0, 1)); c != 1 {
		t.Errorf("Cross: expected 1, got %v", c)
	}
	if c := NewVec2(0, 1).Cross(NewVec2(1, 0)); c != -1 {
		t.Errorf("Cross: expected -1, got %v", c)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Translation(NewVec3(1, 2, 3)).Mul(Mat4RotationY(0.7)).Mul(Mat4Scale(NewVec3(2, 2, 2)))

	if a.Mul(Mat4Identity()) != a {
		t.Error("Mul: A * I should equal A")
	}
	if Mat4Identity().Mul(a) != a {
		t.Error("Mul: I * A should equal A")
	}
}

func TestMat4Composition(t *testing.T) {
	// Translation.Mul(Scale) scales first, then translates.
	m := Mat4Translation(NewVec3(10, 10, 10)).Mul(Mat4Scale(NewVec3(2, 2, 2)))
	result := m.MulVec(NewVec4(1, 1, 1, 1))
	expected := NewVec4(12, 12, 12, 1)
	if result != expected {
		t.Errorf("Composition: expected %v, got %v", expected, result)
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	point := NewVec4(0, 0, 0, 1)
	result := m.MulVec(point)
	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}

	// Directions (w=0) are unaffected by translation
	dir := m.MulDir(Vec3Front)
	if dir != Vec3Front {
		t.Errorf("Translation: expected direction %v, got %v", Vec3Front, dir)
	}
}

func TestMat4RotationZ(t *testing.T) {
	m := Mat4RotationZ(float32(math.Pi / 2))
	result := m.MulVec(NewVec4(1, 0, 0, 1))

	tolerance := float32(0.0001)
	if absf(result.X) > tolerance || absf(result.Y-1) > tolerance {
		t.Errorf("RotationZ: expected approximately (0,1,0), got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	target := NewVec3(0, 0, 0)

	m := Mat4LookAt(eye, target, Vec3Up)

	// The view matrix transforms the eye position to the origin
	result := m.MulVec(eye.ToVec4(1))
	tolerance := float32(0.001)
	if absf(result.X) > tolerance || absf(result.Y) > tolerance || absf(result.Z) > tolerance {
		t.Errorf("LookAt: expected eye to transform to origin, got (%v,%v,%v)", result.X, result.Y, result.Z)
	}

	// The target is 5 units ahead, down the camera's negative z-axis
	result = m.MulVec(target.ToVec4(1))
	if absf(result.Z+5) > tolerance {
		t.Errorf("LookAt: expected target at z=-5, got z=%v", result.Z)
	}
}

func TestMat4LookAtDegenerate(t *testing.T) {
	ResetDegenerateFallbacks()

	// target == eye: forward falls back to (0,0,-1)
	eye := NewVec3(1, 2, 3)
	m := Mat4LookAt(eye, eye, Vec3Up)
	if DegenerateFallbacks() != 1 {
		t.Errorf("LookAt: expected 1 fallback, got %d", DegenerateFallbacks())
	}
	// With the substitute basis the matrix still maps the eye to the origin
	result := m.MulVec(eye.ToVec4(1))
	tolerance := float32(0.001)
	if absf(result.X) > tolerance || absf(result.Y) > tolerance || absf(result.Z) > tolerance {
		t.Errorf("LookAt: degenerate matrix should map eye to origin, got (%v,%v,%v)", result.X, result.Y, result.Z)
	}

	// up parallel to forward: right falls back to (1,0,0)
	ResetDegenerateFallbacks()
	Mat4LookAt(NewVec3(0, 0, 5), Vec3Zero, Vec3Back)
	if DegenerateFallbacks() != 1 {
		t.Errorf("LookAt: expected 1 fallback for parallel up, got %d", DegenerateFallbacks())
	}
	ResetDegenerateFallbacks()
}

func TestMat4Perspective(t *testing.T) {
	fov := float32(math.Pi / 2)
	m := Mat4Perspective(fov, 1, 0.1, 100)

	// A view-space point at z=-5 lands clip w = 5
	clip := m.MulVec(NewVec4(0, 0, -5, 1))
	if absf(clip.W-5) > 0.0001 {
		t.Errorf("Perspective: expected w=5, got %v", clip.W)
	}

	// Aspect scales x only
	wide := Mat4Perspective(fov, 2, 0.1, 100)
	if wide[0][0] != m[0][0]/2 {
		t.Errorf("Perspective: expected x scale %v, got %v", m[0][0]/2, wide[0][0])
	}
	if wide[1][1] != m[1][1] {
		t.Errorf("Perspective: y scale should not depend on aspect")
	}
}

func TestMat4Orthographic(t *testing.T) {
	m := Mat4Orthographic(-2, 2, -1, 1, 0.1, 100)

	// Center of the box maps to the NDC origin in x/y, w stays 1
	result := m.MulVec(NewVec4(0, 0, -1, 1))
	if result.X != 0 || result.Y != 0 || result.W != 1 {
		t.Errorf("Orthographic: expected (0,0,*,1), got %v", result)
	}

	// Right edge maps to x=1
	result = m.MulVec(NewVec4(2, 0, -1, 1))
	if absf(result.X-1) > 0.0001 {
		t.Errorf("Orthographic: expected x=1, got %v", result.X)
	}
}

func TestQuaternionRotation(t *testing.T) {
	// 90 degree rotation around Y maps X to -Z
	q := QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/2))
	result := q.RotateVector(Vec3Right)

	tolerance := float32(0.001)
	if absf(result.X) > tolerance || absf(result.Y) > tolerance || absf(result.Z+1) > tolerance {
		t.Errorf("Quaternion rotation: expected approximately (0,0,-1), got (%v,%v,%v)", result.X, result.Y, result.Z)
	}

	// ToMat4 agrees with RotateVector
	viaMatrix := q.ToMat4().MulDir(Vec3Right)
	if absf(viaMatrix.X-result.X) > tolerance || absf(viaMatrix.Z-result.Z) > tolerance {
		t.Errorf("Quaternion ToMat4: expected %v, got %v", result, viaMatrix)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Perspective(1, 1.77, 0.1, 100)
	m2 := Mat4Translation(NewVec3(1, 2, 3))

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

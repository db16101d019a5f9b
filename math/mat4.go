package math

import "math"

// Mat4 is a 4x4 homogeneous transform stored column-major: m[c] is column c,
// m[c][r] the element at column c, row r. Transforms apply to column vectors
// as M·v (see Vec4.MulMat). The last column of a pure affine transform holds
// the translation; perspective matrices place the -1 that makes
// w_clip = -z_view in column 2, row 3.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

// Mul composes transforms: (a.Mul(b)).MulVec(v) == a.MulVec(b.MulVec(v)),
// so a full object transform reads Projection.Mul(View).Mul(Model).
// Compose once per object and reuse across its vertices.
func (m Mat4) Mul(other Mat4) Mat4 {
	result := Mat4Zero()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			for k := 0; k < 4; k++ {
				result[c][r] += m[k][r] * other[c][k]
			}
		}
	}
	return result
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return v.MulMat(m)
}

// MulPoint transforms a position (w=1) and applies the homogeneous divide.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	result := m.MulVec(v.ToVec4(1))
	if result.W != 0 && result.W != 1 {
		return result.ToVec3().Div(result.W)
	}
	return result.ToVec3()
}

// MulDir transforms a direction (w=0), dropping the translation.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return m.MulVec(v.ToVec4(0)).ToVec3()
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

func Mat4Translation(translation Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

// Rotation constructors are right-handed: positive angles rotate
// counter-clockwise when viewed from the positive end of the axis.

func Mat4RotationX(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationAxis(axis Vec3, angle float32) Mat4 {
	axis = axis.Normalize()
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Rotation builds a rotation from euler angles, applied Z, then X, then Y.
func Mat4Rotation(euler Vec3) Mat4 {
	return Mat4RotationY(euler.Y).Mul(Mat4RotationX(euler.X)).Mul(Mat4RotationZ(euler.Z))
}

// Mat4LookAt maps world coordinates into the frame of a camera at eye
// looking toward target. The camera looks down its negative local z-axis,
// hence the sign flip on the forward translation term.
//
// Degenerate inputs fall back to a fixed basis instead of failing:
// target == eye substitutes forward = (0,0,-1); up parallel to forward
// substitutes right = (1,0,0).
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye)
	if forward.LengthSqr() < BasisEpsilon {
		forward = Vec3Back
		NoteDegenerate()
	} else {
		forward = forward.Normalize()
	}

	right := forward.Cross(up)
	if right.LengthSqr() < BasisEpsilon {
		right = Vec3Right
		NoteDegenerate()
	} else {
		right = right.Normalize()
	}

	actualUp := right.Cross(forward)

	return Mat4{
		{right.X, actualUp.X, -forward.X, 0},
		{right.Y, actualUp.Y, -forward.Y, 0},
		{right.Z, actualUp.Z, -forward.Z, 0},
		{-right.Dot(eye), -actualUp.Dot(eye), forward.Dot(eye), 1},
	}
}

// Mat4Perspective builds a symmetric-frustum projection. Post-divide depth
// spans [-1,1]; clip w becomes -z_view. fovY is the vertical field of view
// in radians, aspect is width/height, near and far are positive distances
// with near < far.
func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / float32(math.Tan(float64(fovY)/2))

	m := Mat4Zero()
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = (far + near) / (near - far)
	m[2][3] = -1
	m[3][2] = (2 * far * near) / (near - far)
	return m
}

// Mat4Orthographic maps the given box to NDC. w stays 1: no perspective
// divide effect.
func Mat4Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	m := Mat4Identity()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -(far + near) / (far - near)
	return m
}

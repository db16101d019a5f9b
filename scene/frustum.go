package scene

import "soft-render/math"

// Plane represents a half-space: ax + by + cz + d = 0.
// Normal (a, b, c) points into the inside of the frustum.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive means inside, on the same side as Normal.
func (p Plane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromVP extracts the six frustum planes from a view-projection
// matrix using Gribb/Hartmann plane extraction. Matrices are stored
// [col][row] and multiply as clip = M * v, so row i of the mathematical
// matrix is (m[0][i], m[1][i], m[2][i], m[3][i]). The planes are
// normalized so DistanceTo returns a true distance in world units.
func FrustumFromVP(vp math.Mat4) Frustum {
	r0 := math.Vec4{X: vp[0][0], Y: vp[1][0], Z: vp[2][0], W: vp[3][0]}
	r1 := math.Vec4{X: vp[0][1], Y: vp[1][1], Z: vp[2][1], W: vp[3][1]}
	r2 := math.Vec4{X: vp[0][2], Y: vp[1][2], Z: vp[2][2], W: vp[3][2]}
	r3 := math.Vec4{X: vp[0][3], Y: vp[1][3], Z: vp[2][3], W: vp[3][3]}

	var f Frustum
	f.Planes[0] = normalizePlane(r3.Add(r0)) // Left:   r3 + r0
	f.Planes[1] = normalizePlane(r3.Sub(r0)) // Right:  r3 - r0
	f.Planes[2] = normalizePlane(r3.Add(r1)) // Bottom: r3 + r1
	f.Planes[3] = normalizePlane(r3.Sub(r1)) // Top:    r3 - r1
	f.Planes[4] = normalizePlane(r3.Add(r2)) // Near:   r3 + r2
	f.Planes[5] = normalizePlane(r3.Sub(r2)) // Far:    r3 - r2
	return f
}

func normalizePlane(v math.Vec4) Plane {
	n := math.Vec3{X: v.X, Y: v.Y, Z: v.Z}
	l := n.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: n.Div(l), D: v.W / l}
}

// IntersectsFrustum returns false if the AABB is completely outside the
// frustum. For each plane it tests the positive vertex, the corner most
// aligned with the plane normal; if even that corner is outside, the
// whole box is.
func (box AABB) IntersectsFrustum(f *Frustum) bool {
	for i := 0; i < 6; i++ {
		p := f.Planes[i]
		px := box.Max.X
		if p.Normal.X < 0 {
			px = box.Min.X
		}
		py := box.Max.Y
		if p.Normal.Y < 0 {
			py = box.Min.Y
		}
		pz := box.Max.Z
		if p.Normal.Z < 0 {
			pz = box.Min.Z
		}
		if p.DistanceTo(math.Vec3{X: px, Y: py, Z: pz}) < 0 {
			return false
		}
	}
	return true
}

package renderer

import (
	"soft-render/math"
)

// The coordinate pipeline carries a point through
// local -> world -> clip -> NDC -> screen space. Every step is a pure
// function; matrices are composed by the caller and reused per object.

// LocalToWorld transforms a model-space position by the model matrix.
func LocalToWorld(pos math.Vec3, model math.Mat4) math.Vec3 {
	return model.MulVec(pos.ToVec4(1)).ToVec3()
}

// WorldToClip projects a world-space position into clip space. The result's
// w is generally not 1 once a perspective projection is involved.
func WorldToClip(pos math.Vec3, viewProjection math.Mat4) math.Vec4 {
	return viewProjection.MulVec(pos.ToVec4(1))
}

// ClipToNDC applies the perspective divide. Positions with |w| below
// ClipWEpsilon sit on (or behind) the camera plane where the divide blows
// up; they collapse to the NDC origin instead. This is a degenerate-clip
// guard, not a near-plane clip — proper frustum clipping is a separate
// concern this pipeline does not implement.
func ClipToNDC(clip math.Vec4) math.Vec3 {
	w := clip.W
	if w < math.ClipWEpsilon && w > -math.ClipWEpsilon {
		math.NoteDegenerate()
		return math.Vec3Zero
	}
	return math.NewVec3(clip.X/w, clip.Y/w, clip.Z/w)
}

// NDCToScreen maps NDC to pixel coordinates. Y flips because NDC has +Y up
// while pixel rows grow downward; depth remaps from [-1,1] to the [0,1]
// range the depth buffer stores.
func NDCToScreen(ndc math.Vec3, width, height int) math.Vec3 {
	return math.NewVec3(
		(ndc.X+1)*0.5*float32(width),
		(1-ndc.Y)*0.5*float32(height),
		(ndc.Z+1)*0.5,
	)
}

// LocalToScreen chains the full pipeline for one position.
func LocalToScreen(pos math.Vec3, mvp math.Mat4, width, height int) math.Vec3 {
	return NDCToScreen(ClipToNDC(mvp.MulVec(pos.ToVec4(1))), width, height)
}

// IsFrontFacing reports whether the screen-space triangle winds
// counter-clockwise, the project-wide front-face convention. The strict > 0
// test classifies exactly degenerate (zero-area, edge-on) triangles as
// back-facing.
func IsFrontFacing(p0, p1, p2 math.Vec2) bool {
	return p1.Sub(p0).Cross(p2.Sub(p0)) > 0
}

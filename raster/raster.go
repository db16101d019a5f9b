package raster

import (
	"soft-render/core"
	"soft-render/math"
)

// Vertex is a screen-space vertex: Position.X/Y in pixels, Position.Z the
// depth in [0,1], plus the color to interpolate.
type Vertex struct {
	Position math.Vec3
	Color    core.Color
}

// BoundingBox returns the integer pixel AABB of the three screen positions,
// truncated toward zero and clamped to [0,width-1] x [0,height-1].
func BoundingBox(v0, v1, v2 math.Vec3, width, height int) (minX, minY, maxX, maxY int) {
	minX = int(min3(v0.X, v1.X, v2.X))
	minY = int(min3(v0.Y, v1.Y, v2.Y))
	maxX = int(max3(v0.X, v1.X, v2.X))
	maxY = int(max3(v0.Y, v1.Y, v2.Y))

	minX = clampi(minX, 0, width-1)
	minY = clampi(minY, 0, height-1)
	maxX = clampi(maxX, 0, width-1)
	maxY = clampi(maxY, 0, height-1)
	return
}

// EdgeFunction returns the signed doubled area of triangle (a, b, p):
// positive when p lies to the left of the directed edge a->b.
func EdgeFunction(a, b, p math.Vec2) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Barycentric returns the weights of p relative to triangle (v0, v1, v2).
// The weights sum to 1 for any p. A triangle whose doubled area is below
// AreaEpsilon is degenerate: all weights come back zero, which no interior
// point can produce, signalling the caller to skip the fill.
func Barycentric(v0, v1, v2, p math.Vec2) (w0, w1, w2 float32) {
	area := EdgeFunction(v0, v1, v2)
	if absf(area) < math.AreaEpsilon {
		math.NoteDegenerate()
		return 0, 0, 0
	}
	w0 = EdgeFunction(v1, v2, p) / area
	w1 = EdgeFunction(v2, v0, p) / area
	w2 = EdgeFunction(v0, v1, p) / area
	return
}

// inside is the shared coverage test: the point belongs to the triangle when
// every weight is non-negative. The boundary is inclusive and no top-left
// rule is applied, so a pixel exactly on an edge shared by two triangles may
// be written by both or neither depending on rounding.
func inside(w0, w1, w2 float32) bool {
	return w0 >= 0 && w1 >= 0 && w2 >= 0
}

// FillTriangleFlat writes one constant packed color to every covered pixel.
// No depth test.
func FillTriangleFlat(fb *FrameBuffer, v0, v1, v2 math.Vec3, packed uint32) {
	area := EdgeFunction(v0.XY(), v1.XY(), v2.XY())
	if absf(area) < math.AreaEpsilon {
		math.NoteDegenerate()
		return
	}

	minX, minY, maxX, maxY := BoundingBox(v0, v1, v2, fb.Width(), fb.Height())
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math.NewVec2(float32(x), float32(y))
			w0 := EdgeFunction(v1.XY(), v2.XY(), p) / area
			w1 := EdgeFunction(v2.XY(), v0.XY(), p) / area
			w2 := EdgeFunction(v0.XY(), v1.XY(), p) / area
			if inside(w0, w1, w2) {
				fb.SetPixel(x, y, packed)
			}
		}
	}
}

// FillTriangleInterpolated blends the three vertex colors across the
// triangle, linearly in screen space. Not perspective-correct: attribute
// gradients skew under strong perspective, an accepted approximation here.
// No depth test.
func FillTriangleInterpolated(fb *FrameBuffer, sv0, sv1, sv2 Vertex) {
	v0, v1, v2 := sv0.Position, sv1.Position, sv2.Position
	area := EdgeFunction(v0.XY(), v1.XY(), v2.XY())
	if absf(area) < math.AreaEpsilon {
		math.NoteDegenerate()
		return
	}

	minX, minY, maxX, maxY := BoundingBox(v0, v1, v2, fb.Width(), fb.Height())
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math.NewVec2(float32(x), float32(y))
			w0 := EdgeFunction(v1.XY(), v2.XY(), p) / area
			w1 := EdgeFunction(v2.XY(), v0.XY(), p) / area
			w2 := EdgeFunction(v0.XY(), v1.XY(), p) / area
			if !inside(w0, w1, w2) {
				continue
			}
			color := sv0.Color.Scale(w0).Add(sv1.Color.Scale(w1)).Add(sv2.Color.Scale(w2))
			fb.SetPixel(x, y, PackColor(color))
		}
	}
}

// FillTriangleDepthTested interpolates depth and color and writes the color
// only where the per-pixel depth test passes. Test and color write are
// coupled: a pixel that fails TestAndSet is left untouched.
func FillTriangleDepthTested(fb *FrameBuffer, db *DepthBuffer, sv0, sv1, sv2 Vertex) {
	v0, v1, v2 := sv0.Position, sv1.Position, sv2.Position
	area := EdgeFunction(v0.XY(), v1.XY(), v2.XY())
	if absf(area) < math.AreaEpsilon {
		math.NoteDegenerate()
		return
	}

	minX, minY, maxX, maxY := BoundingBox(v0, v1, v2, fb.Width(), fb.Height())
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math.NewVec2(float32(x), float32(y))
			w0 := EdgeFunction(v1.XY(), v2.XY(), p) / area
			w1 := EdgeFunction(v2.XY(), v0.XY(), p) / area
			w2 := EdgeFunction(v0.XY(), v1.XY(), p) / area
			if !inside(w0, w1, w2) {
				continue
			}
			depth := v0.Z*w0 + v1.Z*w1 + v2.Z*w2
			if !db.TestAndSet(x, y, depth) {
				continue
			}
			color := sv0.Color.Scale(w0).Add(sv1.Color.Scale(w1)).Add(sv2.Color.Scale(w2))
			fb.SetPixel(x, y, PackColor(color))
		}
	}
}

// DrawLine draws a 1px line with Bresenham's algorithm. Endpoints outside
// the buffer are clipped pixel by pixel. No depth test; lines are overlay
// geometry (wireframes, grids).
func DrawLine(fb *FrameBuffer, x0, y0, x1, y1 int, packed uint32) {
	dx := absi(x1 - x0)
	dy := -absi(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, packed)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// PackColor clamps each channel to [0,1], scales to 0..255 truncating, and
// packs little-endian: byte0=R, byte1=G, byte2=B, byte3=A. Pure opaque red
// packs to 0xFF0000FF.
func PackColor(c core.Color) uint32 {
	r := uint32(clamp01(c.R) * 255)
	g := uint32(clamp01(c.G) * 255)
	b := uint32(clamp01(c.B) * 255)
	a := uint32(clamp01(c.A) * 255)
	return r | g<<8 | b<<16 | a<<24
}

// UnpackColor inverts PackColor.
func UnpackColor(packed uint32) core.Color {
	return core.Color{
		R: float32(packed&0xFF) / 255,
		G: float32(packed>>8&0xFF) / 255,
		B: float32(packed>>16&0xFF) / 255,
		A: float32(packed>>24&0xFF) / 255,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func absi(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

package raster

// DepthBuffer records the nearest depth drawn so far per pixel. Depths live
// in [0,1] with smaller values nearer the viewer. Sizing follows the same
// fixed-capacity discipline as FrameBuffer.
type DepthBuffer struct {
	width  int
	height int
	depths []float32
}

func NewDepthBuffer() *DepthBuffer {
	return &DepthBuffer{
		depths: make([]float32, MaxWidth*MaxHeight),
	}
}

// Init sets the logical resolution and clears every slot to the far plane.
// Fails closed on zero or over-capacity dimensions.
func (d *DepthBuffer) Init(width, height int) bool {
	if width <= 0 || height <= 0 || width > MaxWidth || height > MaxHeight {
		return false
	}
	d.width = width
	d.height = height
	d.Clear()
	return true
}

func (d *DepthBuffer) Width() int  { return d.width }
func (d *DepthBuffer) Height() int { return d.height }

// Clear resets every active slot to 1.0, the farthest representable depth.
func (d *DepthBuffer) Clear() {
	active := d.depths[:d.width*d.height]
	for i := range active {
		active[i] = 1.0
	}
}

// TestAndSet performs the depth test and the store as one coupled step:
// if depth is strictly nearer than the stored value, it is written and the
// test passes. Exact ties fail, so the first triangle rasterized at a depth
// keeps the pixel. Out-of-range coordinates fail without mutation.
func (d *DepthBuffer) TestAndSet(x, y int, depth float32) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	idx := y*d.width + x
	if depth < d.depths[idx] {
		d.depths[idx] = depth
		return true
	}
	return false
}

// At returns the stored depth, or 1.0 out of range.
func (d *DepthBuffer) At(x, y int) float32 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 1.0
	}
	return d.depths[y*d.width+x]
}

package raster

import (
	"image"
	"unsafe"
)

// Maximum resolution either buffer supports. Backing stores are allocated
// once at this capacity; Init only adjusts the logical size.
const (
	MaxWidth  = 1920
	MaxHeight = 1080
)

// FrameBuffer is a fixed-capacity store of packed 32-bit pixels. The packed
// word layout is little-endian with byte0=R, byte1=G, byte2=B, byte3=A, so
// the raw bytes can be handed to a display surface as 8-bit RGBA quadruplets
// without a copy (see Bytes).
//
// The logical image occupies the first width*height words of the backing
// store, row-major with stride == width.
type FrameBuffer struct {
	width  int
	height int
	pixels []uint32
}

// NewFrameBuffer allocates the backing store at full capacity. The buffer
// has zero logical size until Init succeeds.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		pixels: make([]uint32, MaxWidth*MaxHeight),
	}
}

// Init sets the logical resolution and clears the store to zero. It fails
// closed: zero or over-capacity dimensions return false and leave the
// previous state untouched. The backing store is never reallocated, so any
// previously exported view is invalidated in content but not in memory.
func (f *FrameBuffer) Init(width, height int) bool {
	if width <= 0 || height <= 0 || width > MaxWidth || height > MaxHeight {
		return false
	}
	f.width = width
	f.height = height
	f.Clear(0)
	return true
}

func (f *FrameBuffer) Width() int  { return f.width }
func (f *FrameBuffer) Height() int { return f.height }

// Clear fills every active pixel with the packed color.
func (f *FrameBuffer) Clear(packed uint32) {
	active := f.pixels[:f.width*f.height]
	for i := range active {
		active[i] = packed
	}
}

// SetPixel writes one pixel. Out-of-range coordinates are ignored.
func (f *FrameBuffer) SetPixel(x, y int, packed uint32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = packed
}

// GetPixel reads one pixel. The second result is false out of range.
func (f *FrameBuffer) GetPixel(x, y int) (uint32, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, false
	}
	return f.pixels[y*f.width+x], true
}

// Pixels returns the active pixel region as packed words. The slice aliases
// the backing store: it is valid until the next Init and sees later writes.
func (f *FrameBuffer) Pixels() []uint32 {
	return f.pixels[:f.width*f.height]
}

// Bytes reinterprets the active region as RGBA bytes, zero-copy. Byte order
// follows the packed-word layout on little-endian hosts. Treat the view as
// borrowed: the next Init invalidates it.
func (f *FrameBuffer) Bytes() []byte {
	if f.width == 0 || f.height == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&f.pixels[0])), f.width*f.height*4)
}

// Image wraps the active region in an image.RGBA without copying. Drawing
// into the returned image writes straight into the framebuffer; the same
// borrowed-view rules as Bytes apply.
func (f *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Bytes(),
		Stride: f.width * 4,
		Rect:   image.Rect(0, 0, f.width, f.height),
	}
}

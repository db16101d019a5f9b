package display

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
)

// Blitter copies the software framebuffer to the screen through a single
// OpenGL texture. It is the only place GL calls happen; everything else in
// the renderer is pure CPU work. Call from the main goroutine with the
// window's context current.
type Blitter struct {
	texID  uint32
	width  int
	height int
}

func NewBlitter() (*Blitter, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	b := &Blitter{}
	gl.GenTextures(1, &b.texID)
	gl.BindTexture(gl.TEXTURE_2D, b.texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return b, nil
}

// Blit uploads pixels (RGBA, row 0 at the top) and draws them as a
// fullscreen quad into the current viewport.
func (b *Blitter) Blit(pixels []byte, width, height, viewportWidth, viewportHeight int) {
	if len(pixels) < width*height*4 {
		return
	}

	gl.Viewport(0, 0, int32(viewportWidth), int32(viewportHeight))
	gl.BindTexture(gl.TEXTURE_2D, b.texID)

	if width != b.width || height != b.height {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
			int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
		b.width = width
		b.height = height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
			int32(width), int32(height),
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	}

	gl.Enable(gl.TEXTURE_2D)
	gl.Disable(gl.DEPTH_TEST)

	// Texture row 0 is the top of the image, so v=0 maps to the top edge.
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-1, 1)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, -1)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-1, -1)
	gl.End()

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Destroy frees the GL texture.
func (b *Blitter) Destroy() {
	if b.texID != 0 {
		gl.DeleteTextures(1, &b.texID)
		b.texID = 0
	}
}

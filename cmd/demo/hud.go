package main

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DebugOverlay draws text lines directly into the software framebuffer's
// RGBA view, so the HUD ends up in snapshots too.
type DebugOverlay struct {
	lines []string
}

func (do *DebugOverlay) AddLine(line string) {
	do.lines = append(do.lines, line)
}

func (do *DebugOverlay) Clear() {
	do.lines = do.lines[:0]
}

func (do *DebugOverlay) Draw(dst *image.RGBA) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	y := face.Height + 2
	for _, line := range do.lines {
		d.Dot = fixed.P(4, y)
		d.DrawString(line)
		y += face.Height + 2
	}
}

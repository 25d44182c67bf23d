package genart

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// RenderTarget is a reusable rasterization surface of fixed dimensions.
// It owns a gg pixmap and drawing context plus an RGB readback buffer, so
// repeated renders allocate nothing.
//
// The surface is cleared and redrawn on every Render call, which makes a
// RenderTarget strictly single-threaded: concurrent evaluations need one
// RenderTarget each.
type RenderTarget struct {
	width      int
	height     int
	background gg.RGBA
	pixmap     *gg.Pixmap
	dc         *gg.Context
	rgb        []uint8
}

// NewRenderTarget creates a rasterization surface of the given dimensions
// cleared to the given background before each render.
func NewRenderTarget(width, height int, background gg.RGBA) (*RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render target: invalid dimensions %dx%d", width, height)
	}
	pm := gg.NewPixmap(width, height)
	return &RenderTarget{
		width:      width,
		height:     height,
		background: background,
		pixmap:     pm,
		dc:         gg.NewContext(width, height, gg.WithPixmap(pm)),
		rgb:        make([]uint8, width*height*3),
	}, nil
}

// Width returns the surface width in pixels.
func (rt *RenderTarget) Width() int { return rt.width }

// Height returns the surface height in pixels.
func (rt *RenderTarget) Height() int { return rt.height }

// Render clears the surface and draws the genes back-to-front with
// source-over compositing, then returns the RGB readback buffer
// (width*height*3 bytes, rows top-down). The buffer is owned by the
// target and overwritten by the next Render.
//
// Rendering is deterministic: the same gene sequence always produces the
// same bytes.
func (rt *RenderTarget) Render(genes []Triangle) []uint8 {
	rt.dc.ClearWithColor(rt.background)
	w, h := float64(rt.width), float64(rt.height)
	for _, g := range genes {
		rt.dc.SetRGBA(g.C.R, g.C.G, g.C.B, g.C.A)
		rt.dc.MoveTo(g.V[0].X*w, g.V[0].Y*h)
		rt.dc.LineTo(g.V[1].X*w, g.V[1].Y*h)
		rt.dc.LineTo(g.V[2].X*w, g.V[2].Y*h)
		rt.dc.ClosePath()
		rt.dc.Fill()
	}
	data := rt.pixmap.Data() // RGBA, 4 bytes per pixel
	for i, j := 0, 0; i < len(rt.rgb); i, j = i+3, j+4 {
		rt.rgb[i+0] = data[j+0]
		rt.rgb[i+1] = data[j+1]
		rt.rgb[i+2] = data[j+2]
	}
	return rt.rgb
}

// Image renders the genes and returns an independent copy of the surface,
// suitable for display or encoding.
func (rt *RenderTarget) Image(genes []Triangle) *image.RGBA {
	rt.Render(genes)
	return rt.pixmap.ToImage()
}

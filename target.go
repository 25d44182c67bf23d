package genart

import (
	"fmt"
	"image"
	"os"

	// Target images decode through image.Decode; PNG and JPEG register
	// via the stdlib codecs, BMP via x/image.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Target is the image being approximated, held as a flat RGB byte buffer
// (three bytes per pixel, rows top-down). The decoded rows and the
// RenderTarget readback share the same top-down orientation, so no row
// flip is needed between them.
type Target struct {
	width  int
	height int
	rgb    []uint8
}

// NewTarget converts a decoded image into a Target.
func NewTarget(img image.Image) (*Target, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("target: empty image %dx%d", w, h)
	}
	t := &Target{width: w, height: h, rgb: make([]uint8, w*h*3)}
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			t.rgb[i+0] = uint8(r >> 8)
			t.rgb[i+1] = uint8(g >> 8)
			t.rgb[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return t, nil
}

// LoadTarget reads and decodes the target image at path. BMP, PNG and
// JPEG are supported. Errors here are fatal preconditions: the caller is
// expected to abort before entering the generation loop.
func LoadTarget(path string) (*Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("target: decode %s: %w", path, err)
	}
	t, err := NewTarget(img)
	if err != nil {
		return nil, err
	}
	Logger().Info("target loaded", "path", path, "format", format,
		"width", t.width, "height", t.height)
	return t, nil
}

// Width returns the target width in pixels.
func (t *Target) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *Target) Height() int { return t.height }

// RGB returns the target's pixel buffer. Callers must not modify it.
func (t *Target) RGB() []uint8 { return t.rgb }

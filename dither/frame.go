package dither

import (
	"image"

	"golang.org/x/image/draw"
)

// frame is the working pixel buffer: flat float64 RGBA samples, row-major,
// four per pixel. Channel values stay in [0,255]; every write clamps, so a
// later error deposit onto an already-clamped cell sees the clamped value.
type frame struct {
	pix    []float64
	width  int
	height int
}

func newFrame(src image.Image) *frame {
	img := toRGBA(src)
	f := &frame{
		pix:    make([]float64, len(img.Pix)),
		width:  img.Rect.Dx(),
		height: img.Rect.Dy(),
	}
	for i, v := range img.Pix {
		f.pix[i] = float64(v)
	}
	return f
}

// colorAt returns the four channel samples starting at buffer offset i.
func (f *frame) colorAt(i int) [4]float64 {
	return [4]float64{f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3]}
}

// setColor writes the four channel samples starting at buffer offset i,
// clamping each to [0,255].
func (f *frame) setColor(i int, px [4]float64) {
	f.pix[i] = clamp8(px[0])
	f.pix[i+1] = clamp8(px[1])
	f.pix[i+2] = clamp8(px[2])
	f.pix[i+3] = clamp8(px[3])
}

// coords converts a buffer offset to pixel coordinates.
func (f *frame) coords(i int) (x, y int) {
	p := i / 4
	return p % f.width, p / f.width
}

func (f *frame) toImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i, v := range f.pix {
		img.Pix[i] = uint8(v)
	}
	return img
}

func clamp8(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// toRGBA renders src into a zero-origin RGBA image.
func toRGBA(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Rect, src, bounds.Min, draw.Src)
	return img
}

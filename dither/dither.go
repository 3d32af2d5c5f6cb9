// Package dither reduces full-color raster images to a limited palette for
// electronic-paper displays. It provides palette quantization and three
// dithering strategies on top of it: error diffusion over a catalog of
// published kernels, ordered (Bayer) dithering, and random dithering.
//
// The engine makes a single strictly row-major pass over one owned pixel
// buffer. Error diffusion deposits quantization error into neighbor cells of
// that same buffer with immediate per-channel clamping to [0,255]; kernel
// entries falling outside the image are dropped. These are reproducibility
// contracts, not implementation details.
package dither

import "image"

// orderedThreshold is the perturbation amplitude used by ordered dithering
// (256/4).
const orderedThreshold = 64

// Dither applies the configured quantization strategy to src and returns the
// result as a new RGBA image of the same dimensions. A nil src returns nil.
func Dither(src image.Image, opts Options) *image.RGBA {
	if src == nil {
		return nil
	}

	cfg := opts.resolve()
	f := newFrame(src)

	for i := 0; i < len(f.pix); i += 4 {
		old := f.colorAt(i)

		switch cfg.mode {
		case QuantizationOnly:
			f.setColor(i, closestPaletteColor(old, cfg.palette))

		case Random:
			if cfg.random == RandomRGB {
				f.setColor(i, randomPixel(cfg.rng, old))
			} else {
				f.setColor(i, randomBlackWhitePixel(cfg.rng, old))
			}

		case Ordered:
			x, y := f.coords(i)
			px := orderedPixel(old, x, y, cfg.threshold)
			f.setColor(i, closestPaletteColor(px, cfg.palette))

		default: // ErrorDiffusion, also the fallback for out-of-range modes
			quant := closestPaletteColor(old, cfg.palette)
			f.setColor(i, quant)
			diffuseError(f, i, old, quant, cfg.kernel)
		}
	}

	return f.toImage()
}

// diffuseError spreads the quantization error at buffer offset i to the
// kernel's neighbor targets, in place. Targets outside the image are skipped;
// that error mass is intentionally lost at the edges.
func diffuseError(f *frame, i int, old, quant [4]float64, kernel Kernel) {
	var qerr [4]float64
	for c := range qerr {
		qerr[c] = old[c] - quant[c]
	}

	x, y := f.coords(i)
	for _, d := range kernel {
		tx, ty := x+d.DX, y+d.DY
		if tx < 0 || tx >= f.width || ty < 0 || ty >= f.height {
			continue
		}

		j := (ty*f.width + tx) * 4
		target := f.colorAt(j)
		for c := range target {
			target[c] += qerr[c] * d.Weight
		}
		f.setColor(j, target)
	}
}

// orderedPixel perturbs a pixel by the threshold matrix entry for its
// coordinates. The matrix tiles across the image; all four channels are
// shifted (the alpha shift is invisible since the matcher ignores alpha and
// re-synthesizes it from the palette entry).
func orderedPixel(px [4]float64, x, y int, m [][]int) [4]float64 {
	mh, mw := len(m), len(m[0])
	factor := float64(m[y%mh][x%mw]) / float64(mh*mw)
	for c := range px {
		px[c] += factor * orderedThreshold
	}
	return px
}

// randomPixel thresholds each of R, G, B against an independent uniform draw
// in [0,255]. Alpha keeps its original value.
func randomPixel(rng randSource, px [4]float64) [4]float64 {
	out := px
	for c := range 3 {
		if px[c] < float64(rng.IntN(256)) {
			out[c] = 0
		} else {
			out[c] = 255
		}
	}
	return out
}

// randomBlackWhitePixel thresholds the unweighted RGB mean against a single
// uniform draw in [0,255], producing solid black or white.
func randomBlackWhitePixel(rng randSource, px [4]float64) [4]float64 {
	avg := (px[0] + px[1] + px[2]) / 3
	if avg < float64(rng.IntN(256)) {
		return [4]float64{0, 0, 0, 255}
	}
	return [4]float64{255, 255, 255, 255}
}

// randSource is the part of *rand.Rand the random modes need.
type randSource interface {
	IntN(n int) int
}

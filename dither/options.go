package dither

import (
	"image/color"
	"math/rand/v2"

	"github.com/irishrain/epdoptimize/palette"
)

// Mode selects the dithering strategy.
type Mode int

const (
	// ErrorDiffusion propagates quantization error to neighbor pixels. This
	// is the zero value, so an unset Options.Mode means error diffusion.
	ErrorDiffusion Mode = iota
	// Ordered perturbs pixels with a Bayer threshold matrix before
	// quantization.
	Ordered
	// Random thresholds each pixel against a fresh random draw.
	Random
	// QuantizationOnly snaps every pixel to its nearest palette color.
	QuantizationOnly

	modeCount // sentinel
)

var modeNames = [modeCount]string{
	"errorDiffusion", "ordered", "random", "quantizationOnly",
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if m >= 0 && m < modeCount {
		return modeNames[m]
	}
	return "errorDiffusion"
}

// ParseMode maps a configuration string to a Mode. The empty string means
// quantization-only; unrecognized values take the error-diffusion default.
func ParseMode(s string) Mode {
	if s == "" {
		return QuantizationOnly
	}
	for i, name := range modeNames {
		if name == s {
			return Mode(i)
		}
	}
	return ErrorDiffusion
}

// RandomMode selects the output style of random dithering.
type RandomMode int

const (
	// RandomBlackAndWhite thresholds the channel average with a single draw
	// per pixel, producing solid black or white.
	RandomBlackAndWhite RandomMode = iota
	// RandomRGB thresholds each of R, G, B independently, producing pure
	// 0/255 channels regardless of the configured palette.
	RandomRGB
)

// ParseRandomMode maps a configuration string to a RandomMode. Anything but
// "rgb" takes the black-and-white default.
func ParseRandomMode(s string) RandomMode {
	if s == "rgb" {
		return RandomRGB
	}
	return RandomBlackAndWhite
}

const (
	defaultMatrixWidth  = 4
	defaultMatrixHeight = 4
)

// Options configures a single Dither call. The zero value selects error
// diffusion with the Floyd-Steinberg kernel, a 4x4 threshold matrix and the
// default black/white palette.
type Options struct {
	// Mode is the dithering strategy.
	Mode Mode
	// Kernel names the error-diffusion kernel. Unknown or empty names fall
	// back to Floyd-Steinberg.
	Kernel string
	// MatrixWidth and MatrixHeight size the ordered-dithering threshold
	// matrix (capped at 8; zero means 4).
	MatrixWidth  int
	MatrixHeight int
	// RandomMode selects the random dithering style.
	RandomMode RandomMode
	// Palette is the target color set, insertion order significant. Empty
	// means the default black/white palette. Entries with non-opaque alpha
	// pass that alpha through to the output.
	Palette color.Palette
	// Rand is the source for random dithering draws. Nil means a freshly
	// seeded generator.
	Rand *rand.Rand
}

// config is the per-call resolved form of Options. Built once at Dither
// entry, immutable for the duration of the raster pass.
type config struct {
	mode      Mode
	kernel    Kernel
	threshold [][]int
	random    RandomMode
	palette   [][4]float64
	rng       *rand.Rand
}

func (o Options) resolve() config {
	cfg := config{
		mode:   o.Mode,
		random: o.RandomMode,
		kernel: KernelByName(o.Kernel),
		rng:    o.Rand,
	}

	mw, mh := o.MatrixWidth, o.MatrixHeight
	if mw < 1 {
		mw = defaultMatrixWidth
	}
	if mh < 1 {
		mh = defaultMatrixHeight
	}
	cfg.threshold = BayerMatrix(mw, mh)

	pal := o.Palette
	if len(pal) == 0 {
		pal, _ = palette.ParseHexList(palette.Lookup("default"))
	}
	cfg.palette = make([][4]float64, len(pal))
	for i, col := range pal {
		c := color.RGBAModel.Convert(col).(color.RGBA)
		cfg.palette[i] = [4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return cfg
}

package dither

// Diffusion is a single error deposit: the quantization error of the current
// pixel, scaled by Weight, is added to the pixel at (x+DX, y+DY).
type Diffusion struct {
	DX, DY int
	Weight float64
}

// Kernel is an ordered list of error deposits describing a published
// error-diffusion algorithm. Weights need not sum to 1 (Jarvis sums to 47/48).
type Kernel []Diffusion

var kernels = map[string]Kernel{
	"floydSteinberg": {
		{1, 0, 7.0 / 16},
		{-1, 1, 3.0 / 16},
		{0, 1, 5.0 / 16},
		{1, 1, 1.0 / 16},
	},
	"falseFloydSteinberg": {
		{1, 0, 3.0 / 8},
		{0, 1, 3.0 / 8},
		{1, 1, 2.0 / 8},
	},
	"jarvis": {
		{1, 0, 7.0 / 48},
		{2, 0, 5.0 / 48},
		{-2, 1, 3.0 / 48},
		{-1, 1, 5.0 / 48},
		{0, 1, 7.0 / 48},
		{1, 1, 5.0 / 48},
		{2, 1, 3.0 / 48},
		{-2, 2, 1.0 / 48},
		{-1, 2, 3.0 / 48},
		{0, 2, 4.0 / 48},
		{1, 2, 3.0 / 48},
		{2, 2, 1.0 / 48},
	},
	"stucki": {
		{1, 0, 8.0 / 42},
		{2, 0, 4.0 / 42},
		{-2, 1, 2.0 / 42},
		{-1, 1, 4.0 / 42},
		{0, 1, 8.0 / 42},
		{1, 1, 4.0 / 42},
		{2, 1, 2.0 / 42},
		{-2, 2, 1.0 / 42},
		{-1, 2, 2.0 / 42},
		{0, 2, 4.0 / 42},
		{1, 2, 2.0 / 42},
		{2, 2, 1.0 / 42},
	},
	"burkes": {
		{1, 0, 8.0 / 32},
		{2, 0, 4.0 / 32},
		{-2, 1, 2.0 / 32},
		{-1, 1, 4.0 / 32},
		{0, 1, 8.0 / 32},
		{1, 1, 4.0 / 32},
		{2, 1, 2.0 / 32},
	},
	"sierra3": {
		{1, 0, 5.0 / 32},
		{2, 0, 3.0 / 32},
		{-2, 1, 2.0 / 32},
		{-1, 1, 4.0 / 32},
		{0, 1, 5.0 / 32},
		{1, 1, 4.0 / 32},
		{2, 1, 2.0 / 32},
		{-1, 2, 2.0 / 32},
		{0, 2, 3.0 / 32},
		{1, 2, 2.0 / 32},
	},
	"sierra2": {
		{1, 0, 4.0 / 16},
		{2, 0, 3.0 / 16},
		{-2, 1, 1.0 / 16},
		{-1, 1, 2.0 / 16},
		{0, 1, 3.0 / 16},
		{1, 1, 2.0 / 16},
		{2, 1, 1.0 / 16},
	},
	"Sierra2-4A": {
		{1, 0, 2.0 / 4},
		{-2, 1, 1.0 / 4},
		{-1, 1, 1.0 / 4},
	},
}

// KernelByName returns the named error-diffusion kernel. Unknown names fall
// back to Floyd-Steinberg.
func KernelByName(name string) Kernel {
	if k, ok := kernels[name]; ok {
		return k
	}
	return kernels["floydSteinberg"]
}

// KernelNames lists the recognized kernel names in no particular order.
func KernelNames() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	return names
}

package dither

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/irishrain/epdoptimize/palette"
)

// ErrMissingReplacement reports that a pixel matched an original color whose
// index has no counterpart in the replacement list. The whole call aborts;
// no partially replaced image is returned.
var ErrMissingReplacement = errors.New("no replacement for matched color")

// Replace maps an already-quantized image's exact colors onto a device color
// set. Each pixel is compared against original by exact RGB equality and, on
// a match, rewritten with the replacement entry at the same index. Pixels
// matching no original color are left unchanged; their count is returned so
// callers can report palette drift.
//
// A nil src returns nil. Both color lists are hex strings (#RGB or #RRGGBB,
// hash optional).
func Replace(src image.Image, original, replacement []string) (*image.RGBA, int, error) {
	if src == nil {
		return nil, 0, nil
	}

	from, err := palette.ParseHexList(original)
	if err != nil {
		return nil, 0, fmt.Errorf("could not parse original colors: %w", err)
	}
	to, err := palette.ParseHexList(replacement)
	if err != nil {
		return nil, 0, fmt.Errorf("could not parse replacement colors: %w", err)
	}

	fromRGB := rgbTriples(from)
	toRGB := rgbTriples(to)

	img := toRGBA(src)
	unmatched := 0

	for i := 0; i < len(img.Pix); i += 4 {
		idx := -1
		for k, c := range fromRGB {
			if img.Pix[i] == c[0] && img.Pix[i+1] == c[1] && img.Pix[i+2] == c[2] {
				idx = k
				break
			}
		}

		if idx < 0 {
			unmatched++
			continue
		}
		if idx >= len(toRGB) {
			return nil, 0, fmt.Errorf("color %d/%d: %w", idx, len(toRGB), ErrMissingReplacement)
		}

		img.Pix[i] = toRGB[idx][0]
		img.Pix[i+1] = toRGB[idx][1]
		img.Pix[i+2] = toRGB[idx][2]
	}

	return img, unmatched, nil
}

func rgbTriples(pal color.Palette) [][3]uint8 {
	out := make([][3]uint8, len(pal))
	for i, col := range pal {
		c := color.RGBAModel.Convert(col).(color.RGBA)
		out[i] = [3]uint8{c.R, c.G, c.B}
	}
	return out
}

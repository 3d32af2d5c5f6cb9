// Package palette supplies the color tables and parsers the dithering engine
// consumes: hex color parsing, the named palette and device-color registries,
// and RIFF PAL file I/O.
package palette

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHex parses a hex color string in #RGB or #RRGGBB form. The leading
// '#' is optional. Alpha is always 255.
func ParseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xFF}

	h := strings.TrimPrefix(s, "#")
	for _, r := range h {
		if !isHexDigit(r) {
			return color.RGBA{}, fmt.Errorf("invalid hex digit %q in color %q", r, s)
		}
	}

	switch len(h) {
	case 3:
		n, err := fmt.Sscanf(h, "%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return color.RGBA{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 6:
		n, err := fmt.Sscanf(h, "%2x%2x%2x", &c.R, &c.G, &c.B)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return color.RGBA{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}

	return c, nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

// ParseHexList parses an ordered list of hex color strings, preserving
// insertion order.
func ParseHexList(list []string) (color.Palette, error) {
	pal := make(color.Palette, 0, len(list))
	for i, s := range list {
		c, err := ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("color %d/%d: %w", i, len(list), err)
		}
		pal = append(pal, c)
	}
	return pal, nil
}

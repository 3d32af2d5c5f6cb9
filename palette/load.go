package palette

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
)

// Load resolves a palette specification to an ordered palette. Three forms
// are accepted:
//
//   - a path ending in ".pal": loaded as a RIFF PAL file
//   - a string containing '#' or ',': parsed as a comma-separated hex list
//   - anything else: a registered palette name (case-insensitive, unknown
//     names fall back to the default palette)
func Load(spec string) (color.Palette, error) {
	switch {
	case strings.EqualFold(filepath.Ext(spec), ".pal"):
		f, err := os.Open(spec)
		if err != nil {
			return nil, fmt.Errorf("could not open palette file %q: %w", spec, err)
		}
		defer f.Close()

		pal, err := ReadPAL(f)
		if err != nil {
			return nil, fmt.Errorf("could not load palette file %q: %w", spec, err)
		}
		return pal, nil

	case strings.ContainsAny(spec, "#,"):
		list := strings.Split(spec, ",")
		for i, s := range list {
			list[i] = strings.TrimSpace(s)
		}
		return ParseHexList(list)

	default:
		return ParseHexList(Lookup(spec))
	}
}

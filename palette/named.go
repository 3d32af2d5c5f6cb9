package palette

import "strings"

// Registered palettes, as ordered hex lists. These are the colors the
// dithering engine quantizes to; order is significant because it defines the
// index correspondence used by color replacement.
var palettes = map[string][]string{
	"default":  {"#000", "#fff"},
	"gameboy":  {"#0f380f", "#306230", "#8bac0f", "#9bbc0f"},
	"spectra6": {"#000", "#fff", "#f00", "#ff0", "#00f", "#0f0"},
	"acep":     {"#000", "#fff", "#0f0", "#00f", "#f00", "#ff0", "#f80"},
}

// Device color sets, positionally matched to the palette of the same name.
// These are the colors the panels actually show; mapping a dithered image
// onto them previews the on-device result.
var deviceColors = map[string][]string{
	"default":  {"#000", "#fff"},
	"gameboy":  {"#000", "#555", "#aaa", "#fff"},
	"spectra6": {"#312838", "#aeada8", "#923d3e", "#ada049", "#393f68", "#306544"},
	"acep":     {"#312838", "#aeada8", "#306544", "#393f68", "#923d3e", "#ada049", "#a05341"},
}

// Lookup returns the named palette's hex colors. Names are case-insensitive;
// unknown names return the default palette.
func Lookup(name string) []string {
	if pal, ok := palettes[strings.ToLower(name)]; ok {
		return pal
	}
	return palettes["default"]
}

// DeviceColors returns the named device color set's hex colors. Names are
// case-insensitive; unknown names return the default set.
func DeviceColors(name string) []string {
	if cols, ok := deviceColors[strings.ToLower(name)]; ok {
		return cols
	}
	return deviceColors["default"]
}

// Names lists the registered palette names in no particular order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	return names
}

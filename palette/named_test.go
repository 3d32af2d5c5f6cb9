package palette

import (
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		colors int
	}{
		{"default", 2},
		{"gameboy", 4},
		{"spectra6", 6},
		{"acep", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pal := Lookup(tt.name)
			if len(pal) != tt.colors {
				t.Errorf("Lookup(%q) has %d colors, want %d", tt.name, len(pal), tt.colors)
			}
			if _, err := ParseHexList(pal); err != nil {
				t.Errorf("Lookup(%q) holds an unparsable color: %v", tt.name, err)
			}
		})
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	if !reflect.DeepEqual(Lookup("SPECTRA6"), Lookup("spectra6")) {
		t.Error("Lookup is case-sensitive")
	}
	if !reflect.DeepEqual(Lookup("Gameboy"), Lookup("gameboy")) {
		t.Error("Lookup is case-sensitive")
	}
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	if !reflect.DeepEqual(Lookup("nonexistent"), Lookup("default")) {
		t.Error("unknown palette name did not fall back to default")
	}
}

func TestDeviceColorsMatchPaletteLengths(t *testing.T) {
	// Replacement is positional, so every device set must cover its
	// palette entry for entry.
	for _, name := range Names() {
		if pal, dev := Lookup(name), DeviceColors(name); len(pal) != len(dev) {
			t.Errorf("palette %q has %d colors but %d device colors", name, len(pal), len(dev))
		}
	}
}

func TestDeviceColorsUnknownFallsBackToDefault(t *testing.T) {
	if !reflect.DeepEqual(DeviceColors("nonexistent"), DeviceColors("default")) {
		t.Error("unknown device set name did not fall back to default")
	}
	if !reflect.DeepEqual(DeviceColors("SPECTRA6"), DeviceColors("spectra6")) {
		t.Error("DeviceColors is case-sensitive")
	}
}

func TestDefaultPaletteIsBlackAndWhite(t *testing.T) {
	pal := Lookup("default")
	if len(pal) != 2 || pal[0] != "#000" || pal[1] != "#fff" {
		t.Errorf("default palette = %v, want [#000 #fff]", pal)
	}
}

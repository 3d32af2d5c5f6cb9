package palette

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNamedPalette(t *testing.T) {
	pal, err := Load("spectra6")
	if err != nil {
		t.Fatal(err)
	}
	if len(pal) != 6 {
		t.Errorf("Load(spectra6) has %d colors, want 6", len(pal))
	}
}

func TestLoadUnknownNameFallsBackToDefault(t *testing.T) {
	pal, err := Load("no-such-palette")
	if err != nil {
		t.Fatal(err)
	}
	if len(pal) != 2 {
		t.Errorf("unknown name resolved to %d colors, want the 2-color default", len(pal))
	}
}

func TestLoadHexList(t *testing.T) {
	pal, err := Load("#000, #fff, #f00")
	if err != nil {
		t.Fatal(err)
	}
	if len(pal) != 3 {
		t.Fatalf("Load(hex list) has %d colors, want 3", len(pal))
	}
	if pal[2] != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("color 2 = %v, want red", pal[2])
	}
}

func TestLoadHexListRejectsMalformedEntry(t *testing.T) {
	if _, err := Load("#000,oops"); err == nil {
		t.Error("malformed hex list accepted")
	}
}

func TestLoadPALFile(t *testing.T) {
	want := color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 255, 255, 255},
	}

	path := filepath.Join(t.TempDir(), "test.pal")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WritePAL(f, want); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	pal, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(pal) != len(want) {
		t.Fatalf("Load(%q) has %d colors, want %d", path, len(pal), len(want))
	}
	for i := range want {
		if pal[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, pal[i], want[i])
		}
	}
}

func TestLoadMissingPALFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.pal")); err == nil {
		t.Error("missing palette file accepted")
	}
}

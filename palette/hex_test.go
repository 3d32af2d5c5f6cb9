package palette

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#000", color.RGBA{0, 0, 0, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"fff", color.RGBA{255, 255, 255, 255}},
		{"#f00", color.RGBA{255, 0, 0, 255}},
		{"#1a2b3c", color.RGBA{0x1a, 0x2b, 0x3c, 255}},
		{"1a2b3c", color.RGBA{0x1a, 0x2b, 0x3c, 255}},
		{"#AbCdEf", color.RGBA{0xab, 0xcd, 0xef, 255}},
		{"#147", color.RGBA{0x11, 0x44, 0x77, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "zzz", "#ggg", "#12345g", "hello!"} {
		t.Run(in, func(t *testing.T) {
			if got, err := ParseHex(in); err == nil {
				t.Errorf("ParseHex(%q) = %v, want error", in, got)
			}
		})
	}
}

func TestParseHexList(t *testing.T) {
	pal, err := ParseHexList([]string{"#000", "#fff", "#f00"})
	if err != nil {
		t.Fatal(err)
	}
	want := color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 255, 255, 255},
		color.RGBA{255, 0, 0, 255},
	}
	if len(pal) != len(want) {
		t.Fatalf("got %d colors, want %d", len(pal), len(want))
	}
	for i := range want {
		if pal[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, pal[i], want[i])
		}
	}
}

func TestParseHexListFailsOnAnyBadEntry(t *testing.T) {
	if _, err := ParseHexList([]string{"#000", "bad", "#fff"}); err == nil {
		t.Error("list with malformed entry accepted")
	}
}

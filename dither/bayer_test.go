package dither

import (
	"fmt"
	"reflect"
	"testing"
)

func TestBayerMatrixCompleteness(t *testing.T) {
	for w := 1; w <= 8; w++ {
		for h := 1; h <= 8; h++ {
			t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
				m := BayerMatrix(w, h)
				if len(m) != h {
					t.Fatalf("BayerMatrix(%d, %d) has %d rows, want %d", w, h, len(m), h)
				}

				seen := make(map[int]bool, w*h)
				for y, row := range m {
					if len(row) != w {
						t.Fatalf("row %d has %d columns, want %d", y, len(row), w)
					}
					for _, v := range row {
						if v < 0 || v >= w*h {
							t.Errorf("value %d out of range [0, %d)", v, w*h)
						}
						if seen[v] {
							t.Errorf("value %d appears more than once", v)
						}
						seen[v] = true
					}
				}
				if len(seen) != w*h {
					t.Errorf("matrix holds %d distinct values, want %d", len(seen), w*h)
				}
			})
		}
	}
}

func TestBayerMatrixFullSizeIsCanonical(t *testing.T) {
	m := BayerMatrix(8, 8)
	for y := range 8 {
		for x := range 8 {
			if m[y][x] != canonicalBayer[y][x] {
				t.Errorf("BayerMatrix(8, 8)[%d][%d] = %d, want %d", y, x, m[y][x], canonicalBayer[y][x])
			}
		}
	}
}

func TestBayerMatrixClampsOversizedRequests(t *testing.T) {
	if got, want := BayerMatrix(9, 12), BayerMatrix(8, 8); !reflect.DeepEqual(got, want) {
		t.Errorf("BayerMatrix(9, 12) = %v, want the 8x8 matrix", got)
	}
}

func TestBayerMatrixTransposedSampling(t *testing.T) {
	// small[y][x] reads canonical[x][y]: the 2x2 samples {0, 32, 48, 16},
	// ranked into 0..3.
	want2 := [][]int{{0, 2}, {3, 1}}
	if got := BayerMatrix(2, 2); !reflect.DeepEqual(got, want2) {
		t.Errorf("BayerMatrix(2, 2) = %v, want %v", got, want2)
	}

	// The 4x4 samples are the multiples of 4 up to 60, so ranking divides
	// by 4 and yields the classic 4x4 index matrix.
	want4 := [][]int{
		{0, 8, 2, 10},
		{12, 4, 14, 6},
		{3, 11, 1, 9},
		{15, 7, 13, 5},
	}
	if got := BayerMatrix(4, 4); !reflect.DeepEqual(got, want4) {
		t.Errorf("BayerMatrix(4, 4) = %v, want %v", got, want4)
	}
}

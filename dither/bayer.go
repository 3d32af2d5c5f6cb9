package dither

import "sort"

// canonicalBayer is the 8x8 base threshold matrix. Every smaller matrix is
// carved out of it by transposed sampling and re-indexed to a dense range.
var canonicalBayer = [8][8]int{
	{0, 48, 12, 60, 3, 51, 15, 63},
	{32, 16, 44, 28, 35, 19, 47, 31},
	{8, 56, 4, 52, 11, 59, 7, 55},
	{40, 24, 36, 20, 43, 27, 39, 23},
	{2, 50, 14, 62, 1, 49, 13, 61},
	{34, 18, 46, 30, 33, 17, 45, 29},
	{10, 58, 6, 54, 9, 57, 5, 53},
	{42, 26, 38, 22, 41, 25, 37, 21},
}

// BayerMatrix builds an ordered-dithering threshold matrix of the requested
// size. Dimensions are capped at 8. The result always contains each integer
// in 0..(width*height - 1) exactly once.
//
// Smaller matrices read the canonical matrix with x and y swapped
// (small[y][x] = canonical[x][y]); the sampled values are then ranked into a
// contiguous range. The full 8x8 is returned as-is.
func BayerMatrix(width, height int) [][]int {
	if width > 8 {
		width = 8
	}
	if height > 8 {
		height = 8
	}

	if width == 8 && height == 8 {
		m := make([][]int, 8)
		for y := range m {
			m[y] = append([]int(nil), canonicalBayer[y][:]...)
		}
		return m
	}

	m := make([][]int, height)
	flat := make([]int, 0, width*height)
	for y := range height {
		row := make([]int, width)
		for x := range width {
			row[x] = canonicalBayer[x][y]
			flat = append(flat, row[x])
		}
		m[y] = row
	}

	sort.Ints(flat)
	rank := make(map[int]int, len(flat))
	for i, v := range flat {
		rank[v] = i
	}
	for y := range m {
		for x := range m[y] {
			m[y][x] = rank[m[y][x]]
		}
	}

	return m
}

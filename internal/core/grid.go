package core

import (
	"math/rand/v2"

	pcore "mutalife/pkg/core"
)

// neighborOffsets lists the (row, column) deltas of the Moore neighbourhood.
var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Grid stores a toroidal 2D grid of binary cells in row-major order.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid allocates a grid of dead cells with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// GridForWindow derives the grid dimensions from a window size and the pixel
// size of a single cell.
func GridForWindow(width, height, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return NewGrid(height/cellSize, width/cellSize)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// Size reports the grid dimensions with W as columns and H as rows.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Cells exposes the backing slice so callers can read values in bulk.
func (g *Grid) Cells() []uint8 { return g.data }

// Contains reports whether (row, col) lies inside the grid without wrapping.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Get returns the cell value at (row, col).
func (g *Grid) Get(row, col int) uint8 { return g.data[row*g.cols+col] }

// Alive reports whether the cell at (row, col) is live.
func (g *Grid) Alive(row, col int) bool { return g.data[row*g.cols+col] != 0 }

// Set stores v at (row, col); any non-zero value is stored as 1.
func (g *Grid) Set(row, col int, v uint8) {
	if v != 0 {
		v = 1
	}
	g.data[row*g.cols+col] = v
}

// Toggle flips the cell at (row, col).
func (g *Grid) Toggle(row, col int) {
	idx := row*g.cols + col
	g.data[idx] ^= 1
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// FillRandom sets every cell alive with probability one half.
func (g *Grid) FillRandom(r *rand.Rand) {
	pcore.FillBinary(r, g.data)
}

// LiveNeighbors counts the live cells among the eight wrapped neighbours.
func (g *Grid) LiveNeighbors(row, col int) int {
	n := 0
	for _, off := range neighborOffsets {
		r := (row + off[0] + g.rows) % g.rows
		c := (col + off[1] + g.cols) % g.cols
		n += int(g.data[r*g.cols+c])
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(row, col int, alive bool)) {
	for row := 0; row < g.rows; row++ {
		base := row * g.cols
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.data[base+col] != 0)
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

package render

import "image/color"

// CellLayout describes how a grid maps onto a pixel buffer.
type CellLayout struct {
	Rows     int
	Columns  int
	CellSize int
}

// Bounds returns the pixel dimensions covered by the layout.
func (l CellLayout) Bounds() (int, int) {
	return l.Columns * l.CellSize, l.Rows * l.CellSize
}

// fillCellsRGBA rasterises binary cell data into buf. Live cells become
// squares of on, one pixel short of the cell size so neighbouring cells stay
// visually separated; everything else is bg.
func fillCellsRGBA(buf []byte, cells []uint8, layout CellLayout, on, bg color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rBg, gBg, bBg, aBg := bg.RGBA()
	onPx := [4]byte{uint8(rOn >> 8), uint8(gOn >> 8), uint8(bOn >> 8), uint8(aOn >> 8)}
	bgPx := [4]byte{uint8(rBg >> 8), uint8(gBg >> 8), uint8(bBg >> 8), uint8(aBg >> 8)}

	width, _ := layout.Bounds()
	size := layout.CellSize
	fill := size
	if size > 1 {
		fill = size - 1
	}

	for i := 0; i+3 < len(buf); i += 4 {
		copy(buf[i:i+4], bgPx[:])
	}
	for i, c := range cells {
		if c == 0 {
			continue
		}
		x0 := (i % layout.Columns) * size
		y0 := (i / layout.Columns) * size
		for y := y0; y < y0+fill; y++ {
			base := (y*width + x0) * 4
			for x := 0; x < fill; x++ {
				copy(buf[base+x*4:base+x*4+4], onPx[:])
			}
		}
	}
}

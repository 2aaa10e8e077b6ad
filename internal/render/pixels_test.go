package render

import (
	"image/color"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	layout := CellLayout{Rows: 2, Columns: 2, CellSize: 3}
	w, h := layout.Bounds()
	if w != 6 || h != 6 {
		t.Fatalf("bounds %dx%d", w, h)
	}
	buf := make([]byte, 4*w*h)
	on := color.RGBA{R: 0, G: 255, B: 0, A: 255}
	bg := color.RGBA{R: 29, G: 29, B: 29, A: 255}
	fillCellsRGBA(buf, []uint8{0, 1, 0, 0}, layout, on, bg)

	pixel := func(x, y int) color.RGBA {
		i := (y*w + x) * 4
		return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := bg
			if x >= 3 && x < 5 && y < 2 {
				want = on
			}
			if got := pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillCellsRGBASinglePixelCells(t *testing.T) {
	layout := CellLayout{Rows: 1, Columns: 3, CellSize: 1}
	buf := make([]byte, 4*3)
	fillCellsRGBA(buf, []uint8{1, 0, 1}, layout, color.White, color.Black)
	if buf[0] != 255 || buf[4] != 0 || buf[8] != 255 {
		t.Fatalf("unexpected pixels %v", buf)
	}
}

//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter rasterises binary cell data into a single RGBA image.
type GridPainter struct {
	layout CellLayout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(layout CellLayout) *GridPainter {
	w, h := layout.Bounds()
	return &GridPainter{layout: layout, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads the provided cells into the painter image and draws it at the
// origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, bg color.Color) {
	if len(cells) != gp.layout.Rows*gp.layout.Columns {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.layout, on, bg)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the pixel dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.layout.Bounds() }

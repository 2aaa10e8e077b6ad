//go:build ebiten

package ui

import (
	"image/color"

	"mutalife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const historyRows = 10

// Overlay draws the status bar, pause hints and the rule history list on top
// of the grid.
type Overlay struct {
	sim         core.Sim
	width       int
	height      int
	showHistory bool
}

// NewOverlay constructs an overlay covering a width x height pixel grid.
func NewOverlay(sim core.Sim, width, height int) *Overlay {
	return &Overlay{sim: sim, width: width, height: height}
}

// Update toggles the history list with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHistory = !o.showHistory
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	status, ok := o.sim.(StatusSource)
	if !ok {
		return
	}
	face := basicfont.Face7x13

	lines := StatusLines(status)
	o.drawBox(screen, 0, 0, float32(o.width), float32(len(lines)*overlayLine+overlayPad))
	for i, line := range lines {
		text.Draw(screen, line, face, overlayPad, overlayPad+overlayBaseline+i*overlayLine, statusColor)
	}

	if !status.IsRunning() {
		hints := PausedHints()
		top := o.height - len(hints)*overlayLine - overlayPad
		o.drawBox(screen, 0, float32(top-overlayPad), float32(o.width), float32(o.height-top+overlayPad))
		for i, line := range hints {
			text.Draw(screen, line, face, overlayPad, top+overlayBaseline+i*overlayLine-overlayPad/2, hintColor)
		}
	}

	if o.showHistory {
		if hist, ok := o.sim.(HistorySource); ok {
			o.drawHistory(screen, HistoryLines(hist, historyRows), float32(len(lines)*overlayLine+2*overlayPad))
		}
	}
}

func (o *Overlay) drawHistory(screen *ebiten.Image, lines []string, top float32) {
	const boxWidth = 170
	left := float32(o.width - boxWidth - overlayPad)
	o.drawBox(screen, left, top, boxWidth, float32(len(lines)*overlayLine+overlayPad))
	face := basicfont.Face7x13
	for i, line := range lines {
		clr := hintColor
		if i == 0 {
			clr = statusColor
		}
		text.Draw(screen, line, face, int(left)+overlayPad, int(top)+overlayPad/2+overlayBaseline+i*overlayLine, clr)
	}
}

func (o *Overlay) drawBox(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, boxColor, false)
}

var (
	boxColor    = color.RGBA{A: 180}
	statusColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hintColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

const (
	overlayPad      = 8
	overlayLine     = 16
	overlayBaseline = 12
)

//go:build ebiten

package app

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mutalife/internal/core"
	"mutalife/internal/render"
	"mutalife/internal/ui"
)

var keyActions = []struct {
	keys   []ebiten.Key
	action Action
}{
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, ActionStart},
	{[]ebiten.Key{ebiten.KeySpace}, ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, ActionRandom},
	{[]ebiten.Key{ebiten.KeyC}, ActionClear},
	{[]ebiten.Key{ebiten.KeyM}, ActionMutate},
	{[]ebiten.Key{ebiten.KeyT}, ActionResetRules},
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, ActionIntervalUp},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, ActionIntervalDown},
	{[]ebiten.Key{ebiten.KeyF}, ActionSpeedUp},
	{[]ebiten.Key{ebiten.KeyS}, ActionSlowDown},
	{[]ebiten.Key{ebiten.KeyN}, ActionStepOnce},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	gridW, gridH int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, logger *log.Logger) *Game {
	size := sim.Size()
	layout := render.CellLayout{Rows: size.H, Columns: size.W, CellSize: cfg.CellSize}
	w, h := layout.Bounds()
	return &Game{
		session:  NewSession(sim, cfg.CellSize, cfg.TPS, logger),
		painter:  render.NewGridPainter(layout),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim, w, h),
		onColor:  color.RGBA{R: 0, G: 200, B: 0, A: 255},
		offColor: color.RGBA{R: 29, G: 29, B: 29, A: 255},
		gridW:    w,
		gridH:    h,
	}
}

// Title returns the current window title.
func (g *Game) Title() string { return g.session.Title() }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, binding := range keyActions {
		for _, k := range binding.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.session.Do(binding.action)
				break
			}
		}
	}
	g.overlay.Update()

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if x >= g.gridW {
		pressed = false
	}
	g.session.Pointer(x, y, pressed)

	g.session.Tick()
	if g.session.DrainEvents() {
		ebiten.SetWindowTitle(g.session.Title())
	}
	g.hud.Update(g.gridW)
	return nil
}

// Draw renders the current simulation state to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.session.Sim().Cells(), g.onColor, g.offColor)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridW, g.gridH)
}

// Layout reports the logical screen size: the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridW + g.hud.Width(), g.gridH
}

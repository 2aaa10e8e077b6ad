package life

import (
	"mutalife/internal/core"
	"mutalife/internal/rules"
	pcore "mutalife/pkg/core"
)

// Life is an outer-totalistic automaton on a toroidal grid whose birth and
// survival counts come from a rules.RuleSet. Each step reads one buffer and
// writes the other, then swaps them.
type Life struct {
	cur   *core.Grid
	nxt   *core.Grid
	rules rules.RuleSet
	table rules.Table
}

// New returns a Life simulation running classic B3/S23.
func New(rows, cols int) *Life {
	return NewWithRules(rows, cols, rules.Classic())
}

// NewWithRules returns a Life simulation running rs.
func NewWithRules(rows, cols int, rs rules.RuleSet) *Life {
	return FromGrid(core.NewGrid(rows, cols), rs)
}

// FromGrid returns a Life simulation that evolves g in place under rs.
func FromGrid(g *core.Grid, rs rules.RuleSet) *Life {
	l := &Life{cur: g, nxt: core.NewGrid(g.Rows(), g.Columns())}
	l.SetRules(rs)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Rules returns the active rule set.
func (l *Life) Rules() rules.RuleSet { return l.rules.Clone() }

// SetRules replaces the active rule set.
func (l *Life) SetRules(rs rules.RuleSet) {
	l.rules = rs.Clone()
	l.table = l.rules.Table()
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.cur.FillRandom(pcore.NewRNG(seed).Source())
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	cur, nxt := l.cur, l.nxt
	rows, cols := cur.Rows(), cur.Columns()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			var v uint8
			if l.table.Next(cur.Alive(row, col), cur.LiveNeighbors(row, col)) {
				v = 1
			}
			nxt.Set(row, col, v)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return FromGrid(core.GridForWindow(c.Width, c.Height, c.CellSize), c.Rules)
	})
}

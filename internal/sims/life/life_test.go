package life

import (
	"testing"

	"mutalife/internal/core"
	"mutalife/internal/rules"
)

func assertLive(t *testing.T, g *core.Grid, expects map[[2]int]bool, stage string) {
	t.Helper()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			alive := g.Alive(row, col)
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, row, col, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	g := life.Grid()
	g.Set(2, 1, 1)
	g.Set(2, 2, 1)
	g.Set(2, 3, 1)

	life.Step()
	assertLive(t, life.Grid(), map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after first step")

	life.Step()
	assertLive(t, life.Grid(), map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "after second step")
}

func TestBlockIsStill(t *testing.T) {
	life := New(6, 6)
	block := map[[2]int]bool{{2, 2}: true, {2, 3}: true, {3, 2}: true, {3, 3}: true}
	for pos := range block {
		life.Grid().Set(pos[0], pos[1], 1)
	}

	for i := 0; i < 3; i++ {
		life.Step()
		assertLive(t, life.Grid(), block, "block")
	}
}

func TestBlinkerAcrossSeam(t *testing.T) {
	life := New(5, 5)
	g := life.Grid()
	g.Set(0, 4, 1)
	g.Set(0, 0, 1)
	g.Set(0, 1, 1)

	life.Step()
	assertLive(t, life.Grid(), map[[2]int]bool{
		{4, 0}: true,
		{0, 0}: true,
		{1, 0}: true,
	}, "wrapped blinker")
}

func TestStepReadsOnlyPreviousGeneration(t *testing.T) {
	// B1/S8: a lone cell dies and every neighbour is born. Updating in place
	// would let later cells see earlier births and break the ring.
	life := NewWithRules(5, 5, rules.RuleSet{Birth: []int{1}, Survival: []int{8}})
	life.Grid().Set(2, 2, 1)

	life.Step()
	assertLive(t, life.Grid(), map[[2]int]bool{
		{1, 1}: true, {1, 2}: true, {1, 3}: true,
		{2, 1}: true, {2, 3}: true,
		{3, 1}: true, {3, 2}: true, {3, 3}: true,
	}, "ring")
}

func TestRulesDriveBirth(t *testing.T) {
	seed := func(l *Life) {
		for _, col := range []int{1, 2, 3} {
			l.Grid().Set(1, col, 1)
			l.Grid().Set(3, col, 1)
		}
	}

	classic := New(6, 6)
	seed(classic)
	classic.Step()
	if classic.Grid().Alive(2, 2) {
		t.Fatal("B3 should not birth a cell with six neighbours")
	}

	highlife := NewWithRules(6, 6, rules.RuleSet{Birth: []int{3, 6}, Survival: []int{2, 3}})
	seed(highlife)
	highlife.Step()
	if !highlife.Grid().Alive(2, 2) {
		t.Fatal("B36 should birth a cell with six neighbours")
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	life := New(3, 3)
	rs := life.Rules()
	rs.Birth[0] = 7
	if life.Rules().String() != "B3/S23" {
		t.Fatalf("rules changed through returned copy: %s", life.Rules())
	}
}

func TestResetDeterministic(t *testing.T) {
	a, b := New(16, 16), New(16, 16)
	a.Reset(42)
	b.Reset(42)
	for i, v := range a.Cells() {
		if b.Cells()[i] != v {
			t.Fatalf("Reset(42) differs at %d", i)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "300", "h": "200", "cell": "10", "rule": "B36/S23"})
	if c.Width != 300 || c.Height != 200 || c.CellSize != 10 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Rules.String() != "B36/S23" {
		t.Fatalf("rules %s", c.Rules)
	}

	c = FromMap(map[string]string{"w": "-1", "rule": "nonsense"})
	if c.Width != 750 || c.Rules.String() != "B3/S23" {
		t.Fatalf("invalid values not ignored: %+v", c)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Lookup("life")
	if !ok {
		t.Fatal("life not registered")
	}
	sim := factory(map[string]string{"w": "100", "h": "50", "cell": "5"})
	if size := sim.Size(); size.W != 20 || size.H != 10 {
		t.Fatalf("registered sim size %+v", size)
	}
}

func TestFromGridSizesFromWindow(t *testing.T) {
	g := core.GridForWindow(750, 740, 25)
	l := FromGrid(g, rules.Classic())
	if size := l.Size(); size.W != 30 || size.H != 29 {
		t.Fatalf("grid %dx%d, expected 30x29", size.W, size.H)
	}
	if l.Grid() != g {
		t.Fatal("FromGrid should evolve the supplied grid")
	}
}

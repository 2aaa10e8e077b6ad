package rules

import (
	"slices"
	"testing"

	pcore "mutalife/pkg/core"
)

func testRNG(seed int64) *pcore.RNG {
	return pcore.NewRNG(seed)
}

func TestMutationPreservesInvariant(t *testing.T) {
	starts := []RuleSet{
		Classic(),
		{Birth: []int{0}, Survival: []int{0}},
		{Birth: []int{8}, Survival: []int{8}},
		{Birth: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Survival: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for i, start := range starts {
		m := NewMutator(testRNG(int64(i + 1)))
		rs := start
		for step := 0; step < 2000; step++ {
			rs, _ = m.Mutate(rs)
			if err := rs.Validate(); err != nil {
				t.Fatalf("start %s step %d produced %v: %v", start, step, rs, err)
			}
		}
	}
}

func TestMutateDoesNotModifyInput(t *testing.T) {
	m := NewMutator(testRNG(5))
	rs := RuleSet{Birth: []int{3, 4, 5}, Survival: []int{1, 2, 3}}
	for _, s := range []Strategy{MutateSurvival, MutateBirth, Shift, Randomize} {
		for i := 0; i < 50; i++ {
			m.Apply(rs, s)
		}
	}
	if !slices.Equal(rs.Birth, []int{3, 4, 5}) || !slices.Equal(rs.Survival, []int{1, 2, 3}) {
		t.Fatalf("input mutated to %s", rs)
	}
}

func TestStrategyWeights(t *testing.T) {
	m := NewMutator(testRNG(17))
	counts := map[Strategy]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[m.Choose()]++
	}
	expect := map[Strategy]float64{MutateSurvival: 0.3, MutateBirth: 0.3, Shift: 0.2, Randomize: 0.2}
	for s, p := range expect {
		got := float64(counts[s]) / draws
		if got < p-0.03 || got > p+0.03 {
			t.Fatalf("strategy %s drawn %.3f of the time, expected about %.1f", s, got, p)
		}
	}
}

func TestSurvivalStrategyTouchesOnlySurvival(t *testing.T) {
	m := NewMutator(testRNG(23))
	rs := Classic()
	for i := 0; i < 200; i++ {
		next := m.Apply(rs, MutateSurvival)
		if !slices.Equal(next.Birth, rs.Birth) {
			t.Fatalf("survival mutation changed birth: %s -> %s", rs, next)
		}
		diff := len(next.Survival) - len(rs.Survival)
		if diff < -1 || diff > 1 {
			t.Fatalf("survival mutation changed size by %d", diff)
		}
		rs = next
	}
}

func TestRemovalKeepsLastElement(t *testing.T) {
	m := NewMutator(testRNG(29))
	rs := RuleSet{Birth: []int{5}, Survival: []int{4}}
	for i := 0; i < 200; i++ {
		next := m.Apply(rs, MutateBirth)
		if len(next.Birth) == 0 {
			t.Fatal("birth set emptied")
		}
		if len(next.Birth) == 1 && next.Birth[0] != 5 {
			t.Fatalf("single birth count replaced: %s", next)
		}
	}
}

func TestShiftClampsAndDeduplicates(t *testing.T) {
	rs := RuleSet{Birth: []int{0, 1}, Survival: []int{7, 8}}
	m := NewMutator(testRNG(31))
	sawUp, sawDown := false, false
	for i := 0; i < 100; i++ {
		next := m.Apply(rs, Shift)
		switch {
		case slices.Equal(next.Birth, []int{0}) && slices.Equal(next.Survival, []int{6, 7}):
			sawDown = true
		case slices.Equal(next.Birth, []int{1, 2}) && slices.Equal(next.Survival, []int{8}):
			sawUp = true
		default:
			t.Fatalf("unexpected shift result %s", next)
		}
	}
	if !sawUp || !sawDown {
		t.Fatalf("shift directions seen: up=%v down=%v", sawUp, sawDown)
	}
}

func TestRandomizeSizes(t *testing.T) {
	m := NewMutator(testRNG(37))
	for i := 0; i < 500; i++ {
		next := m.Apply(Classic(), Randomize)
		if len(next.Survival) < 1 || len(next.Survival) > 4 {
			t.Fatalf("randomized survival size %d", len(next.Survival))
		}
		if len(next.Birth) < 1 || len(next.Birth) > 3 {
			t.Fatalf("randomized birth size %d", len(next.Birth))
		}
		if err := next.Validate(); err != nil {
			t.Fatalf("randomized rules invalid: %v", err)
		}
	}
}

func TestStrategyString(t *testing.T) {
	if Shift.String() != "shift" || Strategy(42).String() != "unknown" {
		t.Fatal("unexpected strategy names")
	}
}

func TestReseedRestartsMutations(t *testing.T) {
	rng := testRNG(41)
	m := NewMutator(rng)
	var first []string
	rs := Classic()
	for i := 0; i < 20; i++ {
		rs, _ = m.Mutate(rs)
		first = append(first, rs.String())
	}

	rng.Reseed(41)
	rs = Classic()
	for i := 0; i < 20; i++ {
		rs, _ = m.Mutate(rs)
		if rs.String() != first[i] {
			t.Fatalf("mutation %d diverged after reseed: %s vs %s", i, rs, first[i])
		}
	}
}

package mutating

import "testing"

func TestDefaultConfigGrid(t *testing.T) {
	size := New(DefaultConfig()).Size()
	if size.W != 30 || size.H != 30 {
		t.Fatalf("default grid %dx%d", size.W, size.H)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":             "640",
		"h":             "480",
		"cell":          "16",
		"seed":          "-3",
		"interval":      "25",
		"min_interval":  "5",
		"interval_step": "5",
		"history_limit": "100",
		"rules":         "B36/S23",
	})
	if size := New(c).Size(); size.W != 40 || size.H != 30 {
		t.Fatalf("grid %dx%d", size.W, size.H)
	}
	if c.Seed != -3 || c.Interval != 25 || c.MinInterval != 5 || c.IntervalStep != 5 || c.HistoryLimit != 100 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.InitialRules.String() != "B36/S23" {
		t.Fatalf("rules %s", c.InitialRules)
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{
		"w":        "wide",
		"interval": "0",
		"cell":     "5000",
		"rules":    "B9/S",
	})
	d := DefaultConfig()
	if c.Width != d.Width || c.Interval != d.Interval {
		t.Fatalf("invalid values applied: %+v", c)
	}
	if c.CellSize != 750 {
		t.Fatalf("oversized cell not clamped: %d", c.CellSize)
	}
	if c.InitialRules.String() != "B3/S23" {
		t.Fatalf("invalid rules applied: %s", c.InitialRules)
	}
	if FromMap(nil).Interval != d.Interval {
		t.Fatal("nil map should yield defaults")
	}
}

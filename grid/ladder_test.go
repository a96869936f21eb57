package grid

import (
	"math"
	"testing"
)

func TestBuildLadderCount(t *testing.T) {
	ladder := BuildLadder(scenarioInput())

	// ceil(50/10) + 10 overshoot rungs.
	if len(ladder) != 15 {
		t.Fatalf("ladder size = %d, want 15", len(ladder))
	}
	if ladder[0].Kind != KindEntry {
		t.Errorf("first rung kind = %v, want %v", ladder[0].Kind, KindEntry)
	}
	for _, o := range ladder[1:] {
		if o.Kind != KindMain {
			t.Errorf("rung %s kind = %v, want %v", o.Label, o.Kind, KindMain)
		}
	}
}

func TestBuildLadderLots(t *testing.T) {
	ladder := BuildLadder(scenarioInput())

	want := []float64{0.01, 0.01, 0.02, 0.03, 0.04, 0.05}
	for i, lot := range want {
		if !approxEqual(ladder[i].Lot, lot, 1e-9) {
			t.Errorf("rung %d: lot = %v, want %v", i, ladder[i].Lot, lot)
		}
	}
}

func TestBuildLadderCap(t *testing.T) {
	in := scenarioInput()
	in.BoundaryPrice = 0.5
	in.Step = 0.1

	ladder := BuildLadder(in)
	if len(ladder) != MaxOrders {
		t.Errorf("ladder size = %d, want safety cap %d", len(ladder), MaxOrders)
	}
}

func TestBuildLadderShort(t *testing.T) {
	in := scenarioInput()
	in.Direction = Short
	in.BoundaryPrice = 2050

	ladder := BuildLadder(in)
	for i, o := range ladder {
		want := 2000 + float64(i)*10
		if !approxEqual(o.Price, want, 1e-9) {
			t.Errorf("rung %d: price = %v, want %v", i, o.Price, want)
		}
	}
}

func TestBuildLadderDynamicInterleave(t *testing.T) {
	in := scenarioInput()
	in.UseDynamicLadder = true

	ladder := BuildLadder(in)

	// Dynamic rungs sit 1.5 steps past their index and slot between the
	// mains once sorted by distance.
	wantLabels := []string{"0", "1", "1.5", "2", "2.5", "3", "3.5"}
	for i, label := range wantLabels {
		if ladder[i].Label != label {
			t.Errorf("slot %d: label = %q, want %q", i, ladder[i].Label, label)
		}
	}

	// First dynamic rung: offset 15, lot 0.01*1.4^2 rounded.
	d := ladder[2]
	if d.Kind != KindDynamic {
		t.Errorf("slot 2 kind = %v, want %v", d.Kind, KindDynamic)
	}
	if !approxEqual(d.Price, 1985, 1e-9) {
		t.Errorf("first dynamic price = %v, want 1985", d.Price)
	}
	if !approxEqual(d.Lot, 0.02, 1e-9) {
		t.Errorf("first dynamic lot = %v, want 0.02", d.Lot)
	}

	prev := -1.0
	for i, o := range ladder {
		dist := math.Abs(o.Price - in.EntryPrice)
		if dist < prev {
			t.Errorf("slot %d: distance %v < previous %v", i, dist, prev)
		}
		prev = dist
	}
}

func TestBuildLadderDegenerate(t *testing.T) {
	in := scenarioInput()
	in.Step = 0
	if got := BuildLadder(in); got != nil {
		t.Errorf("zero step: expected nil ladder, got %d rungs", len(got))
	}

	in = scenarioInput()
	in.InitialLot = -1
	if got := BuildLadder(in); got != nil {
		t.Errorf("negative lot: expected nil ladder, got %d rungs", len(got))
	}
}

func TestParseDirection(t *testing.T) {
	for s, want := range map[string]Direction{
		"long": Long, "LONG": Long, " buy ": Long,
		"short": Short, "SELL": Short,
	} {
		got, err := ParseDirection(s)
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", s, got, want)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected an error for an unknown direction")
	}
}

func TestRoundLot(t *testing.T) {
	cases := map[float64]float64{
		0.014:     0.01,
		0.0196:    0.02,
		0.02744:   0.03,
		0.038416:  0.04,
		0.0537824: 0.05,
	}
	for in, want := range cases {
		if got := RoundLot(in); !approxEqual(got, want, 1e-12) {
			t.Errorf("RoundLot(%v) = %v, want %v", in, got, want)
		}
	}
}

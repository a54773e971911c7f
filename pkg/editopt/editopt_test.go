package editopt

import (
	"math"
	"testing"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/reach"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/simulator"
)

func TestOffsetAndPositionRoundTrip(t *testing.T) {
	lines := []string{"hello", "world", "foo"}
	cases := []simulator.Position{
		simulator.NewPosition(0, 0),
		simulator.NewPosition(0, 3),
		simulator.NewPosition(1, 2),
		simulator.NewPosition(2, 0),
	}
	for _, p := range cases {
		off := OffsetAtPosition(lines, p)
		got := PositionAtOffset(lines, off)
		if got.Line != p.Line || got.Col != p.Col {
			t.Errorf("round trip for %+v (offset %d) = %+v", p, off, got)
		}
	}
}

func TestOffsetAtPositionAccountsForNewlines(t *testing.T) {
	lines := []string{"ab", "cd"}
	// offset of (1, 0) should be len("ab") + 1 (the newline) = 3
	if got := OffsetAtPosition(lines, simulator.NewPosition(1, 0)); got != 3 {
		t.Errorf("OffsetAtPosition((1,0)) = %d, want 3", got)
	}
}

func TestOptimizeProducesFiniteCellForSimpleReplacement(t *testing.T) {
	deleted := []string{"cat"}
	inserted := []string{"bat"}
	layout := keyboard.Uniform()
	weights := keyboard.DefaultWeights()
	boundary := Boundary{Left: reach.Line, Right: reach.Line}

	result := Optimize(deleted, inserted, boundary, layout, weights, DefaultParams())
	if result.N != 4 || result.M != 4 {
		t.Fatalf("Optimize dims = (%d,%d), want (4,4) for 3-char strings", result.N, result.M)
	}
	cell := result.Adj[0][result.M-1]
	if math.IsInf(cell.Cost, 1) {
		t.Errorf("expected a reachable cell from offset 0 to end of insertion, got +Inf")
	}
	if cell.Sequence == "" {
		t.Errorf("expected a non-empty command sequence for a reachable cell")
	}
}

func TestOptimizePureInsertion(t *testing.T) {
	deleted := []string{""}
	inserted := []string{"hi"}
	layout := keyboard.Uniform()
	weights := keyboard.DefaultWeights()
	boundary := Boundary{Left: reach.Line, Right: reach.Line}

	result := Optimize(deleted, inserted, boundary, layout, weights, DefaultParams())
	cell := result.Adj[0][result.M-1]
	if math.IsInf(cell.Cost, 1) {
		t.Errorf("expected a reachable cell for a pure insertion, got +Inf")
	}
}

func TestOptimizeReachesAtLeastOneCell(t *testing.T) {
	deleted := []string{"abcdef"}
	inserted := []string{"xyz"}
	layout := keyboard.Uniform()
	weights := keyboard.DefaultWeights()
	boundary := Boundary{Left: reach.Line, Right: reach.Line}

	result := Optimize(deleted, inserted, boundary, layout, weights, DefaultParams())
	foundFinite := false
	for _, row := range result.Adj {
		for _, cell := range row {
			if !math.IsInf(cell.Cost, 1) {
				foundFinite = true
			}
		}
	}
	if !foundFinite {
		t.Errorf("expected at least one finite cell somewhere in the matrix")
	}
}

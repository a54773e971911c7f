package movement

import (
	"testing"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/effort"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/simulator"
)

func TestOptimizeFindsAResult(t *testing.T) {
	lines := []string{"the quick brown fox jumps over the lazy dog"}
	start := simulator.NewPosition(0, 0)
	end := simulator.NewPosition(0, 16) // start of "fox"
	layout := keyboard.Uniform()
	weights := keyboard.DefaultWeights()

	results := Optimize(lines, start, effort.New(), end, "wwww", layout, weights,
		ImpliedExclusions{}, DefaultParams())
	if len(results) == 0 {
		t.Fatalf("expected at least one result reaching the goal position")
	}
	for _, r := range results {
		if r.Sequence == "" {
			t.Errorf("result has an empty sequence: %+v", r)
		}
		if r.Effort < 0 {
			t.Errorf("result has negative effort: %+v", r)
		}
	}
}

func TestOptimizeSameStartAndEndYieldsZeroOrEmptySequence(t *testing.T) {
	lines := []string{"hello world"}
	pos := simulator.NewPosition(0, 3)
	layout := keyboard.Uniform()
	weights := keyboard.DefaultWeights()

	results := Optimize(lines, pos, effort.New(), pos, "", layout, weights,
		ImpliedExclusions{}, DefaultParams())
	if len(results) == 0 {
		t.Fatalf("expected at least one result when start == end")
	}
	found := false
	for _, r := range results {
		if r.Sequence == "" && r.Effort == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the trivial empty-sequence zero-effort result among %v", results)
	}
}

func TestOptimizeRespectsStartingEffort(t *testing.T) {
	lines := []string{"hello world"}
	start := simulator.NewPosition(0, 0)
	end := simulator.NewPosition(0, 6)
	layout := keyboard.Uniform()
	weights := keyboard.DefaultWeights()

	fresh := Optimize(lines, start, effort.New(), end, "w", layout, weights,
		ImpliedExclusions{}, DefaultParams())

	carried := effort.New()
	carried.AppendAll(layout, weights, keyboard.Sequence{keyboard.KeyW, keyboard.KeyW, keyboard.KeyW})
	// The budget bounds cumulative effort, so the user sequence here
	// covers the three carried keys as well as the final "w".
	withBaseline := Optimize(lines, start, carried, end, "wwww", layout, weights,
		ImpliedExclusions{}, DefaultParams())

	if len(fresh) == 0 || len(withBaseline) == 0 {
		t.Fatalf("expected results in both cases: fresh=%d withBaseline=%d", len(fresh), len(withBaseline))
	}
	if withBaseline[0].Effort <= fresh[0].Effort {
		t.Errorf("a nonzero starting effort should raise the reported effort: fresh=%f withBaseline=%f",
			fresh[0].Effort, withBaseline[0].Effort)
	}
}

func TestOptimizeToRangeLandsWithinRange(t *testing.T) {
	lines := []string{"the quick brown fox jumps"}
	start := simulator.NewPosition(0, 0)
	rangeBegin := simulator.NewPosition(0, 10)
	rangeEnd := simulator.NewPosition(0, 14)
	layout := keyboard.Uniform()
	weights := keyboard.DefaultWeights()

	results := OptimizeToRange(lines, start, effort.New(), rangeBegin, rangeEnd, "www",
		layout, weights, true, ImpliedExclusions{}, DefaultParams())
	if len(results) == 0 {
		t.Fatalf("expected at least one result landing in the range")
	}
	for _, r := range results {
		if r.Pos.Less(rangeBegin) || r.Pos.Greater(rangeEnd) {
			t.Errorf("result position %+v falls outside [%+v, %+v]", r.Pos, rangeBegin, rangeEnd)
		}
	}
}

func TestDefaultParamsAreSane(t *testing.T) {
	p := DefaultParams()
	if p.MaxResults <= 0 || p.MaxSearchDepth <= 0 || p.CostWeight <= 0 || p.ExploreFactor <= 1 {
		t.Errorf("DefaultParams() has an implausible value: %+v", p)
	}
}

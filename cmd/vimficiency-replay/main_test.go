package main

import (
	"testing"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/tokenizer"
)

func newTestViewer(t *testing.T, seq string) *viewer {
	t.Helper()
	keys, err := tokenizer.Tokenize(seq)
	if err != nil {
		t.Fatal(err)
	}
	return &viewer{
		lines:   []string{"hello world"},
		cursor:  [2]int{0, 0},
		seq:     seq,
		keys:    keys,
		layout:  keyboard.Uniform(),
		weights: keyboard.DefaultWeights(),
	}
}

func TestStepForwardAndBackBounds(t *testing.T) {
	v := newTestViewer(t, "3w")
	if v.pos != 0 {
		t.Fatalf("expected starting pos 0, got %d", v.pos)
	}
	v.stepBack()
	if v.pos != 0 {
		t.Errorf("stepBack at 0 should stay at 0, got %d", v.pos)
	}
	for i := 0; i < len(v.keys)+5; i++ {
		v.stepForward()
	}
	if v.pos != len(v.keys) {
		t.Errorf("stepForward should clamp at len(keys)=%d, got %d", len(v.keys), v.pos)
	}
}

func TestAccumulatorThroughPosGrowsMonotonically(t *testing.T) {
	v := newTestViewer(t, "dw")
	var prev float64
	for i := 0; i <= len(v.keys); i++ {
		v.pos = i
		acc := v.accumulatorThroughPos()
		cost := acc.Cost(v.weights)
		if cost < prev {
			t.Errorf("cost decreased at step %d: %f < %f", i, cost, prev)
		}
		prev = cost
	}
}

func TestAccumulatorThroughPosZeroAtStart(t *testing.T) {
	v := newTestViewer(t, "w")
	v.pos = 0
	acc := v.accumulatorThroughPos()
	if acc.Cost(v.weights) != 0 {
		t.Errorf("expected zero cost before any key is stepped, got %f", acc.Cost(v.weights))
	}
}

package bufindex

import (
	"testing"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/simulator"
)

func TestBuildIndexesWordBegins(t *testing.T) {
	b := simulator.FromText("foo bar baz")
	idx := Build(b)
	if idx.Count(WordBegin) < 3 {
		t.Errorf("expected at least 3 word-begin positions in %q, got %d", b.Text(), idx.Count(WordBegin))
	}
}

func TestBuildOnEmptyBuffer(t *testing.T) {
	b := simulator.FromText("")
	idx := Build(b)
	// An all-blank buffer has no non-blank sentinel to seed any list.
	if idx.Count(WordBegin) != 0 {
		t.Errorf("expected no word-begin positions in an empty buffer, got %d", idx.Count(WordBegin))
	}
}

func TestApplyForwardAdvancesThroughWords(t *testing.T) {
	b := simulator.FromText("foo bar baz")
	idx := Build(b)
	start := simulator.NewPosition(0, 0)
	next := idx.Apply(WordBegin, start, 1)
	if !next.Greater(start) {
		t.Errorf("Apply(WordBegin, +1) should move forward, got %+v from %+v", next, start)
	}
}

func TestApplyBackwardRetreatsThroughWords(t *testing.T) {
	b := simulator.FromText("foo bar baz")
	idx := Build(b)
	start := simulator.NewPosition(0, 8) // start of "baz"
	prev := idx.Apply(WordBegin, start, -1)
	if !prev.Less(start) {
		t.Errorf("Apply(WordBegin, -1) should move backward, got %+v from %+v", prev, start)
	}
}

func TestApplyZeroCountIsNoop(t *testing.T) {
	b := simulator.FromText("foo bar")
	idx := Build(b)
	start := simulator.NewPosition(0, 2)
	got := idx.Apply(WordBegin, start, 0)
	if !got.Equal(start) {
		t.Errorf("Apply with count 0 should be a no-op, got %+v, want %+v", got, start)
	}
}

func TestApplyClampsAtBoundary(t *testing.T) {
	b := simulator.FromText("foo bar")
	idx := Build(b)
	start := simulator.NewPosition(0, 0)
	far := idx.Apply(WordBegin, start, 1000)
	again := idx.Apply(WordBegin, far, 1)
	if !again.Equal(far) {
		t.Errorf("Apply beyond the last indexed position should stay put: %+v vs %+v", again, far)
	}
}

func TestRepeatMotionValid(t *testing.T) {
	if (RepeatMotion{Count: 1}).Valid() {
		t.Errorf("Count == 1 should not be Valid()")
	}
	if !(RepeatMotion{Count: 2}).Valid() {
		t.Errorf("Count == 2 should be Valid()")
	}
}

func TestTwoClosestForwardBracketsGoal(t *testing.T) {
	b := simulator.FromText("one two three four five")
	idx := Build(b)
	curr := simulator.NewPosition(0, 0)
	end := simulator.NewPosition(0, 14) // start of "four"
	pair := idx.TwoClosest(WordBegin, curr, end)
	if pair[1].Count < pair[0].Count {
		t.Errorf("overshoot count should be >= undershoot count: %+v", pair)
	}
	if pair[1].Count < 1 {
		t.Errorf("expected a usable overshoot count, got %+v", pair[1])
	}
}

func TestTwoClosestBackwardBracketsGoal(t *testing.T) {
	b := simulator.FromText("one two three four five")
	idx := Build(b)
	curr := simulator.NewPosition(0, 19) // start of "five"
	end := simulator.NewPosition(0, 4)   // start of "two"
	pair := idx.TwoClosest(WordBegin, curr, end)
	if pair[1].Count < 1 {
		t.Errorf("expected a usable overshoot count for backward search, got %+v", pair[1])
	}
}

package reach

import "testing"

func TestFindFirstWordEnd(t *testing.T) {
	if got := FindFirstWordEnd("  foo bar"); got != 4 {
		t.Errorf("FindFirstWordEnd(\"  foo bar\") = %d, want 4", got)
	}
	if got := FindFirstWordEnd("   "); got != -1 {
		t.Errorf("FindFirstWordEnd on all-blank = %d, want -1", got)
	}
}

func TestFindFirstBigWordEnd(t *testing.T) {
	if got := FindFirstBigWordEnd("  foo-bar baz"); got != 8 {
		t.Errorf("FindFirstBigWordEnd(\"  foo-bar baz\") = %d, want 8", got)
	}
}

func TestFindLastWordStart(t *testing.T) {
	if got := FindLastWordStart("foo bar baz"); got != 8 {
		t.Errorf("FindLastWordStart(\"foo bar baz\") = %d, want 8", got)
	}
	if got := FindLastWordStart("   "); got != len("   ") {
		t.Errorf("FindLastWordStart on all-blank = %d, want len(line)", got)
	}
}

func TestFindLastBigWordStart(t *testing.T) {
	if got := FindLastBigWordStart("foo bar-baz"); got != 4 {
		t.Errorf("FindLastBigWordStart(\"foo bar-baz\") = %d, want 4", got)
	}
}

func TestComputeBackReachAtColumnZero(t *testing.T) {
	got := ComputeBackReach(0, 0, "foo bar", 0, Line)
	if got != None {
		t.Errorf("ComputeBackReach at col 0 = %v, want None", got)
	}
}

func TestComputeBackReachOnLaterLine(t *testing.T) {
	got := ComputeBackReach(3, 5, "foo bar", 1, Line)
	if got != Line {
		t.Errorf("ComputeBackReach on a later line than editStartLine = %v, want Line", got)
	}
}

func TestComputeBackReachWithinFirstWord(t *testing.T) {
	got := ComputeBackReach(0, 2, "foo bar", 0, Line)
	if got != Word {
		t.Errorf("ComputeBackReach within the first word = %v, want Word", got)
	}
}

func TestComputeBackReachClampedByBoundary(t *testing.T) {
	got := ComputeBackReach(0, 2, "foo bar", 0, Char)
	if got != Char {
		t.Errorf("ComputeBackReach should be clamped by boundaryReach: got %v, want Char", got)
	}
}

func TestComputeForwardReachPastLineEnd(t *testing.T) {
	got := ComputeForwardReach(0, 10, "foo bar", 0, 1, Line)
	if got != None {
		t.Errorf("ComputeForwardReach past line end = %v, want None", got)
	}
}

func TestComputeForwardReachOnEarlierLine(t *testing.T) {
	got := ComputeForwardReach(0, 0, "foo bar", 2, 3, Line)
	if got != Line {
		t.Errorf("ComputeForwardReach on an earlier line than editEndLine = %v, want Line", got)
	}
}

func TestComputeForwardReachWithinLastWord(t *testing.T) {
	got := ComputeForwardReach(0, 9, "foo bar baz", 0, 1, Line)
	if got != Word {
		t.Errorf("ComputeForwardReach within the last word = %v, want Word", got)
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(None < Char && Char < Word && Word < BigWord && BigWord < Line) {
		t.Errorf("Level constants should be strictly increasing: %d %d %d %d %d", None, Char, Word, BigWord, Line)
	}
}

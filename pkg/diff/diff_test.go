package diff

import (
	"testing"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/reach"
)

func TestCalculateNoChangeYieldsNoRegions(t *testing.T) {
	lines := []string{"hello", "world"}
	regions := Calculate(lines, lines)
	if len(regions) != 0 {
		t.Errorf("Calculate(identical buffers) = %v, want no regions", regions)
	}
}

func TestCalculateSingleCharSubstitution(t *testing.T) {
	regions := Calculate([]string{"hello"}, []string{"hallo"})
	if len(regions) != 1 {
		t.Fatalf("Calculate single-char substitution = %d regions, want 1", len(regions))
	}
	r := regions[0]
	if !r.IsReplacement() {
		t.Errorf("expected a replacement region, got %+v", r)
	}
	if r.DeletedText != "e" || r.InsertedText != "a" {
		t.Errorf("region = %+v, want delete \"e\" insert \"a\"", r)
	}
}

func TestCalculatePureInsertion(t *testing.T) {
	regions := Calculate([]string{"hello world"}, []string{"hello brave world"})
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d: %+v", len(regions), regions)
	}
	if !regions[0].IsPureInsertion() {
		t.Errorf("expected a pure insertion, got %+v", regions[0])
	}
}

func TestCalculatePureDeletion(t *testing.T) {
	regions := Calculate([]string{"hello brave world"}, []string{"hello world"})
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d: %+v", len(regions), regions)
	}
	if !regions[0].IsPureDeletion() {
		t.Errorf("expected a pure deletion, got %+v", regions[0])
	}
}

func TestCalculateMergesShortGaps(t *testing.T) {
	// Two one-character substitutions separated by a 1-character common
	// run ("x") should merge into a single region, since that gap is
	// shorter than minMatchLength and "x" isn't a word-boundary char.
	regions := Calculate([]string{"axb"}, []string{"cxd"})
	if len(regions) != 1 {
		t.Errorf("expected a short gap between two edits to merge into one region, got %d: %+v",
			len(regions), regions)
	}
}

func TestApplyAllRoundTrips(t *testing.T) {
	start := []string{"the quick fox"}
	end := []string{"the slow fox jumps"}
	regions := Calculate(start, end)
	got := ApplyAll(regions, start)
	gotText := ""
	for i, l := range got {
		if i > 0 {
			gotText += "\n"
		}
		gotText += l
	}
	wantText := ""
	for i, l := range end {
		if i > 0 {
			wantText += "\n"
		}
		wantText += l
	}
	if gotText != wantText {
		t.Errorf("ApplyAll(Calculate(start,end), start) = %q, want %q", gotText, wantText)
	}
}

func TestApplyAllRoundTripsMultiline(t *testing.T) {
	start := []string{"one", "two", "three"}
	end := []string{"one", "TWO", "three", "four"}
	regions := Calculate(start, end)
	got := ApplyAll(regions, start)
	if len(got) != len(end) {
		t.Fatalf("ApplyAll produced %d lines, want %d: %v", len(got), len(end), got)
	}
	for i := range end {
		if got[i] != end[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], end[i])
		}
	}
}

func TestBoundaryAtStartOfLineIsLine(t *testing.T) {
	regions := Calculate([]string{"hello"}, []string{"jello"})
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	if regions[0].Boundary.Left != reach.Line {
		t.Errorf("a region starting at column 0 should have a Line left boundary, got %v",
			regions[0].Boundary.Left)
	}
}

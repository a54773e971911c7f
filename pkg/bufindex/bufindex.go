// Package bufindex builds, once per buffer, the sorted position lists that
// let the movement optimizer answer "where would pressing this motion N
// times land me?" and "how many presses get me from here to there?" in
// O(log n) instead of replaying the motion one step at a time (spec.md
// 4.E). Grounded in the original implementation's
// src/Optimizer/BufferIndex.{h,cpp}.
package bufindex

import (
	"sort"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/simulator"
)

// LandingType groups motions that land on the same kind of position, so a
// single index serves every motion sharing that landing pattern (w and b
// both land on WordBegin positions, just approached from opposite sides).
type LandingType int

const (
	WordBegin LandingType = iota // w, b
	WordEnd                      // e, ge
	WORDBegin                    // W, B
	WORDEnd                      // E, gE
	Paragraph                    // {, }
	Sentence                     // (, )
	typeCount
)

// RepeatMotion pairs a landing position with the count of motion
// repetitions needed to reach it from some reference cursor. A Count <= 1
// is not worth emitting as "{count}{motion}" (spec.md 4.E/4.F: a single
// uncounted press already does the job, or the candidate isn't viable).
type RepeatMotion struct {
	Pos   simulator.Position
	Count int
}

// Valid reports whether this result is worth considering as a candidate
// move (Count > 1; Count <= 1 means "not a useful repeat-count motion").
func (r RepeatMotion) Valid() bool { return r.Count > 1 }

// Index holds, per LandingType, every position in a buffer a repeated
// application of that type's motions could land on — built with one
// forward scan and reused for every goal in a single optimizer run.
type Index struct {
	positions [int(typeCount)][]simulator.Position
}

func (idx *Index) get(t LandingType) []simulator.Position { return idx.positions[int(t)] }

// Build scans b once and classifies every boundary position into the
// LandingTypes it participates in. Boundary sentinels (the buffer's first
// and last non-blank positions) are appended to every type's list so
// TwoClosest always has valid brackets to search between, matching the
// original implementation's invariant that "spamming w/e will get to the
// boundaries."
func Build(b simulator.Buffer) *Index {
	idx := &Index{}
	if b.LineCount() == 0 {
		return idx
	}

	firstNonBlank, haveFirst := simulator.Position{}, false
	lastNonBlank := simulator.Position{}

	prevWasSentenceEnd := false
	prevLineWasEmpty := true

	for line := 0; line < b.LineCount(); line++ {
		ln := []rune(b.Line(line))
		lineEmpty := allBlank(ln)

		if lineEmpty {
			idx.append(Paragraph, simulator.NewPosition(line, 0))
		} else if prevLineWasEmpty {
			idx.append(Paragraph, simulator.NewPosition(line, 0))
		}
		prevLineWasEmpty = lineEmpty

		if len(ln) == 0 {
			prevWasSentenceEnd = false
			continue
		}

		for col, curr := range ln {
			var prev, next rune
			if col > 0 {
				prev = ln[col-1]
			}
			if col+1 < len(ln) {
				next = ln[col+1]
			}

			if !simulator.IsBlank(curr) {
				pos := simulator.NewPosition(line, col)
				if !haveFirst {
					firstNonBlank, haveFirst = pos, true
				}
				lastNonBlank = pos
			}

			currIsWord := simulator.IsSmallWordChar(curr)
			prevIsWord := simulator.IsSmallWordChar(prev)
			currIsBigWord := simulator.IsBigWordChar(curr)
			prevIsBigWord := simulator.IsBigWordChar(prev)

			if currIsWord && (col == 0 || simulator.IsBlank(prev) || !prevIsWord) {
				idx.append(WordBegin, simulator.NewPosition(line, col))
			}
			if currIsBigWord && (col == 0 || !prevIsBigWord) {
				idx.append(WORDBegin, simulator.NewPosition(line, col))
			}

			nextIsWord := simulator.IsSmallWordChar(next)
			nextIsBigWord := simulator.IsBigWordChar(next)
			if currIsWord && (next == 0 || simulator.IsBlank(next) || !nextIsWord) {
				idx.append(WordEnd, simulator.NewPosition(line, col))
			}
			if currIsBigWord && (next == 0 || !nextIsBigWord) {
				idx.append(WORDEnd, simulator.NewPosition(line, col))
			}

			if prevWasSentenceEnd && !simulator.IsBlank(curr) {
				idx.append(Sentence, simulator.NewPosition(line, col))
				prevWasSentenceEnd = false
			}

			if simulator.IsSentenceEnd(curr) && (next == 0 || simulator.IsBlank(next)) {
				prevWasSentenceEnd = true
			} else if !simulator.IsBlank(curr) {
				prevWasSentenceEnd = false
			}
		}

		if len(ln) > 0 && simulator.IsSentenceEnd(ln[len(ln)-1]) {
			prevWasSentenceEnd = true
		}
	}

	if haveFirst {
		for t := 0; t < int(typeCount); t++ {
			vec := idx.positions[t]
			if len(vec) == 0 || !vec[0].Equal(firstNonBlank) {
				vec = append([]simulator.Position{firstNonBlank}, vec...)
			}
			if last := vec[len(vec)-1]; !last.Equal(lastNonBlank) {
				vec = append(vec, lastNonBlank)
			}
			idx.positions[t] = vec
		}
	}

	return idx
}

func allBlank(rs []rune) bool {
	for _, r := range rs {
		if !simulator.IsBlank(r) {
			return false
		}
	}
	return true
}

func (idx *Index) append(t LandingType, p simulator.Position) {
	idx.positions[int(t)] = append(idx.positions[int(t)], p)
}

func less(a, b simulator.Position) bool { return a.Less(b) }

// Apply returns the position reached by applying the motion associated
// with t, count times, from current (count > 0 forward, count < 0
// backward). Returns current unchanged if the index has nothing to offer
// in that direction (e.g. already at the boundary sentinel).
func (idx *Index) Apply(t LandingType, current simulator.Position, count int) simulator.Position {
	if count == 0 {
		return current
	}
	positions := idx.get(t)
	if len(positions) == 0 {
		return current
	}

	result := current
	if count > 0 {
		for i := 0; i < count; i++ {
			j := upperBound(positions, result)
			if j >= len(positions) {
				break
			}
			result = positions[j]
		}
	} else {
		for i := 0; i < -count; i++ {
			j := lowerBound(positions, result)
			if j == 0 {
				break
			}
			result = positions[j-1]
		}
	}
	return result
}

// upperBound returns the index of the first element strictly greater
// than p (std::upper_bound).
func upperBound(positions []simulator.Position, p simulator.Position) int {
	return sort.Search(len(positions), func(i int) bool { return p.Less(positions[i]) })
}

// lowerBound returns the index of the first element not less than p
// (std::lower_bound).
func lowerBound(positions []simulator.Position, p simulator.Position) int {
	return sort.Search(len(positions), func(i int) bool { return !positions[i].Less(p) })
}

// TwoClosest returns the [undershoot, overshoot] RepeatMotion results
// bracketing endPos, with counts measured from currPos in the direction
// implied by endPos relative to currPos. Both index positions' buffers
// must contain at least the first/last non-blank sentinel, guaranteed by
// Build whenever the buffer has any non-blank content.
func (idx *Index) TwoClosest(t LandingType, currPos, endPos simulator.Position) [2]RepeatMotion {
	positions := idx.get(t)
	if len(positions) == 0 {
		return [2]RepeatMotion{}
	}

	if endPos.Greater(currPos) {
		onePastCurr := upperBound(positions, currPos)
		overshoot := lowerBound(positions, endPos)
		if overshoot >= len(positions) {
			overshoot = len(positions) - 1
		}
		dist := (overshoot - onePastCurr) + 1
		if dist < 1 {
			dist = 1
		}
		under := overshoot - 1
		if under < 0 {
			under = 0
		}
		return [2]RepeatMotion{
			{Pos: positions[under], Count: dist - 1},
			{Pos: positions[overshoot], Count: dist},
		}
	}

	// Reverse-direction search: mirror the descending-view logic by
	// searching from the high end.
	n := len(positions)
	onePastCurr := lowerBound(positions, currPos) - 1 // last strictly < currPos, in reverse index terms
	_ = onePastCurr
	// Work in reverse index space: reverseIdx(i) = n-1-i.
	revLess := func(a, b simulator.Position) bool { return b.Less(a) }
	revUpperBound := func(target simulator.Position) int {
		// first reverse-index j such that positions[n-1-j] "< target" in reverse order
		return sort.Search(n, func(j int) bool { return revLess(target, positions[n-1-j]) })
	}
	revLowerBound := func(target simulator.Position) int {
		return sort.Search(n, func(j int) bool { return !revLess(positions[n-1-j], target) })
	}
	revOnePastCurr := revUpperBound(currPos)
	revOvershoot := revLowerBound(endPos)
	if revOvershoot >= n {
		revOvershoot = n - 1
	}
	dist := (revOvershoot - revOnePastCurr) + 1
	if dist < 1 {
		dist = 1
	}
	revUnder := revOvershoot - 1
	if revUnder < 0 {
		revUnder = 0
	}
	overshootIdx := n - 1 - revOvershoot
	underIdx := n - 1 - revUnder
	return [2]RepeatMotion{
		{Pos: positions[underIdx], Count: dist - 1},
		{Pos: positions[overshootIdx], Count: dist},
	}
}

// Count reports how many positions are indexed for t (diagnostic use, not
// on the optimizer's hot path).
func (idx *Index) Count(t LandingType) int { return len(idx.get(t)) }

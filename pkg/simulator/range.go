package simulator

// Range describes the span an operator acts on: (start, end, linewise,
// inclusive). Always normalized so Start <= End lexicographically
// (spec.md §3, §8 property 5).
type Range struct {
	Start     Position
	End       Position
	Linewise  bool
	Inclusive bool
}

// NewRange builds a normalized Range from two endpoints in either order.
func NewRange(a, b Position, linewise bool, inclusive bool) Range {
	if b.Less(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b, Linewise: linewise, Inclusive: inclusive}
}

// Normalize returns r with Start <= End guaranteed (spec.md §8 property 5;
// r is already built normalized by NewRange, so this is idempotent).
func (r Range) Normalize() Range {
	if r.End.Less(r.Start) {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

// MotionRange builds the charwise Range between a motion's start and end
// positions when used as an operator's argument, honoring the motion's
// inclusive/exclusive kind. Vim's special-case exclusive-linewise
// promotion (an exclusive motion whose end lands at or before the first
// non-blank of its line, having started at or before the first non-blank
// of its own line, becomes linewise) is not modeled: the result is never
// linewise.
func MotionRange(motion string, from, to Position) Range {
	inclusive := KindOf(motion) == Inclusive
	return NewRange(from, to, false, inclusive)
}

// LineRange builds a linewise range spanning lines [a,b] (order-independent).
func LineRange(b Buffer, lineA, lineB int) Range {
	if lineB < lineA {
		lineA, lineB = lineB, lineA
	}
	lastCol := b.LineLen(lineB) - 1
	if lastCol < 0 {
		lastCol = 0
	}
	return Range{
		Start:     Position{Line: lineA, Col: 0},
		End:       Position{Line: lineB, Col: lastCol},
		Linewise:  true,
		Inclusive: true,
	}
}

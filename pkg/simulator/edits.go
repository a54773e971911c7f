package simulator

import "strings"

// ApplyMotion applies one of the count-free motions in Motions, repeated
// count times (count <= 0 behaves as count == 1), clamping the final
// result (spec.md §4.D invariant 4: commands that fall off the buffer
// clamp silently).
func ApplyMotion(motion string, b Buffer, p Position, count int) (Position, bool) {
	fn, ok := Motions[motion]
	if !ok {
		return p, false
	}
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		p = fn(b, p)
	}
	return b.Clamp(p, Normal), true
}

// DeleteRange removes the text spanned by r from b and returns the
// resulting buffer and the cursor position left behind (at r.Start,
// clamped).
func DeleteRange(b Buffer, r Range) (Buffer, Position) {
	r = r.Normalize()
	if r.Linewise {
		for line := r.End.Line; line >= r.Start.Line; line-- {
			b = b.RemoveLineAt(line)
		}
		newLine := b.ClampLine(r.Start.Line)
		return b, NewPosition(newLine, firstNonBlankCol(b.Line(newLine)))
	}

	if r.Start.Line == r.End.Line {
		rs := runes(b.Line(r.Start.Line))
		end := r.End.Col
		if r.Inclusive {
			end++
		}
		if end > len(rs) {
			end = len(rs)
		}
		newLine := string(rs[:r.Start.Col]) + string(rs[end:])
		b = b.ReplaceLine(r.Start.Line, newLine)
		return b, NewPosition(r.Start.Line, b.ClampCol(r.Start.Line, r.Start.Col))
	}

	// Multi-line character-wise range: join the remainder of the first
	// line with the remainder of the last line, dropping everything
	// between.
	firstRunes := runes(b.Line(r.Start.Line))
	lastRunes := runes(b.Line(r.End.Line))
	end := r.End.Col
	if r.Inclusive {
		end++
	}
	if end > len(lastRunes) {
		end = len(lastRunes)
	}
	merged := string(firstRunes[:r.Start.Col]) + string(lastRunes[end:])
	b = b.ReplaceLine(r.Start.Line, merged)
	for line := r.End.Line; line > r.Start.Line; line-- {
		b = b.RemoveLineAt(line)
	}
	return b, NewPosition(r.Start.Line, b.ClampCol(r.Start.Line, r.Start.Col))
}

// ApplyOperatorDelete implements the 'd' operator over a range.
func ApplyOperatorDelete(b Buffer, r Range) (Buffer, Position, Mode) {
	nb, pos := DeleteRange(b, r)
	return nb, pos, Normal
}

// ApplyOperatorChange implements the 'c' operator over a range: delete,
// then drop into Insert mode at the deletion point (vim semantics: a
// linewise 'c' leaves one blank line to type into, rather than removing
// the lines outright).
func ApplyOperatorChange(b Buffer, r Range) (Buffer, Position, Mode) {
	r = r.Normalize()
	if r.Linewise {
		for line := r.End.Line; line > r.Start.Line; line-- {
			b = b.RemoveLineAt(line)
		}
		b = b.ReplaceLine(r.Start.Line, "")
		return b, NewPosition(r.Start.Line, 0), Insert
	}
	nb, pos := DeleteRange(b, r)
	return nb, pos, Insert
}

// ApplyOperatorYank implements the 'y' operator: it never mutates the
// buffer, only moves the cursor to the start of the range (vim semantics),
// so it can never participate in realizing a diff — it exists for
// simulator completeness (spec.md 4.D lists it alongside d/c).
func ApplyOperatorYank(b Buffer, r Range) (Buffer, Position, Mode) {
	r = r.Normalize()
	return b, r.Start, Normal
}

// ApplyNormalEdit applies one of the fixed-form Normal-mode edit commands
// (x X ~ D C J gJ dd cc S o O s i I a A) that need no separate motion/
// text-object argument. arg supplies the target character for 'r'.
func ApplyNormalEdit(cmd string, b Buffer, p Position, arg rune) (Buffer, Position, Mode) {
	switch cmd {
	case "x":
		nb, pos := DeleteRange(b, NewRange(p, p, false, true))
		return nb, pos, Normal
	case "X":
		if p.Col == 0 {
			return b, p, Normal
		}
		left := NewPosition(p.Line, p.Col-1)
		nb, pos := DeleteRange(b, NewRange(left, left, false, true))
		return nb, pos, Normal
	case "~":
		rs := runes(b.Line(p.Line))
		if p.Col < len(rs) {
			rs[p.Col] = swapCase(rs[p.Col])
			b = b.ReplaceLine(p.Line, string(rs))
		}
		next := b.ClampCol(p.Line, p.Col+1)
		return b, NewPosition(p.Line, next), Normal
	case "r":
		rs := runes(b.Line(p.Line))
		if p.Col < len(rs) {
			rs[p.Col] = arg
			b = b.ReplaceLine(p.Line, string(rs))
		}
		return b, p, Normal
	case "D":
		return ApplyOperatorDelete(b, NewRange(p, motionDollar(b, p), false, true))
	case "C":
		return ApplyOperatorChange(b, NewRange(p, motionDollar(b, p), false, true))
	case "J":
		return joinLines(b, p, true)
	case "gJ":
		return joinLines(b, p, false)
	case "dd":
		return ApplyOperatorDelete(b, LineRange(b, p.Line, p.Line))
	case "cc":
		return ApplyOperatorChange(b, LineRange(b, p.Line, p.Line))
	case "S":
		return ApplyOperatorChange(b, LineRange(b, p.Line, p.Line))
	case "o":
		nb := b.InsertLineAt(p.Line+1, "")
		return nb, NewPosition(p.Line+1, 0), Insert
	case "O":
		nb := b.InsertLineAt(p.Line, "")
		return nb, NewPosition(p.Line, 0), Insert
	case "s":
		nb, pos := DeleteRange(b, NewRange(p, p, false, true))
		return nb, pos, Insert
	case "i":
		return b, p, Insert
	case "I":
		return b, NewPosition(p.Line, firstNonBlankCol(b.Line(p.Line))), Insert
	case "a":
		col := b.ClampColInsert(p.Line, p.Col+1)
		return b, NewPosition(p.Line, col), Insert
	case "A":
		return b, NewPosition(p.Line, b.LineLen(p.Line)), Insert
	default:
		return b, p, Normal
	}
}

func swapCase(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - ('a' - 'A')
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	default:
		return r
	}
}

// joinLines implements J/gJ: join the current line with the next, with J
// collapsing leading whitespace on the joined-in line to a single space
// (unless the current line ends with a space or the joined-in line starts
// with ')'), gJ joining verbatim.
func joinLines(b Buffer, p Position, smart bool) (Buffer, Position, Mode) {
	if p.Line+1 >= b.LineCount() {
		return b, p, Normal
	}
	cur := b.Line(p.Line)
	next := b.Line(p.Line + 1)
	joinCol := len([]rune(cur))
	if smart {
		trimmed := strings.TrimLeft(next, " \t")
		needsSpace := cur != "" && !strings.HasSuffix(cur, " ") &&
			(trimmed == "" || trimmed[0] != ')')
		if needsSpace {
			cur = cur + " "
		}
		next = trimmed
		joinCol = len([]rune(cur)) - 1
		if joinCol < 0 {
			joinCol = 0
		}
	}
	merged := cur + next
	b = b.ReplaceLine(p.Line, merged)
	b = b.RemoveLineAt(p.Line + 1)
	return b, NewPosition(p.Line, b.ClampCol(p.Line, joinCol)), Normal
}

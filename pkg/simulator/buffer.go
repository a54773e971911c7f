// Package simulator implements pure state transitions on (buffer, cursor,
// mode): the motion & edit simulator from spec.md 4.D. Every exported
// function here is a pure function of its inputs — no global state, no I/O
// — so the search engines can clone and branch freely.
//
// Grounded in the original implementation's src/Editor/{Position,Range,
// Snapshot}.h and src/Editor/{Motion,Edit}.cpp, and in the teacher repo's
// own Buffer/Row (timburks-gott's pkg/editor/buffer.go), whose "lines are
// never null, always at least one" invariant this keeps.
package simulator

import "strings"

// Mode is the editor's input mode. Visual mode is out of scope (spec.md
// §1/§3).
type Mode int

const (
	Normal Mode = iota
	Insert
)

func (m Mode) String() string {
	if m == Insert {
		return "Insert"
	}
	return "Normal"
}

// Position is a 0-based character coordinate plus the remembered target
// column for vertical motion (spec.md §3).
type Position struct {
	Line      int
	Col       int
	TargetCol int
}

// NewPosition builds a Position with TargetCol == Col, as horizontal
// motions always leave it.
func NewPosition(line, col int) Position {
	return Position{Line: line, Col: col, TargetCol: col}
}

// Less, LessEqual and friends give Position a strict lexicographic order
// (line, then col), used throughout the optimizers for range membership
// and direction decisions.
func (p Position) Less(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

func (p Position) LessEqual(q Position) bool  { return !q.Less(p) }
func (p Position) Greater(q Position) bool    { return q.Less(p) }
func (p Position) GreaterEqual(q Position) bool { return !p.Less(q) }
func (p Position) Equal(q Position) bool      { return p.Line == q.Line && p.Col == q.Col }

// Buffer is an ordered, immutable sequence of lines. There is always at
// least one line; empty lines are length-0 strings, never absent.
// Every mutating operation below returns a new Buffer, cloning only the
// top-level line slice (copy-on-write, spec.md §9's design note): since Go
// strings are themselves immutable, replacing one line never disturbs any
// other snapshot that still references the old slice.
type Buffer struct {
	lines []string
}

// NewBuffer builds a Buffer from raw lines, guaranteeing at least one line.
func NewBuffer(lines []string) Buffer {
	if len(lines) == 0 {
		return Buffer{lines: []string{""}}
	}
	cp := make([]string, len(lines))
	copy(cp, lines)
	return Buffer{lines: cp}
}

// FromText splits text on "\n" into a Buffer, the inverse of Buffer.Text.
func FromText(text string) Buffer {
	return NewBuffer(strings.Split(text, "\n"))
}

// Text flattens the buffer back to a single "\n"-joined string, as the
// edit optimizer's Levenshtein heuristic requires (spec.md 4.G).
func (b Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

func (b Buffer) LineCount() int { return len(b.lines) }

func (b Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

func (b Buffer) LineLen(i int) int { return len([]rune(b.Line(i))) }

// Lines returns a defensive copy of the underlying line slice.
func (b Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b Buffer) withLines(lines []string) Buffer {
	return Buffer{lines: lines}
}

// ReplaceLine returns a Buffer with line i replaced by text.
func (b Buffer) ReplaceLine(i int, text string) Buffer {
	cp := make([]string, len(b.lines))
	copy(cp, b.lines)
	if i >= 0 && i < len(cp) {
		cp[i] = text
	}
	return b.withLines(cp)
}

// InsertLineAt returns a Buffer with a new line inserted at index i.
func (b Buffer) InsertLineAt(i int, text string) Buffer {
	cp := make([]string, 0, len(b.lines)+1)
	cp = append(cp, b.lines[:i]...)
	cp = append(cp, text)
	cp = append(cp, b.lines[i:]...)
	return b.withLines(cp)
}

// RemoveLineAt returns a Buffer with line i removed. If this would leave a
// zero-line buffer, a single empty line is kept instead (spec.md 4.D
// contract: buffer always has >= 1 line).
func (b Buffer) RemoveLineAt(i int) Buffer {
	if len(b.lines) <= 1 {
		return b.withLines([]string{""})
	}
	cp := make([]string, 0, len(b.lines)-1)
	cp = append(cp, b.lines[:i]...)
	cp = append(cp, b.lines[i+1:]...)
	return b.withLines(cp)
}

// ClampLine clamps a line index into [0, LineCount-1].
func (b Buffer) ClampLine(line int) int {
	if line < 0 {
		return 0
	}
	if last := b.LineCount() - 1; line > last {
		return last
	}
	return line
}

// ClampCol clamps a column into [0, max(0, lineLen-1)], the valid resting
// positions for Normal mode (spec.md §3/§4.D invariant 4).
func (b Buffer) ClampCol(line, col int) int {
	maxCol := b.LineLen(line) - 1
	if maxCol < 0 {
		maxCol = 0
	}
	if col < 0 {
		return 0
	}
	if col > maxCol {
		return maxCol
	}
	return col
}

// ClampColInsert clamps a column for Insert mode, where the cursor may
// rest one past the last character (to type at end of line).
func (b Buffer) ClampColInsert(line, col int) int {
	maxCol := b.LineLen(line)
	if col < 0 {
		return 0
	}
	if col > maxCol {
		return maxCol
	}
	return col
}

// Clamp clamps a Position's line into range and its column according to
// mode, re-deriving TargetCol == Col (used after commands that fall off
// the buffer, which clamp silently rather than failing).
func (b Buffer) Clamp(p Position, mode Mode) Position {
	line := b.ClampLine(p.Line)
	var col int
	if mode == Insert {
		col = b.ClampColInsert(line, p.Col)
	} else {
		col = b.ClampCol(line, p.Col)
	}
	return NewPosition(line, col)
}

// ClampVertical re-derives Col from TargetCol after a vertical motion,
// keeping TargetCol itself unchanged (spec.md §3).
func (b Buffer) ClampVertical(line, targetCol int, mode Mode) Position {
	line = b.ClampLine(line)
	var maxCol int
	if mode == Insert {
		maxCol = b.LineLen(line)
	} else {
		maxCol = b.LineLen(line) - 1
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := targetCol
	if col > maxCol {
		col = maxCol
	}
	if col < 0 {
		col = 0
	}
	return Position{Line: line, Col: col, TargetCol: targetCol}
}

// CharAt returns the rune at p, or 0 if p is past the end of its line.
func (b Buffer) CharAt(p Position) rune {
	line := []rune(b.Line(p.Line))
	if p.Col < 0 || p.Col >= len(line) {
		return 0
	}
	return line[p.Col]
}

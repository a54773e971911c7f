package simulator

// ApplyInsertKey applies a single Insert-mode keystroke (spec.md 4.D) to
// (b, p) and returns the resulting buffer, cursor, and mode. key is either
// a literal rune to type or one of the bracket tokens the tokenizer
// recognizes: "<Esc>" "<BS>" "<Del>" "<CR>" "<C-u>" "<C-w>".
func ApplyInsertKey(key string, b Buffer, p Position) (Buffer, Position, Mode) {
	switch key {
	case "<Esc>":
		col := p.Col - 1
		if col < 0 {
			col = 0
		}
		return b, NewPosition(p.Line, b.ClampCol(p.Line, col)), Normal
	case "<BS>":
		return insertBackspace(b, p)
	case "<Del>":
		return insertDelete(b, p)
	case "<CR>":
		return insertNewline(b, p)
	case "<C-u>":
		return insertClearToStart(b, p)
	case "<C-w>":
		return insertDeleteWordBack(b, p)
	}
	rs := []rune(key)
	if len(rs) != 1 {
		return b, p, Insert
	}
	return insertRune(b, p, rs[0])
}

func insertRune(b Buffer, p Position, r rune) (Buffer, Position, Mode) {
	line := runes(b.Line(p.Line))
	col := p.Col
	if col > len(line) {
		col = len(line)
	}
	merged := make([]rune, 0, len(line)+1)
	merged = append(merged, line[:col]...)
	merged = append(merged, r)
	merged = append(merged, line[col:]...)
	b = b.ReplaceLine(p.Line, string(merged))
	return b, NewPosition(p.Line, col+1), Insert
}

func insertBackspace(b Buffer, p Position) (Buffer, Position, Mode) {
	if p.Col > 0 {
		line := runes(b.Line(p.Line))
		merged := append(append([]rune{}, line[:p.Col-1]...), line[p.Col:]...)
		b = b.ReplaceLine(p.Line, string(merged))
		return b, NewPosition(p.Line, p.Col-1), Insert
	}
	if p.Line == 0 {
		return b, p, Insert
	}
	prevLen := b.LineLen(p.Line - 1)
	merged := b.Line(p.Line-1) + b.Line(p.Line)
	b = b.ReplaceLine(p.Line-1, merged)
	b = b.RemoveLineAt(p.Line)
	return b, NewPosition(p.Line-1, prevLen), Insert
}

func insertDelete(b Buffer, p Position) (Buffer, Position, Mode) {
	line := runes(b.Line(p.Line))
	if p.Col < len(line) {
		merged := append(append([]rune{}, line[:p.Col]...), line[p.Col+1:]...)
		b = b.ReplaceLine(p.Line, string(merged))
		return b, p, Insert
	}
	if p.Line+1 >= b.LineCount() {
		return b, p, Insert
	}
	merged := b.Line(p.Line) + b.Line(p.Line+1)
	b = b.ReplaceLine(p.Line, merged)
	b = b.RemoveLineAt(p.Line + 1)
	return b, p, Insert
}

func insertNewline(b Buffer, p Position) (Buffer, Position, Mode) {
	line := runes(b.Line(p.Line))
	col := p.Col
	if col > len(line) {
		col = len(line)
	}
	before := string(line[:col])
	after := string(line[col:])
	b = b.ReplaceLine(p.Line, before)
	b = b.InsertLineAt(p.Line+1, after)
	return b, NewPosition(p.Line+1, 0), Insert
}

// insertClearToStart implements <C-u>: delete everything on this line from
// column 0 up to the cursor.
func insertClearToStart(b Buffer, p Position) (Buffer, Position, Mode) {
	line := runes(b.Line(p.Line))
	col := p.Col
	if col > len(line) {
		col = len(line)
	}
	b = b.ReplaceLine(p.Line, string(line[col:]))
	return b, NewPosition(p.Line, 0), Insert
}

// insertDeleteWordBack implements <C-w>: delete the word immediately
// before the cursor, including any blanks directly preceding it.
func insertDeleteWordBack(b Buffer, p Position) (Buffer, Position, Mode) {
	line := runes(b.Line(p.Line))
	col := p.Col
	if col > len(line) {
		col = len(line)
	}
	end := col
	for end > 0 && IsBlank(line[end-1]) {
		end--
	}
	if end == 0 {
		b = b.ReplaceLine(p.Line, string(line[col:]))
		return b, NewPosition(p.Line, 0), Insert
	}
	wasWord := IsSmallWordChar(line[end-1])
	start := end
	for start > 0 && IsSmallWordChar(line[start-1]) == wasWord {
		start--
	}
	merged := string(line[:start]) + string(line[col:])
	b = b.ReplaceLine(p.Line, merged)
	return b, NewPosition(p.Line, start), Insert
}

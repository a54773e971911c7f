package simulator

// These character classifiers are the single source of truth for "word"
// boundaries used by motions (w/b/e), the buffer index (4.E), and reach
// analysis (4.K). Grounded in the original implementation's
// VimCore/VimUtils.h (isBlank/isSmallWordChar/isBigWordChar/isSentenceEnd).

// IsBlank reports whether r is a space or tab.
func IsBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsSmallWordChar reports whether r is a "keyword" character: a small-word
// (as opposed to WORD) constituent, i.e. alphanumeric or underscore.
func IsSmallWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// IsBigWordChar reports whether r is part of a WORD: any non-blank
// character (r == 0 represents "past end of line", which is not a WORD
// char).
func IsBigWordChar(r rune) bool {
	return r != 0 && !IsBlank(r)
}

// IsSentenceEnd reports whether r is sentence-ending punctuation per the
// glossary: '.', '!', or '?'.
func IsSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// IsClosingPunct reports whether r is one of the closers that may follow
// sentence-ending punctuation before whitespace/EOL: ) ] " '
func IsClosingPunct(r rune) bool {
	switch r {
	case ')', ']', '"', '\'':
		return true
	}
	return false
}

func runes(line string) []rune {
	return []rune(line)
}

func isLineBlank(line string) bool {
	for _, r := range line {
		if !IsBlank(r) {
			return false
		}
	}
	return true
}

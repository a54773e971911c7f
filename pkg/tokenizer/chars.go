package tokenizer

import "github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"

// charToKeys maps every supported printable ASCII character to the physical
// keys that produce it, mirroring the original implementation's
// CharToKeys.cpp building blocks (letters, digits, whitespace, top-row
// punctuation, main punctuation, digit-row symbols).
var charToKeys map[byte]keyboard.Sequence

func shifted(k keyboard.Key) keyboard.Sequence {
	return keyboard.Sequence{keyboard.KeyShift, k}
}

func plain(k keyboard.Key) keyboard.Sequence {
	return keyboard.Sequence{k}
}

func init() {
	charToKeys = make(map[byte]keyboard.Sequence, 96)

	lower := []struct {
		r byte
		k keyboard.Key
	}{
		{'q', keyboard.KeyQ}, {'w', keyboard.KeyW}, {'e', keyboard.KeyE}, {'r', keyboard.KeyR},
		{'t', keyboard.KeyT}, {'y', keyboard.KeyY}, {'u', keyboard.KeyU}, {'i', keyboard.KeyI},
		{'o', keyboard.KeyO}, {'p', keyboard.KeyP}, {'a', keyboard.KeyA}, {'s', keyboard.KeyS},
		{'d', keyboard.KeyD}, {'f', keyboard.KeyF}, {'g', keyboard.KeyG}, {'h', keyboard.KeyH},
		{'j', keyboard.KeyJ}, {'k', keyboard.KeyK}, {'l', keyboard.KeyL}, {'z', keyboard.KeyZ},
		{'x', keyboard.KeyX}, {'c', keyboard.KeyC}, {'v', keyboard.KeyV}, {'b', keyboard.KeyB},
		{'n', keyboard.KeyN}, {'m', keyboard.KeyM},
	}
	for _, e := range lower {
		charToKeys[e.r] = plain(e.k)
		charToKeys[e.r-('a'-'A')] = shifted(e.k) // uppercase = Shift+key
	}

	digits := []struct {
		r byte
		k keyboard.Key
	}{
		{'1', keyboard.Key1}, {'2', keyboard.Key2}, {'3', keyboard.Key3}, {'4', keyboard.Key4},
		{'5', keyboard.Key5}, {'6', keyboard.Key6}, {'7', keyboard.Key7}, {'8', keyboard.Key8},
		{'9', keyboard.Key9}, {'0', keyboard.Key0},
	}
	for _, e := range digits {
		charToKeys[e.r] = plain(e.k)
	}
	digitSymbols := map[byte]keyboard.Key{
		'!': keyboard.Key1, '@': keyboard.Key2, '#': keyboard.Key3, '$': keyboard.Key4,
		'%': keyboard.Key5, '^': keyboard.Key6, '&': keyboard.Key7, '*': keyboard.Key8,
		'(': keyboard.Key9, ')': keyboard.Key0,
	}
	for r, k := range digitSymbols {
		charToKeys[r] = shifted(k)
	}

	unshifted := map[byte]keyboard.Key{
		' ': keyboard.KeySpace, '\t': keyboard.KeyTab, '\n': keyboard.KeyEnter,
		';': keyboard.KeySemicolon, ',': keyboard.KeyComma, '.': keyboard.KeyPeriod,
		'/': keyboard.KeySlash, '`': keyboard.KeyGrave, '-': keyboard.KeyMinus,
		'=': keyboard.KeyEqual, '[': keyboard.KeyLBracket, ']': keyboard.KeyRBracket,
		'\\': keyboard.KeyBackslash, '\'': keyboard.KeyApostrophe,
	}
	for r, k := range unshifted {
		charToKeys[r] = plain(k)
	}
	shiftedSym := map[byte]keyboard.Key{
		':': keyboard.KeySemicolon, '<': keyboard.KeyComma, '>': keyboard.KeyPeriod,
		'?': keyboard.KeySlash, '~': keyboard.KeyGrave, '_': keyboard.KeyMinus,
		'+': keyboard.KeyEqual, '{': keyboard.KeyLBracket, '}': keyboard.KeyRBracket,
		'|': keyboard.KeyBackslash, '"': keyboard.KeyApostrophe,
	}
	for r, k := range shiftedSym {
		charToKeys[r] = shifted(k)
	}
}

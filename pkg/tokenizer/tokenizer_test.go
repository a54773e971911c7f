package tokenizer

import (
	"testing"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
)

func TestTokenizeSingleChars(t *testing.T) {
	keys, err := Tokenize("dw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := keyboard.Sequence{keyboard.KeyD, keyboard.KeyW}
	if len(keys) != len(want) {
		t.Fatalf("Tokenize(\"dw\") = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %v, want %v", i, keys[i], want[i])
		}
	}
}

func TestTokenizeUppercaseIsShifted(t *testing.T) {
	keys, err := Tokenize("D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := keyboard.Sequence{keyboard.KeyShift, keyboard.KeyD}
	if len(keys) != 2 || keys[0] != want[0] || keys[1] != want[1] {
		t.Errorf("Tokenize(\"D\") = %v, want %v", keys, want)
	}
}

func TestTokenizeNamedMotionPreferredOverPrefix(t *testing.T) {
	keys, err := Tokenize("gg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := keyboard.Sequence{keyboard.KeyG, keyboard.KeyG}
	if len(keys) != 2 || keys[0] != want[0] || keys[1] != want[1] {
		t.Errorf("Tokenize(\"gg\") = %v, want %v (named motion, not two bare g's)", keys, want)
	}
}

func TestTokenizeBracketNotation(t *testing.T) {
	keys, err := Tokenize("<Esc>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 1 || keys[0] != keyboard.KeyEsc {
		t.Errorf("Tokenize(\"<Esc>\") = %v, want [KeyEsc]", keys)
	}
}

func TestTokenizeLiteralLessThan(t *testing.T) {
	keys, err := Tokenize("<LT>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := charToKeys['<']
	if len(keys) != len(want) {
		t.Fatalf("Tokenize(\"<LT>\") = %v, want %v", keys, want)
	}
}

func TestTokenizeControlKey(t *testing.T) {
	keys, err := Tokenize("<C-w>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 || keys[0] != keyboard.KeyCtrl {
		t.Errorf("Tokenize(\"<C-w>\") = %v, want [Ctrl, ...]", keys)
	}
}

func TestTokenizeMixedSequence(t *testing.T) {
	keys, err := Tokenize("3dwgg<Esc>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) == 0 {
		t.Errorf("expected a non-empty key sequence")
	}
}

func TestTokenizeEmptyString(t *testing.T) {
	keys, err := Tokenize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("expected empty sequence for empty command, got %v", keys)
	}
}

func TestTokenizeUnknownTokenError(t *testing.T) {
	_, err := Tokenize("abc\x01def")
	if err == nil {
		t.Fatalf("expected an error for an unsupported byte")
	}
	var uerr *UnknownTokenError
	if !asUnknownTokenError(err, &uerr) {
		t.Fatalf("expected an *UnknownTokenError in the chain, got %v", err)
	}
	if uerr.Position != 3 {
		t.Errorf("UnknownTokenError.Position = %d, want 3", uerr.Position)
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	a, err := Tokenize("3dwgg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Tokenize("3dwgg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("repeated Tokenize calls diverged: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("key %d diverged between calls: %v vs %v", i, a[i], b[i])
		}
	}
}

// asUnknownTokenError mimics errors.As without importing it twice in this
// file; pkg/errors' WithStack wraps the original error so a type assertion
// on Cause is needed instead of a bare assertion.
func asUnknownTokenError(err error, target **UnknownTokenError) bool {
	type causer interface{ Cause() error }
	for err != nil {
		if u, ok := err.(*UnknownTokenError); ok {
			*target = u
			return true
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

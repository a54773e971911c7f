package keyboard

import "testing"

func TestKeyStringRoundTrip(t *testing.T) {
	for k := Key(0); int(k) < Count; k++ {
		name := k.String()
		if name == "?" {
			t.Errorf("key %d has no name", k)
			continue
		}
		got, ok := ParseKeyName(name)
		if !ok || got != k {
			t.Errorf("ParseKeyName(%q) = %v, %v; want %v, true", name, got, ok, k)
		}
	}
}

func TestKeyStringOutOfRange(t *testing.T) {
	if got := Key(-1).String(); got != "?" {
		t.Errorf("Key(-1).String() = %q, want \"?\"", got)
	}
	if got := Key(Count).String(); got != "?" {
		t.Errorf("Key(Count).String() = %q, want \"?\"", got)
	}
}

func TestParseKeyNameUnknown(t *testing.T) {
	if _, ok := ParseKeyName("NotAKey"); ok {
		t.Errorf("expected ParseKeyName to fail for an unknown name")
	}
}

func TestHandString(t *testing.T) {
	cases := map[Hand]string{HandLeft: "left", HandRight: "right", HandNone: "none"}
	for h, want := range cases {
		if got := h.String(); got != want {
			t.Errorf("Hand(%d).String() = %q, want %q", h, got, want)
		}
	}
}

func TestFingerString(t *testing.T) {
	if got := FingerLi.String(); got != "L-index" {
		t.Errorf("FingerLi.String() = %q, want \"L-index\"", got)
	}
	if got := Finger(99).String(); got != "none" {
		t.Errorf("out-of-range Finger.String() = %q, want \"none\"", got)
	}
}

func TestFingerToPosition(t *testing.T) {
	if FingerLp.ToPosition() != PositionPinky {
		t.Errorf("FingerLp should map to PositionPinky")
	}
	if FingerRt.ToPosition() != PositionThumb {
		t.Errorf("FingerRt should map to PositionThumb")
	}
	if FingerNone.ToPosition() != PositionNone {
		t.Errorf("FingerNone should map to PositionNone")
	}
}

func TestSameHand(t *testing.T) {
	if !SameHand(FingerLi, FingerLm) {
		t.Errorf("two left fingers should be SameHand")
	}
	if SameHand(FingerLi, FingerRi) {
		t.Errorf("a left and a right finger should not be SameHand")
	}
	if SameHand(FingerNone, FingerLi) {
		t.Errorf("FingerNone should never be SameHand with anything")
	}
}

func TestSequenceAppendAndRepeat(t *testing.T) {
	s := Sequence{KeyH, KeyJ}
	s2 := s.Append(KeyK)
	if len(s2) != 3 || s2[2] != KeyK {
		t.Errorf("Append did not add the key correctly: %v", s2)
	}
	if len(s) != 2 {
		t.Errorf("Append mutated the receiver: %v", s)
	}

	r := Repeat(Sequence{KeyX, KeyY}, 3)
	want := Sequence{KeyX, KeyY, KeyX, KeyY, KeyX, KeyY}
	if len(r) != len(want) {
		t.Fatalf("Repeat length = %d, want %d", len(r), len(want))
	}
	for i := range want {
		if r[i] != want[i] {
			t.Errorf("Repeat[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestByNameKnownLayouts(t *testing.T) {
	for _, name := range []string{"uniform", "none", "qwerty", "colemakDh", "colemak-dh", "colemak"} {
		l, ok := ByName(name)
		if !ok || l == nil {
			t.Errorf("ByName(%q) failed", name)
		}
	}
}

func TestByNameUnknownLayout(t *testing.T) {
	if _, ok := ByName("dvorak"); ok {
		t.Errorf("expected ByName to reject an unshipped layout name")
	}
}

func TestUniformModifiersAreFree(t *testing.T) {
	l := Uniform()
	for _, k := range []Key{KeyEsc, KeyCtrl, KeyShift} {
		if got := l.Info(k).BaseCost; got != 0.0 {
			t.Errorf("Uniform() modifier %v cost = %f, want 0", k, got)
		}
	}
	if got := l.Info(KeyA).BaseCost; got != 1.0 {
		t.Errorf("Uniform() letter cost = %f, want 1.0", got)
	}
}

func TestInfoOutOfRangeKey(t *testing.T) {
	l := Uniform()
	if got := l.Info(Key(-1)); got != (Info{}) {
		t.Errorf("Info on out-of-range key = %+v, want zero value", got)
	}
}

func TestSetInfoAndClone(t *testing.T) {
	base := Uniform()
	clone := base.Clone()
	clone.SetInfo(KeyA, Info{Hand: HandRight, Finger: FingerRp, BaseCost: 99})

	if got := base.Info(KeyA).BaseCost; got != 1.0 {
		t.Errorf("mutating a clone affected the original: base KeyA cost = %f", got)
	}
	if got := clone.Info(KeyA).BaseCost; got != 99 {
		t.Errorf("clone.Info(KeyA).BaseCost = %f, want 99", got)
	}
}

func TestSetInfoOutOfRangeIsNoop(t *testing.T) {
	l := Uniform()
	l.SetInfo(Key(-1), Info{BaseCost: 5})
	l.SetInfo(Key(Count), Info{BaseCost: 5})
}

func TestQwertyHomeRowCheaperThanNumberRow(t *testing.T) {
	l := Qwerty()
	if l.Info(KeyF).BaseCost >= l.Info(Key1).BaseCost {
		t.Errorf("expected home row to be cheaper than number row: F=%f 1=%f",
			l.Info(KeyF).BaseCost, l.Info(Key1).BaseCost)
	}
}

func TestColemakDHHomeRowCheaperThanQwerty(t *testing.T) {
	q := Qwerty()
	c := ColemakDH()
	if c.Info(KeyF).BaseCost >= q.Info(KeyF).BaseCost {
		t.Errorf("expected Colemak-DH home row cost (%f) < Qwerty (%f)",
			c.Info(KeyF).BaseCost, q.Info(KeyF).BaseCost)
	}
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	if w.Key != 1.0 {
		t.Errorf("DefaultWeights().Key = %f, want 1.0", w.Key)
	}
	if w.RunThreshold <= 0 {
		t.Errorf("DefaultWeights().RunThreshold = %d, want > 0", w.RunThreshold)
	}
}

// Package keyboard models the closed set of physical keys a modal editor
// command can be typed with, and the per-layout cost of pressing each one.
//
// It is grounded in the original implementation's KeyboardModel.h /
// XMacroKeyDefinitions.h, which define the key enumeration as a single
// source-of-truth X-macro. Go has no macro preprocessor, so the same
// single-source-of-truth property is kept with a package-level slice of
// Key plus a name table, built once at init.
package keyboard

// Key is a physical key on the keyboard, independent of what it means in
// any particular editor command.
type Key int

// The closed set of physical keys. Letters, digits, and punctuation are
// named after the character they produce on a US layout; everything else
// spells out its function.
const (
	KeyQ Key = iota
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemicolon
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyPeriod
	KeySlash
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyGrave
	KeyMinus
	KeyEqual
	KeyLBracket
	KeyRBracket
	KeyBackslash
	KeyApostrophe
	KeyEsc
	KeyTab
	KeyEnter
	KeyBackspace
	KeySpace
	KeyDelete
	KeyCtrl
	KeyShift
	KeyHome
	KeyEnd
	KeyLeft
	KeyDown
	KeyUp
	KeyRight
	keyCount // sentinel, not exported
)

// Count is the number of physical keys in the closed enumeration.
const Count = int(keyCount)

// Hand identifies which hand, if any, a key is assigned to.
type Hand int8

const (
	HandLeft Hand = iota
	HandRight
	HandNone
)

func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	default:
		return "none"
	}
}

// Finger identifies the finger, on whichever hand, assigned to a key.
type Finger int8

const (
	FingerLp Finger = iota // left pinky
	FingerLr               // left ring
	FingerLm               // left middle
	FingerLi               // left index
	FingerLt               // left thumb
	FingerRt               // right thumb
	FingerRi               // right index
	FingerRm               // right middle
	FingerRr               // right ring
	FingerRp               // right pinky
	FingerNone
)

var fingerNames = [...]string{
	FingerLp: "L-pinky", FingerLr: "L-ring", FingerLm: "L-middle",
	FingerLi: "L-index", FingerLt: "L-thumb", FingerRt: "R-thumb",
	FingerRi: "R-index", FingerRm: "R-middle", FingerRr: "R-ring",
	FingerRp: "R-pinky", FingerNone: "none",
}

func (f Finger) String() string {
	if int(f) < 0 || int(f) >= len(fingerNames) {
		return "none"
	}
	return fingerNames[f]
}

// FingerPosition is the pinky..thumb column used to score rolls: lower is
// more "outer" (pinky), higher is more "inner" (thumb).
type FingerPosition uint8

const (
	PositionPinky FingerPosition = iota
	PositionRing
	PositionMiddle
	PositionIndex
	PositionThumb
	PositionNone
)

// ToPosition derives the finger's column position, used only to compare
// "inward" vs "outward" rolls; it does not distinguish hands.
func (f Finger) ToPosition() FingerPosition {
	switch f {
	case FingerLp, FingerRp:
		return PositionPinky
	case FingerLr, FingerRr:
		return PositionRing
	case FingerLm, FingerRm:
		return PositionMiddle
	case FingerLi, FingerRi:
		return PositionIndex
	case FingerLt, FingerRt:
		return PositionThumb
	default:
		return PositionNone
	}
}

// SameHand reports whether two fingers belong to the same hand. Thumbs are
// treated as belonging to their respective hand like any other finger.
func SameHand(a, b Finger) bool {
	if a == FingerNone || b == FingerNone {
		return false
	}
	return handOfFinger(a) == handOfFinger(b)
}

func handOfFinger(f Finger) Hand {
	switch f {
	case FingerLp, FingerLr, FingerLm, FingerLi, FingerLt:
		return HandLeft
	case FingerRt, FingerRi, FingerRm, FingerRr, FingerRp:
		return HandRight
	default:
		return HandNone
	}
}

// keyNames is the single source of truth for Key <-> string round-tripping,
// mirroring XMacroKeyDefinitions.h's VIMFICIENCY_KEYS X-macro.
var keyNames = [Count]string{
	KeyQ: "Q", KeyW: "W", KeyE: "E", KeyR: "R", KeyT: "T", KeyY: "Y",
	KeyU: "U", KeyI: "I", KeyO: "O", KeyP: "P",
	KeyA: "A", KeyS: "S", KeyD: "D", KeyF: "F", KeyG: "G", KeyH: "H",
	KeyJ: "J", KeyK: "K", KeyL: "L", KeySemicolon: "Semicolon",
	KeyZ: "Z", KeyX: "X", KeyC: "C", KeyV: "V", KeyB: "B", KeyN: "N",
	KeyM: "M", KeyComma: "Comma", KeyPeriod: "Period", KeySlash: "Slash",
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",
	KeyGrave: "Grave", KeyMinus: "Minus", KeyEqual: "Equal",
	KeyLBracket: "LBracket", KeyRBracket: "RBracket", KeyBackslash: "Backslash",
	KeyApostrophe: "Apostrophe",
	KeyEsc:        "Esc", KeyTab: "Tab", KeyEnter: "Enter",
	KeyBackspace: "Backspace", KeySpace: "Space", KeyDelete: "Delete",
	KeyCtrl: "Ctrl", KeyShift: "Shift",
	KeyHome: "Home", KeyEnd: "End",
	KeyLeft: "Left", KeyDown: "Down", KeyUp: "Up", KeyRight: "Right",
}

var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, Count)
	for k, name := range keyNames {
		nameToKey[name] = Key(k)
	}
}

// String returns the key's canonical bracket-notation name, e.g. "Esc".
func (k Key) String() string {
	if int(k) < 0 || int(k) >= Count {
		return "?"
	}
	return keyNames[k]
}

// ParseKeyName looks up a key by its canonical name (without angle brackets).
func ParseKeyName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// Sequence is an ordered list of physical keys: the canonical representation
// of "what the fingers do" for one command or one whole result.
type Sequence []Key

// Append returns a new sequence with ks appended.
func (s Sequence) Append(ks ...Key) Sequence {
	out := make(Sequence, 0, len(s)+len(ks))
	out = append(out, s...)
	out = append(out, ks...)
	return out
}

// Repeat returns ks repeated n times, concatenated.
func Repeat(ks Sequence, n int) Sequence {
	out := make(Sequence, 0, len(ks)*n)
	for i := 0; i < n; i++ {
		out = append(out, ks...)
	}
	return out
}

package keyboard

// Info is the per-key metadata a layout assigns: which hand and finger
// presses it, and its base effort cost. Modifiers are keys like any other
// and carry their own cost.
type Info struct {
	Hand     Hand
	Finger   Finger
	BaseCost float64
}

// Layout is a total function key -> Info. Three ship with this package;
// callers may also build a custom one (the embedding API in pkg/analyzer
// exposes per-key overrides, per spec.md §6).
type Layout struct {
	Name string
	info [Count]Info
}

// Info returns the metadata for k. Keys outside the closed enumeration
// return the zero Info (Hand: HandLeft, Finger: FingerLp, cost 0), which
// cannot occur for any Key produced by this package.
func (l *Layout) Info(k Key) Info {
	if int(k) < 0 || int(k) >= Count {
		return Info{}
	}
	return l.info[k]
}

// SetInfo overrides a single key's hand/finger/base-cost entry, letting
// callers customize a shipped layout (spec.md §6's embedding API
// per-key override) without rebuilding the whole table. A no-op for keys
// outside the closed enumeration.
func (l *Layout) SetInfo(k Key, info Info) {
	if int(k) < 0 || int(k) >= Count {
		return
	}
	l.info[k] = info
}

// Clone returns an independent copy, so overriding one Engine's layout
// never affects another caller holding the same shipped layout.
func (l *Layout) Clone() *Layout {
	c := *l
	return &c
}

// Weights prices a stream of physical keystrokes. Signs are policy, not
// mechanics: the spec constrains only the monotone meaning (higher output
// is worse), so rewards are encoded as negative weights on purpose.
type Weights struct {
	Key         float64 // base stroke cost
	SameFinger  float64 // same-finger bigram
	SameKey     float64 // same-key repeat
	AltBonus    float64 // hand alternation (typically negative: a reward)
	RunPenalty  float64 // per-step penalty beyond RunThreshold
	RollGood    float64 // inward roll (typically negative: a reward)
	RollBad     float64 // outward roll
	RunThreshold int
}

// DefaultWeights mirrors the original source's ScoreWeights defaults
// (Optimizer/Config.h): a small, hand-tuned starting point, not a claim of
// optimality.
func DefaultWeights() Weights {
	return Weights{
		Key:          1.0,
		SameFinger:   0.0,
		SameKey:      -0.2,
		AltBonus:     -0.1,
		RunPenalty:   0.0,
		RollGood:     -0.2,
		RollBad:      0.2,
		RunThreshold: 4,
	}
}

func build(name string, entries map[Key]Info) *Layout {
	l := &Layout{Name: name}
	for k, info := range entries {
		l.info[k] = info
	}
	return l
}

// Uniform assigns every key a base cost of 1.0 (modifiers 0.0) and a
// plausible hand/finger assignment, useful for isolating bigram effects
// from per-key cost differences in tests and study scenarios.
func Uniform() *Layout {
	l := build("uniform", standardHandFingerAssignment(1.0))
	for _, mod := range []Key{KeyEsc, KeyCtrl, KeyShift} {
		info := l.info[mod]
		info.BaseCost = 0.0
		l.info[mod] = info
	}
	return l
}

// Qwerty is a hand-tuned cost table reflecting row, column, and reach
// difficulty on a standard US QWERTY layout.
func Qwerty() *Layout {
	return build("qwerty", qwertyTable())
}

// ColemakDH is a hand-tuned cost table for the Colemak-DH layout.
func ColemakDH() *Layout {
	return build("colemak-dh", colemakDHTable())
}

// ByName resolves one of the three shipped layouts by name, matching the
// embedding API's SetLayout({uniform, qwerty, colemakDh, none}) from
// spec.md §6. "none" returns Uniform (no per-layout costs applied).
func ByName(name string) (*Layout, bool) {
	switch name {
	case "uniform", "none":
		return Uniform(), true
	case "qwerty":
		return Qwerty(), true
	case "colemakDh", "colemak-dh", "colemak":
		return ColemakDH(), true
	default:
		return nil, false
	}
}

// standardHandFingerAssignment is the common QWERTY-row hand/finger map
// shared by all three layouts; only base_cost differs between them.
func standardHandFingerAssignment(cost float64) map[Key]Info {
	mk := func(h Hand, f Finger) Info { return Info{Hand: h, Finger: f, BaseCost: cost} }
	return map[Key]Info{
		// top row
		KeyQ: mk(HandLeft, FingerLp), KeyW: mk(HandLeft, FingerLr), KeyE: mk(HandLeft, FingerLm),
		KeyR: mk(HandLeft, FingerLi), KeyT: mk(HandLeft, FingerLi),
		KeyY: mk(HandRight, FingerRi), KeyU: mk(HandRight, FingerRi), KeyI: mk(HandRight, FingerRm),
		KeyO: mk(HandRight, FingerRr), KeyP: mk(HandRight, FingerRp),
		// home row
		KeyA: mk(HandLeft, FingerLp), KeyS: mk(HandLeft, FingerLr), KeyD: mk(HandLeft, FingerLm),
		KeyF: mk(HandLeft, FingerLi), KeyG: mk(HandLeft, FingerLi),
		KeyH: mk(HandRight, FingerRi), KeyJ: mk(HandRight, FingerRi), KeyK: mk(HandRight, FingerRm),
		KeyL: mk(HandRight, FingerRr), KeySemicolon: mk(HandRight, FingerRp),
		// bottom row
		KeyZ: mk(HandLeft, FingerLp), KeyX: mk(HandLeft, FingerLr), KeyC: mk(HandLeft, FingerLm),
		KeyV: mk(HandLeft, FingerLi), KeyB: mk(HandLeft, FingerLi),
		KeyN: mk(HandRight, FingerRi), KeyM: mk(HandRight, FingerRi), KeyComma: mk(HandRight, FingerRm),
		KeyPeriod: mk(HandRight, FingerRr), KeySlash: mk(HandRight, FingerRp),
		// number row
		Key1: mk(HandLeft, FingerLp), Key2: mk(HandLeft, FingerLr), Key3: mk(HandLeft, FingerLm),
		Key4: mk(HandLeft, FingerLi), Key5: mk(HandLeft, FingerLi),
		Key6: mk(HandRight, FingerRi), Key7: mk(HandRight, FingerRi), Key8: mk(HandRight, FingerRm),
		Key9: mk(HandRight, FingerRr), Key0: mk(HandRight, FingerRp),
		KeyGrave: mk(HandLeft, FingerLp), KeyMinus: mk(HandRight, FingerRp), KeyEqual: mk(HandRight, FingerRp),
		KeyLBracket: mk(HandRight, FingerRp), KeyRBracket: mk(HandRight, FingerRp),
		KeyBackslash: mk(HandRight, FingerRp), KeyApostrophe: mk(HandRight, FingerRp),
		// control cluster
		KeyEsc: mk(HandLeft, FingerLp), KeyTab: mk(HandLeft, FingerLp),
		KeyEnter: mk(HandRight, FingerRp), KeyBackspace: mk(HandRight, FingerRp),
		KeySpace: mk(HandLeft, FingerLt), KeyDelete: mk(HandRight, FingerRp),
		KeyCtrl: mk(HandLeft, FingerLp), KeyShift: mk(HandLeft, FingerLp),
		KeyHome: mk(HandRight, FingerRp), KeyEnd: mk(HandRight, FingerRp),
		KeyLeft: mk(HandRight, FingerRi), KeyDown: mk(HandRight, FingerRm),
		KeyUp: mk(HandRight, FingerRm), KeyRight: mk(HandRight, FingerRr),
	}
}

// qwertyTable layers row/reach-aware base costs onto the standard
// hand/finger assignment: home row is cheapest, top/bottom rows cost a
// little more, and the far corners (number row, punctuation) cost more
// still.
func qwertyTable() map[Key]Info {
	entries := standardHandFingerAssignment(1.0)
	homeRow := map[Key]bool{
		KeyA: true, KeyS: true, KeyD: true, KeyF: true, KeyG: true,
		KeyH: true, KeyJ: true, KeyK: true, KeyL: true, KeySemicolon: true,
	}
	topRow := map[Key]bool{
		KeyQ: true, KeyW: true, KeyE: true, KeyR: true, KeyT: true,
		KeyY: true, KeyU: true, KeyI: true, KeyO: true, KeyP: true,
	}
	bottomRow := map[Key]bool{
		KeyZ: true, KeyX: true, KeyC: true, KeyV: true, KeyB: true,
		KeyN: true, KeyM: true, KeyComma: true, KeyPeriod: true, KeySlash: true,
	}
	numberRow := map[Key]bool{
		Key1: true, Key2: true, Key3: true, Key4: true, Key5: true,
		Key6: true, Key7: true, Key8: true, Key9: true, Key0: true,
	}
	for k, info := range entries {
		switch {
		case homeRow[k]:
			info.BaseCost = 1.0
		case topRow[k], bottomRow[k]:
			info.BaseCost = 1.2
		case numberRow[k]:
			info.BaseCost = 1.6
		case k == KeySpace:
			info.BaseCost = 0.8
		case k == KeyEsc, k == KeyCtrl, k == KeyShift:
			info.BaseCost = 0.5
		case k == KeyLeft, k == KeyRight, k == KeyUp, k == KeyDown:
			info.BaseCost = 1.5
		case k == KeyEnter, k == KeyBackspace, k == KeyDelete, k == KeyTab:
			info.BaseCost = 1.3
		default:
			info.BaseCost = 1.7
		}
		entries[k] = info
	}
	return entries
}

// colemakDHTable models Colemak-DH by re-costing QWERTY's physical keys:
// every key keeps qwertyTable's hand and finger, and no letter moves to
// another key. The layout's column arrangement, with the two inner columns
// on each hand dropped to the bottom row, tends to reduce same-finger
// bigrams and lateral stretches, so here the home-row keys cost 0.9 and
// X C V N M , cost 1.0; every other key keeps its QWERTY cost.
func colemakDHTable() map[Key]Info {
	entries := qwertyTable()
	mk := func(h Hand, f Finger, cost float64) Info { return Info{Hand: h, Finger: f, BaseCost: cost} }
	// Colemak-DH letter remap: physical key -> (hand, finger, cost) for the
	// letter it now produces is irrelevant to this model (we cost physical
	// keys, not characters); what changes is which physical key a given
	// *motion letter* maps to, which is not modeled: pkg/tokenizer maps each
	// character to the same physical key under every layout.
	// Here we simply lower home-row cost further, reflecting the layout's
	// design goal of keeping frequent letters on the easiest keys.
	homeRow := []Key{KeyA, KeyS, KeyD, KeyF, KeyG, KeyH, KeyJ, KeyK, KeyL, KeySemicolon}
	for _, k := range homeRow {
		info := entries[k]
		entries[k] = mk(info.Hand, info.Finger, 0.9)
	}
	bottomInner := []Key{KeyX, KeyC, KeyV, KeyN, KeyM, KeyComma}
	for _, k := range bottomInner {
		info := entries[k]
		entries[k] = mk(info.Hand, info.Finger, 1.0)
	}
	return entries
}

// Package effort implements the running effort accumulator: it consumes a
// stream of physical keystrokes incrementally and exposes a scalar cost
// under a given weight set.
//
// Grounded in the original implementation's State/RunningEffort.{h,cpp}.
package effort

import "github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"

// Accumulator is the value-typed running effort state. It is cheap to copy
// (a handful of scalars), which is what lets each A* search node clone it
// on expansion (spec.md §5).
type Accumulator struct {
	strokes       int
	sumKeyCost    float64
	sumSameFinger float64
	sumSameKey    float64
	sumAltBonus   float64
	sumRunPen     float64
	sumRollGood   float64
	sumRollBad    float64

	lastKey    keyboard.Key
	hasLastKey bool
	lastFinger keyboard.Finger
	lastHand   keyboard.Hand

	prevFinger keyboard.Finger
	runHand    keyboard.Hand
	runLen     int
}

// New returns a zeroed accumulator: the reset state, whose Cost is always 0
// for any weights (spec.md §3 invariant).
func New() Accumulator {
	a := Accumulator{}
	a.reset()
	return a
}

func (a *Accumulator) reset() {
	*a = Accumulator{
		lastFinger: keyboard.FingerNone,
		lastHand:   keyboard.HandNone,
		prevFinger: keyboard.FingerNone,
		runHand:    keyboard.HandNone,
	}
}

// Reset clears all accumulated state back to zero.
func (a *Accumulator) Reset() {
	a.reset()
}

// Strokes returns the number of keys appended so far.
func (a *Accumulator) Strokes() int { return a.strokes }

// Append consumes one key and updates every accumulator, mirroring
// RunningEffort::appendSingle. runThreshold is normally Weights.RunThreshold
// (kept as an explicit parameter, rather than baked into the accumulator,
// so the run-penalty sum accrues incrementally exactly as the original
// does, even across alternating runs).
func (a *Accumulator) Append(layout *keyboard.Layout, runThreshold int, key keyboard.Key) {
	info := layout.Info(key)

	a.strokes++
	a.sumKeyCost += info.BaseCost

	if a.lastFinger != keyboard.FingerNone && info.Finger == a.lastFinger {
		a.sumSameFinger++
	}
	if a.hasLastKey && key == a.lastKey {
		a.sumSameKey++
	}

	if !a.hasLastKey {
		a.runHand = info.Hand
		if info.Hand == keyboard.HandNone {
			a.runLen = 0
		} else {
			a.runLen = 1
		}
	} else if info.Hand != keyboard.HandNone && a.lastHand != keyboard.HandNone {
		if info.Hand != a.lastHand {
			a.sumAltBonus++
			a.runHand = info.Hand
			a.runLen = 1
		} else {
			a.runLen++
			if a.runLen > runThreshold {
				a.sumRunPen += float64(a.runLen - runThreshold)
			}
		}
	} else {
		a.runHand = info.Hand
		if info.Hand == keyboard.HandNone {
			a.runLen = 0
		} else {
			a.runLen = 1
		}
	}

	if a.hasLastKey && a.lastFinger != keyboard.FingerNone {
		if keyboard.SameHand(a.lastFinger, info.Finger) {
			prevPos := a.lastFinger.ToPosition()
			currPos := info.Finger.ToPosition()
			if prevPos != currPos && currPos != keyboard.PositionNone {
				delta := int(currPos) - int(prevPos)
				if delta > 0 {
					a.sumRollGood++
				} else if delta < 0 {
					a.sumRollBad++
				}
			}
		}
	}

	a.prevFinger = a.lastFinger
	a.lastFinger = info.Finger
	a.lastHand = info.Hand
	a.lastKey = key
	a.hasLastKey = true
}

// AppendAll consumes a whole key sequence in order, under w's run-length
// threshold.
func (a *Accumulator) AppendAll(layout *keyboard.Layout, w keyboard.Weights, keys keyboard.Sequence) {
	for _, k := range keys {
		a.Append(layout, w.RunThreshold, k)
	}
}

// Cost computes the weighted scalar effort for the sequence consumed so
// far.
func (a *Accumulator) Cost(w keyboard.Weights) float64 {
	s := 0.0
	s += w.Key * a.sumKeyCost
	s += w.SameFinger * a.sumSameFinger
	s += w.SameKey * a.sumSameKey
	s += w.AltBonus * a.sumAltBonus
	s += w.RunPenalty * a.sumRunPen
	s += w.RollGood * a.sumRollGood
	s += w.RollBad * a.sumRollBad
	return s
}

// Clone returns an independent copy, used when branching an A* node.
func (a Accumulator) Clone() Accumulator { return a }

// SequenceCost is a convenience that tokenizes and costs a command string
// from a fresh accumulator, mirroring the original's free function
// getEffort(seq, cfg). Malformed sequences cost 0, matching spec.md §7's
// "tolerate partial transcripts" policy for tokenizer failures.
func SequenceCost(tokenize func(string) (keyboard.Sequence, error), layout *keyboard.Layout, w keyboard.Weights, command string) float64 {
	keys, err := tokenize(command)
	if err != nil {
		return 0.0
	}
	a := New()
	a.AppendAll(layout, w, keys)
	return a.Cost(w)
}

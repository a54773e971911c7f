// Package movement implements the A* movement optimizer: given a start
// and goal cursor position, it searches the space of motion sequences for
// the lowest-effort ways to get there, returning up to MaxResults
// sequences in the order the search reaches the goal (within an
// exploration budget), not just one (spec.md 4.F).
// Grounded in the original implementation's
// src/Optimizer/MovementOptimizer.{h,cpp}.
package movement

import (
	"container/heap"
	"strconv"
	"strings"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/bufindex"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/effort"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/simulator"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/tokenizer"
)

// Params are the shared A* search knobs (spec.md 4.F/4.I).
type Params struct {
	MaxResults       int
	MaxSearchDepth   int
	CostWeight       float64
	ExploreFactor    float64
	FMotionThreshold int
}

// DefaultParams mirrors the original's OptimizerParams defaults.
func DefaultParams() Params {
	return Params{
		MaxResults:       5,
		MaxSearchDepth:   100000,
		CostWeight:       1.0,
		ExploreFactor:    2.0,
		FMotionThreshold: 2,
	}
}

// ImpliedExclusions removes motions from the explorable set that the
// composition optimizer has determined cannot possibly apply — e.g. "G"
// or "gg" is never worth offering when the diff region's own structure
// rules it out (spec.md 4.I).
type ImpliedExclusions struct {
	ExcludeG  bool
	ExcludeGG bool
}

// Result is a single optimal (or near-optimal) motion sequence reaching
// an exact goal position, with its total typing effort.
type Result struct {
	Sequence string
	Effort   float64
}

// RangeResult additionally records which position within the goal range
// this sequence actually lands on.
type RangeResult struct {
	Sequence string
	Effort   float64
	Pos      simulator.Position
}

type posKey struct{ line, col int }

func keyOf(p simulator.Position) posKey { return posKey{p.Line, p.Col} }

// explorableMotions is every motion the search considers without a known
// repeat count (f/F/t/T and the count-searchable word/paragraph/sentence
// motions are handled separately; see generateFMotions and the
// count-searchable tables below).
var explorableMotions = []string{
	"h", "l", "0", "^", "$", "j", "k",
	"w", "W", "b", "B", "e", "E", "ge", "gE",
	"{", "}", "(", ")",
}

type motionPair struct {
	forward, backward string
	landingType        bufindex.LandingType
}

// countSearchableLine pairs motions whose count-repeated effect can be
// looked up directly via bufindex when the goal is on the same line as
// the cursor.
var countSearchableLine = []motionPair{
	{"w", "b", bufindex.WordBegin},
	{"e", "ge", bufindex.WordEnd},
	{"W", "B", bufindex.WORDBegin},
	{"E", "gE", bufindex.WORDEnd},
}

// countSearchableGlobal pairs motions searchable regardless of line,
// since paragraph/sentence jumps naturally span multiple lines.
var countSearchableGlobal = []motionPair{
	{"}", "{", bufindex.Paragraph},
	{")", "(", bufindex.Sentence},
}

// state is one A* search node: a candidate cursor position reached by a
// specific typed motion sequence, with its accumulated typing effort.
type state struct {
	pos      simulator.Position
	acc      effort.Accumulator
	sequence string
	cost     float64
	effortV  float64
}

type priorityQueue []state

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(state)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

func costToGoal(p, q simulator.Position) float64 {
	return absInt(q.Line-p.Line) + absInt(q.TargetCol-p.TargetCol)
}

func absInt(v int) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}

func heuristic(s state, goal simulator.Position, costWeight float64) float64 {
	return costWeight*s.effortV + costToGoal(s.pos, goal)
}

func heuristicToRange(s state, rangeBegin, rangeEnd simulator.Position, costWeight float64) float64 {
	if s.pos.GreaterEqual(rangeBegin) && s.pos.LessEqual(rangeEnd) {
		return costWeight * s.effortV
	}
	closest := rangeEnd
	if s.pos.Less(rangeBegin) {
		closest = rangeBegin
	}
	return costWeight*s.effortV + costToGoal(s.pos, closest)
}

func motionSetFor(excl ImpliedExclusions) map[string]bool {
	set := make(map[string]bool, len(explorableMotions)+2)
	for _, m := range explorableMotions {
		set[m] = true
	}
	if !excl.ExcludeGG {
		set["gg"] = true
	}
	if !excl.ExcludeG {
		set["G"] = true
	}
	return set
}

func keysFor(layout *keyboard.Layout, command string) (keyboard.Sequence, bool) {
	keys, err := tokenizer.Tokenize(command)
	if err != nil {
		return nil, false
	}
	return keys, true
}

func applyMotion(lines []string, motion string, pos simulator.Position) simulator.Position {
	b := simulator.NewBuffer(lines)
	switch motion {
	case "gg":
		return simulator.GotoLine(b, 0)
	case "G":
		return simulator.GotoLine(b, -1)
	default:
		next, ok := simulator.ApplyMotion(motion, b, pos, 1)
		if !ok {
			return pos
		}
		return next
	}
}

// Optimize searches for the lowest-effort motion sequences from startPos
// to the exact position endPos. startingEffort carries over the typing
// effort already accumulated by whatever came before this call in a
// larger composed sequence (spec.md 4.F/4.I), so costs reported are
// correct in context, not measured from zero.
func Optimize(
	lines []string,
	startPos simulator.Position,
	startingEffort effort.Accumulator,
	endPos simulator.Position,
	userSequence string,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	excl ImpliedExclusions,
	params Params,
) []Result {
	idx := bufindex.Build(simulator.NewBuffer(lines))
	motionSet := motionSetFor(excl)
	userEffort := effort.SequenceCost(tokenizer.Tokenize, layout, weights, userSequence)

	var results []Result
	costMap := make(map[posKey]float64)
	goalKey := keyOf(endPos)

	pq := &priorityQueue{}
	heap.Init(pq)

	initial := state{pos: startPos, acc: startingEffort.Clone(), sequence: ""}
	initial.effortV = initial.acc.Cost(weights)
	initial.cost = heuristic(initial, endPos, params.CostWeight)
	heap.Push(pq, initial)
	costMap[keyOf(startPos)] = initial.cost

	explore := func(next state) {
		if next.effortV > userEffort*params.ExploreFactor {
			return
		}
		k := keyOf(next.pos)
		if existing, ok := costMap[k]; !ok {
			if k != goalKey {
				costMap[k] = next.cost
			}
			heap.Push(pq, next)
		} else if next.cost <= existing {
			costMap[k] = next.cost
			heap.Push(pq, next)
		}
	}

	exploreMotion := func(base state, motion string) {
		keys, ok := keysFor(layout, motion)
		if !ok {
			return
		}
		newPos := applyMotion(lines, motion, base.pos)
		acc := base.acc.Clone()
		acc.AppendAll(layout, weights, keys)
		next := state{
			pos:      newPos,
			acc:      acc,
			sequence: base.sequence + motion,
			effortV:  acc.Cost(weights),
		}
		next.cost = heuristic(next, endPos, params.CostWeight)
		explore(next)
	}

	exploreCounted := func(base state, motion string, count int, newPos simulator.Position) {
		command := motion
		if count > 1 {
			command = strconv.Itoa(count) + motion
		}
		keys, ok := keysFor(layout, command)
		if !ok {
			return
		}
		acc := base.acc.Clone()
		acc.AppendAll(layout, weights, keys)
		seq := base.sequence
		if count > 1 {
			seq += strconv.Itoa(count)
		}
		seq += motion
		next := state{pos: newPos, acc: acc, sequence: seq, effortV: acc.Cost(weights)}
		next.cost = heuristic(next, endPos, params.CostWeight)
		explore(next)
	}

	exploreFKnownCol := func(base state, label string, col int) {
		keys, ok := keysFor(layout, label)
		if !ok {
			return
		}
		acc := base.acc.Clone()
		acc.AppendAll(layout, weights, keys)
		newPos := simulator.NewPosition(base.pos.Line, col)
		next := state{pos: newPos, acc: acc, sequence: base.sequence + label, effortV: acc.Cost(weights)}
		next.cost = heuristic(next, endPos, params.CostWeight)
		explore(next)
	}

	totalExplored := 0
	for pq.Len() > 0 {
		s := heap.Pop(pq).(state)
		totalExplored++
		if totalExplored > params.MaxSearchDepth {
			break
		}

		sk := keyOf(s.pos)
		isGoal := sk == goalKey
		if isGoal {
			results = append(results, Result{Sequence: s.sequence, Effort: s.acc.Cost(weights)})
			if len(results) >= params.MaxResults {
				break
			}
			continue
		}
		if existing, ok := costMap[sk]; ok && existing < s.cost {
			continue
		}

		isSameLine := s.pos.Line == endPos.Line
		forward := s.pos.Less(endPos)

		if isSameLine {
			line := []rune(lines[s.pos.Line])
			if forward {
				for _, c := range generateFMotions(true, s.pos.Col, endPos.Col, line, params.FMotionThreshold) {
					exploreFKnownCol(s, "f"+string(c.ch)+strings.Repeat(";", c.count), c.col)
				}
			} else {
				for _, c := range generateFMotions(false, s.pos.Col, endPos.Col, line, params.FMotionThreshold) {
					exploreFKnownCol(s, "F"+string(c.ch)+strings.Repeat(";", c.count), c.col)
				}
			}

			for _, mp := range countSearchableLine {
				motion := mp.backward
				if forward {
					motion = mp.forward
				}
				if !motionSet[motion] && motion != mp.forward && motion != mp.backward {
					continue
				}
				res := idx.TwoClosest(mp.landingType, s.pos, endPos)
				for _, r := range res {
					if r.Valid() {
						exploreCounted(s, motion, r.Count, r.Pos)
					}
				}
			}
		}

		for _, motion := range explorableMotions {
			exploreMotion(s, motion)
		}
		if motionSet["gg"] {
			exploreMotion(s, "gg")
		}
		if motionSet["G"] {
			exploreMotion(s, "G")
		}

		for _, mp := range countSearchableGlobal {
			motion := mp.backward
			if forward {
				motion = mp.forward
			}
			res := idx.TwoClosest(mp.landingType, s.pos, endPos)
			for _, r := range res {
				if r.Valid() {
					exploreCounted(s, motion, r.Count, r.Pos)
				}
			}
		}
	}

	return results
}

// OptimizeToRange searches for the lowest-effort motion sequences from
// startPos to any position within [rangeBegin, rangeEnd], returning up
// to params.MaxResults results. When allowMultiplePerPosition is false,
// at most one (best-cost) result is kept per distinct end position.
// f/F and count-searchable motions are disabled here, matching the
// reduced exploration the composition optimizer accepts for range goals.
func OptimizeToRange(
	lines []string,
	startPos simulator.Position,
	startingEffort effort.Accumulator,
	rangeBegin, rangeEnd simulator.Position,
	userSequence string,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	allowMultiplePerPosition bool,
	excl ImpliedExclusions,
	params Params,
) []RangeResult {
	motionSet := motionSetFor(excl)
	userEffort := effort.SequenceCost(tokenizer.Tokenize, layout, weights, userSequence)

	isInRange := func(p simulator.Position) bool {
		return p.GreaterEqual(rangeBegin) && p.LessEqual(rangeEnd)
	}

	bestByPos := make(map[posKey]RangeResult)
	var allResults []RangeResult
	uniquePositions := 0
	costMap := make(map[posKey]float64)

	pq := &priorityQueue{}
	heap.Init(pq)

	initial := state{pos: startPos, acc: startingEffort.Clone()}
	initial.effortV = initial.acc.Cost(weights)
	initial.cost = heuristicToRange(initial, rangeBegin, rangeEnd, params.CostWeight)
	heap.Push(pq, initial)
	costMap[keyOf(startPos)] = initial.cost

	explore := func(next state) {
		if next.effortV > userEffort*params.ExploreFactor {
			return
		}
		k := keyOf(next.pos)
		if existing, ok := costMap[k]; !ok {
			if !isInRange(next.pos) {
				costMap[k] = next.cost
			}
			heap.Push(pq, next)
		} else if next.cost <= existing {
			costMap[k] = next.cost
			heap.Push(pq, next)
		}
	}

	exploreMotion := func(base state, motion string) {
		keys, ok := keysFor(layout, motion)
		if !ok {
			return
		}
		newPos := applyMotion(lines, motion, base.pos)
		acc := base.acc.Clone()
		acc.AppendAll(layout, weights, keys)
		next := state{pos: newPos, acc: acc, sequence: base.sequence + motion, effortV: acc.Cost(weights)}
		next.cost = heuristicToRange(next, rangeBegin, rangeEnd, params.CostWeight)
		explore(next)
	}

	totalExplored := 0
	for pq.Len() > 0 {
		s := heap.Pop(pq).(state)
		totalExplored++
		if totalExplored > params.MaxSearchDepth {
			break
		}

		sk := keyOf(s.pos)
		if isInRange(s.pos) {
			eff := s.acc.Cost(weights)
			if allowMultiplePerPosition {
				allResults = append(allResults, RangeResult{Sequence: s.sequence, Effort: eff, Pos: s.pos})
				if len(allResults) >= params.MaxResults {
					break
				}
			} else {
				if existing, ok := bestByPos[sk]; !ok {
					bestByPos[sk] = RangeResult{Sequence: s.sequence, Effort: eff, Pos: s.pos}
					uniquePositions++
					if uniquePositions >= params.MaxResults {
						break
					}
				} else if eff < existing.Effort {
					bestByPos[sk] = RangeResult{Sequence: s.sequence, Effort: eff, Pos: s.pos}
				}
			}
			continue
		}
		if existing, ok := costMap[sk]; ok && existing < s.cost {
			continue
		}

		for _, motion := range explorableMotions {
			exploreMotion(s, motion)
		}
		if motionSet["gg"] {
			exploreMotion(s, "gg")
		}
		if motionSet["G"] {
			exploreMotion(s, "G")
		}
	}

	if allowMultiplePerPosition {
		return allResults
	}
	out := make([]RangeResult, 0, len(bestByPos))
	for _, r := range bestByPos {
		out = append(out, r)
	}
	return out
}

type fCandidate struct {
	ch    rune
	col   int
	count int
}

// generateFMotions enumerates, within a window around targetCol bounded
// by threshold (and never crossing the cursor), every character and the
// number of ';' repeats needed to reach it via f<ch>/F<ch>, mirroring the
// original's windowed-search trick for avoiding an exhaustive scan of
// same-line f/F candidates.
func generateFMotions(forward bool, currCol, targetCol int, line []rune, threshold int) []fCandidate {
	n := len(line)
	d := currCol - targetCol
	if d < 0 {
		d = -d
	}
	if threshold > d {
		threshold = d
	}
	l := targetCol - threshold
	if l < 0 {
		l = 0
	}
	r := targetCol + threshold
	if r > n-1 {
		r = n - 1
	}
	if forward {
		if l < currCol+1 {
			l = currCol + 1
		}
	} else {
		if r > currCol-1 {
			r = currCol - 1
		}
	}
	if l > r {
		return nil
	}

	var res []fCandidate
	counts := make(map[rune]int)

	if forward {
		for i := currCol + 1; i < l; i++ {
			counts[line[i]]++
		}
		for i := l; i <= r; i++ {
			c := line[i]
			res = append(res, fCandidate{ch: c, col: i, count: counts[c]})
			counts[c]++
		}
	} else {
		for i := currCol - 1; i > r; i-- {
			counts[line[i]]++
		}
		for i := r; i >= l; i-- {
			c := line[i]
			res = append(res, fCandidate{ch: c, col: i, count: counts[c]})
			counts[c]++
		}
	}
	return res
}

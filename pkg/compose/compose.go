// Package compose implements the composition optimizer: it diffs two
// whole buffers, chooses a processing direction, precomputes an edit
// matrix per region (pkg/editopt) and a remaining-cost heuristic table,
// then runs one more A* search stitching movement (pkg/movement) and
// edit transitions together into full transcript-realizing sequences
// (spec.md 4.I). Grounded in the original implementation's
// src/Optimizer/CompositionOptimizer.{h,cpp}.
package compose

import (
	"container/heap"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/diff"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/editopt"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/effort"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/movement"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/simulator"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/tokenizer"
)

// Result is one full realized sequence (movement and edits interleaved)
// transforming startLines/startPos into endLines, with its total effort.
type Result struct {
	Sequence string
	Effort   float64
}

// Params are the composition search's knobs, mirroring the edit and
// movement optimizers' shared tuning surface plus the two biases unique
// to stitching edits and movement together.
type Params struct {
	MaxResults       int
	MaxSearchDepth   int
	CostWeight       float64
	ExploreFactor    float64
	OvershootPenalty float64
	ForwardBias      float64
}

// DefaultParams mirrors the original's CompositionOptimizer defaults.
func DefaultParams() Params {
	return Params{
		MaxResults:       5,
		MaxSearchDepth:   100000,
		CostWeight:       1.0,
		ExploreFactor:    2.0,
		OvershootPenalty: 3.0,
		ForwardBias:      2.0,
	}
}

// ImpliedExclusions are inherited into every movement sub-search; the
// composition optimizer additionally derives per-region exclusions from
// whether a region could ever touch the buffer's first/last line.
type ImpliedExclusions struct {
	ExcludeG  bool
	ExcludeGG bool
}

func costToGoal(p, q simulator.Position) float64 {
	return absInt(q.Line-p.Line) + absInt(q.Col-p.Col)
}

func absInt(v int) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type state struct {
	pos            simulator.Position
	mode           simulator.Mode
	editsCompleted int
	acc            effort.Accumulator
	sequence       string
	cost           float64
	effortV        float64
}

func stateKey(s state) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.pos.Line))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.pos.Col))
	b.WriteByte(',')
	if s.mode == simulator.Insert {
		b.WriteByte('I')
	} else {
		b.WriteByte('N')
	}
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.editsCompleted))
	return b.String()
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

// Optimize searches for low-effort ways to turn startLines (cursor at
// startPos) into endLines, returning up to params.MaxResults full
// sequences. userSequence is what the user actually typed, used to bound
// exploration the same way pkg/movement's budget filter does.
func Optimize(
	startLines []string,
	startPos simulator.Position,
	endLines []string,
	userSequence string,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	impliedExclusions ImpliedExclusions,
	params Params,
) []Result {
	rawDiffs := diff.Calculate(startLines, endLines)
	if len(rawDiffs) == 0 {
		return nil
	}

	distToFirst := costToGoal(startPos, rawDiffs[0].PosBegin)
	distToLast := costToGoal(startPos, rawDiffs[len(rawDiffs)-1].PosEnd)
	forward := distToFirst <= distToLast+params.ForwardBias
	if !forward {
		reverseRegions(rawDiffs)
	}

	diffStates := diff.AdjustForSequential(rawDiffs)
	totalEdits := len(diffStates)

	linesAfterNEdits := make([][]string, totalEdits+1)
	linesAfterNEdits[0] = startLines
	for i := 1; i <= totalEdits; i++ {
		linesAfterNEdits[i] = diff.Apply(diffStates[i-1], linesAfterNEdits[i-1])
	}

	editParams := editopt.DefaultParams()
	editResults := make([]*editopt.EditResult, totalEdits)
	for i, d := range diffStates {
		boundary := editopt.Boundary{Left: d.Boundary.Left, Right: d.Boundary.Right}
		editResults[i] = editopt.Optimize(d.DeletedLines(), d.InsertedLines(), boundary, layout, weights, editParams)
	}

	suffixEditCosts := computeSuffixEditCosts(editResults)
	posToEditIndex := buildPosToEditIndex(diffStates)

	userEffort := effort.SequenceCost(tokenizer.Tokenize, layout, weights, userSequence)

	var results []Result
	costMap := make(map[string]float64)
	pq := &priorityQueue{}
	heap.Init(pq)

	initial := state{pos: startPos, mode: simulator.Normal, editsCompleted: 0, acc: effort.New()}
	initial.effortV = initial.acc.Cost(weights)
	initial.cost = heuristic(initial, suffixEditCosts, diffStates, params)
	heap.Push(pq, initial)
	costMap[stateKey(initial)] = initial.cost

	explore := func(next state) {
		if next.effortV > userEffort*params.ExploreFactor {
			return
		}
		k := stateKey(next)
		if existing, ok := costMap[k]; !ok {
			if next.editsCompleted != totalEdits {
				costMap[k] = next.cost
			}
			heap.Push(pq, next)
		} else if next.cost <= existing {
			costMap[k] = next.cost
			heap.Push(pq, next)
		}
	}

	explored := 0
	for pq.Len() > 0 {
		s := heap.Pop(pq).(state)
		explored++
		if explored > params.MaxSearchDepth {
			break
		}

		if s.editsCompleted == totalEdits {
			results = append(results, Result{Sequence: s.sequence, Effort: s.effortV})
			if len(results) >= params.MaxResults {
				break
			}
			continue
		}
		if existing, ok := costMap[stateKey(s)]; ok && existing < s.cost {
			continue
		}

		currentLines := linesAfterNEdits[s.editsCompleted]
		numLines := len(currentLines)

		if s.mode == simulator.Normal {
			if validEdits, ok := posToEditIndex[posKey(s.pos)]; ok && containsInt(validEdits, s.editsCompleted) {
				d := diffStates[s.editsCompleted]
				er := editResults[s.editsCompleted]
				i := editopt.OffsetAtPosition(d.DeletedLines(), regionPos(s.pos, d))
				if i >= 0 && i < er.N {
					for j := 0; j < er.M; j++ {
						cell := er.Adj[i][j]
						if math.IsInf(cell.Cost, 1) {
							continue
						}
						newPos := editIndexToBufferPos(j, d)
						acc, ev := appendSequence(s.acc, cell.Sequence, layout, weights)
						next := state{
							pos:            newPos,
							mode:           simulator.Normal,
							editsCompleted: s.editsCompleted + 1,
							acc:            acc,
							sequence:       s.sequence + cell.Sequence,
							effortV:        ev,
						}
						next.cost = heuristic(next, suffixEditCosts, diffStates, params)
						explore(next)
					}
				}
			}
		}

		nextEdit := diffStates[s.editsCompleted]
		lastLine := numLines - 1
		subExcl := movement.ImpliedExclusions{
			ExcludeG:  impliedExclusions.ExcludeG || nextEdit.PosEnd.Line < lastLine,
			ExcludeGG: impliedExclusions.ExcludeGG || nextEdit.PosBegin.Line > 0,
		}
		movParams := movement.DefaultParams()
		movParams.MaxResults = clamp(origCharCount(nextEdit), 1, 10)

		movementResults := movement.OptimizeToRange(
			currentLines, s.pos, s.acc, nextEdit.PosBegin, nextEdit.PosEnd,
			userSequence, layout, weights, false, subExcl, movParams,
		)
		for _, mr := range movementResults {
			acc, ev := appendSequence(s.acc, mr.Sequence, layout, weights)
			next := state{
				pos:            mr.Pos,
				mode:           simulator.Normal,
				editsCompleted: s.editsCompleted,
				acc:            acc,
				sequence:       s.sequence + mr.Sequence,
				effortV:        ev,
			}
			next.cost = heuristic(next, suffixEditCosts, diffStates, params)
			explore(next)
		}
	}

	return results
}

func heuristic(s state, suffixEditCosts []float64, diffStates []diff.Region, params Params) float64 {
	totalEdits := len(diffStates)
	h := suffixEditCosts[s.editsCompleted]
	if s.editsCompleted < totalEdits {
		next := diffStates[s.editsCompleted]
		if s.pos.Less(next.PosBegin) {
			h += costToGoal(s.pos, next.PosBegin)
		} else if next.PosEnd.Less(s.pos) {
			h += params.OvershootPenalty * costToGoal(s.pos, next.PosEnd)
		}
	}
	return params.CostWeight*s.effortV + h
}

func computeSuffixEditCosts(editResults []*editopt.EditResult) []float64 {
	n := len(editResults)
	suffix := make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		er := editResults[i]
		var costs []float64
		for j := 0; j < er.N; j++ {
			for k := 0; k < er.M; k++ {
				if !math.IsInf(er.Adj[j][k].Cost, 1) {
					costs = append(costs, er.Adj[j][k].Cost)
				}
			}
		}
		median := 100.0
		if len(costs) > 0 {
			sort.Float64s(costs)
			median = costs[len(costs)/2]
		}
		suffix[i] = suffix[i+1] + median
	}
	return suffix
}

const maxLineLength = 100

func posKey(p simulator.Position) int { return p.Line*maxLineLength + p.Col }

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// buildPosToEditIndex marks, for every buffer position a region's deleted
// text occupies, which region index can be started from there. Pure
// insertions mark only their single insertion point.
func buildPosToEditIndex(diffStates []diff.Region) map[int][]int {
	out := make(map[int][]int)
	for idx, d := range diffStates {
		if d.IsPureInsertion() {
			out[posKey(d.PosBegin)] = append(out[posKey(d.PosBegin)], idx)
			continue
		}
		for line := d.PosBegin.Line; line <= d.PosEnd.Line; line++ {
			startCol := 0
			if line == d.PosBegin.Line {
				startCol = d.PosBegin.Col
			}
			endCol := maxLineLength - 1
			if line == d.PosEnd.Line {
				endCol = d.PosEnd.Col
			}
			for col := startCol; col <= endCol; col++ {
				k := line*maxLineLength + col
				out[k] = append(out[k], idx)
			}
		}
	}
	return out
}

// regionPos converts a real buffer position known to fall within region
// d's deleted text into a position relative to that region's own lines.
func regionPos(p simulator.Position, d diff.Region) simulator.Position {
	line := p.Line - d.PosBegin.Line
	col := p.Col
	if line == 0 {
		col = p.Col - d.PosBegin.Col
	}
	return simulator.NewPosition(line, col)
}

// editIndexToBufferPos converts a flat offset within region d's inserted
// text back into a real buffer position in the post-edit buffer.
func editIndexToBufferPos(flatIndex int, d diff.Region) simulator.Position {
	inserted := d.InsertedLines()
	p := editopt.PositionAtOffset(inserted, flatIndex)
	line := d.PosBegin.Line + p.Line
	col := p.Col
	if p.Line == 0 {
		col += d.PosBegin.Col
	}
	return simulator.NewPosition(line, col)
}

func origCharCount(d diff.Region) int {
	return len([]rune(d.DeletedText))
}

func reverseRegions(rs []diff.Region) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}

func appendSequence(base effort.Accumulator, command string, layout *keyboard.Layout, weights keyboard.Weights) (effort.Accumulator, float64) {
	acc := base.Clone()
	keys, err := tokenizer.Tokenize(command)
	if err == nil {
		acc.AppendAll(layout, weights, keys)
	}
	return acc, acc.Cost(weights)
}

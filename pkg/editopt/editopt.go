// Package editopt implements the A* edit optimizer: given the deleted and
// inserted text of one diff region, it searches the space of Normal- and
// Insert-mode command sequences that realize that change, and packages
// every reasonable one into an n×m matrix keyed by where within the
// deleted/inserted text the edit begins and ends (spec.md 4.G). The
// composition optimizer (pkg/compose) consults this matrix per region.
// Grounded in the original implementation's src/Optimizer/EditOptimizer.{h,cpp}
// (a thin A* shell; the search loop itself follows the same shape as
// src/Optimizer/MovementOptimizer.cpp, adapted to edit primitives).
package editopt

import (
	"container/heap"
	"math"
	"strconv"
	"strings"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/effort"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/levenshtein"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/reach"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/simulator"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/tokenizer"
)

// Result is one realized command sequence and its typing effort.
type Result struct {
	Sequence string
	Cost     float64
}

// EditResult is the n×m matrix: adj[i][j] is the cheapest sequence found
// that starts editing at offset i within the deleted text (flattened with
// '\n') and leaves the buffer matching the target with the cursor at
// offset j within the inserted text. Cells never reached carry
// math.Inf(1) and an empty sequence.
type EditResult struct {
	N, M int
	Adj  [][]Result
}

func newEditResult(n, m int) *EditResult {
	adj := make([][]Result, n)
	for i := range adj {
		adj[i] = make([]Result, m)
		for j := range adj[i] {
			adj[i][j] = Result{Sequence: "", Cost: math.Inf(1)}
		}
	}
	return &EditResult{N: n, M: m, Adj: adj}
}

// Params are the edit optimizer's search knobs.
type Params struct {
	MaxResults            int
	MaxSearchDepth        int
	CostWeight            float64
	ExploreFactor         float64
	AbsoluteExploreFactor float64
}

// DefaultParams mirrors the original's EditOptimizer defaults: the same
// OptimizerParams values movement search uses, plus the edit-optimizer
// specific absoluteExploreFactor safety cap.
func DefaultParams() Params {
	return Params{
		MaxResults:            5,
		MaxSearchDepth:        100000,
		CostWeight:            1.0,
		ExploreFactor:         2.0,
		AbsoluteExploreFactor: 3.0,
	}
}

// Boundary records whether the region this optimizer realizes touches
// the true start/end of its first/last line in the real document, or
// whether there is real content beyond what's visible here. It caps how
// far destructive commands may safely reach (spec.md 4.K).
type Boundary struct {
	Left, Right reach.Level
}

func flatLen(lines []string) int {
	total := 0
	for i, l := range lines {
		total += len([]rune(l))
		if i > 0 {
			total++
		}
	}
	return total
}

func OffsetAtPosition(lines []string, pos simulator.Position) int {
	off := 0
	for i := 0; i < pos.Line && i < len(lines); i++ {
		off += len([]rune(lines[i])) + 1
	}
	return off + pos.Col
}

func PositionAtOffset(lines []string, offset int) simulator.Position {
	for i, ln := range lines {
		n := len([]rune(ln))
		if offset <= n {
			return simulator.NewPosition(i, offset)
		}
		offset -= n + 1
	}
	last := len(lines) - 1
	if last < 0 {
		return simulator.NewPosition(0, 0)
	}
	return simulator.NewPosition(last, len([]rune(lines[last])))
}

type state struct {
	buf      simulator.Buffer
	pos      simulator.Position
	mode     simulator.Mode
	acc      effort.Accumulator
	sequence string
	cost     float64
	effortV  float64
}

func stateKey(s state) string {
	var b strings.Builder
	for i, l := range s.buf.Lines() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l)
	}
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(s.pos.Line))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.pos.Col))
	b.WriteByte(0)
	if s.mode == simulator.Insert {
		b.WriteByte('I')
	} else {
		b.WriteByte('N')
	}
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

type reachReq struct {
	dir   string // "back", "forward", "both", "none"
	level reach.Level
}

var simpleReach = map[string]reachReq{
	"x":  {"forward", reach.Char},
	"X":  {"back", reach.Char},
	"D":  {"forward", reach.Line},
	"C":  {"forward", reach.Line},
	"dd": {"both", reach.Line},
	"cc": {"both", reach.Line},
	"S":  {"both", reach.Line},
	"s":  {"forward", reach.Char},
	"J":  {"forward", reach.Line},
	"gJ": {"forward", reach.Line},
}

// simpleCommands is every no-argument/no-motion Normal-mode primitive
// simulator.ApplyNormalEdit understands (spec.md 4.D), minus "r", which
// needs a replacement character and is not tried by this optimizer.
var simpleCommands = []string{"x", "X", "~", "D", "C", "J", "gJ", "dd", "cc", "S", "s", "o", "O", "i", "a", "I", "A"}

type motionReach struct {
	level    reach.Level
	backward bool
}

var motionReaches = map[string]motionReach{
	"h":  {reach.Char, true},
	"l":  {reach.Char, false},
	"0":  {reach.Line, true},
	"^":  {reach.Line, true},
	"$":  {reach.Line, false},
	"j":  {reach.Line, false},
	"k":  {reach.Line, true},
	"w":  {reach.Word, false},
	"b":  {reach.Word, true},
	"e":  {reach.Word, false},
	"ge": {reach.Word, true},
	"W":  {reach.BigWord, false},
	"B":  {reach.BigWord, true},
	"E":  {reach.BigWord, false},
	"gE": {reach.BigWord, true},
	"{":  {reach.Line, true},
	"}":  {reach.Line, false},
	"(":  {reach.Line, true},
	")":  {reach.Line, false},
}

var operatorMotions = []string{"h", "l", "0", "^", "$", "w", "b", "e", "ge", "W", "B", "E", "gE", "{", "}", "(", ")"}

var textObjectReach = map[string]reach.Level{
	"iw": reach.Word, "aw": reach.Word, "iW": reach.BigWord, "aW": reach.BigWord,
	"ip": reach.Line, "ap": reach.Line,
	"i\"": reach.Word, "a\"": reach.Word, "i'": reach.Word, "a'": reach.Word,
	"i(": reach.Word, "a(": reach.Word, "i{": reach.Word, "a{": reach.Word, "i[": reach.Word, "a[": reach.Word,
}

var textObjects = []string{"iw", "aw", "iW", "aW", "ip", "ap", "i\"", "a\"", "i'", "a'", "i(", "a(", "i{", "a{", "i[", "a["}

func checkReach(buf simulator.Buffer, pos simulator.Position, req reachReq, boundary Boundary) bool {
	if req.dir == "none" {
		return true
	}
	lastLine := buf.LineCount() - 1
	lineStr := buf.Line(pos.Line)
	if req.dir == "back" || req.dir == "both" {
		got := reach.ComputeBackReach(pos.Line, pos.Col, lineStr, 0, boundary.Left)
		if got < req.level {
			return false
		}
	}
	if req.dir == "forward" || req.dir == "both" {
		got := reach.ComputeForwardReach(pos.Line, pos.Col, lineStr, lastLine, buf.LineCount(), boundary.Right)
		if got < req.level {
			return false
		}
	}
	return true
}

func effortOf(layout *keyboard.Layout, weights keyboard.Weights, base effort.Accumulator, keys keyboard.Sequence) (effort.Accumulator, float64) {
	acc := base.Clone()
	acc.AppendAll(layout, weights, keys)
	return acc, acc.Cost(weights)
}

// Optimize searches for every reasonable way to turn deletedLines into
// insertedLines, within boundary's reach limits, and returns the full
// start/end offset matrix.
func Optimize(
	deletedLines, insertedLines []string,
	boundary Boundary,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	params Params,
) *EditResult {
	n := flatLen(deletedLines) + 1
	m := flatLen(insertedLines) + 1
	result := newEditResult(n, m)

	goalJoined := strings.Join(insertedLines, "\n")
	startJoined := strings.Join(deletedLines, "\n")
	ld := levenshtein.New(goalJoined)

	baselineEffort := float64(ld.Distance(startJoined)) * weights.Key
	if baselineEffort <= 0 {
		baselineEffort = weights.Key
	}
	absoluteCap := baselineEffort * params.AbsoluteExploreFactor
	exploreCap := baselineEffort * params.ExploreFactor
	budget := exploreCap
	if absoluteCap < budget {
		budget = absoluteCap
	}

	for i := 0; i < n; i++ {
		startPos := PositionAtOffset(deletedLines, i)
		searchFromStart(deletedLines, insertedLines, startPos, i, goalJoined, ld, boundary, layout, weights, params, budget, result)
	}

	return result
}

func searchFromStart(
	deletedLines, insertedLines []string,
	startPos simulator.Position,
	row int,
	goalJoined string,
	ld *levenshtein.Distance,
	boundary Boundary,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	params Params,
	budget float64,
	result *EditResult,
) {
	initial := state{
		buf:  simulator.NewBuffer(append([]string(nil), deletedLines...)),
		pos:  startPos,
		mode: simulator.Normal,
		acc:  effort.New(),
	}
	initial.effortV = initial.acc.Cost(weights)
	initial.cost = params.CostWeight*initial.effortV + float64(ld.Distance(strings.Join(initial.buf.Lines(), "\n")))

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, initial)
	costMap := map[string]float64{stateKey(initial): initial.cost}

	recorded := 0
	explored := 0

	push := func(next state) {
		if next.effortV > budget {
			return
		}
		k := stateKey(next)
		if existing, ok := costMap[k]; !ok || next.cost <= existing {
			costMap[k] = next.cost
			heap.Push(pq, next)
		}
	}

	for pq.Len() > 0 {
		s := heap.Pop(pq).(state)
		explored++
		if explored > params.MaxSearchDepth {
			return
		}

		joined := strings.Join(s.buf.Lines(), "\n")
		if joined == goalJoined {
			j := OffsetAtPosition(insertedLines, s.pos)
			if j >= 0 && j < result.M {
				if s.effortV < result.Adj[row][j].Cost {
					result.Adj[row][j] = Result{Sequence: s.sequence, Cost: s.effortV}
				}
			}
			recorded++
			if recorded >= params.MaxResults {
				return
			}
			continue
		}

		if s.mode == simulator.Insert {
			expandInsert(s, insertedLines, layout, weights, params.CostWeight, ld, push)
		} else {
			expandNormal(s, boundary, layout, weights, params.CostWeight, ld, push)
		}
	}
}

func expandNormal(
	s state,
	boundary Boundary,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	costWeight float64,
	ld *levenshtein.Distance,
	push func(state),
) {
	tryCommand := func(cmd string, arg rune) {
		if req, ok := simpleReach[cmd]; ok && !checkReach(s.buf, s.pos, req, boundary) {
			return
		}
		nb, np, nm := simulator.ApplyNormalEdit(cmd, s.buf, s.pos, arg)
		keys, err := tokenizer.Tokenize(cmd)
		if err != nil {
			return
		}
		acc, ev := effortOf(layout, weights, s.acc, keys)
		next := state{buf: nb, pos: np, mode: nm, acc: acc, sequence: s.sequence + cmd, effortV: ev}
		next.cost = costWeight*ev + float64(ld.Distance(strings.Join(nb.Lines(), "\n")))
		push(next)
	}

	for _, cmd := range simpleCommands {
		tryCommand(cmd, 0)
	}

	for _, motion := range operatorMotions {
		tryOperatorMotion(s, "d", motion, boundary, layout, weights, costWeight, ld, push)
		tryOperatorMotion(s, "c", motion, boundary, layout, weights, costWeight, ld, push)
	}
	for _, obj := range textObjects {
		tryOperatorTextObject(s, "d", obj, boundary, layout, weights, costWeight, ld, push)
		tryOperatorTextObject(s, "c", obj, boundary, layout, weights, costWeight, ld, push)
	}
}

func tryOperatorMotion(
	s state,
	op, motion string,
	boundary Boundary,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	costWeight float64,
	ld *levenshtein.Distance,
	push func(state),
) {
	mr, ok := motionReaches[motion]
	if !ok {
		return
	}
	dir := "forward"
	if mr.backward {
		dir = "back"
	}
	if !checkReach(s.buf, s.pos, reachReq{dir: dir, level: mr.level}, boundary) {
		return
	}
	to, ok := simulator.ApplyMotion(motion, s.buf, s.pos, 1)
	if !ok || to == s.pos {
		return
	}
	r := simulator.MotionRange(motion, s.pos, to)
	applyOperatorRange(s, op, op+motion, r, layout, weights, costWeight, ld, push)
}

func tryOperatorTextObject(
	s state,
	op, obj string,
	boundary Boundary,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	costWeight float64,
	ld *levenshtein.Distance,
	push func(state),
) {
	level, ok := textObjectReach[obj]
	if !ok {
		return
	}
	if !checkReach(s.buf, s.pos, reachReq{dir: "both", level: level}, boundary) {
		return
	}
	r, ok := simulator.TextObject(s.buf, s.pos, obj)
	if !ok {
		return
	}
	applyOperatorRange(s, op, op+obj, r, layout, weights, costWeight, ld, push)
}

func applyOperatorRange(
	s state,
	op, command string,
	r simulator.Range,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	costWeight float64,
	ld *levenshtein.Distance,
	push func(state),
) {
	var nb simulator.Buffer
	var np simulator.Position
	var nm simulator.Mode
	switch op {
	case "d":
		nb, np, nm = simulator.ApplyOperatorDelete(s.buf, r)
	case "c":
		nb, np, nm = simulator.ApplyOperatorChange(s.buf, r)
	default:
		return
	}
	keys, err := tokenizer.Tokenize(command)
	if err != nil {
		return
	}
	acc, ev := effortOf(layout, weights, s.acc, keys)
	next := state{buf: nb, pos: np, mode: nm, acc: acc, sequence: s.sequence + command, effortV: ev}
	next.cost = costWeight*ev + float64(ld.Distance(strings.Join(nb.Lines(), "\n")))
	push(next)
}

func expandInsert(
	s state,
	insertedLines []string,
	layout *keyboard.Layout,
	weights keyboard.Weights,
	costWeight float64,
	ld *levenshtein.Distance,
	push func(state),
) {
	emit := func(key string, nb simulator.Buffer, np simulator.Position, nm simulator.Mode) {
		keys, err := tokenizer.Tokenize(key)
		if err != nil {
			return
		}
		acc, ev := effortOf(layout, weights, s.acc, keys)
		next := state{buf: nb, pos: np, mode: nm, acc: acc, sequence: s.sequence + key, effortV: ev}
		next.cost = costWeight*ev + float64(ld.Distance(strings.Join(nb.Lines(), "\n")))
		push(next)
	}

	goalOffset := OffsetAtPosition(insertedLines, s.pos)
	goalJoined := strings.Join(insertedLines, "\n")
	if goalOffset >= 0 && goalOffset < len([]rune(goalJoined)) {
		target := []rune(goalJoined)[goalOffset]
		if target == '\n' {
			nb, np, nm := simulator.ApplyInsertKey("<CR>", s.buf, s.pos)
			emit("<CR>", nb, np, nm)
		} else {
			nb, np, nm := simulator.ApplyInsertKey(string(target), s.buf, s.pos)
			emit(string(target), nb, np, nm)
		}
	}

	for _, key := range []string{"<BS>", "<Del>", "<C-u>", "<C-w>", "<Esc>"} {
		nb, np, nm := simulator.ApplyInsertKey(key, s.buf, s.pos)
		emit(key, nb, np, nm)
	}
}

// Command vimficiency-replay is a small interactive viewer for one
// keystroke sequence a search engine returned: it steps through the
// sequence's physical keys one at a time, showing the starting buffer,
// which hand/finger each key lands on, and the running typing-effort cost
// accumulating alongside.
//
// It is pure presentation over already-computed pkg/effort and
// pkg/keyboard state — it does not execute the sequence against
// pkg/simulator or reproduce keystrokes into any real editor (spec.md
// Non-goals).
//
// Grounded in the teacher's screen package (github.com/timburks/gott's
// termbox-go render loop) for the terminal rendering shape.
package main

import (
	"fmt"
	"os"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/effort"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/snapshot"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/tokenizer"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("usage: vimficiency-replay <start-snapshot> <sequence> [layout]")
	}
	start, err := snapshot.Load(args[0])
	if err != nil {
		return errors.Wrap(err, "loading start snapshot")
	}
	seq := args[1]

	layoutName := "uniform"
	if len(args) == 3 {
		layoutName = args[2]
	}
	layout, ok := keyboard.ByName(layoutName)
	if !ok {
		return errors.Errorf("unknown layout %q", layoutName)
	}
	weights := keyboard.DefaultWeights()

	keys, err := tokenizer.Tokenize(seq)
	if err != nil {
		return errors.Wrap(err, "tokenizing sequence")
	}

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "opening terminal")
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.Output256)

	v := &viewer{
		lines:   start.Lines,
		cursor:  [2]int{start.Row, start.Col},
		seq:     seq,
		keys:    keys,
		layout:  layout,
		weights: weights,
	}
	v.render()

	for {
		event := termbox.PollEvent()
		if event.Type != termbox.EventKey {
			continue
		}
		switch {
		case event.Key == termbox.KeyEsc, event.Ch == 'q', event.Key == termbox.KeyCtrlC:
			return nil
		case event.Key == termbox.KeyArrowRight, event.Ch == ' ':
			v.stepForward()
		case event.Key == termbox.KeyArrowLeft:
			v.stepBack()
		}
		v.render()
	}
}

// viewer holds the playback cursor over keys[0:pos] already "pressed"
// and the recomputed-from-scratch accumulator for that prefix. Replaying
// from scratch on every step (rather than keeping an undo stack) is fine
// at the sizes this tool is used at (interactive, human-paced viewing of
// a single result sequence).
type viewer struct {
	lines   []string
	cursor  [2]int
	seq     string
	keys    keyboard.Sequence
	layout  *keyboard.Layout
	weights keyboard.Weights
	pos     int
}

func (v *viewer) stepForward() {
	if v.pos < len(v.keys) {
		v.pos++
	}
}

func (v *viewer) stepBack() {
	if v.pos > 0 {
		v.pos--
	}
}

func (v *viewer) accumulatorThroughPos() effort.Accumulator {
	acc := effort.New()
	for _, k := range v.keys[:v.pos] {
		acc.Append(v.layout, v.weights.RunThreshold, k)
	}
	return acc
}

func (v *viewer) render() {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)

	row := 0
	for i, line := range v.lines {
		col := 0
		for _, r := range line {
			termbox.SetCell(col, row, r, termbox.ColorWhite, termbox.ColorBlack)
			col += runewidth.RuneWidth(r)
		}
		if i == v.cursor[0] {
			termbox.SetCell(v.cursor[1], row, ' ', termbox.ColorBlack, termbox.ColorWhite)
		}
		row++
	}

	row++
	drawLine(row, fmt.Sprintf("sequence: %s", v.seq))
	row++
	drawLine(row, fmt.Sprintf("key %d/%d", v.pos, len(v.keys)))

	acc := v.accumulatorThroughPos()
	row++
	if v.pos > 0 {
		k := v.keys[v.pos-1]
		info := v.layout.Info(k)
		drawLine(row, fmt.Sprintf("last key: %-8s hand=%-5s finger=%-8s cost so far=%.3f",
			k.String(), info.Hand.String(), info.Finger.String(), acc.Cost(v.weights)))
	} else {
		drawLine(row, fmt.Sprintf("cost so far=%.3f", acc.Cost(v.weights)))
	}

	row += 2
	drawLine(row, "right/space: step forward   left: step back   q/esc: quit")

	termbox.Flush()
}

func drawLine(row int, text string) {
	for col, r := range text {
		termbox.SetCell(col, row, r, termbox.ColorWhite, termbox.ColorBlack)
	}
}

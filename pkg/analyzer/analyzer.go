// Package analyzer exposes the flat, process-embedding API that sits on
// top of the three search engines: configure a layout and weights once,
// then analyze a (start buffer, cursor, end buffer, cursor, user
// sequence) transcript into ranked lower-effort alternatives.
//
// Grounded in the original implementation's main.cpp and
// src/Optimizer/Optimizer.{h,cpp}, which compose the same engines behind
// one entry point.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/compose"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/effort"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/movement"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/simulator"
	"github.com/pkg/errors"
)

// Engine holds the keyboard configuration (layout, weights, per-key
// overrides) an Analyze call runs under. The zero value is not usable;
// construct with NewEngine.
type Engine struct {
	layout  *keyboard.Layout
	weights keyboard.Weights
}

// NewEngine builds an Engine with the uniform layout and the original's
// default score weights, matching spec.md §6's "none" layout default.
func NewEngine() *Engine {
	return &Engine{
		layout:  keyboard.Uniform(),
		weights: keyboard.DefaultWeights(),
	}
}

// SetLayout switches to one of the shipped layouts by name: "uniform",
// "qwerty", "colemakDh", or "none" (an alias for uniform), per spec.md
// §6's process-embedding API.
func (e *Engine) SetLayout(name string) error {
	l, ok := keyboard.ByName(name)
	if !ok {
		return errors.Errorf("unknown layout %q", name)
	}
	e.layout = l
	return nil
}

// SetWeights replaces the active score weights wholesale.
func (e *Engine) SetWeights(w keyboard.Weights) {
	e.weights = w
}

// SetKeyInfo overrides one key's hand/finger/base-cost entry on the
// active layout, per spec.md §6's "override per-key (hand, finger,
// baseCost)". The layout is cloned on every override so shipped layout
// instances shared elsewhere are never mutated in place.
func (e *Engine) SetKeyInfo(k keyboard.Key, info keyboard.Info) {
	e.layout = e.layout.Clone()
	e.layout.SetInfo(k, info)
}

// Analyze runs the full pipeline on one transcript and formats the
// result as newline-separated "<sequence> <cost>" lines, cost to 3
// decimal places (spec.md §6), best result first. Returns "" if no
// alternatives were found.
func (e *Engine) Analyze(
	startText string, startRow, startCol int,
	endText string, endRow, endCol int,
	userSeq string,
) string {
	startLines := splitLines(startText)
	endLines := splitLines(endText)
	startPos := simulator.NewPosition(startRow, startCol)
	endPos := simulator.NewPosition(endRow, endCol)

	if linesEqual(startLines, endLines) {
		results := movement.Optimize(
			startLines, startPos, effort.New(), endPos, userSeq,
			e.layout, e.weights, movement.ImpliedExclusions{}, movement.DefaultParams(),
		)
		return formatMovement(results)
	}

	results := compose.Optimize(
		startLines, startPos, endLines, userSeq,
		e.layout, e.weights, compose.ImpliedExclusions{}, compose.DefaultParams(),
	)
	return formatCompose(results)
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatMovement(results []movement.Result) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("%s %.3f", r.Sequence, r.Effort)
	}
	return strings.Join(lines, "\n")
}

func formatCompose(results []compose.Result) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("%s %.3f", r.Sequence, r.Effort)
	}
	return strings.Join(lines, "\n")
}

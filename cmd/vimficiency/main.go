// Command vimficiency analyzes a modal-editor keystroke transcript and
// prints lower-effort alternative keystroke sequences.
//
// Grounded in the original implementation's main.cpp: three positional
// arguments (start snapshot, end snapshot, user command string), a
// "res is empty" line when nothing was found, nonzero exit on any
// argument or snapshot-parse failure.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/analyzer"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/debug"
	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/snapshot"
	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: vimficiency <start-snapshot> <end-snapshot> <user-sequence>")
	}
	startPath, endPath, userSeq := args[0], args[1], args[2]

	start, err := snapshot.Load(startPath)
	if err != nil {
		return errors.Wrap(err, "loading start snapshot")
	}
	end, err := snapshot.Load(endPath)
	if err != nil {
		return errors.Wrap(err, "loading end snapshot")
	}

	debug.Trace("starting position:", start.Row, start.Col)
	debug.Trace("ending position:", end.Row, end.Col)

	e := analyzer.NewEngine()
	out := e.Analyze(
		strings.Join(start.Lines, "\n"), start.Row, start.Col,
		strings.Join(end.Lines, "\n"), end.Row, end.Col,
		userSeq,
	)

	if out == "" {
		fmt.Println("res is empty")
	} else {
		fmt.Println(out)
	}
	return nil
}

// Package snapshot parses and writes the transcript snapshot file format
// consumed by cmd/vimficiency: a small text capture of a buffer, its
// cursor, and its viewport at one point in an editing session.
//
// Grounded in the original implementation's Editor/Snapshot.{h,cpp}.
package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Snapshot is one parsed transcript capture (spec.md §6).
type Snapshot struct {
	Filename string
	Bufname  string

	Row int
	Col int

	TopRow       int
	BottomRow    int
	WindowHeight int
	ScrollAmount int

	Lines []string
}

const (
	magic   = "vimficiency"
	version = "1"
)

// Load reads and parses a snapshot file at path.
func Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "can't read snapshot")
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a snapshot from r, per spec.md §6's line-oriented format:
//
//	line 1: "vimficiency 1"
//	line 2: filename (opaque metadata)
//	line 3: buffer name (opaque)
//	line 4: "<row> <col>" (0-based cursor)
//	line 5: "<topRow> <bottomRow> <windowHeight> <scrollAmount>" (viewport)
//	remaining lines: buffer contents, one per line
func Parse(r io.Reader) (Snapshot, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	header, ok := nextLine(scanner)
	if !ok {
		return Snapshot{}, errors.New("snapshot empty")
	}
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != magic || fields[1] != version {
		return Snapshot{}, errors.Errorf("unsupported snapshot header %q", header)
	}

	filename, ok := nextLine(scanner)
	if !ok {
		return Snapshot{}, errors.New("snapshot missing filename")
	}

	bufname, ok := nextLine(scanner)
	if !ok {
		return Snapshot{}, errors.New("snapshot missing buffer name")
	}

	rowcol, ok := nextLine(scanner)
	if !ok {
		return Snapshot{}, errors.New("snapshot missing row/col")
	}
	row, col, err := parseTwoInts(rowcol)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "snapshot bad row/col line")
	}

	navLine, ok := nextLine(scanner)
	if !ok {
		return Snapshot{}, errors.New("snapshot missing viewport line")
	}
	topRow, bottomRow, windowHeight, scrollAmount, err := parseFourInts(navLine)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "snapshot bad viewport line")
	}

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, errors.Wrap(err, "snapshot read error")
	}

	return Snapshot{
		Filename:     filename,
		Bufname:      bufname,
		Row:          row,
		Col:          col,
		TopRow:       topRow,
		BottomRow:    bottomRow,
		WindowHeight: windowHeight,
		ScrollAmount: scrollAmount,
		Lines:        lines,
	}, nil
}

func nextLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

func parseTwoInts(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("expected 2 fields, got %q", line)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseFourInts(line string) (int, int, int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return 0, 0, 0, 0, errors.Errorf("expected 4 fields, got %q", line)
	}
	vals := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

// Write serializes s back to the transcript format Parse reads; the
// package's tests use it to round-trip snapshots.
func Write(w io.Writer, s Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s\n", magic, version)
	fmt.Fprintln(bw, s.Filename)
	fmt.Fprintln(bw, s.Bufname)
	fmt.Fprintf(bw, "%d %d\n", s.Row, s.Col)
	fmt.Fprintf(bw, "%d %d %d %d\n", s.TopRow, s.BottomRow, s.WindowHeight, s.ScrollAmount)
	for _, line := range s.Lines {
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}

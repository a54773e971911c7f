// Package levenshtein computes Levenshtein edit distance against a fixed
// goal string, memoizing intermediate DP rows keyed by prefix so that the
// many overlapping queries an A* edit search makes (most states differ
// from their neighbors by a short, shared prefix) don't each pay the full
// O(n*m) cost (spec.md 4.J). Grounded in the original implementation's
// src/Optimizer/Levenshtein.{h,cpp}.
package levenshtein

import (
	"hash/fnv"
	"strings"
)

// Distance computes Levenshtein distance against a single fixed goal
// string, caching DP rows for shared prefixes across repeated queries
// against differing sources.
type Distance struct {
	goal          []byte
	baseRow       []int
	prefixCache   map[uint64][]int
	cacheInterval int
}

// New builds a Distance for goal, with the default cache interval of 4
// rows (matches the original's memory/speed tradeoff default).
func New(goal string) *Distance {
	g := []byte(goal)
	base := make([]int, len(g)+1)
	for j := range base {
		base[j] = j
	}
	return &Distance{
		goal:          g,
		baseRow:       base,
		prefixCache:   make(map[uint64][]int),
		cacheInterval: 4,
	}
}

// Goal returns the fixed goal string this Distance compares against.
func (d *Distance) Goal() string { return string(d.goal) }

// SetCacheInterval changes how often a DP row is cached (every N rows).
// Lower uses more memory for faster lookups; higher trades lookup speed
// for memory.
func (d *Distance) SetCacheInterval(n int) {
	if n < 1 {
		n = 1
	}
	d.cacheInterval = n
}

// ClearCache discards all cached prefix rows, e.g. when starting a fresh
// search against the same goal.
func (d *Distance) ClearCache() {
	d.prefixCache = make(map[uint64][]int)
}

// JoinLines flattens a multi-line buffer into the single newline-joined
// string edit distance is measured over — matching how J/gJ, o/O, and dd
// all manipulate the newline character itself as part of the text.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Distance computes the edit distance from source to the goal string,
// reusing the longest cached prefix row available.
func (d *Distance) Distance(source string) int {
	src := []byte(source)
	if string(src) == string(d.goal) {
		return 0
	}
	if len(src) == 0 {
		return len(d.goal)
	}
	if len(d.goal) == 0 {
		return len(src)
	}

	cachedPrefixLen := 0
	startRow := d.baseRow

	for l := len(src); l > 0; l-- {
		if row, ok := d.prefixCache[hashPrefix(src, l)]; ok {
			cachedPrefixLen = l
			startRow = row
			break
		}
	}

	prevRow := make([]int, len(startRow))
	copy(prevRow, startRow)
	currRow := make([]int, len(d.goal)+1)

	for i := cachedPrefixLen; i < len(src); i++ {
		currRow[0] = i + 1
		for j := 0; j < len(d.goal); j++ {
			deleteCost := prevRow[j+1] + 1
			insertCost := currRow[j] + 1
			replaceCost := prevRow[j]
			if src[i] != d.goal[j] {
				replaceCost++
			}
			currRow[j+1] = minOf3(deleteCost, insertCost, replaceCost)
		}

		if (i+1)%d.cacheInterval == 0 || i == len(src)-1 {
			cached := make([]int, len(currRow))
			copy(cached, currRow)
			d.prefixCache[hashPrefix(src, i+1)] = cached
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[len(d.goal)]
}

func minOf3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// hashPrefix hashes the first l bytes of s, mixing in l itself so that
// "abc" as a prefix of "abcd" doesn't collide with "abc" as a prefix of
// "abcx" at the same length but different continuation.
func hashPrefix(s []byte, l int) uint64 {
	h := fnv.New64a()
	h.Write(s[:l])
	sum := h.Sum64()
	u := uint64(l)
	sum ^= u + 0x9e3779b97f4a7c15 + (sum << 6) + (sum >> 2)
	return sum
}

package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "vimficiency 1\n" +
	"scratch.txt\n" +
	"[No Name]\n" +
	"2 3\n" +
	"0 24 25 0\n" +
	"hello world\n" +
	"second line\n" +
	"third\n"

func TestParseWellFormed(t *testing.T) {
	s, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "scratch.txt", s.Filename)
	assert.Equal(t, "[No Name]", s.Bufname)
	assert.Equal(t, 2, s.Row)
	assert.Equal(t, 3, s.Col)
	assert.Equal(t, 0, s.TopRow)
	assert.Equal(t, 24, s.BottomRow)
	assert.Equal(t, 25, s.WindowHeight)
	assert.Equal(t, 0, s.ScrollAmount)
	assert.Equal(t, []string{"hello world", "second line", "third"}, s.Lines)
}

func TestParseEmptyBuffer(t *testing.T) {
	s, err := Parse(strings.NewReader("vimficiency 1\nf\nb\n0 0\n0 1 2 0\n"))
	require.NoError(t, err)
	assert.Nil(t, s.Lines)
}

func TestParseRejectsBadHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("not-a-header\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("vimficiency 2\nf\nb\n0 0\n0 1 2 0\n"))
	assert.Error(t, err)
}

func TestParseRejectsTruncated(t *testing.T) {
	cases := []string{
		"",
		"vimficiency 1\n",
		"vimficiency 1\nf\n",
		"vimficiency 1\nf\nb\n",
		"vimficiency 1\nf\nb\nnotanumber\n",
		"vimficiency 1\nf\nb\n0 0\nnotenoughfields\n",
	}
	for _, c := range cases {
		_, err := Parse(strings.NewReader(c))
		assert.Error(t, err, "input %q should fail", c)
	}
}

func TestWriteThenParseRoundTrips(t *testing.T) {
	orig := Snapshot{
		Filename:     "a.txt",
		Bufname:      "buf",
		Row:          1,
		Col:          2,
		TopRow:       0,
		BottomRow:    10,
		WindowHeight: 11,
		ScrollAmount: 0,
		Lines:        []string{"one", "two"},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, orig))

	got, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

// Package tokenizer turns a command string in the editor's user-facing
// notation into a flat stream of physical keystrokes, by greedy
// longest-match against a token dictionary.
//
// Grounded in the original implementation's SequenceTokenizer
// (src/Keyboard/SequenceTokenizer.{h,cpp}), which builds its token list
// from action/motion string-to-keys maps and sorts by descending token
// length before matching.
package tokenizer

import (
	"fmt"
	"sort"

	"github.com/TheRickyZhang/Vimficiency-sub000/pkg/keyboard"
	"github.com/pkg/errors"
)

// bracketNames maps bracketed special-key notation, e.g. "<Esc>", to the
// physical keys it produces. "<LT>" is the escape hatch for a literal '<'
// in command contexts (spec.md 4.B "Bracket disambiguation").
var bracketNames = map[string]keyboard.Sequence{
	"<Esc>":       {keyboard.KeyEsc},
	"<CR>":        {keyboard.KeyEnter},
	"<BS>":        {keyboard.KeyBackspace},
	"<Del>":       {keyboard.KeyDelete},
	"<Tab>":       {keyboard.KeyTab},
	"<Space>":     {keyboard.KeySpace},
	"<Left>":      {keyboard.KeyLeft},
	"<Right>":     {keyboard.KeyRight},
	"<Up>":        {keyboard.KeyUp},
	"<Down>":      {keyboard.KeyDown},
	"<Home>":      {keyboard.KeyHome},
	"<End>":       {keyboard.KeyEnd},
	"<LT>":        {}, // placeholder; real keys filled in init via charToKeys['<']
	"<C-u>":       {}, // placeholder; filled in init
	"<C-w>":       {}, // placeholder; filled in init
}

// namedMotions are the multi-char motion tokens the tokenizer must prefer
// over their single-char prefixes (e.g. "gg" over "g" + "g" as two
// separate, meaningless tokens — "g" alone is not itself a command here).
var namedMotions = map[string]keyboard.Sequence{
	"gg": {keyboard.KeyG, keyboard.KeyG},
	"ge": {keyboard.KeyG, keyboard.KeyE},
	"gE": {keyboard.KeyG, keyboard.KeyShift, keyboard.KeyE},
	"gJ": {keyboard.KeyG, keyboard.KeyShift, keyboard.KeyJ},
}

type tokenDef struct {
	token string
	keys  keyboard.Sequence
}

var tokens []tokenDef

func init() {
	// Fix up "<LT>" and the control-key entries now that charToKeys exists.
	bracketNames["<LT>"] = charToKeys['<']
	bracketNames["<C-u>"] = keyboard.Sequence{keyboard.KeyCtrl, charToKeys['u'][0]}
	bracketNames["<C-w>"] = keyboard.Sequence{keyboard.KeyCtrl, charToKeys['w'][0]}

	for name, keys := range namedMotions {
		tokens = append(tokens, tokenDef{name, keys})
	}
	for name, keys := range bracketNames {
		tokens = append(tokens, tokenDef{name, keys})
	}
	for r, keys := range charToKeys {
		tokens = append(tokens, tokenDef{string(rune(r)), keys})
	}

	// Sort tokens by descending length so the matcher always tries the
	// longest candidate first (greedy longest-match, spec.md 4.B).
	sort.Slice(tokens, func(i, j int) bool {
		return len(tokens[i].token) > len(tokens[j].token)
	})
}

// UnknownTokenError reports that the input could not be matched against any
// token in the dictionary at a given byte position, per spec.md §7
// ("unknown token at position i" with a short preview).
type UnknownTokenError struct {
	Position int
	Preview  string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token at position %d: %q", e.Position, e.Preview)
}

// Tokenize parses a command string into a flat physical-key sequence.
// It is a pure, side-effect-free function: the same input always yields the
// same output (spec.md §8 property 1, tokenizer round-trip).
func Tokenize(command string) (keyboard.Sequence, error) {
	var out keyboard.Sequence
	pos := 0
	for pos < len(command) {
		matched := false
		for _, t := range tokens {
			n := len(t.token)
			if n == 0 || pos+n > len(command) {
				continue
			}
			if command[pos:pos+n] == t.token {
				out = out.Append(t.keys...)
				pos += n
				matched = true
				break
			}
		}
		if !matched {
			end := pos + 12
			if end > len(command) {
				end = len(command)
			}
			return nil, errors.WithStack(&UnknownTokenError{
				Position: pos,
				Preview:  command[pos:end],
			})
		}
	}
	return out, nil
}

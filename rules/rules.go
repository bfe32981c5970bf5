// Package rules reads and writes the compact rule cells used by transition-table editors.
//
// A cell is <write-symbol><glyph><state-suffix>: "1>2" writes 1, moves right and goes to Q2.
// Glyphs are '>' (RIGHT), '<' (LEFT) and '!' (STAY). The suffix is a number or "a" for the
// accept state Qa. The write symbol "_" stands for the blank.
package rules

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/reusee/turing/tapes"
)

const (
	StatePrefix = "Q"
	AcceptState = StatePrefix + "a"
	BlankGlyph  = '_'
)

var ErrBadCell = errors.New("bad rule cell")

type Cell struct {
	Write tapes.Symbol
	Move  tapes.Direction
	State string
}

var glyphs = map[byte]tapes.Direction{
	'>': tapes.Right,
	'<': tapes.Left,
	'!': tapes.Stay,
}

func glyphOf(d tapes.Direction) (byte, bool) {
	for g, dir := range glyphs {
		if dir == d {
			return g, true
		}
	}
	return 0, false
}

// Parse reads a compact cell. blank replaces the "_" write symbol.
func Parse(text string, blank tapes.Symbol) (Cell, error) {
	text = strings.TrimSpace(text)
	write, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return Cell{}, fmt.Errorf("%w: empty", ErrBadCell)
	}
	rest := text[size:]
	if len(rest) < 2 {
		return Cell{}, fmt.Errorf("%w: %q too short", ErrBadCell, text)
	}
	move, ok := glyphs[rest[0]]
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q: unknown direction %q", ErrBadCell, text, rest[0])
	}
	suffix := rest[1:]
	var state string
	switch {
	case suffix == "a":
		state = AcceptState
	case isDigits(suffix):
		state = StatePrefix + suffix
	default:
		return Cell{}, fmt.Errorf("%w: %q: bad state suffix %q", ErrBadCell, text, suffix)
	}
	if write == BlankGlyph {
		write = blank
	}
	return Cell{
		Write: write,
		Move:  move,
		State: state,
	}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Format is the inverse of Parse.
func Format(cell Cell, blank tapes.Symbol) (string, error) {
	glyph, ok := glyphOf(cell.Move)
	if !ok {
		return "", fmt.Errorf("%w: direction %v", ErrBadCell, cell.Move)
	}
	suffix, ok := strings.CutPrefix(cell.State, StatePrefix)
	if !ok || (suffix != "a" && !isDigits(suffix)) {
		return "", fmt.Errorf("%w: state %q has no compact form", ErrBadCell, cell.State)
	}
	write := cell.Write
	if write == blank {
		write = BlankGlyph
	}
	return string(write) + string(glyph) + suffix, nil
}

package tapes

import (
	"iter"
	"math"
	"strings"
)

// Window yields positions head-window .. head+window in order.
// Positions past the int64 range are left out.
func (t *Tape) Window(window int) iter.Seq[int64] {
	w := int64(max(window, 0))
	lo := int64(math.MinInt64)
	if t.head >= math.MinInt64+w {
		lo = t.head - w
	}
	hi := int64(math.MaxInt64)
	if t.head <= math.MaxInt64-w {
		hi = t.head + w
	}
	return func(yield func(int64) bool) {
		for pos := lo; ; pos++ {
			if !yield(pos) || pos == hi {
				return
			}
		}
	}
}

// Snapshot renders positions head-window .. head+window, the head cell as [c].
func (t *Tape) Snapshot(window int) string {
	var b strings.Builder
	for pos := range t.Window(window) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		s := t.SymbolAt(pos)
		if pos == t.head {
			b.WriteByte('[')
			b.WriteRune(s)
			b.WriteByte(']')
			continue
		}
		b.WriteRune(s)
	}
	return b.String()
}

// String renders the minimal span covering every non-blank cell.
// Absolute positions are not kept: Reset(t.String()) reproduces the layout starting at 0.
func (t *Tape) String() string {
	lo, hi, ok := t.Bounds()
	if !ok {
		return ""
	}
	var b strings.Builder
	for pos := lo; pos <= hi; pos++ {
		b.WriteRune(t.SymbolAt(pos))
	}
	return b.String()
}

package views

import (
	"strings"

	"github.com/reusee/turing/tapes"
)

// Tape renders window cells on each side of the head, the head cell in brackets and highlighted.
func Tape(t *tapes.Tape, window int) string {
	head := t.Head()
	var b strings.Builder
	first := true
	for pos := range t.Window(window) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		cell := string(t.SymbolAt(pos))
		switch {
		case pos == head:
			b.WriteString(HeadStyle.Render("[" + cell + "]"))
		case t.SymbolAt(pos) == t.Blank():
			b.WriteString(MutedStyle.Render(cell))
		default:
			b.WriteString(cell)
		}
	}
	return b.String()
}

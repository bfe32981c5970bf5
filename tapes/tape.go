package tapes

type Symbol = rune

// Tape is an unbounded sparse tape.
// Only non-blank cells are stored, so a cell holding the blank symbol has no entry.
// Head positions are int64; that is the hard ceiling of head arithmetic.
type Tape struct {
	cells     map[int64]Symbol
	blank     Symbol
	head      int64
	observers []*observerEntry
}

func New(input string, blank Symbol) *Tape {
	t := &Tape{
		cells: make(map[int64]Symbol),
		blank: blank,
	}
	t.load(input)
	return t
}

func (t *Tape) load(input string) {
	var pos int64
	for _, r := range input {
		if r != t.blank {
			t.cells[pos] = r
		}
		pos++
	}
}

func (t *Tape) Blank() Symbol {
	return t.blank
}

func (t *Tape) Head() int64 {
	return t.head
}

// Len returns the number of stored (non-blank) cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Read() Symbol {
	return t.SymbolAt(t.head)
}

func (t *Tape) SymbolAt(pos int64) Symbol {
	if s, ok := t.cells[pos]; ok {
		return s
	}
	return t.blank
}

func (t *Tape) Write(symbol Symbol) {
	t.set(t.head, symbol)
	t.notify(Event{
		Op:       OpWrite,
		Head:     t.head,
		Position: t.head,
		Symbol:   symbol,
	})
}

func (t *Tape) SetSymbol(pos int64, symbol Symbol) {
	t.set(pos, symbol)
	t.notify(Event{
		Op:       OpSetSymbol,
		Head:     t.head,
		Position: pos,
		Symbol:   symbol,
	})
}

func (t *Tape) set(pos int64, symbol Symbol) {
	if symbol == t.blank {
		delete(t.cells, pos)
		return
	}
	t.cells[pos] = symbol
}

func (t *Tape) Move(direction Direction) {
	t.MoveN(direction, 1)
}

func (t *Tape) MoveN(direction Direction, steps int64) {
	switch direction {
	case Left:
		t.head -= steps
	case Right:
		t.head += steps
	}
	t.notify(Event{
		Op:       OpMove,
		Head:     t.head,
		Position: t.head,
		Symbol:   t.Read(),
	})
}

func (t *Tape) Reset(input string) {
	clear(t.cells)
	t.head = 0
	t.load(input)
	t.notify(Event{
		Op:     OpReset,
		Symbol: t.Read(),
	})
}

// Rewind moves the head back to position 0, keeping the cells.
func (t *Tape) Rewind() {
	t.head = 0
	t.notify(Event{
		Op:     OpMove,
		Symbol: t.Read(),
	})
}

// Seek places the head at an absolute position without notifying observers.
// Used when restoring a saved head.
func (t *Tape) Seek(pos int64) {
	t.head = pos
}

// Cells returns a copy of the stored cells.
func (t *Tape) Cells() map[int64]Symbol {
	ret := make(map[int64]Symbol, len(t.cells))
	for pos, s := range t.cells {
		ret[pos] = s
	}
	return ret
}

// Bounds returns the lowest and highest non-blank positions.
func (t *Tape) Bounds() (lo, hi int64, ok bool) {
	for pos := range t.cells {
		if !ok {
			lo, hi, ok = pos, pos, true
			continue
		}
		lo = min(lo, pos)
		hi = max(hi, pos)
	}
	return
}

package tapes

type Op uint8

const (
	OpWrite Op = iota + 1
	OpMove
	OpSetSymbol
	OpReset
)

func (o Op) String() string {
	switch o {
	case OpWrite:
		return "write"
	case OpMove:
		return "move"
	case OpSetSymbol:
		return "set_symbol"
	case OpReset:
		return "reset"
	}
	return "unknown"
}

type Event struct {
	Op       Op
	Head     int64
	Position int64
	Symbol   Symbol
}

type Observer func(tape *Tape, ev Event)

type observerEntry struct {
	fn Observer
}

// Observe registers fn to be called synchronously after every mutation.
// The returned function removes it.
func (t *Tape) Observe(fn Observer) (unobserve func()) {
	entry := &observerEntry{fn: fn}
	t.observers = append(t.observers, entry)
	return func() {
		for i, e := range t.observers {
			if e == entry {
				t.observers = append(t.observers[:i:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

func (t *Tape) notify(ev Event) {
	if len(t.observers) == 0 {
		return
	}
	// observers may unobserve while being notified
	observers := t.observers
	for _, e := range observers {
		e.fn(t, ev)
	}
}

package tapes

// State is the exact content of a tape, head position included.
type State struct {
	Cells map[int64]Symbol
	Blank Symbol
	Head  int64
}

func (t *Tape) State() State {
	return State{
		Cells: t.Cells(),
		Blank: t.blank,
		Head:  t.head,
	}
}

func FromState(state State) *Tape {
	t := &Tape{
		cells: make(map[int64]Symbol, len(state.Cells)),
		blank: state.Blank,
		head:  state.Head,
	}
	for pos, s := range state.Cells {
		t.set(pos, s)
	}
	return t
}

package machines

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/reusee/turing/tapes"
)

// Checkpoint is the exact state of a machine, including absolute head and cell positions
// and the run state, which Record does not carry.
type Checkpoint struct {
	Record    Record
	Tape      tapes.State
	State     string
	Steps     int
	Status    Status
	NoRule    *NoRuleError
	StepLimit *StepLimitError
	Trace     []TraceRecord
	Tracing   bool
	Limit     int
}

func (m *Machine) Checkpoint() Checkpoint {
	c := Checkpoint{
		Record:  ToRecord(m),
		Tape:    m.tape.State(),
		State:   m.state,
		Steps:   m.steps,
		Status:  m.status,
		Trace:   m.Trace(),
		Tracing: m.traceEnabled,
		Limit:   m.traceLimit,
	}
	switch err := m.err.(type) {
	case *NoRuleError:
		e := *err
		c.NoRule = &e
	case *StepLimitError:
		e := *err
		c.StepLimit = &e
	}
	return c
}

// Restore builds a machine continuing exactly where the checkpoint was taken.
func (c Checkpoint) Restore() (*Machine, error) {
	def, err := c.Record.Definition()
	if err != nil {
		return nil, err
	}
	m, err := New(def, tapes.FromState(c.Tape))
	if err != nil {
		return nil, err
	}
	if _, ok := m.defs.states[c.State]; !ok {
		return nil, fmt.Errorf("%w: checkpoint state %q not in states", ErrInvalidRecord, c.State)
	}
	m.state = c.State
	m.steps = c.Steps
	m.status = c.Status
	m.err = nil
	switch {
	case c.NoRule != nil:
		m.err = c.NoRule
	case c.StepLimit != nil:
		m.err = c.StepLimit
	}
	m.traceEnabled = c.Tracing
	m.traceLimit = c.Limit
	m.trace = c.Trace
	if n := len(c.Trace); n > 0 {
		m.last = c.Trace[n-1]
		m.hasLast = true
	}
	return m, nil
}

func SaveCheckpoint(w io.Writer, m *Machine) error {
	return gob.NewEncoder(w).Encode(m.Checkpoint())
}

func LoadCheckpoint(r io.Reader) (*Machine, error) {
	var c Checkpoint
	if err := gob.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode checkpoint: %w", err)
	}
	return c.Restore()
}

package machines

import (
	"fmt"

	"github.com/reusee/turing/tapes"
)

// TraceRecord is one executed transition.
// Head is the head position after the move.
type TraceRecord struct {
	Step  int
	From  string
	Read  tapes.Symbol
	Write tapes.Symbol
	Move  tapes.Direction
	To    string
	Head  int64
}

func (r TraceRecord) String() string {
	return fmt.Sprintf("%d: (%s, %q) -> (%s, %q, %v) head=%d",
		r.Step, r.From, string(r.Read), r.To, string(r.Write), r.Move, r.Head)
}

// EnableTrace turns trace recording on, keeping at most limit records (0 for all).
func (m *Machine) EnableTrace(limit int) {
	m.traceEnabled = true
	m.traceLimit = max(limit, 0)
}

func (m *Machine) DisableTrace() {
	m.traceEnabled = false
	m.trace = nil
}

func (m *Machine) record(r TraceRecord) {
	m.last = r
	m.hasLast = true
	if !m.traceEnabled {
		return
	}
	if m.traceLimit > 0 && len(m.trace) >= m.traceLimit {
		copy(m.trace, m.trace[1:])
		m.trace[len(m.trace)-1] = r
		return
	}
	m.trace = append(m.trace, r)
}

// Trace returns a copy of the recorded transitions, oldest first.
func (m *Machine) Trace() []TraceRecord {
	ret := make([]TraceRecord, len(m.trace))
	copy(ret, m.trace)
	return ret
}

// LastTransition returns the most recently executed transition.
func (m *Machine) LastTransition() (TraceRecord, bool) {
	return m.last, m.hasLast
}

package machines

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tapes"
)

// Machine executes a deterministic single-tape Turing machine.
// It is not safe for concurrent use.
type Machine struct {
	def  Definition
	defs *compiled
	tape *tapes.Tape

	state  string
	steps  int
	status Status
	err    error

	trace        []TraceRecord
	traceEnabled bool
	traceLimit   int
	last         TraceRecord
	hasLast      bool

	logger logs.Logger
}

// New validates def and builds a machine running on tape.
// The tape is used in place, not copied.
func New(def Definition, tape *tapes.Tape) (*Machine, error) {
	c, err := def.compile()
	if err != nil {
		return nil, err
	}
	if tape == nil {
		tape = tapes.New("", def.Blank)
	} else if tape.Blank() != def.Blank {
		return nil, &DefinitionError{
			Problems: []error{
				fmt.Errorf("tape blank %q differs from blank symbol %q", string(tape.Blank()), string(def.Blank)),
			},
		}
	}
	def.States = sortedKeys(c.states)
	def.InputAlphabet = sortedKeys(c.inputAlphabet)
	def.TapeAlphabet = sortedKeys(c.tapeAlphabet)
	def.Accept = sortedKeys(c.accept)
	def.Rules = slices.Clone(def.Rules)
	m := &Machine{
		def:  def,
		defs: c,
		tape: tape,
	}
	m.restart()
	return m, nil
}

func (m *Machine) restart() {
	m.state = m.def.Start
	m.steps = 0
	m.status = Running
	m.err = nil
	m.trace = nil
	m.last = TraceRecord{}
	m.hasLast = false
	if m.IsAccept(m.state) {
		m.status = HaltedAccept
	}
}

// SetLogger sets a logger for step and halt events. nil disables logging.
func (m *Machine) SetLogger(logger logs.Logger) {
	m.logger = logger
}

func (m *Machine) Tape() *tapes.Tape {
	return m.tape
}

func (m *Machine) Definition() Definition {
	def := m.def
	def.States = slices.Clone(def.States)
	def.InputAlphabet = slices.Clone(def.InputAlphabet)
	def.TapeAlphabet = slices.Clone(def.TapeAlphabet)
	def.Accept = slices.Clone(def.Accept)
	def.Rules = slices.Clone(def.Rules)
	return def
}

func (m *Machine) States() []string {
	return slices.Clone(m.def.States)
}

func (m *Machine) Start() string {
	return m.def.Start
}

func (m *Machine) Blank() tapes.Symbol {
	return m.def.Blank
}

func (m *Machine) MaxSteps() int {
	return m.def.MaxSteps
}

func (m *Machine) SetMaxSteps(n int) {
	m.def.MaxSteps = max(n, 0)
}

func (m *Machine) IsAccept(state string) bool {
	_, ok := m.defs.accept[state]
	return ok
}

// Transitions returns a copy of the transition table.
func (m *Machine) Transitions() map[Key]Action {
	return maps.Clone(m.defs.transitions)
}

func (m *Machine) Lookup(state string, symbol tapes.Symbol) (Action, bool) {
	action, ok := m.defs.transitions[Key{
		State:  state,
		Symbol: symbol,
	}]
	return action, ok
}

func (m *Machine) State() string {
	return m.state
}

func (m *Machine) Steps() int {
	return m.steps
}

func (m *Machine) Status() Status {
	return m.status
}

func (m *Machine) Halted() bool {
	return m.status.Halted()
}

func (m *Machine) Accepted() bool {
	return m.status == HaltedAccept
}

func (m *Machine) ErrorOccurred() bool {
	return m.err != nil
}

// Err returns a *NoRuleError or *StepLimitError after such a halt, nil otherwise.
func (m *Machine) Err() error {
	return m.err
}

func (m *Machine) ErrorMessage() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

func (m *Machine) budgetExhausted() bool {
	return m.def.MaxSteps > 0 && m.steps >= m.def.MaxSteps
}

// Step executes one transition. It returns false when the machine is halted or halts
// without executing a transition. Steps past the budget halt with HaltedStepLimit.
func (m *Machine) Step() bool {
	if m.status.Halted() {
		return false
	}

	if m.budgetExhausted() {
		m.status = HaltedStepLimit
		m.err = &StepLimitError{
			Limit: m.def.MaxSteps,
			State: m.state,
		}
		m.logHalt()
		return false
	}

	symbol := m.tape.Read()
	action, ok := m.Lookup(m.state, symbol)
	if !ok {
		m.status = HaltedNoRule
		m.err = &NoRuleError{
			State:  m.state,
			Symbol: symbol,
			Step:   m.steps,
		}
		m.logHalt()
		return false
	}

	from := m.state
	m.tape.Write(action.Write)
	m.tape.Move(action.Move)
	m.state = action.Next
	m.steps++
	m.record(TraceRecord{
		Step:  m.steps,
		From:  from,
		Read:  symbol,
		Write: action.Write,
		Move:  action.Move,
		To:    action.Next,
		Head:  m.tape.Head(),
	})
	if m.logger != nil {
		m.logger.Debug("step",
			"step", m.steps,
			"from", from,
			"read", string(symbol),
			"to", action.Next,
			"write", string(action.Write),
			"move", action.Move.String(),
		)
	}

	if m.IsAccept(m.state) {
		m.status = HaltedAccept
		m.logHalt()
	}

	return true
}

func (m *Machine) logHalt() {
	if m.logger == nil {
		return
	}
	if m.err != nil {
		m.logger.Info("halted",
			"status", m.status.String(),
			"state", m.state,
			"steps", m.steps,
			"error", m.err,
		)
		return
	}
	m.logger.Info("halted",
		"status", m.status.String(),
		"state", m.state,
		"steps", m.steps,
	)
}

// Run steps until the machine halts and reports whether it accepted.
func (m *Machine) Run() bool {
	for m.Step() {
	}
	return m.Accepted()
}

const contextCheckInterval = 1024

// RunContext is Run that also returns when ctx is done.
// A cancelled machine stays Running and can be resumed.
func (m *Machine) RunContext(ctx context.Context) (bool, error) {
	for i := 0; ; i++ {
		if i%contextCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			default:
			}
		}
		if !m.Step() {
			break
		}
	}
	return m.Accepted(), nil
}

// All steps the machine, yielding every executed transition.
// A halt other than acceptance is yielded once as an error.
func (m *Machine) All() iter.Seq2[TraceRecord, error] {
	return func(yield func(TraceRecord, error) bool) {
		for {
			if !m.Step() {
				if m.err != nil {
					yield(TraceRecord{}, m.err)
				}
				return
			}
			if !yield(m.last, nil) {
				return
			}
		}
	}
}

// Reset returns the machine to its start state and the head to position 0,
// keeping the tape contents, so the same program reruns over what the last run left.
func (m *Machine) Reset() {
	m.tape.Rewind()
	m.restart()
	m.logReset()
}

// ResetWithInput resets the machine and reloads the tape from input.
func (m *Machine) ResetWithInput(input string) {
	m.tape.Reset(input)
	m.restart()
	m.logReset()
}

func (m *Machine) logReset() {
	if m.logger != nil {
		m.logger.Debug("reset", "state", m.state)
	}
}

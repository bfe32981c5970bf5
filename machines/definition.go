package machines

import (
	"fmt"
	"slices"

	"github.com/reusee/turing/tapes"
)

type Key struct {
	State  string
	Symbol tapes.Symbol
}

type Action struct {
	Next  string
	Write tapes.Symbol
	Move  tapes.Direction
}

// Rule is one row of a transition table.
type Rule struct {
	From  string
	Read  tapes.Symbol
	To    string
	Write tapes.Symbol
	Move  tapes.Direction
}

func (r Rule) Key() Key {
	return Key{
		State:  r.From,
		Symbol: r.Read,
	}
}

func (r Rule) Action() Action {
	return Action{
		Next:  r.To,
		Write: r.Write,
		Move:  r.Move,
	}
}

func (r Rule) String() string {
	return fmt.Sprintf("(%s, %q) -> (%s, %q, %v)", r.From, string(r.Read), r.To, string(r.Write), r.Move)
}

// Definition is the static part of a machine.
// MaxSteps 0 means unbounded.
type Definition struct {
	States        []string
	InputAlphabet []tapes.Symbol
	TapeAlphabet  []tapes.Symbol
	Blank         tapes.Symbol
	Start         string
	Accept        []string
	Rules         []Rule
	MaxSteps      int
}

type compiled struct {
	states        map[string]struct{}
	inputAlphabet map[tapes.Symbol]struct{}
	tapeAlphabet  map[tapes.Symbol]struct{}
	accept        map[string]struct{}
	transitions   map[Key]Action
}

func setOf[T comparable](elems []T) map[T]struct{} {
	ret := make(map[T]struct{}, len(elems))
	for _, e := range elems {
		ret[e] = struct{}{}
	}
	return ret
}

func sortedKeys[T interface{ ~string | ~rune }](set map[T]struct{}) []T {
	ret := make([]T, 0, len(set))
	for k := range set {
		ret = append(ret, k)
	}
	slices.Sort(ret)
	return ret
}

// compile validates def and builds its lookup tables.
// All problems are reported together.
func (def Definition) compile() (*compiled, error) {
	var problems []error
	problem := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	c := &compiled{
		states:        setOf(def.States),
		inputAlphabet: setOf(def.InputAlphabet),
		tapeAlphabet:  setOf(def.TapeAlphabet),
		accept:        setOf(def.Accept),
		transitions:   make(map[Key]Action, len(def.Rules)),
	}

	if len(c.states) == 0 {
		problem("no states")
	}
	if def.Start == "" {
		problem("no start state")
	} else if _, ok := c.states[def.Start]; !ok {
		problem("start state %q not in states", def.Start)
	}
	for _, state := range def.Accept {
		if _, ok := c.states[state]; !ok {
			problem("accept state %q not in states", state)
		}
	}
	if _, ok := c.tapeAlphabet[def.Blank]; !ok {
		problem("blank symbol %q not in tape alphabet", string(def.Blank))
	}
	for _, s := range def.InputAlphabet {
		if _, ok := c.tapeAlphabet[s]; !ok {
			problem("input symbol %q not in tape alphabet", string(s))
		}
	}
	if _, ok := c.inputAlphabet[def.Blank]; ok {
		problem("blank symbol %q in input alphabet", string(def.Blank))
	}
	if def.MaxSteps < 0 {
		problem("negative max steps %d", def.MaxSteps)
	}

	for _, rule := range def.Rules {
		if _, ok := c.states[rule.From]; !ok {
			problem("rule %v: state %q not in states", rule, rule.From)
		}
		if _, ok := c.states[rule.To]; !ok {
			problem("rule %v: state %q not in states", rule, rule.To)
		}
		if _, ok := c.tapeAlphabet[rule.Read]; !ok {
			problem("rule %v: symbol %q not in tape alphabet", rule, string(rule.Read))
		}
		if _, ok := c.tapeAlphabet[rule.Write]; !ok {
			problem("rule %v: symbol %q not in tape alphabet", rule, string(rule.Write))
		}
		if !rule.Move.Valid() {
			problem("rule %v: bad direction", rule)
		}
		key := rule.Key()
		if prev, ok := c.transitions[key]; ok {
			problem("duplicated rule for state %q and symbol %q: %v and %v",
				key.State, string(key.Symbol),
				Rule{From: key.State, Read: key.Symbol, To: prev.Next, Write: prev.Write, Move: prev.Move},
				rule,
			)
			continue
		}
		c.transitions[key] = rule.Action()
	}

	if len(problems) > 0 {
		return nil, &DefinitionError{
			Problems: problems,
		}
	}
	return c, nil
}

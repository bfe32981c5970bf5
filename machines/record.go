package machines

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/turing/tapes"
	"gopkg.in/yaml.v3"
)

// Record is the flat persisted form of a machine definition and its tape.
// Transitions are keyed by "state,symbol" and valued as [next_state, write_symbol, direction].
// Head is relative to the first character of Tape.
type Record struct {
	States        []string            `json:"states" yaml:"states"`
	InputAlphabet []string            `json:"input_alphabet" yaml:"input_alphabet"`
	TapeAlphabet  []string            `json:"tape_alphabet" yaml:"tape_alphabet"`
	BlankSymbol   string              `json:"blank_symbol" yaml:"blank_symbol"`
	StartState    string              `json:"start_state" yaml:"start_state"`
	AcceptStates  []string            `json:"accept_states" yaml:"accept_states"`
	Transitions   map[string][]string `json:"transitions" yaml:"transitions"`
	Tape          string              `json:"tape" yaml:"tape"`
	MaxSteps      int                 `json:"max_steps" yaml:"max_steps"`
	Head          *int64              `json:"head,omitempty" yaml:"head,omitempty"`
}

func TransitionKey(state string, symbol tapes.Symbol) string {
	return state + "," + string(symbol)
}

// SplitTransitionKey takes the last character as the symbol and everything before the
// comma preceding it as the state, so both state names and symbols may contain commas.
func SplitTransitionKey(key string) (state string, symbol tapes.Symbol, err error) {
	r, size := utf8.DecodeLastRuneInString(key)
	if size == 0 {
		return "", 0, fmt.Errorf("expecting \"state,symbol\"")
	}
	if r == utf8.RuneError && size == 1 {
		return "", 0, fmt.Errorf("invalid utf-8 symbol in %q", key)
	}
	i := len(key) - size - 1
	if i < 0 || key[i] != ',' {
		return "", 0, fmt.Errorf("expecting \"state,symbol\"")
	}
	state = key[:i]
	if state == "" {
		return "", 0, fmt.Errorf("empty state")
	}
	return state, r, nil
}

func parseSymbol(s string) (tapes.Symbol, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0, fmt.Errorf("empty symbol")
	}
	if r == utf8.RuneError && size == 1 {
		return 0, fmt.Errorf("invalid utf-8 symbol %q", s)
	}
	if size != len(s) {
		return 0, fmt.Errorf("symbol %q is not a single character", s)
	}
	return r, nil
}

func symbolStrings(symbols []tapes.Symbol) []string {
	ret := make([]string, 0, len(symbols))
	for _, s := range symbols {
		ret = append(ret, string(s))
	}
	return ret
}

// ToRecord serializes the definition and tape of m.
func ToRecord(m *Machine) Record {
	def := m.Definition()
	transitions := make(map[string][]string, len(def.Rules))
	for _, rule := range def.Rules {
		transitions[TransitionKey(rule.From, rule.Read)] = []string{
			rule.To,
			string(rule.Write),
			rule.Move.String(),
		}
	}
	head := m.tape.Head()
	if lo, _, ok := m.tape.Bounds(); ok {
		head -= lo
	}
	return Record{
		States:        def.States,
		InputAlphabet: symbolStrings(def.InputAlphabet),
		TapeAlphabet:  symbolStrings(def.TapeAlphabet),
		BlankSymbol:   string(def.Blank),
		StartState:    def.Start,
		AcceptStates:  def.Accept,
		Transitions:   transitions,
		Tape:          m.tape.String(),
		MaxSteps:      def.MaxSteps,
		Head:          &head,
	}
}

// Definition converts r to a definition, reporting every malformed field.
func (r Record) Definition() (Definition, error) {
	var problems []error
	fieldError := func(field, key, format string, args ...any) {
		problems = append(problems, &FieldError{
			Field:  field,
			Key:    key,
			Reason: fmt.Sprintf(format, args...),
		})
	}

	symbols := func(field string, strs []string) []tapes.Symbol {
		ret := make([]tapes.Symbol, 0, len(strs))
		for i, str := range strs {
			s, err := parseSymbol(str)
			if err != nil {
				fieldError(field, fmt.Sprint(i), "%v", err)
				continue
			}
			ret = append(ret, s)
		}
		return ret
	}

	def := Definition{
		States:        r.States,
		InputAlphabet: symbols("input_alphabet", r.InputAlphabet),
		TapeAlphabet:  symbols("tape_alphabet", r.TapeAlphabet),
		Start:         r.StartState,
		Accept:        r.AcceptStates,
		MaxSteps:      r.MaxSteps,
	}

	if r.States == nil {
		fieldError("states", "", "missing")
	}
	if r.TapeAlphabet == nil {
		fieldError("tape_alphabet", "", "missing")
	}
	if r.StartState == "" {
		fieldError("start_state", "", "missing")
	}
	if r.AcceptStates == nil {
		fieldError("accept_states", "", "missing")
	}
	if r.MaxSteps < 0 {
		fieldError("max_steps", "", "must not be negative, got %d", r.MaxSteps)
	}
	if blank, err := parseSymbol(r.BlankSymbol); err != nil {
		fieldError("blank_symbol", "", "%v", err)
	} else {
		def.Blank = blank
	}

	for _, key := range sortedKeys(keySet(r.Transitions)) {
		value := r.Transitions[key]
		state, read, err := SplitTransitionKey(key)
		if err != nil {
			fieldError("transitions", key, "%v", err)
			continue
		}
		if len(value) != 3 {
			fieldError("transitions", key, "expecting [next_state, write_symbol, direction], got %d elements", len(value))
			continue
		}
		write, err := parseSymbol(value[1])
		if err != nil {
			fieldError("transitions", key, "write symbol: %v", err)
			continue
		}
		move, err := tapes.ParseDirection(value[2])
		if err != nil {
			fieldError("transitions", key, "%v", err)
			continue
		}
		if value[0] == "" {
			fieldError("transitions", key, "empty next state")
			continue
		}
		def.Rules = append(def.Rules, Rule{
			From:  state,
			Read:  read,
			To:    value[0],
			Write: write,
			Move:  move,
		})
	}

	if len(problems) > 0 {
		return Definition{}, &RecordError{
			Problems: problems,
		}
	}
	return def, nil
}

func keySet[V any](m map[string]V) map[string]struct{} {
	ret := make(map[string]struct{}, len(m))
	for k := range m {
		ret[k] = struct{}{}
	}
	return ret
}

// FromRecord builds a machine from r. No machine is returned unless r is entirely valid.
func FromRecord(r Record) (*Machine, error) {
	def, err := r.Definition()
	if err != nil {
		return nil, err
	}
	tape := tapes.New(r.Tape, def.Blank)
	if r.Head != nil {
		tape.Seek(*r.Head)
	}
	return New(def, tape)
}

func EncodeJSON(r Record) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func DecodeJSON(data []byte) (Record, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return RecordFromMap(raw)
}

func EncodeYAML(r Record) ([]byte, error) {
	return yaml.Marshal(r)
}

func DecodeYAML(data []byte) (Record, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return RecordFromMap(raw)
}

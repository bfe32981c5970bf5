package rules

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

// Grid is an editor table: state -> read symbol -> compact cell.
// Empty cells mean no rule.
type Grid map[string]map[string]string

// Rules converts a grid to rules. Each bad cell is reported with its coordinates.
func (g Grid) Rules(blank tapes.Symbol) ([]machines.Rule, error) {
	var errs []error
	var ret []machines.Rule
	states := make([]string, 0, len(g))
	for state := range g {
		states = append(states, state)
	}
	slices.Sort(states)
	for _, state := range states {
		row := g[state]
		symbols := make([]string, 0, len(row))
		for symbol := range row {
			symbols = append(symbols, symbol)
		}
		slices.Sort(symbols)
		for _, symbol := range symbols {
			text := row[symbol]
			if text == "" {
				continue
			}
			read, err := readSymbol(symbol, blank)
			if err != nil {
				errs = append(errs, fmt.Errorf("cell (%s, %q): %w", state, symbol, err))
				continue
			}
			cell, err := Parse(text, blank)
			if err != nil {
				errs = append(errs, fmt.Errorf("cell (%s, %q): %w", state, symbol, err))
				continue
			}
			ret = append(ret, machines.Rule{
				From:  state,
				Read:  read,
				To:    cell.State,
				Write: cell.Write,
				Move:  cell.Move,
			})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return ret, nil
}

func readSymbol(s string, blank tapes.Symbol) (tapes.Symbol, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: symbol %q is not a single character", ErrBadCell, s)
	}
	if runes[0] == BlankGlyph {
		return blank, nil
	}
	return runes[0], nil
}

// FromRules builds a grid from rules, for display in an editor.
func FromRules(rules []machines.Rule, blank tapes.Symbol) (Grid, error) {
	g := make(Grid)
	var errs []error
	for _, rule := range rules {
		text, err := Format(Cell{
			Write: rule.Write,
			Move:  rule.Move,
			State: rule.To,
		}, blank)
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %v: %w", rule, err))
			continue
		}
		row, ok := g[rule.From]
		if !ok {
			row = make(map[string]string)
			g[rule.From] = row
		}
		read := rule.Read
		if read == blank {
			read = BlankGlyph
		}
		row[string(read)] = text
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return g, nil
}

// States lists every state named by the grid, rows and targets, in order.
func (g Grid) States(blank tapes.Symbol) []string {
	set := make(map[string]bool)
	for state, row := range g {
		set[state] = true
		for _, text := range row {
			if cell, err := Parse(text, blank); err == nil {
				set[cell.State] = true
			}
		}
	}
	ret := make([]string, 0, len(set))
	for state := range set {
		ret = append(ret, state)
	}
	slices.Sort(ret)
	return ret
}

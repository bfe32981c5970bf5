package loaders

import (
	"fmt"
	"unicode/utf8"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/rules"
)

// expandTable turns an editor "table" field (state -> symbol -> compact cell)
// into entries of "transitions".
func expandTable(raw map[string]any) error {
	value, ok := raw["table"]
	if !ok {
		return nil
	}
	delete(raw, "table")

	blankStr, _ := raw["blank_symbol"].(string)
	blank, size := utf8.DecodeRuneInString(blankStr)
	if size == 0 || size != len(blankStr) {
		// reported by the record checks
		return nil
	}

	rows, ok := value.(map[string]any)
	if !ok {
		return tableError("", "expecting object, got %T", value)
	}
	grid := make(rules.Grid, len(rows))
	for state, row := range rows {
		cells, ok := row.(map[string]any)
		if !ok {
			return tableError(state, "expecting object, got %T", row)
		}
		grid[state] = make(map[string]string, len(cells))
		for symbol, cell := range cells {
			text, ok := cell.(string)
			if !ok {
				return tableError(state+","+symbol, "expecting string, got %T", cell)
			}
			grid[state][symbol] = text
		}
	}
	ruleList, err := grid.Rules(blank)
	if err != nil {
		return &machines.RecordError{
			Problems: []error{err},
		}
	}

	transitions, _ := raw["transitions"].(map[string]any)
	if transitions == nil {
		transitions = make(map[string]any)
	}
	for _, rule := range ruleList {
		key := machines.TransitionKey(rule.From, rule.Read)
		if _, ok := transitions[key]; ok {
			return tableError(key, "also defined in transitions")
		}
		transitions[key] = []any{rule.To, string(rule.Write), rule.Move.String()}
	}
	raw["transitions"] = transitions
	return nil
}

func tableError(key string, format string, args ...any) error {
	return &machines.RecordError{
		Problems: []error{
			&machines.FieldError{
				Field:  "table",
				Key:    key,
				Reason: fmt.Sprintf(format, args...),
			},
		},
	}
}

package loaders

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/machines"
)

const cueSchema = `
machine: {
	states:          [...string]
	input_alphabet:  [...string]
	tape_alphabet:   [...string]
	blank_symbol:    string
	start_state:     string
	accept_states:   [...string]
	transitions?: {[string]: [string, string, "LEFT" | "RIGHT" | "STAY"]}
	table?: {[string]: {[string]: string}}
	tape?:      string
	max_steps?: int & >=0
	head?:      int
}
`

func readCUE(path string) (map[string]any, error) {
	loader := configs.NewLoader([]string{path}, cueSchema)
	content, err := loader.FirstJSON("machine")
	if errors.Is(err, configs.ErrValueNotFound) {
		return nil, fmt.Errorf("%w: no machine field", machines.ErrInvalidRecord)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", machines.ErrInvalidRecord, err)
	}
	var raw map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

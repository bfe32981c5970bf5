package machines

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
)

// RecordFromMap checks a generic decoded document field by field.
// Every missing or mistyped field is reported; nothing is returned unless all fields pass.
func RecordFromMap(raw map[string]any) (Record, error) {
	var problems []error
	fieldError := func(field, key, format string, args ...any) {
		problems = append(problems, &FieldError{
			Field:  field,
			Key:    key,
			Reason: fmt.Sprintf(format, args...),
		})
	}

	if raw == nil {
		return Record{}, &RecordError{
			Problems: []error{
				fmt.Errorf("expecting an object"),
			},
		}
	}

	str := func(field string, required bool) string {
		v, ok := raw[field]
		if !ok || v == nil {
			if required {
				fieldError(field, "", "missing")
			}
			return ""
		}
		s, ok := v.(string)
		if !ok {
			fieldError(field, "", "expecting string, got %s", typeName(v))
			return ""
		}
		return s
	}

	strList := func(field string) []string {
		v, ok := raw[field]
		if !ok || v == nil {
			fieldError(field, "", "missing")
			return nil
		}
		list, ok := v.([]any)
		if !ok {
			fieldError(field, "", "expecting list of strings, got %s", typeName(v))
			return nil
		}
		ret := make([]string, 0, len(list))
		for i, elem := range list {
			s, ok := elem.(string)
			if !ok {
				fieldError(field, fmt.Sprint(i), "expecting string, got %s", typeName(elem))
				continue
			}
			ret = append(ret, s)
		}
		return ret
	}

	var r Record
	r.States = strList("states")
	r.InputAlphabet = strList("input_alphabet")
	r.TapeAlphabet = strList("tape_alphabet")
	r.BlankSymbol = str("blank_symbol", true)
	r.StartState = str("start_state", true)
	r.AcceptStates = strList("accept_states")
	r.Tape = str("tape", false)

	if v, ok := raw["max_steps"]; ok && v != nil {
		n, ok := toInt64(v)
		if !ok || n < 0 {
			fieldError("max_steps", "", "expecting non-negative integer, got %v", v)
		} else {
			r.MaxSteps = int(n)
		}
	}

	if v, ok := raw["head"]; ok && v != nil {
		n, ok := toInt64(v)
		if !ok {
			fieldError("head", "", "expecting integer, got %v", v)
		} else {
			r.Head = &n
		}
	}

	switch v := raw["transitions"].(type) {
	case nil:
		fieldError("transitions", "", "missing")
	case map[string]any:
		r.Transitions = make(map[string][]string, len(v))
		for key, value := range v {
			list, ok := value.([]any)
			if !ok {
				fieldError("transitions", key, "expecting [next_state, write_symbol, direction], got %s", typeName(value))
				continue
			}
			if len(list) != 3 {
				fieldError("transitions", key, "expecting [next_state, write_symbol, direction], got %d elements", len(list))
				continue
			}
			strs := make([]string, 3)
			good := true
			for i, elem := range list {
				s, ok := elem.(string)
				if !ok {
					fieldError("transitions", key, "element %d: expecting string, got %s", i, typeName(elem))
					good = false
					continue
				}
				strs[i] = s
			}
			if good {
				r.Transitions[key] = strs
			}
		}
	default:
		fieldError("transitions", "", "expecting object, got %s", typeName(v))
	}

	if len(problems) > 0 {
		return Record{}, &RecordError{
			Problems: problems,
		}
	}

	// semantic checks are done by Definition
	if _, err := r.Definition(); err != nil {
		return Record{}, err
	}

	return r, nil
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case float64, float32, int, int64, uint64, json.Number, *big.Int:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

func toInt64(v any) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case *big.Int:
		if !v.IsInt64() {
			return 0, false
		}
		return v.Int64(), true
	}
	return 0, false
}

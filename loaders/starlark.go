package loaders

import (
	"fmt"
	"os"

	"github.com/reusee/turing/machines"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// readStarlark runs the script and takes its global "machine" dict.
func readStarlark(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	thread := &starlark.Thread{
		Name: path,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(os.Stderr, msg)
		},
	}
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
	}, thread, path, content, nil)
	if err != nil {
		return nil, err
	}
	value, ok := globals["machine"]
	if !ok {
		return nil, fmt.Errorf("%w: no machine global", machines.ErrInvalidRecord)
	}
	goValue, err := fromStarlark(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", machines.ErrInvalidRecord, err)
	}
	raw, ok := goValue.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: machine is %s, not a dict", machines.ErrInvalidRecord, value.Type())
	}
	return raw, nil
}

func fromStarlark(v starlark.Value) (any, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return nil, nil

	case starlark.Bool:
		return bool(v), nil

	case starlark.String:
		return string(v), nil

	case starlark.Int:
		n, ok := v.Int64()
		if !ok {
			return nil, fmt.Errorf("integer %v out of range", v)
		}
		return n, nil

	case starlark.Float:
		return float64(v), nil

	case *starlark.List:
		ret := make([]any, 0, v.Len())
		for i := range v.Len() {
			elem, err := fromStarlark(v.Index(i))
			if err != nil {
				return nil, err
			}
			ret = append(ret, elem)
		}
		return ret, nil

	case starlark.Tuple:
		ret := make([]any, 0, len(v))
		for _, e := range v {
			elem, err := fromStarlark(e)
			if err != nil {
				return nil, err
			}
			ret = append(ret, elem)
		}
		return ret, nil

	case *starlark.Dict:
		ret := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			key, ok := starlark.AsString(item[0])
			if !ok {
				return nil, fmt.Errorf("dict key %v is not a string", item[0])
			}
			value, err := fromStarlark(item[1])
			if err != nil {
				return nil, err
			}
			ret[key] = value
		}
		return ret, nil

	}
	return nil, fmt.Errorf("unsupported starlark value of type %s", v.Type())
}

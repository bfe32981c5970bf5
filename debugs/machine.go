package debugs

import (
	"fmt"
	"strings"

	"github.com/reusee/turing/machines"
	"go.starlark.net/starlark"
)

// MachineGlobals exposes a live machine to a tap session.
// Values are builtins so they reflect the machine after step() and run() calls.
func MachineGlobals(m *machines.Machine) map[string]any {
	noArgs := func(name string, fn func() starlark.Value) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return fn(), nil
		})
	}

	return map[string]any{
		"step": noArgs("step", func() starlark.Value {
			return starlark.Bool(m.Step())
		}),
		"run": noArgs("run", func() starlark.Value {
			return starlark.Bool(m.Run())
		}),
		"state": noArgs("state", func() starlark.Value {
			return starlark.String(m.State())
		}),
		"steps": noArgs("steps", func() starlark.Value {
			return starlark.MakeInt(m.Steps())
		}),
		"status": noArgs("status", func() starlark.Value {
			return starlark.String(m.Status().String())
		}),
		"error": noArgs("error", func() starlark.Value {
			return starlark.String(m.ErrorMessage())
		}),
		"tape": noArgs("tape", func() starlark.Value {
			return starlark.String(m.Tape().String())
		}),
		"head": noArgs("head", func() starlark.Value {
			return starlark.MakeInt64(m.Tape().Head())
		}),
		"trace": noArgs("trace", func() starlark.Value {
			var lines []string
			for _, r := range m.Trace() {
				lines = append(lines, r.String())
			}
			return starlark.String(strings.Join(lines, "\n"))
		}),
		"snapshot": starlark.NewBuiltin("snapshot", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			window := 10
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "window?", &window); err != nil {
				return nil, err
			}
			return starlark.String(m.Tape().Snapshot(window)), nil
		}),
		"reset": starlark.NewBuiltin("reset", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var input starlark.Value = starlark.None
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "input?", &input); err != nil {
				return nil, err
			}
			if input == starlark.None {
				m.Reset()
				return starlark.None, nil
			}
			str, ok := starlark.AsString(input)
			if !ok {
				return nil, fmt.Errorf("%s: input must be a string, got %s", b.Name(), input.Type())
			}
			m.ResetWithInput(str)
			return starlark.None, nil
		}),
		"start":     m.Start(),
		"states":    m.States(),
		"max_steps": m.MaxSteps(),
	}
}

package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/turing/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin with globals bound, and returns when the input ends.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap: " + what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}

// Globals converts Go values to Starlark globals.
func Globals(values map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(values))
	for name, value := range values {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

package tmconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

const (
	DefaultMaxSteps       = 1000
	DefaultSnapshotWindow = 10
)

// MaxSteps is the step budget given to machines whose definition carries none.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
		DefaultMaxSteps,
	))
}

// SnapshotWindow is the number of cells shown on each side of the head.
type SnapshotWindow int

var windowFlag = cmds.Var[int]("-window")

func (Module) SnapshotWindow(
	loader configs.Loader,
) SnapshotWindow {
	return SnapshotWindow(vars.FirstNonZero(
		*windowFlag,
		configs.First[int](loader, "snapshot_window"),
		DefaultSnapshotWindow,
	))
}

// TraceLimit bounds the number of trace records kept, 0 for all.
type TraceLimit int

var traceLimitFlag = cmds.Var[int]("-trace-limit")

func (Module) TraceLimit(
	loader configs.Loader,
) TraceLimit {
	return TraceLimit(vars.FirstNonZero(
		*traceLimitFlag,
		configs.First[int](loader, "trace_limit"),
	))
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/loaders"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/tmconfigs"
	"github.com/reusee/turing/views"
)

var (
	machineFile = cmds.Var[string]("-file")
	saveFile    = cmds.Var[string]("-save")
	traceFlag   = cmds.Switch("-trace")
	stepFlag    = cmds.Switch("-step")
	tableFlag   = cmds.Switch("-table")
	tapFlag     = cmds.Switch("-tap")
	noColorFlag = cmds.Switch("-no-color")
	input       *string
)

func init() {
	cmds.Define("-input", cmds.Func(func(s string) {
		input = &s
	}).Desc("replace the tape contents"))
}

const (
	exitAccepted = 0
	exitRejected = 1
	exitError    = 2
)

func main() {
	cmds.Execute(os.Args[1:])

	if *machineFile == "" {
		fmt.Fprintln(os.Stderr, "error: -file <machine> is required")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(exitError)
	}
	views.SetColor(!*noColorFlag)

	code := exitError
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		load loaders.Load,
		maxSteps tmconfigs.MaxSteps,
		window tmconfigs.SnapshotWindow,
		traceLimit tmconfigs.TraceLimit,
		machineDirs tmconfigs.MachineDirs,
		newSpan logs.NewSpan,
		logger logs.Logger,
		tap debugs.Tap,
	) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx, _ = newSpan(ctx, "run "+*machineFile, "")

		m, err := load(machineDirs.Resolve(*machineFile))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", logs.WrapSpan(ctx, err))
			return
		}
		if input != nil {
			m.ResetWithInput(*input)
		}
		if m.MaxSteps() == 0 {
			m.SetMaxSteps(int(maxSteps))
		}
		if *traceFlag || *stepFlag {
			m.EnableTrace(int(traceLimit))
		}

		if *tableFlag {
			fmt.Println(views.Transitions(m))
		}

		switch {

		case *tapFlag:
			tap(ctx, *machineFile, debugs.MachineGlobals(m))

		case *stepFlag:
			fmt.Println(views.Tape(m.Tape(), int(window)))
			for record, err := range m.All() {
				if err != nil {
					break
				}
				fmt.Println(views.MutedStyle.Render(record.String()))
				fmt.Println(views.Tape(m.Tape(), int(window)))
				if ctx.Err() != nil {
					break
				}
			}

		default:
			if _, err := m.RunContext(ctx); err != nil {
				logger.WarnContext(ctx, "run interrupted",
					"error", err,
					"steps", m.Steps(),
				)
			}

		}

		if *traceFlag {
			fmt.Println(views.Trace(m.Trace()))
		}
		fmt.Print(views.Summary(m, int(window)))

		if *saveFile != "" {
			if err := loaders.SaveMachine(*saveFile, m); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return
			}
			logger.InfoContext(ctx, "machine saved", "path", *saveFile)
		}

		// rejections, step limits and interrupted runs all count as not accepted
		code = exitRejected
		if m.Accepted() {
			code = exitAccepted
		}
	})
	os.Exit(code)
}

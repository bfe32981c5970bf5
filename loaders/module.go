package loaders

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
)

type Module struct {
	dscope.Module
	Machines machines.Module
	Logs     logs.Module
}

// Load reads a machine file into a machine that logs through the scope's logger.
type Load func(path string) (*machines.Machine, error)

func (Module) Load(
	newMachine machines.NewMachine,
	logger logs.Logger,
) Load {
	return func(path string) (*machines.Machine, error) {
		m, err := loadMachine(path, newMachine)
		if err != nil {
			return nil, err
		}
		m.SetLogger(logger)
		logger.Info("machine loaded",
			"path", path,
			"state", m.State(),
			"steps", m.Steps(),
		)
		return m, nil
	}
}

package machines

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tapes"
)

type Module struct {
	dscope.Module
}

// NewMachine builds machines that log through the scope's logger.
type NewMachine func(def Definition, tape *tapes.Tape) (*Machine, error)

func (Module) NewMachine(
	logger logs.Logger,
) NewMachine {
	return func(def Definition, tape *tapes.Tape) (*Machine, error) {
		m, err := New(def, tape)
		if err != nil {
			return nil, err
		}
		m.SetLogger(logger)
		return m, nil
	}
}

package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/loaders"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Configs  tmconfigs.Module
	Debugs   debugs.Module
	Loaders  loaders.Module
	Machines machines.Module
	Logs     logs.Module
}

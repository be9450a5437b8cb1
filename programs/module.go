package programs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taiscript/commands"
	"github.com/reusee/taiscript/logs"
	"github.com/reusee/taiscript/scriptconfigs"
	"github.com/reusee/taiscript/scriptvm"
	"github.com/reusee/taiscript/values"
)

type Module struct {
	dscope.Module
	Values   values.Module
	VM       scriptvm.Module
	Commands commands.Module
	Configs  scriptconfigs.Module
	Logs     logs.Module
}

type NewRunner func(program *Program) *Runner

func (Module) NewRunner(
	newVM scriptvm.NewVM,
	newRuntime commands.NewRuntimeFunc,
	entry scriptconfigs.EntrySection,
	maxDepth scriptconfigs.MaxCallDepth,
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewRunner {
	return func(program *Program) *Runner {
		vm := newVM()
		return &Runner{
			Program:  program,
			VM:       vm,
			Runtime:  newRuntime(vm),
			Entry:    scriptvm.Section(entry),
			MaxDepth: int(maxDepth),
			Logger:   logger,
			NewSpan:  newSpan,
		}
	}
}

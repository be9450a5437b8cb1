package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/taiscript/logs"
	"github.com/reusee/taiscript/scriptvm"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark session over the variables of vm.
type Tap func(ctx context.Context, what string, vm *scriptvm.VM)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, vm *scriptvm.VM) {
		mappings, err := globals(vm)
		if err != nil {
			logger.ErrorContext(ctx, "tap: "+what, "error", err)
			return
		}
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(mappings)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

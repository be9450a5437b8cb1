package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/taiscript/cmds"
	"github.com/reusee/taiscript/commands"
	"github.com/reusee/taiscript/configs"
	"github.com/reusee/taiscript/debugs"
	"github.com/reusee/taiscript/logs"
	"github.com/reusee/taiscript/modes"
	"github.com/reusee/taiscript/parser"
	"github.com/reusee/taiscript/programs"
	"github.com/reusee/taiscript/scriptvm"
	"github.com/reusee/taiscript/values"
	"golang.org/x/term"
)

var (
	dumpFlag      = cmds.Switch("-dump")
	tapFlag       = cmds.Switch("-tap")
	keepGoingFlag = cmds.Switch("-keep-going")
)

func main() {
	var files []string
	cmds.GlobalExecutor.Positional = func(arg string) error {
		files = append(files, arg)
		return nil
	}
	if err := cmds.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, cmds.ErrUsagePrinted) {
			os.Exit(0)
		}
		fail(err)
	}
	if len(files) > 1 {
		fail(fmt.Errorf("expecting one script, got %d", len(files)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Err(); err != nil {
			fail(err)
		}
	})

	code := 0
	scope.Call(func(
		newRunner programs.NewRunner,
		newVM scriptvm.NewVM,
		eval *values.Evaluator,
		logger logs.Logger,
		tap debugs.Tap,
	) {
		var input io.Reader
		name := "<stdin>"
		switch {
		case len(files) == 1:
			f, err := os.Open(files[0])
			if err != nil {
				fail(err)
			}
			defer f.Close()
			input = f
			name = files[0]
		case !term.IsTerminal(int(os.Stdin.Fd())):
			input = os.Stdin
		default:
			vm := newVM()
			code = runREPL(ctx, vm, eval, logger)
			after(ctx, vm, tap)
			return
		}

		program, err := parser.Parse(name, input)
		if err != nil {
			fail(err)
		}
		runner := newRunner(program)
		if *keepGoingFlag {
			runner.OnError = func(err error) bool {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return true
			}
		}
		code, err = runner.Run(ctx)
		if err != nil {
			var fatal *commands.FatalError
			if errors.As(err, &fatal) {
				logger.Error("aborted", "instruction", fatal.Instruction.String())
			}
			after(ctx, runner.VM, tap)
			fail(err)
		}
		after(ctx, runner.VM, tap)
	})

	stop()
	os.Exit(code)
}

func after(ctx context.Context, vm *scriptvm.VM, tap debugs.Tap) {
	if *dumpFlag {
		if err := vm.Dump(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "dump: %v\n", err)
		}
	}
	if *tapFlag {
		tap(ctx, "after run", vm)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "taiscript: %v\n", err)
	os.Exit(1)
}

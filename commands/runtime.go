package commands

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taiscript/logs"
	"github.com/reusee/taiscript/scriptvm"
	"github.com/reusee/taiscript/values"
)

// Machine is the interpreter state the handlers operate on.
type Machine interface {
	values.Scope
	CurrentSection() scriptvm.Section
	DeclareVariable(scriptvm.Variable) error
	ModifyVariable(qualifiedName string, value values.Value) error
	SetComparison(values.Ordering)
	ComparisonIs(values.Ordering) bool
}

var _ Machine = new(scriptvm.VM)

type Evaluator interface {
	Evaluate(expr string, scope values.Scope) (values.Value, error)
}

var _ Evaluator = new(values.Evaluator)

// Runtime executes instructions against one Machine.
type Runtime struct {
	Machine Machine
	Eval    Evaluator
	Stdin   *bufio.Reader
	Stdout  io.Writer
	Logger  logs.Logger
}

func NewRuntime(
	machine Machine,
	eval Evaluator,
	stdin io.Reader,
	stdout io.Writer,
	logger logs.Logger,
) *Runtime {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reader, ok := stdin.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(stdin)
	}
	return &Runtime{
		Machine: machine,
		Eval:    eval,
		Stdin:   reader,
		Stdout:  stdout,
		Logger:  logger,
	}
}

type Module struct {
	dscope.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type NewRuntimeFunc func(machine Machine) *Runtime

func (Module) NewRuntime(
	eval *values.Evaluator,
	stdin Stdin,
	stdout values.Output,
	logger logs.Logger,
) NewRuntimeFunc {
	// one reader for all runtimes so buffered input is not lost between them
	reader := bufio.NewReader(stdin)
	return func(machine Machine) *Runtime {
		return NewRuntime(machine, eval, reader, stdout, logger)
	}
}

package values

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Scope exposes the variables an expression may reference.
type Scope interface {
	Visible() iter.Seq2[string, Value]
}

type EvalError struct {
	Expr string
	Err  error
}

func (e EvalError) Error() string {
	return fmt.Sprintf("evaluate %q: %v", e.Expr, e.Err)
}

func (e EvalError) Unwrap() error {
	return e.Err
}

type Evaluator struct {
	output   io.Writer
	builtins starlark.StringDict
}

type Module struct {
	dscope.Module
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) Evaluator(
	output Output,
) *Evaluator {
	return NewEvaluator(output)
}

func NewEvaluator(output io.Writer) *Evaluator {
	return &Evaluator{
		output: output,
		builtins: starlark.StringDict{
			"upper": starlarkutil.MakeFunc("upper", strings.ToUpper),
			"lower": starlarkutil.MakeFunc("lower", strings.ToLower),
			"num":   starlark.NewBuiltin("num", builtinNum),
			"text":  starlark.NewBuiltin("text", builtinText),
		},
	}
}

// Evaluate computes expr against the variables of scope.
// Variables shadow builtins of the same name.
func (e *Evaluator) Evaluate(expr string, scope Scope) (Value, error) {
	globals := make(starlark.StringDict, len(e.builtins))
	for name, fn := range e.builtins {
		globals[name] = fn
	}
	if scope != nil {
		for name, value := range scope.Visible() {
			globals[name] = ToStarlark(value)
		}
	}

	thread := &starlark.Thread{
		Name: "expr",
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(e.output, msg)
		},
	}
	result, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "<expr>", expr, globals)
	if err != nil {
		return nil, EvalError{
			Expr: expr,
			Err:  err,
		}
	}

	value, err := FromStarlark(result)
	if err != nil {
		return nil, EvalError{
			Expr: expr,
			Err:  err,
		}
	}
	return value, nil
}

func builtinNum(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return ToStarlark(Number(f)), nil
}

func builtinText(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	value, err := FromStarlark(v)
	if err != nil {
		return nil, err
	}
	return starlark.String(value.String()), nil
}

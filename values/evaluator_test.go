package values

import (
	"bytes"
	"errors"
	"iter"
	"testing"

	"github.com/reusee/dscope"
)

type testScope map[string]Value

func (s testScope) Visible() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for k, v := range s {
			if !yield(k, v) {
				return
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	eval := NewEvaluator(new(bytes.Buffer))
	scope := testScope{
		"x":    Number(1),
		"half": Number(0.5),
		"name": Text("foo"),
	}
	run := func(expr string, expected Value) {
		t.Helper()
		got, err := eval.Evaluate(expr, scope)
		if err != nil {
			t.Fatalf("expr: %s, err: %v", expr, err)
		}
		if got != expected {
			t.Fatalf("expr: %s, expected: %#v, got: %#v", expr, expected, got)
		}
	}

	run(`5`, Number(5))
	run(`2+2`, Number(4))
	run(`x+1`, Number(2))
	run(`half*3`, Number(1.5))
	run(`7/2`, Number(3.5))
	run(`"a" + "b"`, Text("ab"))
	run(`name + "!"`, Text("foo!"))
	run(`x == 1`, Number(1))
	run(`num(" 42 ")`, Number(42))
	run(`text(x) + "s"`, Text("1s"))
	run(`upper(name)`, Text("FOO"))
	run(`"abc"[x]`, Text("b"))
}

func TestEvaluateErrors(t *testing.T) {
	eval := NewEvaluator(new(bytes.Buffer))

	_, err := eval.Evaluate(`nope + 1`, nil)
	var evalErr EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("got %v", err)
	}
	if evalErr.Expr != "nope + 1" {
		t.Fatalf("got %q", evalErr.Expr)
	}

	_, err = eval.Evaluate(`[1, 2]`, nil)
	if err == nil {
		t.Fatal("should error")
	}

	_, err = eval.Evaluate(`num("x")`, nil)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestEvaluatePrint(t *testing.T) {
	buf := new(bytes.Buffer)
	eval := NewEvaluator(buf)
	if _, err := eval.Evaluate(`print("hi") or 1`, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hi\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestModule(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Output {
			return buf
		},
	).Call(func(
		eval *Evaluator,
	) {
		v, err := eval.Evaluate(`3*3`, nil)
		if err != nil {
			t.Fatal(err)
		}
		if v != Number(9) {
			t.Fatalf("got %v", v)
		}
	})
}

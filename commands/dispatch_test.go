package commands

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/reusee/taiscript/scriptvm"
	"github.com/reusee/taiscript/values"
)

func newTestRuntime(stdin string) (*Runtime, *scriptvm.VM, *bytes.Buffer) {
	vm := scriptvm.New(nil)
	out := new(bytes.Buffer)
	r := NewRuntime(vm, values.NewEvaluator(out), strings.NewReader(stdin), out, nil)
	return r, vm, out
}

func mustDispatch(t *testing.T, r *Runtime, insts ...Instruction) Signal {
	t.Helper()
	var sig Signal
	for _, inst := range insts {
		var err error
		sig, err = r.Dispatch(inst)
		if err != nil {
			t.Fatalf("%s: %v", inst, err)
		}
	}
	return sig
}

func lookup(vm *scriptvm.VM, name string) values.Value {
	v, _ := vm.Lookup(scriptvm.QualifiedName(vm.CurrentSection(), name))
	return v
}

func TestGuardTable(t *testing.T) {
	guards := map[string]func(Instruction) Instruction{
		"eq":     func(i Instruction) Instruction { return CmpEq{Then: i} },
		"neq":    func(i Instruction) Instruction { return CmpNEq{Then: i} },
		"less":   func(i Instruction) Instruction { return CmpLess{Then: i} },
		"lesseq": func(i Instruction) Instruction { return CmpLessEq{Then: i} },
		"more":   func(i Instruction) Instruction { return CmpMore{Then: i} },
		"moreeq": func(i Instruction) Instruction { return CmpMoreEq{Then: i} },
	}
	fires := map[string]map[values.Ordering]bool{
		"eq":     {values.Equal: true},
		"neq":    {values.NotEqual: true},
		"less":   {values.Less: true},
		"lesseq": {values.Less: true, values.Equal: true},
		"more":   {values.Greater: true},
		"moreeq": {values.Greater: true, values.Equal: true},
	}
	outcomes := []values.Ordering{
		values.Equal, values.NotEqual, values.Less, values.Greater,
	}

	n := 0
	for name, makeGuard := range guards {
		for _, outcome := range outcomes {
			r, vm, _ := newTestRuntime("")
			vm.SetComparison(outcome)
			sig := mustDispatch(t, r, makeGuard(Quit{}))
			fired := sig != nil
			if fired != fires[name][outcome] {
				t.Fatalf("guard %s, outcome %v: fired %v", name, outcome, fired)
			}
			if !vm.ComparisonIs(outcome) {
				t.Fatalf("guard %s mutated the flag", name)
			}
			n++
		}
	}
	if n != 24 {
		t.Fatalf("got %d cases", n)
	}
}

func TestDecl(t *testing.T) {
	r, vm, _ := newTestRuntime("")
	mustDispatch(t, r, Decl{Name: "x"})
	if v := lookup(vm, "x"); v != values.Number(0) {
		t.Fatalf("got %v", v)
	}
}

func TestDeclWV(t *testing.T) {
	r, vm, _ := newTestRuntime("")
	mustDispatch(t, r, DeclWV{Name: "x", Expr: "5"})
	if v := lookup(vm, "x"); v != values.Number(5) {
		t.Fatalf("got %v", v)
	}
}

func TestDeclWVSelfReference(t *testing.T) {
	r, vm, _ := newTestRuntime("")
	if _, err := r.Dispatch(DeclWV{Name: "x", Expr: "x + 1"}); err == nil {
		t.Fatal("should error")
	}
	if _, ok := vm.Lookup(scriptvm.QualifiedName(scriptvm.MainSection, "x")); ok {
		t.Fatal("should not be declared")
	}
}

func TestMoveSequential(t *testing.T) {
	r, vm, _ := newTestRuntime("")
	mustDispatch(t, r,
		Decl{Name: "x"},
		Move{Name: "x", Expr: "1"},
		Move{Name: "x", Expr: "x+1"},
	)
	if v := lookup(vm, "x"); v != values.Number(2) {
		t.Fatalf("got %v", v)
	}
}

func TestMoveUndefined(t *testing.T) {
	r, _, _ := newTestRuntime("")
	_, err := r.Dispatch(Move{Name: "nope", Expr: "1"})
	if err == nil {
		t.Fatal("should error")
	}
	if IsFatal(err) {
		t.Fatalf("should be recoverable: %v", err)
	}
}

func TestClear(t *testing.T) {
	r, vm, _ := newTestRuntime("")
	mustDispatch(t, r,
		DeclWV{Name: "x", Expr: `"foo"`},
		Clear{Name: "x"},
	)
	if v := lookup(vm, "x"); v != values.Number(0) {
		t.Fatalf("got %v", v)
	}
}

func TestCmpEqPrint(t *testing.T) {
	r, _, out := newTestRuntime("")
	mustDispatch(t, r,
		Cmp{Left: "3", Right: "3"},
		CmpEq{Then: Println{Args: []string{`"ok"`}}},
	)
	if out.String() != "ok\n" {
		t.Fatalf("got %q", out.String())
	}

	r, _, out = newTestRuntime("")
	mustDispatch(t, r,
		Cmp{Left: "3", Right: "4"},
		CmpEq{Then: Println{Args: []string{`"ok"`}}},
	)
	if out.String() != "" {
		t.Fatalf("got %q", out.String())
	}
}

func TestCmpOutcomes(t *testing.T) {
	cases := []struct {
		left, right string
		expected    values.Ordering
	}{
		{"1", "2", values.Less},
		{"2", "1", values.Greater},
		{"2", "2.0", values.Equal},
		{`"b"`, `"a"`, values.Greater},
		{`float("nan")`, "1", values.NotEqual},
	}
	for _, c := range cases {
		r, vm, _ := newTestRuntime("")
		vm.SetComparison(values.Less)
		mustDispatch(t, r, Cmp{Left: c.left, Right: c.right})
		if !vm.ComparisonIs(c.expected) {
			t.Fatalf("cmp %s %s: got %v", c.left, c.right, vm.Comparison())
		}
	}
}

func TestCmpMixedTypes(t *testing.T) {
	r, vm, _ := newTestRuntime("")
	vm.SetComparison(values.Less)
	_, err := r.Dispatch(Cmp{Left: "1", Right: `"1"`})
	if err == nil || IsFatal(err) {
		t.Fatalf("got %v", err)
	}
	if !vm.ComparisonIs(values.Less) {
		t.Fatal("flag should be unchanged")
	}
}

func TestNestedGuard(t *testing.T) {
	r, _, out := newTestRuntime("")
	mustDispatch(t, r,
		Cmp{Left: "2", Right: "2"},
		CmpLessEq{Then: CmpMoreEq{Then: Println{Args: []string{`"both"`}}}},
	)
	if out.String() != "both\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestGuardPassesSignal(t *testing.T) {
	r, _, _ := newTestRuntime("")
	mustDispatch(t, r, Cmp{Left: "1", Right: "2"})
	sig := mustDispatch(t, r, CmpLess{Then: Quit{Code: "3"}})
	if sig != (QuitSignal{Code: 3}) {
		t.Fatalf("got %#v", sig)
	}
	sig = mustDispatch(t, r, CmpMore{Then: Quit{Code: "3"}})
	if sig != nil {
		t.Fatalf("got %#v", sig)
	}
	sig = mustDispatch(t, r, CmpNEq{Then: Return{}})
	if sig != nil {
		t.Fatalf("got %#v", sig)
	}
}

func TestGuardSkipsEvaluation(t *testing.T) {
	r, _, _ := newTestRuntime("")
	mustDispatch(t, r, Cmp{Left: "1", Right: "2"})
	// would fail if evaluated
	mustDispatch(t, r, CmpEq{Then: Move{Name: "nope", Expr: "undefined"}})
}

func TestPrint(t *testing.T) {
	r, _, out := newTestRuntime("")
	mustDispatch(t, r,
		DeclWV{Name: "x", Expr: "2.5"},
		Print{Args: []string{`"x="`, "x", `"!"`}},
		Print{},
		Println{Args: []string{"1", "2"}},
		Println{},
	)
	if out.String() != "x=2.5!12\n\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestPrintInterleaved(t *testing.T) {
	r, _, out := newTestRuntime("")
	_, err := r.Dispatch(Println{Args: []string{`"a"`, "undefined", `"b"`}})
	if err == nil {
		t.Fatal("should error")
	}
	var evalErr values.EvalError
	if !errors.As(err, &evalErr) {
		t.Logf("%v", err)
	}
	if out.String() != "a" {
		t.Fatalf("got %q", out.String())
	}
}

func TestInput(t *testing.T) {
	r, vm, _ := newTestRuntime("  hello world \nsecond\nlast")
	mustDispatch(t, r,
		Decl{Name: "a"},
		Decl{Name: "b"},
		Decl{Name: "c"},
		Input{Name: "a"},
		InputUpper{Name: "b"},
		Input{Name: "c"},
	)
	if v := lookup(vm, "a"); v != values.Text("hello world") {
		t.Fatalf("got %q", v)
	}
	if v := lookup(vm, "b"); v != values.Text("SECOND") {
		t.Fatalf("got %q", v)
	}
	if v := lookup(vm, "c"); v != values.Text("last") {
		t.Fatalf("got %q", v)
	}

	_, err := r.Dispatch(Input{Name: "a"})
	if !IsFatal(err) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ErrReadInput) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "input a") {
		t.Fatalf("got %v", err)
	}
}

func TestQuit(t *testing.T) {
	r, _, _ := newTestRuntime("")
	if sig := mustDispatch(t, r, Quit{}); sig != (QuitSignal{Code: 0}) {
		t.Fatalf("got %#v", sig)
	}
	if sig := mustDispatch(t, r, Quit{Code: "2+2"}); sig != (QuitSignal{Code: 4}) {
		t.Fatalf("got %#v", sig)
	}
	if sig := mustDispatch(t, r, Quit{Code: "-3.9"}); sig != (QuitSignal{Code: -3}) {
		t.Fatalf("got %#v", sig)
	}

	for expr, expected := range map[string]int{
		"1e20":          math.MaxInt32,
		"-1e20":         math.MinInt32,
		`float("inf")`:  math.MaxInt32,
		`float("-inf")`: math.MinInt32,
		`float("nan")`:  0,
		"2147483647.5":  math.MaxInt32,
		"-2147483648":   math.MinInt32,
	} {
		sig := mustDispatch(t, r, Quit{Code: expr})
		if sig != (QuitSignal{Code: expected}) {
			t.Fatalf("%s: got %#v", expr, sig)
		}
	}
}

func TestQuitNonNumeric(t *testing.T) {
	r, _, _ := newTestRuntime("")
	_, err := r.Dispatch(Quit{Code: `"bye"`})
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ErrNonNumericExitCode) {
		t.Fatalf("got %v", err)
	}
	if fatal.Instruction.String() != `quit "bye"` {
		t.Fatalf("got %s", fatal.Instruction)
	}

	_, err = r.Dispatch(Quit{Code: `undefined`})
	if err == nil || IsFatal(err) {
		t.Fatalf("got %v", err)
	}
}

func TestReturn(t *testing.T) {
	r, _, _ := newTestRuntime("")
	if sig := mustDispatch(t, r, Return{}); sig != (ReturnSignal{}) {
		t.Fatalf("got %#v", sig)
	}
	sig := mustDispatch(t, r, Return{Value: `"v" * 2`})
	if sig != (ReturnSignal{Value: values.Text("vv")}) {
		t.Fatalf("got %#v", sig)
	}
}

func TestReturnEvaluationError(t *testing.T) {
	r, _, _ := newTestRuntime("")
	sig, err := r.Dispatch(Return{Value: "undefined"})
	if err == nil || IsFatal(err) {
		t.Fatalf("got %v", err)
	}
	if sig != nil {
		t.Fatalf("got %#v", sig)
	}
	var evalErr values.EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("got %v", err)
	}
}

func TestNilInstruction(t *testing.T) {
	r, vm, _ := newTestRuntime("")
	if _, err := r.Dispatch(nil); !errors.Is(err, ErrNilInstruction) {
		t.Fatalf("got %v", err)
	}

	// a guard without a nested instruction fails only when it fires
	if sig := mustDispatch(t, r, CmpEq{}); sig != nil {
		t.Fatalf("got %#v", sig)
	}
	vm.SetComparison(values.Equal)
	if _, err := r.Dispatch(CmpEq{}); !errors.Is(err, ErrNilInstruction) {
		t.Fatalf("got %v", err)
	}
	if s := (CmpMoreEq{}).String(); s != "cmpmoreeq" {
		t.Fatalf("got %s", s)
	}
}

func TestJump(t *testing.T) {
	r, _, _ := newTestRuntime("")
	sig := mustDispatch(t, r, Jump{Section: "other"})
	if sig != (JumpSignal{Section: "other"}) {
		t.Fatalf("got %#v", sig)
	}
}

func TestSectionScopedNames(t *testing.T) {
	r, vm, _ := newTestRuntime("")
	mustDispatch(t, r, DeclWV{Name: "x", Expr: "1"})
	vm.EnterSection("other")
	mustDispatch(t, r, DeclWV{Name: "x", Expr: "2"})
	if _, err := r.Dispatch(Move{Name: "x", Expr: "x * 10"}); err != nil {
		t.Fatal(err)
	}
	a, _ := vm.Lookup(scriptvm.QualifiedName(scriptvm.MainSection, "x"))
	b, _ := vm.Lookup(scriptvm.QualifiedName("other", "x"))
	if a != values.Number(1) || b != values.Number(20) {
		t.Fatalf("got %v %v", a, b)
	}
}

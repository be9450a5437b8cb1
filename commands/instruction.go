package commands

import (
	"fmt"
	"strings"

	"github.com/reusee/taiscript/scriptvm"
)

// Instruction is one parsed unit of program behavior.
// Operand expressions are kept as source text and evaluated on execution.
type Instruction interface {
	fmt.Stringer
	instruction()
}

type Move struct {
	Name string
	Expr string
}

type Clear struct {
	Name string
}

type Decl struct {
	Name string
}

// DeclWV declares a variable with an initial value.
type DeclWV struct {
	Name string
	Expr string
}

type Jump struct {
	Section scriptvm.Section
}

type Cmp struct {
	Left  string
	Right string
}

type CmpEq struct{ Then Instruction }
type CmpNEq struct{ Then Instruction }
type CmpLess struct{ Then Instruction }
type CmpLessEq struct{ Then Instruction }
type CmpMore struct{ Then Instruction }
type CmpMoreEq struct{ Then Instruction }

type Print struct {
	Args []string
}

type Println struct {
	Args []string
}

// Quit with an empty Code exits with 0.
type Quit struct {
	Code string
}

// Return with an empty Value returns nothing.
type Return struct {
	Value string
}

type Input struct {
	Name string
}

type InputUpper struct {
	Name string
}

func (Move) instruction()       {}
func (Clear) instruction()      {}
func (Decl) instruction()       {}
func (DeclWV) instruction()     {}
func (Jump) instruction()       {}
func (Cmp) instruction()        {}
func (CmpEq) instruction()      {}
func (CmpNEq) instruction()     {}
func (CmpLess) instruction()    {}
func (CmpLessEq) instruction()  {}
func (CmpMore) instruction()    {}
func (CmpMoreEq) instruction()  {}
func (Print) instruction()      {}
func (Println) instruction()    {}
func (Quit) instruction()       {}
func (Return) instruction()     {}
func (Input) instruction()      {}
func (InputUpper) instruction() {}

func (i Move) String() string   { return "move " + i.Name + ", " + i.Expr }
func (i Clear) String() string  { return "clear " + i.Name }
func (i Decl) String() string   { return "decl " + i.Name }
func (i DeclWV) String() string { return "declwv " + i.Name + ", " + i.Expr }
func (i Jump) String() string   { return "jump " + string(i.Section) }
func (i Cmp) String() string    { return "cmp " + i.Left + ", " + i.Right }

func (i CmpEq) String() string     { return guardString("cmpeq", i.Then) }
func (i CmpNEq) String() string    { return guardString("cmpneq", i.Then) }
func (i CmpLess) String() string   { return guardString("cmpless", i.Then) }
func (i CmpLessEq) String() string { return guardString("cmplesseq", i.Then) }
func (i CmpMore) String() string   { return guardString("cmpmore", i.Then) }
func (i CmpMoreEq) String() string { return guardString("cmpmoreeq", i.Then) }

func (i Print) String() string   { return withOperands("print", strings.Join(i.Args, ", ")) }
func (i Println) String() string { return withOperands("println", strings.Join(i.Args, ", ")) }
func (i Quit) String() string    { return withOperands("quit", i.Code) }
func (i Return) String() string  { return withOperands("return", i.Value) }

func (i Input) String() string      { return "input " + i.Name }
func (i InputUpper) String() string { return "inputupper " + i.Name }

func withOperands(keyword, operands string) string {
	if operands == "" {
		return keyword
	}
	return keyword + " " + operands
}

func guardString(keyword string, then Instruction) string {
	if then == nil {
		return keyword
	}
	return keyword + " " + then.String()
}

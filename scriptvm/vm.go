package scriptvm

import (
	"fmt"
	"iter"

	"github.com/reusee/dscope"
	"github.com/reusee/taiscript/logs"
	"github.com/reusee/taiscript/values"
)

// VM holds the interpreter state shared by all instructions of a run.
type VM struct {
	variables  map[string]*Variable
	order      []string
	section    Section
	comparison values.Ordering
	lastReturn values.Value
	logger     logs.Logger
}

var _ values.Scope = new(VM)

type Module struct {
	dscope.Module
}

type NewVM func() *VM

func (Module) NewVM(
	logger logs.Logger,
) NewVM {
	return func() *VM {
		return New(logger)
	}
}

func New(logger logs.Logger) *VM {
	return &VM{
		variables:  make(map[string]*Variable),
		section:    MainSection,
		comparison: values.NotEqual,
		logger:     logger,
	}
}

func (v *VM) CurrentSection() Section {
	return v.section
}

// EnterSection switches the section used to resolve names and returns the previous one.
func (v *VM) EnterSection(section Section) Section {
	prev := v.section
	v.section = section
	return prev
}

func (v *VM) DeclareVariable(variable Variable) error {
	name := variable.QualifiedName()
	if _, ok := v.variables[name]; ok {
		if v.logger != nil {
			v.logger.Debug("redeclare variable", "name", name)
		}
	} else {
		v.order = append(v.order, name)
	}
	v.variables[name] = &variable
	return nil
}

func (v *VM) ModifyVariable(qualifiedName string, value values.Value) error {
	variable, ok := v.variables[qualifiedName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUndefinedVariable, qualifiedName)
	}
	if variable.Permission != nil && !variable.Permission.CanWrite(v.section) {
		return fmt.Errorf("%w: write %s from section %s", ErrPermissionDenied, qualifiedName, v.section)
	}
	variable.Value = value
	return nil
}

func (v *VM) Lookup(qualifiedName string) (values.Value, bool) {
	variable, ok := v.variables[qualifiedName]
	if !ok {
		return nil, false
	}
	return variable.Value, true
}

func (v *VM) SetComparison(o values.Ordering) {
	v.comparison = o
}

func (v *VM) ComparisonIs(o values.Ordering) bool {
	return v.comparison == o
}

func (v *VM) Comparison() values.Ordering {
	return v.comparison
}

func (v *VM) SetLastReturn(value values.Value) {
	v.lastReturn = value
}

func (v *VM) LastReturn() values.Value {
	return v.lastReturn
}

// Visible yields the local names of the current section.
// The last returned value is exposed as "ret" unless a variable shadows it.
func (v *VM) Visible() iter.Seq2[string, values.Value] {
	return func(yield func(string, values.Value) bool) {
		if v.lastReturn != nil {
			if !yield("ret", v.lastReturn) {
				return
			}
		}
		for _, name := range v.order {
			variable := v.variables[name]
			if variable.Section != v.section {
				continue
			}
			if !yield(variable.Name, variable.Value) {
				return
			}
		}
	}
}

// Variables yields every declared variable in declaration order.
func (v *VM) Variables() iter.Seq[Variable] {
	return func(yield func(Variable) bool) {
		for _, name := range v.order {
			if !yield(*v.variables[name]) {
				return
			}
		}
	}
}

package commands

import (
	"github.com/reusee/e5"
	"github.com/reusee/taiscript/scriptvm"
	"github.com/reusee/taiscript/values"
)

func (r *Runtime) evaluate(inst Instruction, expr string) (values.Value, error) {
	value, err := r.Eval.Evaluate(expr, r.Machine)
	if err != nil {
		return nil, wrap.With(e5.Info("%s", inst))(err)
	}
	return value, nil
}

// assign overwrites name resolved in the current section.
func (r *Runtime) assign(inst Instruction, name string, value values.Value) error {
	qualified := scriptvm.QualifiedName(r.Machine.CurrentSection(), name)
	if err := r.Machine.ModifyVariable(qualified, value); err != nil {
		return wrap.With(e5.Info("%s", inst))(err)
	}
	return nil
}

func (r *Runtime) declare(inst Instruction, name string, value values.Value) error {
	variable := scriptvm.NewVariable(r.Machine.CurrentSection(), name, value)
	if err := r.Machine.DeclareVariable(variable); err != nil {
		return wrap.With(e5.Info("%s", inst))(err)
	}
	return nil
}

func (r *Runtime) move(inst Move) error {
	value, err := r.evaluate(inst, inst.Expr)
	if err != nil {
		return err
	}
	return r.assign(inst, inst.Name, value)
}

func (r *Runtime) clear(inst Clear) error {
	return r.assign(inst, inst.Name, values.Zero)
}

func (r *Runtime) decl(inst Decl) error {
	return r.declare(inst, inst.Name, values.Zero)
}

func (r *Runtime) declWV(inst DeclWV) error {
	// evaluated before the variable exists, so it cannot refer to itself
	value, err := r.evaluate(inst, inst.Expr)
	if err != nil {
		return err
	}
	return r.declare(inst, inst.Name, value)
}

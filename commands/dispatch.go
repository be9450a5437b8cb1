package commands

import (
	"errors"
	"fmt"
)

var ErrNilInstruction = errors.New("nil instruction")

// Dispatch executes exactly one instruction and returns its signal.
// Guards re-enter Dispatch for their nested instruction.
func (r *Runtime) Dispatch(inst Instruction) (Signal, error) {
	if inst == nil {
		return nil, ErrNilInstruction
	}
	r.Logger.Debug("dispatch",
		"instruction", inst,
		"section", r.Machine.CurrentSection(),
	)

	switch inst := inst.(type) {

	case Move:
		return nil, r.move(inst)
	case Clear:
		return nil, r.clear(inst)
	case Decl:
		return nil, r.decl(inst)
	case DeclWV:
		return nil, r.declWV(inst)

	case Cmp:
		return nil, r.cmp(inst)
	case CmpEq:
		return r.guard(inst, inst.Then)
	case CmpNEq:
		return r.guard(inst, inst.Then)
	case CmpLess:
		return r.guard(inst, inst.Then)
	case CmpLessEq:
		return r.guard(inst, inst.Then)
	case CmpMore:
		return r.guard(inst, inst.Then)
	case CmpMoreEq:
		return r.guard(inst, inst.Then)

	case Print:
		return nil, r.print(inst, inst.Args, false)
	case Println:
		return nil, r.print(inst, inst.Args, true)
	case Input:
		return nil, r.input(inst, inst.Name, false)
	case InputUpper:
		return nil, r.input(inst, inst.Name, true)

	case Quit:
		return r.quit(inst)
	case Return:
		return r.ret(inst)
	case Jump:
		return JumpSignal{
			Section: inst.Section,
		}, nil

	}

	return nil, fmt.Errorf("unknown instruction: %T", inst)
}

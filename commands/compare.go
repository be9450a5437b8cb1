package commands

import (
	"slices"

	"github.com/reusee/e5"
	"github.com/reusee/taiscript/values"
)

// Accepts reports the comparison outcomes that make guard fire.
func Accepts(guard Instruction) []values.Ordering {
	switch guard.(type) {
	case CmpEq:
		return []values.Ordering{values.Equal}
	case CmpNEq:
		return []values.Ordering{values.NotEqual}
	case CmpLess:
		return []values.Ordering{values.Less}
	case CmpLessEq:
		return []values.Ordering{values.Less, values.Equal}
	case CmpMore:
		return []values.Ordering{values.Greater}
	case CmpMoreEq:
		return []values.Ordering{values.Greater, values.Equal}
	}
	return nil
}

func (r *Runtime) cmp(inst Cmp) error {
	left, err := r.evaluate(inst, inst.Left)
	if err != nil {
		return err
	}
	right, err := r.evaluate(inst, inst.Right)
	if err != nil {
		return err
	}
	outcome, err := values.Compare(left, right)
	if err != nil {
		return wrap.With(e5.Info("%s", inst))(err)
	}
	r.Machine.SetComparison(outcome)
	return nil
}

// guard dispatches then when the comparison flag satisfies guard.
// The nested signal and error are passed through untouched.
func (r *Runtime) guard(guard Instruction, then Instruction) (Signal, error) {
	if !slices.ContainsFunc(Accepts(guard), r.Machine.ComparisonIs) {
		return nil, nil
	}
	return r.Dispatch(then)
}

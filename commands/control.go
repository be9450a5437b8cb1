package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/reusee/taiscript/values"
)

func (r *Runtime) quit(inst Quit) (Signal, error) {
	if strings.TrimSpace(inst.Code) == "" {
		return QuitSignal{Code: 0}, nil
	}
	value, err := r.evaluate(inst, inst.Code)
	if err != nil {
		return nil, err
	}
	n, ok := value.(values.Number)
	if !ok {
		return nil, &FatalError{
			Instruction: inst,
			Err:         fmt.Errorf("%w: %s", ErrNonNumericExitCode, value),
		}
	}
	return QuitSignal{
		Code: exitCode(float64(n)),
	}, nil
}

// exitCode truncates f toward zero, saturating at the int32 bounds. NaN gives 0.
func exitCode(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(math.Trunc(f))
}

func (r *Runtime) ret(inst Return) (Signal, error) {
	if strings.TrimSpace(inst.Value) == "" {
		return ReturnSignal{}, nil
	}
	value, err := r.evaluate(inst, inst.Value)
	if err != nil {
		return nil, err
	}
	return ReturnSignal{
		Value: value,
	}, nil
}

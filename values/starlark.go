package values

import (
	"fmt"
	"math"

	"go.starlark.net/starlark"
)

const maxExactInt = 1 << 53

// ToStarlark converts a value for use in expressions.
// Integral numbers become starlark ints so they can index and slice.
func ToStarlark(v Value) starlark.Value {
	switch v := v.(type) {
	case Number:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < maxExactInt {
			return starlark.MakeInt64(int64(f))
		}
		return starlark.Float(f)
	case Text:
		return starlark.String(v)
	}
	return starlark.None
}

func FromStarlark(v starlark.Value) (Value, error) {
	switch v := v.(type) {
	case starlark.Int:
		return Number(v.Float()), nil
	case starlark.Float:
		return Number(v), nil
	case starlark.String:
		return Text(v), nil
	case starlark.Bool:
		if v {
			return Number(1), nil
		}
		return Number(0), nil
	}
	return nil, fmt.Errorf("unsupported expression result of type %s: %s", v.Type(), v.String())
}

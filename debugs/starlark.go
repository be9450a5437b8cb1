package debugs

import (
	"bytes"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/taiscript/scriptvm"
	"github.com/reusee/taiscript/values"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// ReservedName is the global holding VM state. It hides a variable of the same name,
// which stays reachable through vm.sections.
const ReservedName = "vm"

// globals exposes the current section's variables by name, and under ReservedName:
//
//	vm.sections    dict of section name to dict of variables
//	vm.section     current section
//	vm.comparison  comparison flag
//	vm.dump()      YAML dump of all variables
func globals(vm *scriptvm.VM) (starlark.StringDict, error) {
	ret := make(starlark.StringDict)

	sections := starlark.NewDict(0)
	perSection := make(map[scriptvm.Section]*starlark.Dict)
	for variable := range vm.Variables() {
		dict, ok := perSection[variable.Section]
		if !ok {
			dict = starlark.NewDict(0)
			perSection[variable.Section] = dict
			if err := sections.SetKey(starlark.String(variable.Section), dict); err != nil {
				return nil, err
			}
		}
		if err := dict.SetKey(starlark.String(variable.Name), values.ToStarlark(variable.Value)); err != nil {
			return nil, err
		}
	}

	for name, value := range vm.Visible() {
		ret[name] = values.ToStarlark(value)
	}

	ret[ReservedName] = &starlarkstruct.Module{
		Name: ReservedName,
		Members: starlark.StringDict{
			"sections":   sections,
			"section":    starlark.String(vm.CurrentSection()),
			"comparison": starlark.String(vm.Comparison().String()),
			"dump": starlarkutil.MakeFunc("dump", func() string {
				buf := new(bytes.Buffer)
				if err := vm.Dump(buf); err != nil {
					return err.Error()
				}
				return buf.String()
			}),
		},
	}

	return ret, nil
}

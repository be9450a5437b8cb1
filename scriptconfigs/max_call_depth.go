package scriptconfigs

import (
	"github.com/reusee/taiscript/cmds"
	"github.com/reusee/taiscript/configs"
)

// MaxCallDepth bounds nested jumps.
type MaxCallDepth int

const DefaultMaxCallDepth = 256

var maxDepthFlag = cmds.Var[int]("-max-depth")

// MaxCallDepth takes the flag when given, otherwise the smallest configured value.
// Invalid config files panic; check configs.Loader.Err first.
func (Module) MaxCallDepth(
	loader configs.Loader,
) MaxCallDepth {
	if *maxDepthFlag > 0 {
		return MaxCallDepth(*maxDepthFlag)
	}
	depth := 0
	for n, err := range configs.All[int](loader, "max_call_depth") {
		if err != nil {
			panic(err)
		}
		if depth == 0 || n < depth {
			depth = n
		}
	}
	if depth == 0 {
		depth = DefaultMaxCallDepth
	}
	return MaxCallDepth(depth)
}

package commands

import (
	"github.com/reusee/taiscript/scriptvm"
	"github.com/reusee/taiscript/values"
)

// Signal is the out-of-band result of an instruction.
// A nil Signal means continue with the next instruction.
type Signal interface {
	signal()
}

type QuitSignal struct {
	Code int
}

// ReturnSignal carries the optional value of a return instruction; Value is nil when absent.
type ReturnSignal struct {
	Value values.Value
}

type JumpSignal struct {
	Section scriptvm.Section
}

func (QuitSignal) signal()   {}
func (ReturnSignal) signal() {}
func (JumpSignal) signal()   {}

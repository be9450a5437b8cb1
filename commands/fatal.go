package commands

import (
	"errors"
	"fmt"
)

// FatalError reports a condition with no recovery policy.
// It must abort the whole run rather than be handled like other errors.
type FatalError struct {
	Instruction Instruction
	Err         error
}

func (f *FatalError) Error() string {
	return fmt.Sprintf("fatal: %s: %v", f.Instruction, f.Err)
}

func (f *FatalError) Unwrap() error {
	return f.Err
}

func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

var (
	ErrNonNumericExitCode = errors.New("exit code is not a number")
	ErrReadInput          = errors.New("read standard input")
)

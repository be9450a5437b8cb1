package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/e5"
	"github.com/reusee/taiscript/values"
)

// print writes each argument right after evaluating it.
func (r *Runtime) print(inst Instruction, args []string, newline bool) error {
	for _, arg := range args {
		value, err := r.evaluate(inst, arg)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(r.Stdout, value.String()); err != nil {
			return wrap.With(e5.Info("%s", inst))(err)
		}
	}
	if newline {
		if _, err := io.WriteString(r.Stdout, "\n"); err != nil {
			return wrap.With(e5.Info("%s", inst))(err)
		}
	}
	return nil
}

func (r *Runtime) input(inst Instruction, name string, upper bool) error {
	line, err := r.Stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return &FatalError{
			Instruction: inst,
			Err:         fmt.Errorf("%w: %w", ErrReadInput, err),
		}
	}
	line = strings.TrimSpace(line)
	if upper {
		line = strings.ToUpper(line)
	}
	return r.assign(inst, name, values.Text(line))
}

package programs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reusee/taiscript/commands"
	"github.com/reusee/taiscript/logs"
	"github.com/reusee/taiscript/scriptvm"
)

// Runner is the execution loop of a program.
type Runner struct {
	Program  *Program
	VM       *scriptvm.VM
	Runtime  *commands.Runtime
	Entry    scriptvm.Section
	MaxDepth int
	// OnError decides whether a recoverable error stops the run.
	// Returning true skips the failed instruction. Fatal errors always stop.
	OnError func(err error) bool
	Logger  logs.Logger
	NewSpan logs.NewSpan
}

type frame struct {
	section scriptvm.Section
	ip      int
}

// Run executes from the entry section until the program quits, returns from
// the entry section, or fails. code is the exit status requested by quit.
func (r *Runner) Run(ctx context.Context) (code int, err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	entry := r.Entry
	if entry == "" {
		entry = scriptvm.MainSection
	}
	if r.NewSpan != nil {
		ctx, _ = r.NewSpan(ctx, "", string(entry))
	}
	defer func() {
		err = logs.WrapSpan(ctx, err)
	}()

	if !r.Program.HasSection(entry) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSection, entry)
	}
	frames := []frame{{section: entry}}
	r.VM.EnterSection(entry)

	// pop leaves the current section; it reports whether the entry frame returned
	pop := func(sig commands.ReturnSignal) bool {
		frames = frames[:len(frames)-1]
		r.VM.SetLastReturn(sig.Value)
		if len(frames) == 0 {
			return true
		}
		caller := frames[len(frames)-1].section
		r.VM.EnterSection(caller)
		logger.DebugContext(ctx, "return",
			"to", caller,
			"depth", len(frames),
		)
		return false
	}

	for len(frames) > 0 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		top := &frames[len(frames)-1]
		insts := r.Program.Sections[top.section]
		if top.ip >= len(insts) {
			// falling off the end returns
			if pop(commands.ReturnSignal{}) {
				return 0, nil
			}
			continue
		}
		inst := insts[top.ip]
		top.ip++

		sig, err := r.Runtime.Dispatch(inst)
		if err != nil {
			if commands.IsFatal(err) {
				logger.ErrorContext(ctx, "fatal", "error", err)
				return 0, err
			}
			if r.OnError != nil && r.OnError(err) {
				logger.WarnContext(ctx, "instruction failed",
					"instruction", inst.String(),
					"error", err,
				)
				continue
			}
			return 0, err
		}

		switch sig := sig.(type) {

		case nil:

		case commands.QuitSignal:
			logger.DebugContext(ctx, "quit", "code", sig.Code)
			return sig.Code, nil

		case commands.ReturnSignal:
			if pop(sig) {
				return 0, nil
			}

		case commands.JumpSignal:
			if err := r.jump(sig.Section, len(frames)); err != nil {
				if r.OnError != nil && r.OnError(err) {
					continue
				}
				return 0, err
			}
			frames = append(frames, frame{section: sig.Section})
			r.VM.EnterSection(sig.Section)
			logger.DebugContext(ctx, "jump",
				"to", sig.Section,
				"depth", len(frames),
			)

		}
	}

	return 0, nil
}

func (r *Runner) jump(section scriptvm.Section, depth int) error {
	if !r.Program.HasSection(section) {
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	if r.MaxDepth > 0 && depth >= r.MaxDepth {
		return fmt.Errorf("%w: %d", ErrCallDepth, r.MaxDepth)
	}
	return nil
}

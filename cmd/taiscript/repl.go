package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/taiscript/commands"
	"github.com/reusee/taiscript/logs"
	"github.com/reusee/taiscript/parser"
	"github.com/reusee/taiscript/scriptvm"
	"github.com/reusee/taiscript/values"
)

// lineReader feeds input instructions from readline, which owns the terminal.
type lineReader struct {
	rl  *readline.Instance
	buf []byte
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(l.buf) == 0 {
		prompt := l.rl.Config.Prompt
		l.rl.SetPrompt("")
		line, err := l.rl.Readline()
		l.rl.SetPrompt(prompt)
		if err != nil {
			return 0, err
		}
		l.buf = append([]byte(line), '\n')
	}
	n := copy(p, l.buf)
	l.buf = l.buf[n:]
	return n, nil
}

func runREPL(ctx context.Context, vm *scriptvm.VM, eval *values.Evaluator, logger logs.Logger) int {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".taiscript_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt(vm),
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer rl.Close()

	runtime := commands.NewRuntime(vm, eval, &lineReader{rl: rl}, os.Stdout, logger)

	for ctx.Err() == nil {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}

		if section, ok, err := parser.SectionHeader(line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		} else if ok {
			vm.EnterSection(section)
			rl.SetPrompt(prompt(vm))
			continue
		}

		inst, err := parser.ParseLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if inst == nil {
			continue
		}

		sig, err := runtime.Dispatch(inst)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			if commands.IsFatal(err) {
				return 1
			}
			continue
		}

		switch sig := sig.(type) {
		case commands.QuitSignal:
			return sig.Code
		case commands.ReturnSignal:
			if sig.Value != nil {
				vm.SetLastReturn(sig.Value)
				fmt.Println(sig.Value)
			}
		case commands.JumpSignal:
			fmt.Fprintf(os.Stderr, "error: jump to %s: sections are not defined in the REPL\n", sig.Section)
		}
	}

	return 0
}

func prompt(vm *scriptvm.VM) string {
	return string(vm.CurrentSection()) + "> "
}

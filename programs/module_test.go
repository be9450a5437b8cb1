package programs_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taiscript/commands"
	"github.com/reusee/taiscript/logs"
	"github.com/reusee/taiscript/modes"
	"github.com/reusee/taiscript/parser"
	"github.com/reusee/taiscript/programs"
	"github.com/reusee/taiscript/scriptconfigs"
	"github.com/reusee/taiscript/values"
)

func TestModule(t *testing.T) {
	out := new(bytes.Buffer)
	logBuf := new(bytes.Buffer)
	dscope.New(
		new(programs.Module),
		modes.ForTest(t),
	).Fork(
		func() scriptconfigs.ConfigPaths {
			return nil
		},
		func() values.Output {
			return out
		},
		func() commands.Stdin {
			return strings.NewReader("bob\n")
		},
		func() logs.Writer {
			return logBuf
		},
	).Call(func(
		newRunner programs.NewRunner,
	) {
		program, err := parser.Parse("module.tsc", strings.NewReader(`
decl name
input name
println "hi ", name
quit 3
`))
		if err != nil {
			t.Fatal(err)
		}
		runner := newRunner(program)
		if runner.MaxDepth != scriptconfigs.DefaultMaxCallDepth {
			t.Fatalf("got %v", runner.MaxDepth)
		}
		code, err := runner.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if code != 3 {
			t.Fatalf("got %v", code)
		}
		if out.String() != "hi bob\n" {
			t.Fatalf("got %q", out.String())
		}
	})
}

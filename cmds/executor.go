package cmds

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/taiscript/vars"
)

type Executor struct {
	commands map[string]*Command
	// Positional receives arguments that name no command.
	// When nil, such arguments are errors.
	Positional func(arg string) error
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() error {
		ret.PrintUsage()
		return ErrUsagePrinted
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	for _, alias := range command.Aliases {
		if _, ok := p.commands[alias]; ok {
			panic(fmt.Errorf("duplicated command %s", alias))
		}
		p.commands[alias] = command
	}
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := p.commands[name]
		if !ok {
			if p.Positional != nil && !strings.HasPrefix(name, "-") {
				if err := p.Positional(name); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("unknown command: %s", name)
		}

		var callArgs []reflect.Value
		for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
			value, err := getArg(command.Func.Type().In(i), args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if len(args) > 0 {
				args = args[1:]
			}
			callArgs = append(callArgs, value)
		}
		rets := command.Func.Call(callArgs)
		if len(rets) > 0 && !rets[0].IsNil() {
			return rets[0].Interface().(error)
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {
		return ret, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}

package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/taiscript/commands"
	"github.com/reusee/taiscript/programs"
	"github.com/reusee/taiscript/scriptvm"
)

// Parse reads a program. Instructions before the first section header belong to the main section.
// The main section always exists, even when the source declares nothing.
func Parse(name string, r io.Reader) (*programs.Program, error) {
	program := programs.NewProgram()
	section := scriptvm.MainSection
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := scanner.Text()
		pos := Pos{
			Source: name,
			Line:   lineNum,
			Column: indexNonSpace(text) + 1,
		}
		withPos := func(err error) error {
			return PosError{
				Err:  err,
				Pos:  pos,
				Text: text,
			}
		}

		line, err := stripComment(text)
		if err != nil {
			return nil, withPos(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if s, ok, err := SectionHeader(line); err != nil {
			return nil, withPos(err)
		} else if ok {
			if !program.AddSection(s) {
				return nil, withPos(fmt.Errorf("%w: %s", ErrDuplicateSection, s))
			}
			section = s
			continue
		}

		inst, err := parseInstruction(line)
		if err != nil {
			return nil, withPos(err)
		}
		program.Append(section, inst)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// an empty main still runs
	program.AddSection(scriptvm.MainSection)
	return program, nil
}

// SectionHeader recognizes "section NAME", with an optional trailing colon.
func SectionHeader(line string) (scriptvm.Section, bool, error) {
	keyword, rest := splitKeyword(line)
	if keyword != "section" {
		return "", false, nil
	}
	name := strings.TrimSuffix(rest, ":")
	if err := checkName(name); err != nil {
		return "", false, err
	}
	return scriptvm.Section(name), true, nil
}

// ParseLine parses a single instruction. Blank and comment-only lines give nil.
func ParseLine(line string) (commands.Instruction, error) {
	line, err := stripComment(line)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	return parseInstruction(line)
}

func parseInstruction(text string) (commands.Instruction, error) {
	keyword, rest := splitKeyword(text)

	// guards wrap the rest of the line
	wrapGuard := func(fn func(commands.Instruction) commands.Instruction) (commands.Instruction, error) {
		if rest == "" {
			return nil, fmt.Errorf("%w: %s expects an instruction", ErrOperandCount, keyword)
		}
		then, err := parseInstruction(rest)
		if err != nil {
			return nil, err
		}
		return fn(then), nil
	}
	switch keyword {
	case "cmpeq":
		return wrapGuard(func(i commands.Instruction) commands.Instruction { return commands.CmpEq{Then: i} })
	case "cmpneq":
		return wrapGuard(func(i commands.Instruction) commands.Instruction { return commands.CmpNEq{Then: i} })
	case "cmpless":
		return wrapGuard(func(i commands.Instruction) commands.Instruction { return commands.CmpLess{Then: i} })
	case "cmplesseq":
		return wrapGuard(func(i commands.Instruction) commands.Instruction { return commands.CmpLessEq{Then: i} })
	case "cmpmore":
		return wrapGuard(func(i commands.Instruction) commands.Instruction { return commands.CmpMore{Then: i} })
	case "cmpmoreeq":
		return wrapGuard(func(i commands.Instruction) commands.Instruction { return commands.CmpMoreEq{Then: i} })
	}

	operands, err := splitOperands(rest)
	if err != nil {
		return nil, err
	}
	expect := func(n int) error {
		if len(operands) != n {
			return fmt.Errorf("%w: %s expects %d, got %d", ErrOperandCount, keyword, n, len(operands))
		}
		return nil
	}
	atMostOne := func() (string, error) {
		if len(operands) > 1 {
			return "", fmt.Errorf("%w: %s expects at most 1, got %d", ErrOperandCount, keyword, len(operands))
		}
		if len(operands) == 0 {
			return "", nil
		}
		return operands[0], nil
	}
	name := func() (string, error) {
		if err := expect(1); err != nil {
			return "", err
		}
		return operands[0], checkName(operands[0])
	}
	nameAndExpr := func() (string, string, error) {
		if err := expect(2); err != nil {
			return "", "", err
		}
		return operands[0], operands[1], checkName(operands[0])
	}

	switch keyword {

	case "move":
		n, expr, err := nameAndExpr()
		if err != nil {
			return nil, err
		}
		return commands.Move{Name: n, Expr: expr}, nil

	case "declwv":
		n, expr, err := nameAndExpr()
		if err != nil {
			return nil, err
		}
		return commands.DeclWV{Name: n, Expr: expr}, nil

	case "clear":
		n, err := name()
		if err != nil {
			return nil, err
		}
		return commands.Clear{Name: n}, nil

	case "decl":
		n, err := name()
		if err != nil {
			return nil, err
		}
		return commands.Decl{Name: n}, nil

	case "input":
		n, err := name()
		if err != nil {
			return nil, err
		}
		return commands.Input{Name: n}, nil

	case "inputupper", "inputu":
		n, err := name()
		if err != nil {
			return nil, err
		}
		return commands.InputUpper{Name: n}, nil

	case "jump":
		n, err := name()
		if err != nil {
			return nil, err
		}
		return commands.Jump{Section: scriptvm.Section(n)}, nil

	case "cmp":
		if err := expect(2); err != nil {
			return nil, err
		}
		return commands.Cmp{Left: operands[0], Right: operands[1]}, nil

	case "print":
		return commands.Print{Args: operands}, nil

	case "println":
		return commands.Println{Args: operands}, nil

	case "quit":
		code, err := atMostOne()
		if err != nil {
			return nil, err
		}
		return commands.Quit{Code: code}, nil

	case "return":
		value, err := atMostOne()
		if err != nil {
			return nil, err
		}
		return commands.Return{Value: value}, nil

	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKeyword, keyword)
}

func indexNonSpace(s string) int {
	for i, r := range s {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return 0
}

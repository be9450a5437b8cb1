package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownKeyword     = errors.New("unknown keyword")
	ErrOperandCount       = errors.New("wrong number of operands")
	ErrInvalidName        = errors.New("invalid name")
	ErrEmptyOperand       = errors.New("empty operand")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnbalanced         = errors.New("unbalanced brackets")
	ErrDuplicateSection   = errors.New("duplicate section")
)

type Pos struct {
	Source string
	Line   int
	Column int
}

type PosError struct {
	Err  error
	Pos  Pos
	Text string
}

func (p PosError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d", p.Err.Error(), p.Pos.Source, p.Pos.Line, p.Pos.Column)
	if p.Text != "" {
		sb.WriteString("\n")
		sb.WriteString(p.Text)
		sb.WriteString("\n")
		for i, r := range p.Text {
			if i >= p.Pos.Column-1 {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^")
	}
	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// stripComment removes a # comment that is not inside a string literal.
func stripComment(line string) (string, error) {
	var quote rune
	escaped := false
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case quote != 0 && r == '\\':
			escaped = true
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
		case r == '"' || r == '\'':
			quote = r
		case r == '#':
			return line[:i], nil
		}
	}
	if quote != 0 {
		return "", ErrUnterminatedString
	}
	return line, nil
}

// splitOperands splits text at commas outside strings and brackets.
func splitOperands(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var ret []string
	var quote rune
	escaped := false
	depth := 0
	start := 0
	for i, r := range text {
		switch {
		case escaped:
			escaped = false
		case quote != 0 && r == '\\':
			escaped = true
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[' || r == '{':
			depth++
		case r == ')' || r == ']' || r == '}':
			depth--
			if depth < 0 {
				return nil, ErrUnbalanced
			}
		case r == ',' && depth == 0:
			operand := strings.TrimSpace(text[start:i])
			if operand == "" {
				return nil, ErrEmptyOperand
			}
			ret = append(ret, operand)
			start = i + 1
		}
	}
	if quote != 0 {
		return nil, ErrUnterminatedString
	}
	if depth != 0 {
		return nil, ErrUnbalanced
	}
	operand := strings.TrimSpace(text[start:])
	if operand == "" {
		return nil, ErrEmptyOperand
	}
	return append(ret, operand), nil
}

func splitKeyword(text string) (keyword, rest string) {
	text = strings.TrimSpace(text)
	idx := strings.IndexFunc(text, unicode.IsSpace)
	if idx < 0 {
		return strings.ToLower(text), ""
	}
	return strings.ToLower(text[:idx]), strings.TrimSpace(text[idx:])
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

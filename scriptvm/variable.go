package scriptvm

import "github.com/reusee/taiscript/values"

type Variable struct {
	Section    Section
	Name       string
	Value      values.Value
	Permission Permission
}

func NewVariable(section Section, name string, value values.Value) Variable {
	return Variable{
		Section:    section,
		Name:       name,
		Value:      value,
		Permission: ReadWrite{Section: section},
	}
}

func (v Variable) QualifiedName() string {
	return QualifiedName(v.Section, v.Name)
}

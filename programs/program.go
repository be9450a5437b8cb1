package programs

import (
	"github.com/reusee/taiscript/commands"
	"github.com/reusee/taiscript/scriptvm"
)

// Program is a set of named sections of instructions.
type Program struct {
	Sections map[scriptvm.Section][]commands.Instruction
	// Order lists sections as they were declared. A main section added without a header comes last.
	Order []scriptvm.Section
}

func NewProgram() *Program {
	return &Program{
		Sections: make(map[scriptvm.Section][]commands.Instruction),
	}
}

func (p *Program) AddSection(section scriptvm.Section) bool {
	if _, ok := p.Sections[section]; ok {
		return false
	}
	p.Sections[section] = nil
	p.Order = append(p.Order, section)
	return true
}

func (p *Program) Append(section scriptvm.Section, insts ...commands.Instruction) {
	p.AddSection(section)
	p.Sections[section] = append(p.Sections[section], insts...)
}

func (p *Program) HasSection(section scriptvm.Section) bool {
	_, ok := p.Sections[section]
	return ok
}

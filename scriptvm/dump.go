package scriptvm

import (
	"io"

	"github.com/reusee/taiscript/values"
	"gopkg.in/yaml.v3"
)

type dumpFile struct {
	Section    string         `yaml:"section"`
	Comparison string         `yaml:"comparison"`
	Variables  []dumpVariable `yaml:"variables"`
}

type dumpVariable struct {
	Section string `yaml:"section"`
	Name    string `yaml:"name"`
	Value   any    `yaml:"value"`
}

// Dump writes the variable table as YAML.
func (v *VM) Dump(w io.Writer) error {
	file := dumpFile{
		Section:    string(v.section),
		Comparison: v.comparison.String(),
	}
	for variable := range v.Variables() {
		file.Variables = append(file.Variables, dumpVariable{
			Section: string(variable.Section),
			Name:    variable.Name,
			Value:   plain(variable.Value),
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return err
	}
	return enc.Close()
}

func plain(value values.Value) any {
	switch value := value.(type) {
	case values.Number:
		return float64(value)
	case values.Text:
		return string(value)
	}
	return nil
}

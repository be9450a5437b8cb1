package scriptvm

// Section qualifies variable names and is the subject of write permissions.
type Section string

const MainSection Section = "main"

const nameSeparator = "::"

func QualifiedName(section Section, name string) string {
	return string(section) + nameSeparator + name
}

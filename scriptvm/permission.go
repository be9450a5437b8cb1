package scriptvm

type Permission interface {
	CanWrite(from Section) bool
}

// ReadWrite grants read and write access to code running in Section.
type ReadWrite struct {
	Section Section
}

var _ Permission = ReadWrite{}

func (r ReadWrite) CanWrite(from Section) bool {
	return from == r.Section
}

package values

import "fmt"

// Ordering is the outcome of a comparison.
type Ordering uint8

const (
	NotEqual Ordering = iota
	Equal
	Less
	Greater
)

func (o Ordering) String() string {
	switch o {
	case NotEqual:
		return "NotEqual"
	case Equal:
		return "Equal"
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	}
	return fmt.Sprintf("Ordering(%d)", uint8(o))
}

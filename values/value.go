package values

import (
	"math"
	"strconv"
)

// Value is the runtime datum of a script. It is either a Number or a Text.
type Value interface {
	String() string
	isValue()
}

type Number float64

var _ Value = Number(0)

func (Number) isValue() {}

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type Text string

var _ Value = Text("")

func (Text) isValue() {}

func (t Text) String() string {
	return string(t)
}

// Zero is the value of freshly declared or cleared variables.
var Zero Value = Number(0)

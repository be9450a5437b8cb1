package values

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrIncomparable = errors.New("incomparable values")

// Compare orders two values of the same kind.
// Numbers involving NaN are NotEqual; mixed kinds fail with ErrIncomparable.
func Compare(a, b Value) (Ordering, error) {
	switch a := a.(type) {

	case Number:
		b, ok := b.(Number)
		if !ok {
			break
		}
		if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
			return NotEqual, nil
		}
		switch {
		case a < b:
			return Less, nil
		case a > b:
			return Greater, nil
		}
		return Equal, nil

	case Text:
		b, ok := b.(Text)
		if !ok {
			break
		}
		switch strings.Compare(string(a), string(b)) {
		case -1:
			return Less, nil
		case 1:
			return Greater, nil
		}
		return Equal, nil

	}

	return NotEqual, fmt.Errorf("%w: %s and %s", ErrIncomparable, kindOf(a), kindOf(b))
}

func kindOf(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Text:
		return "text"
	case nil:
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

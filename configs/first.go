package configs

import (
	"errors"
	"iter"
)

// First returns the value at path in the first file defining it, or the zero value.
func First[T any](loader Loader, path string) (ret T, err error) {
	if err := loader.AssignFirst(path, &ret); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return ret, nil
		}
		return ret, err
	}
	return ret, nil
}

// All yields the value at path from every file defining it.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err != nil {
				yield(v, err)
				return
			}
			if err := value.Decode(&v); err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

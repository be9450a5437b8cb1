package cmds

// Var defines a flag taking one argument. "name." resets it to zero.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines name to set and !name to unset a boolean.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

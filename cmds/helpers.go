package cmds

// Var defines `name <value>` to set the returned variable, and `name.` to reset it.
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

// Switch defines `name` to set the returned flag and `!name` to clear it.
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

package a

// TODO(alice): cache the result
func compute() int {
	// TODO: handle overflow // want `\[LK1016 info\] TODO without owner; use TODO\(username\): description`
	x := 1

	// FIXME(bob) // want `FIXME without description`
	return x
}

//nolint:todotracker
// TODO make it go away
func legacy() {}

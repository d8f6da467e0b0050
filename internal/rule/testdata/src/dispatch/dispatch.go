package dispatch // want `4 functions seen`

func one(x int) int { // want `one returns from 2 places`
	if x > 0 {
		return 1
	}
	return 0
}

func two() int {
	boom()
	return 2
}

//nolint:dispatchtest
func three(x int) int {
	if x > 0 {
		return 1
	}
	return 0
}

func boom() {}

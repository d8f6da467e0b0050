package a

import "errors"

func short() int {
	return 1
}

func long(xs []int) (int, error) { // want `\[LK1015 minor\] function long is 11 lines \(max 6\); split into smaller, focused functions`
	total := 0
	for _, x := range xs {
		total += x
	}
	if total < 0 {
		return 0, errors.New("negative")
	}
	total *= 2
	return total, nil
}

func deep(xs []int) int { // want `function deep is 14 lines \(max 6\); reduce nesting with early returns`
	n := 0
	for _, x := range xs {
		if x > 0 {
			switch {
			case x > 10:
				if x > 100 {
					n++
				}
			}
		}
	}
	return n
}

// Setup functions may be half as long again.
func SetupThings() []int {
	xs := []int{}
	xs = append(xs, 1)
	xs = append(xs, 2)
	xs = append(xs, 3)
	xs = append(xs, 4)
	xs = append(xs, 5)
	return xs
}

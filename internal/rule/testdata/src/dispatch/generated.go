// Code generated by hand for tests. DO NOT EDIT.

package dispatch

func generated(x int) int {
	if x > 0 {
		return 1
	}
	return 0
}

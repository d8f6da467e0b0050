package a

const (
	first  = "constant"
	second = "constant"
	third  = "constant"
)

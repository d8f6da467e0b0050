package a

import "context"

type Store struct{}

func few(a, b int, c string) {}

func many(ctx context.Context, a, b, c int, d, e string, f bool, g []byte) {} // want `\[LK1014 major\] function many has 8 parameters \(max 7\); group related parameters into a struct`

func (s *Store) seven(a, b, c, d, e, f, g int) {}

func unnamed(int, int, int, int, int, int, int, int) {} // want `function unnamed has 8 parameters`

var handler = func(a, b, c, d, e, f, g, h int) {} // want `function literal has 8 parameters`

//nolint:paramcount
func legacy(a, b, c, d, e, f, g, h, i int) {}

package noexit

import (
	"fmt"
	"os"
)

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1) // want `\[LK9001 major\] os.Exit is banned; return an error instead`
}

package a

import (
	"errors"
	"fmt"
)

const kind = "widget"

type Item struct {
	Name string `json:"name,omitempty"`
	Kind string `json:"name,omitempty"`
}

func describe(i Item) string {
	if i.Kind == "gadget" { // want `\[LK1013 minor\] string "gadget" is duplicated 3 times; define a constant`
		return fmt.Sprintf("%s is a gadget", i.Name)
	}
	switch i.Kind {
	case "gadget", kind:
		return "known"
	}
	return "gadget"
}

func validate(i Item) error {
	if i.Name == "" {
		return errors.New("bad")
	}
	if i.Kind == "" {
		return errors.New("bad")
	}
	return errors.New("bad")
}

func twice() []string {
	return []string{"twice", "twice"}
}

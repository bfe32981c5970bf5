package cmds

import (
	"fmt"
	"strings"
)

func Var[T any](name string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(fmt.Sprintf("set %s", strings.TrimLeft(name, "-"))))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc(fmt.Sprintf("reset %s", strings.TrimLeft(name, "-"))))

	return &value
}

func Switch(name string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(fmt.Sprintf("enable %s", strings.TrimLeft(name, "-"))))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Desc(fmt.Sprintf("disable %s", strings.TrimLeft(name, "-"))))

	return &value
}

func Collect[T any](name string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(fmt.Sprintf("add to %s", strings.TrimLeft(name, "-"))))
	return &value
}

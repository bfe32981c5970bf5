package configs

import (
	"errors"
)

// First decodes the first value at path, or returns the zero value if there is none.
// Other errors panic.
func First[T any](loader Loader, path string) T {
	value, _, err := Lookup[T](loader, path)
	if err != nil {
		panic(err)
	}
	return value
}

// Lookup decodes the first value at path and reports whether one was found.
func Lookup[T any](loader Loader, path string) (value T, ok bool, err error) {
	if err = loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, false, nil
		}
		return value, false, err
	}
	return value, true, nil
}

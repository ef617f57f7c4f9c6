package configs

import "errors"

// First decodes the value at path from the first config file defining it.
// An undefined path gives the zero value; any other error panics.
func First[T any](loader Loader, path string) (value T) {
	err := loader.AssignFirst(path, &value)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return
}

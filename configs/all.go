package configs

import (
	"fmt"
	"iter"
)

// All decodes the value at path from every config file defining it, in load order.
// Iteration ends after the first error.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err == nil {
				err = value.Decode(&v)
			}
			if err != nil {
				yield(v, fmt.Errorf("%s: %w", path, err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

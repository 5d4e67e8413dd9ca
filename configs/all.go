package configs

import "iter"

// All decodes the value at path from every file that defines it, in load order.
// A load or decode error is yielded once and ends the sequence.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				yield(zero, err)
				return
			}
			var v T
			if err := value.Decode(&v); err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

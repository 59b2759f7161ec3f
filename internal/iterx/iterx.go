package iterx

import (
	"iter"
)

// FromSlice yields the elements of in, reading in[i] at the moment it is
// yielded.
func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range in {
			if !yield(in[i]) {
				break
			}
		}
	}
}

// Collect drains seq into a slice. The result is never nil.
func Collect[T any](seq iter.Seq[T]) []T {
	out := make([]T, 0)
	if seq == nil {
		return out
	}
	for item := range seq {
		out = append(out, item)
	}
	return out
}

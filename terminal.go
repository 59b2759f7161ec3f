package stream

import (
	"cmp"
	"iter"
	"slices"

	"github.com/KasperOmsK/stream/internal/iterx"
	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/types"
)

// All reports whether every value satisfies predicate. It stops at the first
// value that does not, and returns true for an empty stream.
func (s *Stream[T]) All(predicate Predicate[T]) bool {
	for _, item := range s.elements {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Any reports whether at least one value satisfies predicate. It stops at
// the first match, and returns false for an empty stream.
func (s *Stream[T]) Any(predicate Predicate[T]) bool {
	for _, item := range s.elements {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Count returns the number of values.
func (s *Stream[T]) Count() int {
	return len(s.elements)
}

// FindFirst returns the first value that satisfies predicate, or an empty
// optional when there is none.
func (s *Stream[T]) FindFirst(predicate Predicate[T]) optional.Value[T] {
	for _, item := range s.elements {
		if predicate(item) {
			return optional.Of(item)
		}
	}
	return optional.Empty[T]()
}

// ForEach calls fn for every value, in order.
func (s *Stream[T]) ForEach(fn func(T)) {
	for _, item := range s.elements {
		fn(item)
	}
}

// TryForEach calls fn for every value, in order, and stops at the first
// error, which is returned as is.
func (s *Stream[T]) TryForEach(fn func(T) error) error {
	for _, item := range s.elements {
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}

// ToList returns the values as a new slice. Modifying the result does not
// affect the stream.
func (s *Stream[T]) ToList() []T {
	out := make([]T, len(s.elements))
	copy(out, s.elements)
	return out
}

// Values returns an iterator over the current values.
//
// The iterator reads the stream's storage directly; do not run intermediate
// operations on s while ranging over it.
func (s *Stream[T]) Values() iter.Seq[T] {
	return iterx.FromSlice(s.elements)
}

// MaxFunc returns the greatest value as determined by compare, or an empty
// optional for an empty stream. When several values are greatest, the first
// one is returned.
func (s *Stream[T]) MaxFunc(compare func(a, b T) int) optional.Value[T] {
	return s.extreme(func(candidate, best T) bool {
		return compare(candidate, best) > 0
	})
}

// MinFunc returns the smallest value as determined by compare, or an empty
// optional for an empty stream. When several values are smallest, the first
// one is returned.
func (s *Stream[T]) MinFunc(compare func(a, b T) int) optional.Value[T] {
	return s.extreme(func(candidate, best T) bool {
		return compare(candidate, best) < 0
	})
}

// extreme scans once, replacing the best value only when better strictly wins.
func (s *Stream[T]) extreme(better func(candidate, best T) bool) optional.Value[T] {
	if len(s.elements) == 0 {
		return optional.Empty[T]()
	}
	best := s.elements[0]
	for _, item := range s.elements[1:] {
		if better(item, best) {
			best = item
		}
	}
	return optional.Of(best)
}

// Max returns the greatest value of s, or an empty optional for an empty
// stream. Values are compared with [cmp.Compare], so a NaN is smaller than
// any other float.
func Max[T types.Ordered](s *Stream[T]) optional.Value[T] {
	return s.MaxFunc(cmp.Compare[T])
}

// Min returns the smallest value of s, or an empty optional for an empty
// stream. Values are compared with [cmp.Compare], so a NaN is smaller than
// any other float.
func Min[T types.Ordered](s *Stream[T]) optional.Value[T] {
	return s.MinFunc(cmp.Compare[T])
}

// Sum returns the total of all values, or zero for an empty stream.
// Integer overflow wraps around.
func Sum[T types.Number](s *Stream[T]) T {
	var total T
	for _, v := range s.elements {
		total += v
	}
	return total
}

// Reduce folds the values from left to right, starting with init.
func Reduce[T, R any](s *Stream[T], init R, fn func(acc R, item T) R) R {
	acc := init
	for _, item := range s.elements {
		acc = fn(acc, item)
	}
	return acc
}

// Contains reports whether v is one of the values.
func Contains[T comparable](s *Stream[T], v T) bool {
	return slices.Contains(s.elements, v)
}

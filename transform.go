package stream

import (
	"cmp"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/go-softwarelab/common/pkg/types"
)

// Filter keeps only the values for which predicate returns true, in their
// original order.
//
// predicate is called exactly once per element. If it panics the stream is
// left as it was.
func (s *Stream[T]) Filter(predicate Predicate[T]) *Stream[T] {
	before := len(s.elements)
	keep, _ := verdicts(s.elements, func(item T) (bool, error) {
		return predicate(item), nil
	})
	s.retain(keep)
	s.trace("Filter", before)
	return s
}

// TryFilter is like Filter for predicates that may fail.
//
// The first error returned by predicate is returned as is and the stream is
// left unchanged.
func (s *Stream[T]) TryFilter(predicate TryPredicate[T]) (*Stream[T], error) {
	before := len(s.elements)
	keep, err := verdicts(s.elements, predicate)
	if err != nil {
		return s, err
	}
	s.retain(keep)
	s.trace("TryFilter", before)
	return s, nil
}

// Map replaces every value with fn(value), keeping order and length.
//
// Use the package-level [Map] when the result has a different type.
func (s *Stream[T]) Map(fn MapFunc[T, T]) *Stream[T] {
	out := make([]T, len(s.elements))
	for i, in := range s.elements {
		out[i] = fn(in)
	}
	copy(s.elements, out)
	s.trace("Map", len(out))
	return s
}

// Limit truncates the stream to its first maxSize values. It does nothing
// when the stream is not longer than maxSize.
//
// Limit panics if maxSize is negative.
func (s *Stream[T]) Limit(maxSize int) *Stream[T] {
	if maxSize < 0 {
		panic(invalidArgument("Limit", "maxSize must be non-negative, got %d", maxSize))
	}
	before := len(s.elements)
	s.truncate(maxSize)
	s.trace("Limit", before)
	return s
}

// Skip drops the first n values. Skipping at least as many values as the
// stream holds leaves it empty.
//
// Skip panics if n is negative.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	if n < 0 {
		panic(invalidArgument("Skip", "n must be non-negative, got %d", n))
	}
	before := len(s.elements)
	s.dropFront(n)
	s.trace("Skip", before)
	return s
}

// SortFunc sorts the stream in ascending order as determined by compare.
// The sort is stable.
func (s *Stream[T]) SortFunc(compare func(a, b T) int) *Stream[T] {
	slices.SortStableFunc(s.elements, compare)
	s.trace("SortFunc", len(s.elements))
	return s
}

// Tap calls fn for every value, in order, and leaves the values unchanged.
//
// Tap panics if fn is nil.
func (s *Stream[T]) Tap(fn func(T)) *Stream[T] {
	if fn == nil {
		panic(invalidArgument("Tap", "nil function"))
	}
	for _, item := range s.elements {
		fn(item)
	}
	s.trace("Tap", len(s.elements))
	return s
}

// Sort sorts s in ascending order. The sort is stable; NaN values sort
// before any other float.
func Sort[T types.Ordered](s *Stream[T]) *Stream[T] {
	slices.SortStableFunc(s.elements, cmp.Compare[T])
	s.trace("Sort", len(s.elements))
	return s
}

// Distinct keeps the first occurrence of every value and drops the later
// ones that compare equal.
//
// Distinct panics with a *PipelineError wrapping [ErrUnsupportedElement]
// when an interface value holds a type that cannot be hashed, such as a
// slice. The stream is left unchanged in that case.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	return distinctBy(s, "Distinct", func(item T) T { return item })
}

// DistinctBy keeps the first value for every key returned by keyFunc.
func DistinctBy[T any, K comparable](s *Stream[T], keyFunc func(T) K) *Stream[T] {
	return distinctBy(s, "DistinctBy", keyFunc)
}

func distinctBy[T any, K comparable](s *Stream[T], op string, keyFunc func(T) K) *Stream[T] {
	seen := make(keySet[K], len(s.elements))
	before := len(s.elements)
	keep, _ := verdicts(s.elements, func(item T) (bool, error) {
		return seen.add(op, item, keyFunc(item)), nil
	})
	s.retain(keep)
	s.trace(op, before)
	return s
}

type keySet[K comparable] map[K]struct{}

// add reports whether k was not in the set yet.
func (set keySet[K]) add(op string, item any, k K) bool {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if rerr, ok := r.(runtime.Error); ok && strings.Contains(rerr.Error(), "unhashable") {
			panic(&PipelineError{
				Op:     op,
				Item:   item,
				Reason: fmt.Errorf("%w: %v", ErrUnsupportedElement, rerr),
			})
		}
		panic(r)
	}()

	if _, ok := set[k]; ok {
		return false
	}
	set[k] = struct{}{}
	return true
}

// Map transforms each value using fn and returns a new Stream of the
// results. s itself is not modified.
func Map[In, Out any](s *Stream[In], fn MapFunc[In, Out]) *Stream[Out] {
	out := make([]Out, len(s.elements))
	for i, in := range s.elements {
		out[i] = fn(in)
	}
	res := derive(s, out)
	res.trace("Map", len(s.elements))
	return res
}

// TryMap is like Map for transformations that may fail.
//
// The first error returned by fn is returned as is, together with a nil
// Stream.
func TryMap[In, Out any](s *Stream[In], fn TryMapFunc[In, Out]) (*Stream[Out], error) {
	out := make([]Out, len(s.elements))
	for i, in := range s.elements {
		v, err := fn(in)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	res := derive(s, out)
	res.trace("TryMap", len(s.elements))
	return res, nil
}

// FlatMap transforms each value into a slice and returns a Stream of all
// the produced values, in order.
//
// FlatMap is equivalent to calling Flatten(Map(s, fn)).
func FlatMap[In, Out any](s *Stream[In], fn MapFunc[In, []Out]) *Stream[Out] {
	out := make([]Out, 0, len(s.elements))
	for _, in := range s.elements {
		out = append(out, fn(in)...)
	}
	res := derive(s, out)
	res.trace("FlatMap", len(s.elements))
	return res
}

// Flatten converts a Stream of slices into a Stream of their elements,
// in order.
func Flatten[T any](s *Stream[[]T]) *Stream[T] {
	out := make([]T, 0, len(s.elements))
	for _, slice := range s.elements {
		out = append(out, slice...)
	}
	res := derive(s, out)
	res.trace("Flatten", len(s.elements))
	return res
}

// Chunk groups the values into slices of chunkSize. The final chunk may be
// smaller.
//
// Every chunk has its own backing array, so retaining one never pins the
// others.
//
// Chunk panics if chunkSize is not positive.
func Chunk[T any](s *Stream[T], chunkSize int) *Stream[[]T] {
	if chunkSize <= 0 {
		panic(invalidArgument("Chunk", "chunkSize must be positive, got %d", chunkSize))
	}

	n := len(s.elements) / chunkSize
	if len(s.elements)%chunkSize != 0 {
		n++
	}
	out := make([][]T, 0, n)
	for start := 0; start < len(s.elements); start += chunkSize {
		end := min(start+chunkSize, len(s.elements))
		out = append(out, slices.Clone(s.elements[start:end]))
	}
	res := derive(s, out)
	res.trace("Chunk", len(s.elements))
	return res
}

// GroupBy groups consecutive values that share the same key.
//
// GroupBy does not reorder values. Given the values
//
//	A, A, B, B, A
//
// GroupBy produces
//
//	[A, A], [B, B], [A]
//
// Sort the stream first when every key should end up in a single group.
func GroupBy[T any, K comparable](s *Stream[T], keyFunc func(T) K) *Stream[[]T] {
	out := make([][]T, 0)
	var (
		accum      []T
		currentKey K
	)
	for _, item := range s.elements {
		k := keyFunc(item)
		if len(accum) > 0 && k != currentKey {
			out = append(out, accum)
			accum = nil
		}
		currentKey = k
		accum = append(accum, item)
	}
	if len(accum) > 0 {
		out = append(out, accum)
	}
	res := derive(s, out)
	res.trace("GroupBy", len(s.elements))
	return res
}

// GroupByAggregate folds consecutive values that share the same key into
// one accumulator per group, without building a slice for each group.
//
// initFunc is called with the first value of every group and returns its
// initial accumulator. updateFunc is then called for every value of the
// group, including the first, and updates the accumulator in place.
//
// For example, to sum values per group:
//
//	initFunc := func(first int) int { return 0 }
//	updateFunc := func(acc *int, v int) { *acc += v }
//
// Like GroupBy, GroupByAggregate does not reorder values.
func GroupByAggregate[In any, K comparable, Out any](
	s *Stream[In],
	keyFunc func(In) K,
	initFunc func(first In) Out,
	updateFunc func(acc *Out, item In)) *Stream[Out] {

	out := make([]Out, 0)
	var currentKey K
	for _, item := range s.elements {
		k := keyFunc(item)
		if len(out) == 0 || k != currentKey {
			out = append(out, initFunc(item))
		}
		currentKey = k
		updateFunc(&out[len(out)-1], item)
	}
	res := derive(s, out)
	res.trace("GroupByAggregate", len(s.elements))
	return res
}

// Concat returns a new Stream holding the values of every input stream, one
// stream after the other. The inputs are not modified.
//
// The result uses the configuration of the first non-nil stream. Nil
// streams are skipped.
func Concat[T any](streams ...*Stream[T]) *Stream[T] {
	var first *Stream[T]
	total := 0
	for _, s := range streams {
		if s == nil {
			continue
		}
		if first == nil {
			first = s
		}
		total += len(s.elements)
	}
	if first == nil {
		return Of[T](nil)
	}

	out := make([]T, 0, total)
	for _, s := range streams {
		if s != nil {
			out = append(out, s.elements...)
		}
	}
	res := derive(first, out)
	res.trace("Concat", total)
	return res
}

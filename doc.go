/*
Package stream provides chainable, functional-style operations over slices.

A Stream[T] wraps an ordered slice of values. Operations come in two kinds:

  - Intermediate operations (Filter, Map, Limit, Skip, SortFunc, Tap and the
    package-level Distinct, DistinctBy and Sort) rewrite the wrapped slice in
    place and return the same *Stream, so calls can be chained.
  - Terminal operations (All, Any, Count, FindFirst, ForEach, ToList, MaxFunc,
    MinFunc and the package-level Max, Min, Sum, Reduce) read the values and
    return a result. They do not close the stream.

Nothing is lazy: every operation runs to completion before it returns.

Operations that remove values (Distinct, Filter, Skip, Limit) never delete
from the middle of the slice. They evaluate their predicate once per value,
then swap the kept values towards the front and cut the tail in a single
pass. This keeps them linear in the length of the stream, preserves the
order of the kept values and leaves the stream untouched if a predicate
panics or fails.

Methods cannot introduce type parameters in Go, so operations that change
the element type (Map, TryMap, FlatMap, Chunk, GroupBy) or that need a
stronger constraint than any (Distinct, Sort, Max, Min, Sum) are package-level
functions taking the stream as their first argument.

Example of a simple pipeline:

	films := stream.Of(catalog)

	// Intermediate operations chain on the same stream.
	films.Filter(func(f *Film) bool {
		return f.Genre != Action
	}).Limit(5)

	// Operations changing the element type return a new stream.
	prices := stream.Map(stream.Distinct(films), func(f *Film) float64 {
		return f.Price
	})

	total := stream.Sum(prices)

	// Lookups return an optional holding the value, or nothing.
	cheapest := stream.Min(prices)
	if cheapest.IsPresent() {
		fmt.Println("cheapest:", cheapest.OrZeroValue())
	}

Of copies the slice it is given, so the caller's slice is never modified.
Wrap operates on the caller's slice directly and OfClone deep-copies every
element through a caller-supplied function.

A Stream is meant for a single goroutine. Callers sharing one must
serialize access themselves.
*/
package stream

package stream

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/KasperOmsK/stream/internal/iterx"
)

type (
	// Predicate represents a filtering function that returns true when the
	// provided value should be kept.
	Predicate[T any] func(item T) bool

	// TryPredicate is a filtering function that may fail.
	TryPredicate[T any] func(item T) (bool, error)

	// MapFunc is a mapping function that transforms a value of type In into
	// a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// TryMapFunc is a mapping function that may return an error.
	TryMapFunc[In, Out any] func(in In) (Out, error)
)

// Stream wraps an ordered slice and applies chained operations to it.
//
// Intermediate operations run to completion when called, rewrite the wrapped
// slice in place and return the same *Stream. A Stream is not safe for
// concurrent use.
type Stream[T any] struct {
	elements []T
	log      *slog.Logger
}

type config struct {
	logger *slog.Logger
}

// Option configures a [Stream] at construction.
type Option func(*config)

func defaultConfig() config {
	return config{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger traces every intermediate stage on l at debug level.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newStream[T any](elements []T, opts []Option) *Stream[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Stream[T]{elements: elements, log: cfg.logger}
}

// derive builds a stream of another element type that shares s's configuration.
func derive[T, R any](s *Stream[T], elements []R) *Stream[R] {
	return &Stream[R]{elements: elements, log: s.log}
}

// Of returns a Stream over a copy of src.
//
// Writes to src after the call are not seen by the stream, and operations on
// the stream never touch src. Elements are copied by assignment: pointers
// and reference types inside the elements stay shared with the caller; use
// [OfClone] when that matters.
func Of[T any](src []T, opts ...Option) *Stream[T] {
	elements := slices.Clone(src)
	if elements == nil {
		elements = []T{}
	}
	return newStream(elements, opts)
}

// OfClone returns a Stream over a deep copy of src, where every element is
// replaced by clone(element).
//
// OfClone panics if clone is nil.
func OfClone[T any](src []T, clone func(T) T, opts ...Option) *Stream[T] {
	if clone == nil {
		panic(invalidArgument("OfClone", "nil clone function"))
	}
	elements := make([]T, len(src))
	for i, v := range src {
		elements[i] = clone(v)
	}
	return newStream(elements, opts)
}

// Wrap returns a Stream that operates directly on src's backing array.
//
// Removing operations reorder src and zero its tail; the caller's slice
// header keeps its original length. Wrap avoids the copy made by [Of] and
// is meant for callers that hand the slice over for good.
func Wrap[T any](src []T, opts ...Option) *Stream[T] {
	return newStream(src, opts)
}

// From collects seq into a new Stream.
func From[T any](seq iter.Seq[T], opts ...Option) *Stream[T] {
	return newStream(iterx.Collect(seq), opts)
}

// trace records the effect of one stage.
func (s *Stream[T]) trace(op string, before int) {
	s.log.Debug("stream stage",
		slog.String("op", op),
		slog.Int("in", before),
		slog.Int("out", len(s.elements)),
	)
}

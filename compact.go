package stream

// Removing operations never delete from the middle of the slice: they
// decide which elements stay, then move the survivors down with swaps and
// cut the tail once. Each position is visited once and no second slice of
// elements is allocated.

// verdicts evaluates keep once per element, front to back. Nothing in
// elements is moved, so a failing or panicking keep leaves them intact.
func verdicts[T any](elements []T, keep func(T) (bool, error)) ([]bool, error) {
	out := make([]bool, len(elements))
	for i, item := range elements {
		ok, err := keep(item)
		if err != nil {
			return nil, err
		}
		out[i] = ok
	}
	return out, nil
}

// retain keeps the elements whose verdict is true, in their original order.
//
// The read cursor r visits every element; the write cursor w advances only
// over kept ones. A kept element is swapped down to w, which pushes dropped
// elements towards the tail where truncate discards them.
func (s *Stream[T]) retain(keep []bool) {
	w := 0
	for r := range s.elements {
		if !keep[r] {
			continue
		}
		if w != r {
			s.elements[w], s.elements[r] = s.elements[r], s.elements[w]
		}
		w++
	}
	s.truncate(w)
}

// dropFront removes the first n elements with the same swap scheme as retain.
func (s *Stream[T]) dropFront(n int) {
	if n == 0 {
		return
	}
	if n >= len(s.elements) {
		s.truncate(0)
		return
	}
	w := 0
	for r := n; r < len(s.elements); r++ {
		s.elements[w], s.elements[r] = s.elements[r], s.elements[w]
		w++
	}
	s.truncate(w)
}

// truncate shortens elements to n and zeroes the cut-off part of the backing
// array, so dropped values are not kept alive by it.
func (s *Stream[T]) truncate(n int) {
	if n >= len(s.elements) {
		return
	}
	clear(s.elements[n:])
	s.elements = s.elements[:n]
}

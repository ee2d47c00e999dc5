// Package sorting provides the instrumented sorts and searches used by the
// backpack stores and the component registry.
//
// Every routine reports how many key comparisons it performed. All three sorts
// are stable: elements with equal keys keep their relative order.
package sorting

import "time"

// NotFound is the index returned by searches that find nothing.
const NotFound = -1

// Result describes one timed sort run.
type Result struct {
	Comparisons int
	Elapsed     time.Duration
}

// Seconds returns the elapsed time in seconds.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Timed runs sort once and measures it with the monotonic clock.
// sort must return the number of comparisons it performed.
func Timed(sort func() int) Result {
	start := time.Now()
	comparisons := sort()
	return Result{
		Comparisons: comparisons,
		Elapsed:     time.Since(start),
	}
}

// Bubble sorts s in ascending cmp order by swapping adjacent out-of-order pairs.
// Each adjacent-pair check counts as one comparison. Passes stop early once a
// pass makes no swap.
func Bubble[T any](s []T, cmp func(a, b T) int) int {
	comparisons := 0
	n := len(s)

	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for j := 0; j < n-1-pass; j++ {
			comparisons++
			if cmp(s[j], s[j+1]) > 0 {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return comparisons
}

// Insertion sorts s in ascending cmp order. Each element shifts left over
// strictly greater predecessors; every predecessor examined, including the one
// that stops the shift, counts as a comparison.
func Insertion[T any](s []T, cmp func(a, b T) int) int {
	comparisons := 0

	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 {
			comparisons++
			if cmp(s[j], key) <= 0 {
				break
			}
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}

	return comparisons
}

// Selection sorts s in ascending cmp order by moving the minimum of the
// unsorted remainder into place. It always performs n*(n-1)/2 comparisons.
//
// The minimum is rotated into position instead of swapped so that equal keys
// keep their order.
func Selection[T any](s []T, cmp func(a, b T) int) int {
	comparisons := 0
	n := len(s)

	for i := 0; i < n-1; i++ {
		lowest := i
		for j := i + 1; j < n; j++ {
			comparisons++
			if cmp(s[j], s[lowest]) < 0 {
				lowest = j
			}
		}
		if lowest != i {
			v := s[lowest]
			copy(s[i+1:lowest+1], s[i:lowest])
			s[i] = v
		}
	}

	return comparisons
}

// Linear returns the index of the first element matching match, and the number
// of elements examined.
func Linear[T any](s []T, match func(T) bool) (int, int) {
	comparisons := 0
	for i, v := range s {
		comparisons++
		if match(v) {
			return i, comparisons
		}
	}
	return NotFound, comparisons
}

// Binary searches s, which must be sorted ascending, and returns the index of
// an element for which probe returns 0. probe compares an element against the
// key being searched: negative when the element orders before the key.
// Every midpoint probe counts as one comparison.
func Binary[T any](s []T, probe func(T) int) (int, int) {
	comparisons := 0
	lo, hi := 0, len(s)-1

	for lo <= hi {
		mid := lo + (hi-lo)/2
		comparisons++
		switch c := probe(s[mid]); {
		case c == 0:
			return mid, comparisons
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound, comparisons
}

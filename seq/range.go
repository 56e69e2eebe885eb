package seq

import (
	"fmt"
	"math"
)

// Range is the half-open interval [start, end) of integers, as a lazy sequence.
// Only the bounds are stored.
type Range struct {
	start, end int
}

// RangeOfInt returns the sequence start, start+1, …, end-1. If start ≥ end the
// range is empty.
func RangeOfInt(start, end int) Range {
	if end < start {
		tracer().Debugf("range [%d…%d) is empty", start, end)
		end = start
	}
	return Range{start: start, end: end}
}

// span is the number of integers in r. It cannot overflow, as end ≥ start.
func (r Range) span() uint {
	return uint(r.end) - uint(r.start)
}

// Len returns the number of integers in r. Ranges with more than math.MaxInt
// elements report math.MaxInt.
func (r Range) Len() int {
	if n := r.span(); n <= math.MaxInt {
		return int(n)
	}
	return math.MaxInt
}

// Start returns the first integer of r, if r is non-empty.
func (r Range) Start() int {
	return r.start
}

// End returns the exclusive upper bound of r.
func (r Range) End() int {
	return r.end
}

// Get returns the i-th integer of r. It panics if i is not in [0, r.Len()).
func (r Range) Get(i int) int {
	if i < 0 || uint(i) >= r.span() {
		panic(fmt.Sprintf("seq: range index out of bounds: %d with length %d", i, r.span()))
	}
	return r.start + i
}

// Contains reports whether n is an element of r.
func (r Range) Contains(n int) bool {
	return n >= r.start && n < r.end
}

func (r Range) Iterator() Iterator[int] {
	return &rangeIterator{next: r.start, end: r.end}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d…%d)", r.start, r.end)
}

type rangeIterator struct {
	next, end int
}

func (it *rangeIterator) Next() (int, bool) {
	if it.next >= it.end {
		return 0, false
	}
	n := it.next
	it.next++
	return n, true
}

var _ Seq[int] = Range{}

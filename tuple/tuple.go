/*
Package tuple implements immutable 2-tuples.

A Tuple2 is an ordered pair. It doubles as the entry type of persistent maps, where
the first component is the key and the second one the value.
*/
package tuple

import (
	"fmt"

	"github.com/npillmayer/immutable/hashing"
)

// Tuple2 is an immutable pair (first, second). The zero value is a pair of zero
// values.
type Tuple2[A, B any] struct {
	first  A
	second B
}

// Of creates a pair.
func Of[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{first: a, second: b}
}

func (t Tuple2[A, B]) First() A {
	return t.first
}

func (t Tuple2[A, B]) Second() B {
	return t.second
}

// Key is First, for tuples used as map entries.
func (t Tuple2[A, B]) Key() A {
	return t.first
}

// Value is Second, for tuples used as map entries.
func (t Tuple2[A, B]) Value() B {
	return t.second
}

// Decompose returns both components.
func (t Tuple2[A, B]) Decompose() (A, B) {
	return t.first, t.second
}

// Swap returns (second, first).
func (t Tuple2[A, B]) Swap() Tuple2[B, A] {
	return Tuple2[B, A]{first: t.second, second: t.first}
}

// Equal is true iff both components are equal.
func (t Tuple2[A, B]) Equal(other Tuple2[A, B]) bool {
	return hashing.Equal(t.first, other.first) && hashing.Equal(t.second, other.second)
}

func (t Tuple2[A, B]) Hash() uint64 {
	return hashing.Combine(hashing.Hash(t.first), hashing.Hash(t.second))
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.first, t.second)
}

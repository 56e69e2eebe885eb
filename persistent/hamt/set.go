package hamt

import (
	"fmt"
	"strings"

	"github.com/npillmayer/immutable/seq"
	"github.com/npillmayer/immutable/tuple"
)

// Set is an immutable persistent hash set, implemented as a map to unit values.
// An empty instance is usable as an empty set.
type Set[T any] struct {
	m Map[T, struct{}]
}

// EmptySet constructs an empty set with options, if you need any.
func EmptySet[T any](opts ...Option[T]) Set[T] {
	return Set[T]{m: Empty[T, struct{}](opts...)}
}

// SetOf creates a set of items, using the default hasher.
func SetOf[T any](items ...T) Set[T] {
	return SetFromSeq(seq.FromSlice(items))
}

// SetFromSeq drains s into a new set, with options.
func SetFromSeq[T any](s seq.Seq[T], opts ...Option[T]) Set[T] {
	return seq.FoldLeft(s, EmptySet(opts...), func(set Set[T], x T) Set[T] {
		return set.With(x)
	})
}

// Len returns the number of elements of s.
func (s Set[T]) Len() int {
	return s.m.Len()
}

// Contains is true if x is an element of s.
func (s Set[T]) Contains(x T) bool {
	return s.m.Contains(x)
}

// With returns a copy of s with element x, or s itself if x is already present.
func (s Set[T]) With(x T) Set[T] {
	return Set[T]{m: s.m.Assoc(x, struct{}{})}
}

// Without returns a copy of s without element x, or s itself if x is absent.
func (s Set[T]) Without(x T) Set[T] {
	return Set[T]{m: s.m.Without(x)}
}

// Seq returns the elements of s as a lazy sequence.
func (s Set[T]) Seq() seq.Seq[T] {
	return s.m.Keys()
}

// Fold accumulates the elements of s in iteration order, starting with seed.
func (s Set[T]) Fold(seed T, f func(T, T) T) T {
	return FoldLeft(s.m, seed, func(acc T, kv tuple.Tuple2[T, struct{}]) T {
		return f(acc, kv.Key())
	})
}

// Equal is true if s and other have the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	return s.m.Equal(other.m)
}

// Hash returns a hash code for s, consistent with Equal.
func (s Set[T]) Hash() uint64 {
	h := s.m.keyHasher()
	return FoldLeft(s.m, uint64(0), func(acc uint64, kv tuple.Tuple2[T, struct{}]) uint64 {
		return acc + h.Hash(kv.Key())
	})
}

func (s Set[T]) String() string {
	b := strings.Builder{}
	b.WriteString("#{")
	it := s.m.iterator()
	for kv, ok := it.Next(); ok; kv, ok = it.Next() {
		if it.n > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", kv.Key()))
	}
	b.WriteByte('}')
	return b.String()
}

package immutable

import (
	"errors"
	"fmt"

	"github.com/npillmayer/immutable/persistent/hamt"
	"github.com/npillmayer/immutable/persistent/sorted"
	"github.com/npillmayer/immutable/persistent/vector"
	"github.com/npillmayer/immutable/seq"
	"github.com/npillmayer/immutable/tuple"
)

// ErrArity is flagged if a list of alternating keys and values has an odd length.
var ErrArity = errors.New("odd number of map arguments")

// ErrType is flagged if a key or value of a list of alternating keys and values
// is not of the expected type.
var ErrType = errors.New("map argument of wrong type")

// Vec returns a vector of items. Zero values are kept as they are.
func Vec[T any](items ...T) vector.Vector[T] {
	return vector.FromSlice(items)
}

// Map returns a hash map of pairs. If a key occurs more than once, the last pair wins.
func Map[K, V any](pairs ...tuple.Tuple2[K, V]) hamt.Map[K, V] {
	return hamt.FromSeq(seq.FromSlice(pairs), Identity[tuple.Tuple2[K, V]])
}

// Set returns a hash set of items.
func Set[T any](items ...T) hamt.Set[T] {
	return hamt.SetOf(items...)
}

// SortedMap returns a map of pairs, with keys ordered by less. If a key occurs
// more than once, the last pair wins.
func SortedMap[K, V any](less func(K, K) bool, pairs ...tuple.Tuple2[K, V]) sorted.Map[K, V] {
	return sorted.FromSeq(seq.FromSlice(pairs), less, Identity[tuple.Tuple2[K, V]])
}

// Tup returns a pair of a and b, usable as a map entry.
func Tup[A, B any](a A, b B) tuple.Tuple2[A, B] {
	return tuple.Of(a, b)
}

// RangeOfInt returns the lazy sequence start, start+1, …, end-1.
func RangeOfInt(start, end int) seq.Range {
	return seq.RangeOfInt(start, end)
}

// MapOf returns a hash map from a list of alternating keys and values:
//
//     m, err := immutable.MapOf[string, int]("one", 1, "two", 2)
//
// It fails with ErrArity for an odd number of arguments and with ErrType if an
// argument is not of the key or value type.
func MapOf[K, V any](kvs ...any) (hamt.Map[K, V], error) {
	m := hamt.Empty[K, V]()
	if len(kvs)%2 != 0 {
		return m, fmt.Errorf("%w: %d", ErrArity, len(kvs))
	}
	for i := 0; i < len(kvs); i += 2 {
		k, ok := kvs[i].(K)
		if !ok {
			return m, fmt.Errorf("%w: key #%d is %T", ErrType, i/2, kvs[i])
		}
		v, ok := kvs[i+1].(V)
		if !ok {
			return m, fmt.Errorf("%w: value #%d is %T", ErrType, i/2, kvs[i+1])
		}
		m = m.Assoc(k, v)
	}
	return m, nil
}

package hamt

import (
	"fmt"
	"strings"

	"github.com/npillmayer/immutable/hashing"
	"github.com/npillmayer/immutable/maybe"
	"github.com/npillmayer/immutable/seq"
	"github.com/npillmayer/immutable/tuple"
)

// Map is an immutable persistent hash map. An empty instance is usable as an empty
// map, using the default hasher for keys:
//
//     m := hamt.Map[string, int]{}.Assoc("one", 1)
//
type Map[K, V any] struct {
	root   *hnode[K, V]
	size   int
	hasher hashing.Hasher[K]
}

// Option is a type to help initializing maps at creation time.
type Option[K any] struct {
	config func(hashing.Hasher[K]) hashing.Hasher[K]
}

// WithHasher is an option to set a custom hasher for the keys of a map.
//
//     m := hamt.Empty[K, V](hamt.WithHasher[K](myHasher))
//
func WithHasher[K any](h hashing.Hasher[K]) Option[K] {
	return Option[K]{config: func(hashing.Hasher[K]) hashing.Hasher[K] {
		return h
	}}
}

// Empty constructs an empty map with options, if you need any.
func Empty[K, V any](opts ...Option[K]) Map[K, V] {
	m := Map[K, V]{hasher: hashing.Default[K]()}
	for _, option := range opts {
		m.hasher = option.config(m.hasher)
	}
	return m
}

// FromSeq drains s into a new map, mapping each element to a key/value pair with f.
// If a key occurs more than once, the last pair wins.
func FromSeq[T, K, V any](s seq.Seq[T], f func(T) tuple.Tuple2[K, V], opts ...Option[K]) Map[K, V] {
	return seq.FoldLeft(s, Empty[K, V](opts...), func(m Map[K, V], x T) Map[K, V] {
		k, v := f(x).Decompose()
		return m.Assoc(k, v)
	})
}

func (m Map[K, V]) keyHasher() hashing.Hasher[K] {
	if m.hasher == nil {
		return hashing.Default[K]()
	}
	return m.hasher
}

// --- API -------------------------------------------------------------------

// Len returns the number of key/value pairs in m.
func (m Map[K, V]) Len() int {
	return m.size
}

// Get returns the value bound to key, or Nothing.
func (m Map[K, V]) Get(key K) maybe.Maybe[V] {
	v, ok := m.lookup(key)
	return maybe.From(v, ok)
}

// GetOrElse returns the value bound to key, or def if key is not present.
func (m Map[K, V]) GetOrElse(key K, def V) V {
	if v, ok := m.lookup(key); ok {
		return v
	}
	return def
}

// Contains is true if a value is bound to key.
func (m Map[K, V]) Contains(key K) bool {
	_, ok := m.lookup(key)
	return ok
}

func (m Map[K, V]) lookup(key K) (V, bool) {
	h := m.keyHasher()
	hash := h.Hash(key)
	node, shift := m.root, uint(0)
	for node != nil {
		if node.collision {
			if i := node.find(key, h); i >= 0 {
				return node.entries[i].value, true
			}
			break
		}
		bit := bitpos(hash, shift)
		if node.bitmap&bit == 0 {
			break
		}
		e := node.entries[node.pos(bit)]
		if e.child != nil {
			node, shift = e.child, shift+bitsPerLevel
			continue
		}
		if h.Equal(e.key, key) {
			return e.value, true
		}
		break
	}
	var zero V
	return zero, false
}

// Assoc returns a copy of m with value bound to key. If key is already bound to an
// equal value, m itself is returned.
func (m Map[K, V]) Assoc(key K, value V) Map[K, V] {
	h := m.keyHasher()
	hash := h.Hash(key)
	kv := entry[K, V]{hash: hash, key: key, value: value}
	if m.root == nil {
		root := &hnode[K, V]{bitmap: bitpos(hash, 0), entries: []entry[K, V]{kv}}
		return Map[K, V]{root: root, size: 1, hasher: m.hasher}
	}
	path := make(slotPath[K, V], 0, 4)
	node, shift := m.root, uint(0)
	var cow *hnode[K, V]
	added := true
	for cow == nil {
		if node.collision { // all keys of node share hash
			if i := node.find(key, h); i >= 0 {
				if hashing.Equal(node.entries[i].value, value) {
					return m
				}
				cow, added = node.withReplacedEntry(i, kv), false
			} else {
				cow = node.withInsertedEntry(len(node.entries), 0, kv)
			}
			continue
		}
		bit := bitpos(hash, shift)
		pos := node.pos(bit)
		if node.bitmap&bit == 0 {
			cow = node.withInsertedEntry(pos, bit, kv)
			continue
		}
		e := node.entries[pos]
		switch {
		case e.child != nil && e.child.collision && e.hash != hash:
			cow = node.withReplacedEntry(pos, childEntry(merge(shift+bitsPerLevel, e, kv)))
		case e.child != nil:
			path = append(path, slot[K, V]{pos: pos, bit: bit, node: node})
			node, shift = e.child, shift+bitsPerLevel
		case h.Equal(e.key, key):
			if hashing.Equal(e.value, value) {
				return m
			}
			cow, added = node.withReplacedEntry(pos, kv), false
		default:
			cow = node.withReplacedEntry(pos, childEntry(merge(shift+bitsPerLevel, e, kv)))
		}
	}
	newRoot := path.foldR(cloneSeam[K, V], slot[K, V]{node: cow})
	size := m.size
	if added {
		size++
	}
	return Map[K, V]{root: newRoot.node, size: size, hasher: m.hasher}
}

// Without returns a copy of m without a binding for key. If key is not
// present, m itself is returned.
func (m Map[K, V]) Without(key K) Map[K, V] {
	if m.root == nil {
		return m
	}
	h := m.keyHasher()
	hash := h.Hash(key)
	path := make(slotPath[K, V], 0, 4)
	node, shift := m.root, uint(0)
	var cow *hnode[K, V]
	for cow == nil {
		if node.collision {
			i := node.find(key, h)
			if i < 0 {
				return m
			}
			cow = node.withRemovedEntry(i, 0)
			continue
		}
		bit := bitpos(hash, shift)
		if node.bitmap&bit == 0 {
			return m
		}
		pos := node.pos(bit)
		e := node.entries[pos]
		if e.child != nil {
			if e.child.collision && e.hash != hash {
				return m
			}
			path = append(path, slot[K, V]{pos: pos, bit: bit, node: node})
			node, shift = e.child, shift+bitsPerLevel
			continue
		}
		if !h.Equal(e.key, key) {
			return m
		}
		cow = node.withRemovedEntry(pos, bit)
	}
	newRoot := path.foldR(collapse[K, V], slot[K, V]{node: cow}).node
	if len(newRoot.entries) == 0 {
		newRoot = nil
	}
	return Map[K, V]{root: newRoot, size: m.size - 1, hasher: m.hasher}
}

// Seq returns the key/value pairs of m as a lazy sequence. Iteration order is
// stable for m, but unrelated to insertion order.
func (m Map[K, V]) Seq() seq.Seq[tuple.Tuple2[K, V]] {
	return seq.Func[tuple.Tuple2[K, V]](func() seq.Iterator[tuple.Tuple2[K, V]] {
		return m.iterator()
	})
}

// Keys returns the keys of m as a lazy sequence, in iteration order.
func (m Map[K, V]) Keys() seq.Seq[K] {
	return seq.Map(m.Seq(), func(kv tuple.Tuple2[K, V]) K {
		return kv.Key()
	})
}

// Values returns the values of m as a lazy sequence, in iteration order.
func (m Map[K, V]) Values() seq.Seq[V] {
	return seq.Map(m.Seq(), func(kv tuple.Tuple2[K, V]) V {
		return kv.Value()
	})
}

// Fold accumulates the bindings of m in iteration order, starting with seed.
func (m Map[K, V]) Fold(seed V, f func(V, K, V) V) V {
	return FoldLeft(m, seed, func(acc V, kv tuple.Tuple2[K, V]) V {
		return f(acc, kv.Key(), kv.Value())
	})
}

// FoldLeft accumulates the key/value pairs of m in iteration order, starting
// with seed.
func FoldLeft[K, V, R any](m Map[K, V], seed R, f func(R, tuple.Tuple2[K, V]) R) R {
	acc := seed
	it := m.iterator()
	for kv, ok := it.Next(); ok; kv, ok = it.Next() {
		acc = f(acc, kv)
	}
	return acc
}

// Equal is true if m and other hold the same keys, bound to equal values.
// Insertion order does not matter.
func (m Map[K, V]) Equal(other Map[K, V]) bool {
	if m.size != other.size {
		return false
	}
	if m.root == other.root {
		return true
	}
	it := m.iterator()
	for kv, ok := it.Next(); ok; kv, ok = it.Next() {
		v, found := other.lookup(kv.Key())
		if !found || !hashing.Equal(v, kv.Value()) {
			return false
		}
	}
	return true
}

// Hash returns a hash code for m, consistent with Equal.
func (m Map[K, V]) Hash() uint64 {
	h := m.keyHasher()
	return FoldLeft(m, uint64(0), func(acc uint64, kv tuple.Tuple2[K, V]) uint64 {
		return acc + hashing.Entry(h.Hash(kv.Key()), hashing.Hash(kv.Value()))
	})
}

func (m Map[K, V]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	it := m.iterator()
	for kv, ok := it.Next(); ok; kv, ok = it.Next() {
		if it.n > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v:%v", kv.Key(), kv.Value()))
	}
	b.WriteByte('}')
	return b.String()
}

// --- Iterator --------------------------------------------------------------

type frame[K, V any] struct {
	node *hnode[K, V]
	pos  int
}

// iterator walks a trie depth-first, in bitmap order.
type iterator[K, V any] struct {
	stack []frame[K, V]
	n     int // number of pairs handed out
}

func (m Map[K, V]) iterator() *iterator[K, V] {
	it := &iterator[K, V]{}
	if m.root != nil {
		it.stack = append(make([]frame[K, V], 0, 8), frame[K, V]{node: m.root})
	}
	return it
}

func (it *iterator[K, V]) Next() (tuple.Tuple2[K, V], bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.pos >= len(top.node.entries) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		e := top.node.entries[top.pos]
		top.pos++
		if e.child != nil {
			it.stack = append(it.stack, frame[K, V]{node: e.child})
			continue
		}
		it.n++
		return tuple.Of(e.key, e.value), true
	}
	var zero tuple.Tuple2[K, V]
	return zero, false
}

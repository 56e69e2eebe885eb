package sorted

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/btree"
	"github.com/npillmayer/immutable/hashing"
	"github.com/npillmayer/immutable/maybe"
	"github.com/npillmayer/immutable/seq"
	"github.com/npillmayer/immutable/tuple"
)

const defaultDegree = 8

// Ordered is a constraint for key types with a natural order.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

type entry[K, V any] struct {
	key   K
	value V
}

// tree is a B-tree, together with a lock guarding its cloning. Cloning a BTreeG
// writes to the copy-on-write context of the source tree.
type tree[K, V any] struct {
	sync.Mutex
	bt *btree.BTreeG[entry[K, V]]
}

func (t *tree[K, V]) clone() *tree[K, V] {
	t.Lock()
	defer t.Unlock()
	return &tree[K, V]{bt: t.bt.Clone()}
}

// Map is an immutable persistent map with ordered keys.
// Instances have to be created with New or NewOrdered.
type Map[K, V any] struct {
	t    *tree[K, V]
	less func(K, K) bool
}

// Option is a type to help initializing maps at creation time.
type Option struct {
	config func(int) int
}

// Degree is an option to set the degree of the underlying B-tree. Values below 2
// are raised to 2; default is 8.
func Degree(n int) Option {
	return Option{config: func(int) int {
		if n < 2 {
			return 2
		}
		return n
	}}
}

// New creates an empty map, ordering keys with less.
func New[K, V any](less func(K, K) bool, opts ...Option) Map[K, V] {
	degree := defaultDegree
	for _, option := range opts {
		degree = option.config(degree)
	}
	bt := btree.NewG(degree, func(a, b entry[K, V]) bool {
		return less(a.key, b.key)
	})
	return Map[K, V]{t: &tree[K, V]{bt: bt}, less: less}
}

// NewOrdered creates an empty map for keys with a natural order.
func NewOrdered[K Ordered, V any](opts ...Option) Map[K, V] {
	return New[K, V](func(a, b K) bool { return a < b }, opts...)
}

// FromSeq drains s into a new map ordered by less, mapping each element to a
// key/value pair with f. If a key occurs more than once, the last pair wins.
func FromSeq[T, K, V any](s seq.Seq[T], less func(K, K) bool, f func(T) tuple.Tuple2[K, V]) Map[K, V] {
	m := New[K, V](less)
	bt := m.t.bt // m is not yet shared, no need to clone
	seq.ForEach(s, func(x T) {
		k, v := f(x).Decompose()
		bt.ReplaceOrInsert(entry[K, V]{key: k, value: v})
	})
	return m
}

func (m Map[K, V]) mustBeInitialized() {
	if m.t == nil {
		panic("persistent.sorted: map has to be created with New or NewOrdered")
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of key/value pairs in m.
func (m Map[K, V]) Len() int {
	if m.t == nil {
		return 0
	}
	return m.t.bt.Len()
}

// Get returns the value bound to key, or Nothing.
func (m Map[K, V]) Get(key K) maybe.Maybe[V] {
	if m.t == nil {
		return maybe.Nothing[V]()
	}
	e, ok := m.t.bt.Get(entry[K, V]{key: key})
	return maybe.From(e.value, ok)
}

// GetOrElse returns the value bound to key, or def if key is not present.
func (m Map[K, V]) GetOrElse(key K, def V) V {
	return m.Get(key).WithDefault(def)
}

// Contains is true if a value is bound to key.
func (m Map[K, V]) Contains(key K) bool {
	return m.t != nil && m.t.bt.Has(entry[K, V]{key: key})
}

// Assoc returns a copy of m with value bound to key. If key is already bound to an
// equal value, m itself is returned.
func (m Map[K, V]) Assoc(key K, value V) Map[K, V] {
	m.mustBeInitialized()
	if e, ok := m.t.bt.Get(entry[K, V]{key: key}); ok && hashing.Equal(e.value, value) {
		return m
	}
	t := m.t.clone()
	t.bt.ReplaceOrInsert(entry[K, V]{key: key, value: value})
	return Map[K, V]{t: t, less: m.less}
}

// Without returns a copy of m without a binding for key. If key is not present,
// m itself is returned.
func (m Map[K, V]) Without(key K) Map[K, V] {
	if !m.Contains(key) {
		return m
	}
	t := m.t.clone()
	t.bt.Delete(entry[K, V]{key: key})
	return Map[K, V]{t: t, less: m.less}
}

// Min returns the pair with the smallest key, if any.
func (m Map[K, V]) Min() maybe.Maybe[tuple.Tuple2[K, V]] {
	if m.t == nil {
		return maybe.Nothing[tuple.Tuple2[K, V]]()
	}
	e, ok := m.t.bt.Min()
	return maybe.From(tuple.Of(e.key, e.value), ok)
}

// Max returns the pair with the largest key, if any.
func (m Map[K, V]) Max() maybe.Maybe[tuple.Tuple2[K, V]] {
	if m.t == nil {
		return maybe.Nothing[tuple.Tuple2[K, V]]()
	}
	e, ok := m.t.bt.Max()
	return maybe.From(tuple.Of(e.key, e.value), ok)
}

// Seq returns the key/value pairs of m in ascending key order, as a lazy sequence.
func (m Map[K, V]) Seq() seq.Seq[tuple.Tuple2[K, V]] {
	return seq.Func[tuple.Tuple2[K, V]](func() seq.Iterator[tuple.Tuple2[K, V]] {
		return &iterator[K, V]{m: m}
	})
}

// Fold accumulates the bindings of m in ascending key order, starting with seed.
func (m Map[K, V]) Fold(seed V, f func(V, K, V) V) V {
	acc := seed
	if m.t != nil {
		m.t.bt.Ascend(func(e entry[K, V]) bool {
			acc = f(acc, e.key, e.value)
			return true
		})
	}
	return acc
}

// Equal is true if m and other hold the same keys in the same order, bound to
// equal values. Keys are the same if neither is less than the other under m's
// ordering.
func (m Map[K, V]) Equal(other Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}
	a, b := m.Seq().Iterator(), other.Seq().Iterator()
	for x, ok := a.Next(); ok; x, ok = a.Next() {
		y, _ := b.Next()
		if m.less(x.Key(), y.Key()) || m.less(y.Key(), x.Key()) || !hashing.Equal(x.Value(), y.Value()) {
			return false
		}
	}
	return true
}

// Hash returns a hash code for m, consistent with Equal. Keys which are the same
// under the ordering of m need not be equal otherwise, so keys contribute with
// their position only.
func (m Map[K, V]) Hash() uint64 {
	return seq.FoldLeft(m.Seq(), hashing.Hash(m.Len()), func(h uint64, kv tuple.Tuple2[K, V]) uint64 {
		return hashing.Combine(h, hashing.Hash(kv.Value()))
	})
}

func (m Map[K, V]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	first := true
	if m.t != nil {
		m.t.bt.Ascend(func(e entry[K, V]) bool {
			if !first {
				b.WriteByte(' ')
			}
			first = false
			b.WriteString(fmt.Sprintf("%v:%v", e.key, e.value))
			return true
		})
	}
	b.WriteByte('}')
	return b.String()
}

// --- Iterator --------------------------------------------------------------

const batchSize = 32

// iterator pulls pairs from the B-tree in batches, continuing after the last
// key handed out.
type iterator[K, V any] struct {
	m       Map[K, V]
	batch   []entry[K, V]
	last    entry[K, V]
	started bool
	done    bool
}

func (it *iterator[K, V]) Next() (tuple.Tuple2[K, V], bool) {
	if len(it.batch) == 0 && !it.done {
		it.fill()
	}
	if len(it.batch) == 0 {
		var zero tuple.Tuple2[K, V]
		return zero, false
	}
	e := it.batch[0]
	it.batch = it.batch[1:]
	return tuple.Of(e.key, e.value), true
}

func (it *iterator[K, V]) fill() {
	if it.m.t == nil {
		it.done = true
		return
	}
	batch := make([]entry[K, V], 0, batchSize)
	collect := func(e entry[K, V]) bool {
		if it.started && !it.m.less(it.last.key, e.key) {
			return true // skip the pivot itself
		}
		batch = append(batch, e)
		return len(batch) < batchSize
	}
	if it.started {
		it.m.t.bt.AscendGreaterOrEqual(it.last, collect)
	} else {
		it.m.t.bt.Ascend(collect)
	}
	if len(batch) < batchSize {
		it.done = true
	}
	if len(batch) > 0 {
		it.last, it.started = batch[len(batch)-1], true
		tracer().Debugf("sorted map iterator fetched %d pairs", len(batch))
	}
	it.batch = batch
}

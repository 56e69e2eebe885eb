package vector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/immutable/hashing"
	"github.com/npillmayer/immutable/maybe"
	"github.com/npillmayer/immutable/result"
	"github.com/npillmayer/immutable/seq"
)

// ErrIndexOutOfBounds is flagged for indexed access outside of [0, Len()).
var ErrIndexOutOfBounds = errors.New("vector index out of bounds")

// ErrEmpty is flagged for an attempt to remove an item from an empty vector.
var ErrEmpty = errors.New("vector is empty")

// Vector is an immutable persistent vector. An empty instance is usable as an empty
// vector, i.e. this is legal:
//
//     v := vector.Vector[int]{}.Append(1)
//
type Vector[T any] struct {
	props
	length uint32
	root   *vnode[T]
	tail   []T
}

// Immutable constructs an empty vector with options, if you need any.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{props: makeProps(defaultBits)}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to indirectly set the degree of the underlying tree for a
// vector. The degree of the tree will be 2^n. Accepted values are [1…5]; default is 5,
// i.e. a degree of 32.
//
// Use it like this:
//
//     vec := vector.Immutable[int](vector.BitsPerLevel(2))
//
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 1
		} else if n > int(maxBits) {
			n = int(maxBits)
		}
		return makeProps(uint32(n))
	}
	return Option{config: conf}
}

// Of creates a vector holding items. items is copied.
func Of[T any](items ...T) Vector[T] {
	return FromSlice(items)
}

// FromSlice creates a vector holding the elements of xs, with options. xs is copied.
func FromSlice[T any](xs []T, opts ...Option) Vector[T] {
	v := Immutable[T](opts...)
	for len(xs) > 0 {
		n := min(len(xs), int(v.degree))
		chunk := make([]T, n)
		copy(chunk, xs[:n])
		v = v.appendChunk(chunk)
		xs = xs[n:]
	}
	return v
}

// FromSeq drains s into a new vector, with options. This is the way to materialize
// a lazy pipeline.
func FromSeq[T any](s seq.Seq[T], opts ...Option) Vector[T] {
	v := Immutable[T](opts...)
	buf := make([]T, 0, v.degree)
	seq.ForEach(s, func(x T) {
		buf = append(buf, x)
		if len(buf) == int(v.degree) {
			v = v.appendChunk(buf)
			buf = make([]T, 0, v.degree)
		}
	})
	if len(buf) > 0 {
		v = v.appendChunk(buf)
	}
	return v
}

// --- API -------------------------------------------------------------------

// Len returns the number of items in v.
func (v Vector[T]) Len() int {
	return int(v.length)
}

// Last returns the last item of v, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if v.length == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Get returns the item at index i. It panics with an error wrapping
// ErrIndexOutOfBounds if i is not in [0, Len()).
func (v Vector[T]) Get(i int) T {
	if err := v.checkIndex(i); err != nil {
		panic(err)
	}
	v.props = v.props.init()
	return v.arrayFor(uint32(i))[uint32(i)&v.mask]
}

// At returns the item at index i, or an error wrapping ErrIndexOutOfBounds if i
// is not in [0, Len()).
func (v Vector[T]) At(i int) result.Result[T] {
	if err := v.checkIndex(i); err != nil {
		return result.Err[T](err)
	}
	return result.Ok(v.Get(i))
}

func (v Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= int(v.length) {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfBounds, i, v.length)
	}
	return nil
}

// Set returns a copy of v with the item at index i replaced by value. It panics
// with an error wrapping ErrIndexOutOfBounds if i is not in [0, Len()).
func (v Vector[T]) Set(i int, value T) Vector[T] {
	if err := v.checkIndex(i); err != nil {
		panic(err)
	}
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		newTail := make([]T, len(v.tail))
		copy(newTail, v.tail)
		newTail[uint32(i)&v.mask] = value
		return Vector[T]{props: v.props, length: v.length, root: v.root, tail: newTail}
	}
	path := v.pathTo(uint32(i), make(slotPath[T], 0, v.shift/v.bits+1))
	leaf := path.last().clone() // copy-on-write
	leaf.node.leafs[leaf.inx] = value
	newRoot := path.dropLast().foldR(cloneSeam[T], leaf)
	return Vector[T]{props: v.props, length: v.length, root: newRoot.node, tail: v.tail}
}

// Append returns a copy of v with value appended at the end.
func (v Vector[T]) Append(value T) Vector[T] {
	v.props = v.props.init()
	if v.length == 0 || !v.tailFull() { // just append value to tail
		return v.topUp([]T{value})
	}
	tracer().Debugf("tail is full, moving it into the tree")
	return v.flushTail([]T{value})
}

// Pop returns a copy of v without its last item. It panics with ErrEmpty if v is
// empty.
func (v Vector[T]) Pop() Vector[T] {
	if v.length == 0 {
		panic(ErrEmpty)
	}
	v.props = v.props.init()
	if v.length == 1 {
		return Vector[T]{props: v.props.withShift(v.bits)}
	}
	if v.length-v.tailOffset() > 1 {
		newTail := make([]T, len(v.tail)-1)
		copy(newTail, v.tail)
		return Vector[T]{props: v.props, length: v.length - 1, root: v.root, tail: newTail}
	}
	// tail vanishes ⇒ rightmost leaf of the tree becomes the new tail
	newTail := v.arrayFor(v.length - 2)
	newRoot := v.popLeaf(v.shift, v.root)
	shift := v.shift
	if newRoot != nil && shift > v.bits && newRoot.children[1] == nil {
		newRoot = newRoot.children[0] // can lower the height
		shift -= v.bits
		tracer().Debugf("vector of length %d shrinks to height %d", v.length-1, shift/v.bits)
	}
	return Vector[T]{props: v.props.withShift(shift), length: v.length - 1, root: newRoot, tail: newTail}
}

// Concat returns a vector holding the items of v followed by the items of other.
// other is appended leaf by leaf: if v's tail is full and both vectors have the same
// degree, the leafs of other are shared instead of copied.
func (v Vector[T]) Concat(other Vector[T]) Vector[T] {
	if other.length == 0 {
		return v
	}
	v.props = v.props.init()
	other.props = other.props.init()
	if v.length == 0 && v.bits == other.bits {
		return other
	}
	w := v
	for off := uint32(0); off < other.length; off += other.degree {
		chunk := other.arrayFor(off)
		chunk = chunk[:min(len(chunk), int(other.length-off))]
		for len(chunk) > 0 {
			if w.length == 0 || w.tailFull() {
				n := min(len(chunk), int(w.degree))
				w = w.appendChunk(chunk[:n])
				chunk = chunk[n:]
				continue
			}
			n := min(len(chunk), int(w.degree)-len(w.tail))
			w = w.topUp(chunk[:n])
			chunk = chunk[n:]
		}
	}
	return w
}

// Seq returns v as a lazy sequence. Each iterator runs over v from index 0.
func (v Vector[T]) Seq() seq.Seq[T] {
	return seq.Func[T](func() seq.Iterator[T] {
		return v.iterator()
	})
}

// Fold accumulates the items of v from left to right, starting with seed.
func (v Vector[T]) Fold(seed T, f func(T, T) T) T {
	return FoldLeft(v, seed, f)
}

// FoldLeft accumulates the items of v from left to right, starting with seed.
func FoldLeft[T, R any](v Vector[T], seed R, f func(R, T) R) R {
	acc := seed
	it := v.iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		acc = f(acc, x)
	}
	return acc
}

// ToSlice returns the items of v as a new slice.
func (v Vector[T]) ToSlice() []T {
	xs := make([]T, 0, v.length)
	return FoldLeft(v, xs, func(xs []T, x T) []T {
		return append(xs, x)
	})
}

// Equal is true if v and other have the same length and equal items at every index.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if v.length != other.length {
		return false
	}
	a, b := v.iterator(), other.iterator()
	for x, ok := a.Next(); ok; x, ok = a.Next() {
		y, _ := b.Next()
		if !hashing.Equal(x, y) {
			return false
		}
	}
	return true
}

// Hash returns a hash code for v, consistent with Equal.
func (v Vector[T]) Hash() uint64 {
	return FoldLeft(v, hashing.Hash(v.length), func(h uint64, x T) uint64 {
		return hashing.Combine(h, hashing.Hash(x))
	})
}

func (v Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	it := v.iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		if it.i > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Iterator --------------------------------------------------------------

// iterator walks a vector leaf by leaf.
type iterator[T any] struct {
	v     Vector[T]
	i     uint32
	chunk []T
}

func (v Vector[T]) iterator() *iterator[T] {
	v.props = v.props.init()
	return &iterator[T]{v: v}
}

func (it *iterator[T]) Next() (T, bool) {
	if it.i >= it.v.length {
		var zero T
		return zero, false
	}
	inx := it.i & it.v.mask
	if it.chunk == nil || inx == 0 {
		it.chunk = it.v.arrayFor(it.i)
	}
	it.i++
	return it.chunk[inx], true
}

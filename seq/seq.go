package seq

// Iterator hands out the elements of a sequence, one at a time. After Next has
// returned false, it will keep returning false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Seq is a lazy, restartable sequence of values.
type Seq[T any] interface {
	Iterator() Iterator[T]
}

// Func adapts a function creating fresh iterators to the Seq interface.
type Func[T any] func() Iterator[T]

func (f Func[T]) Iterator() Iterator[T] {
	return f()
}

// IteratorFunc adapts a function to the Iterator interface.
type IteratorFunc[T any] func() (T, bool)

func (f IteratorFunc[T]) Next() (T, bool) {
	return f()
}

// --- Sources ---------------------------------------------------------------

// Empty returns a sequence without elements.
func Empty[T any]() Seq[T] {
	return Func[T](func() Iterator[T] {
		return IteratorFunc[T](func() (T, bool) {
			var zero T
			return zero, false
		})
	})
}

// Of returns a sequence of the given items. The items are copied.
func Of[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

// FromSlice returns a sequence of the elements of xs. xs is copied, changes to xs
// after the call do not show up in the sequence.
func FromSlice[T any](xs []T) Seq[T] {
	items := make([]T, len(xs))
	copy(items, xs)
	return sliceSeq[T](items)
}

type sliceSeq[T any] []T

func (s sliceSeq[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{items: s}
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}
	x := it.items[it.pos]
	it.pos++
	return x, true
}

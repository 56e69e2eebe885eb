package seq

// Every stage of a pipeline wraps the upstream Seq into a Func. Calling Iterator()
// on a stage asks the upstream stage for a fresh iterator, which is why pipelines
// restart from their source on every drain.

// Map returns a sequence of f applied to each element of s.
func Map[S, T any](s Seq[S], f func(S) T) Seq[T] {
	return Func[T](func() Iterator[T] {
		src := s.Iterator()
		return IteratorFunc[T](func() (T, bool) {
			x, ok := src.Next()
			if !ok {
				var zero T
				return zero, false
			}
			return f(x), true
		})
	})
}

// FlatMap applies f to each element of s and flattens the resulting sequences
// into one. Order is preserved: all elements of f(s₀) come before those of f(s₁).
func FlatMap[S, T any](s Seq[S], f func(S) Seq[T]) Seq[T] {
	return Func[T](func() Iterator[T] {
		src := s.Iterator()
		var inner Iterator[T]
		return IteratorFunc[T](func() (T, bool) {
			for {
				if inner != nil {
					if y, ok := inner.Next(); ok {
						return y, true
					}
					inner = nil
				}
				x, ok := src.Next()
				if !ok {
					var zero T
					return zero, false
				}
				inner = f(x).Iterator()
			}
		})
	})
}

// Filter returns a sequence of the elements of s for which keep is true.
func Filter[T any](s Seq[T], keep func(T) bool) Seq[T] {
	return Func[T](func() Iterator[T] {
		src := s.Iterator()
		return IteratorFunc[T](func() (T, bool) {
			for {
				x, ok := src.Next()
				if !ok || keep(x) {
					return x, ok
				}
			}
		})
	})
}

// Take returns a sequence of at most the first n elements of s. Elements of s
// beyond the first n are never computed.
func Take[T any](s Seq[T], n int) Seq[T] {
	return Func[T](func() Iterator[T] {
		src := s.Iterator()
		taken := 0
		return IteratorFunc[T](func() (T, bool) {
			if taken >= n {
				var zero T
				return zero, false
			}
			taken++
			return src.Next()
		})
	})
}

// Drop returns a sequence of the elements of s without the first n.
func Drop[T any](s Seq[T], n int) Seq[T] {
	return Func[T](func() Iterator[T] {
		src := s.Iterator()
		dropped := false
		return IteratorFunc[T](func() (T, bool) {
			if !dropped {
				dropped = true
				for i := 0; i < n; i++ {
					if _, ok := src.Next(); !ok {
						break
					}
				}
			}
			return src.Next()
		})
	})
}

// TakeWhile returns the longest prefix of s whose elements satisfy pred.
func TakeWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return Func[T](func() Iterator[T] {
		src := s.Iterator()
		done := false
		return IteratorFunc[T](func() (T, bool) {
			var zero T
			if done {
				return zero, false
			}
			x, ok := src.Next()
			if !ok || !pred(x) {
				done = true
				return zero, false
			}
			return x, true
		})
	})
}

// DropWhile returns s without its longest prefix of elements satisfying pred.
func DropWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return Func[T](func() Iterator[T] {
		src := s.Iterator()
		dropping := true
		return IteratorFunc[T](func() (T, bool) {
			for {
				x, ok := src.Next()
				if !ok || !dropping || !pred(x) {
					dropping = false
					return x, ok
				}
			}
		})
	})
}

// Concat returns the elements of all sequences in ss, one after the other.
func Concat[T any](ss ...Seq[T]) Seq[T] {
	parts := make([]Seq[T], len(ss))
	copy(parts, ss)
	return Func[T](func() Iterator[T] {
		i := 0
		var cur Iterator[T]
		return IteratorFunc[T](func() (T, bool) {
			for i < len(parts) {
				if cur == nil {
					cur = parts[i].Iterator()
				}
				if x, ok := cur.Next(); ok {
					return x, true
				}
				cur = nil
				i++
			}
			var zero T
			return zero, false
		})
	})
}

// --- Consumers -------------------------------------------------------------

// FoldLeft accumulates the elements of s from left to right, starting with seed.
// It drains s once and visits every element.
func FoldLeft[T, R any](s Seq[T], seed R, f func(R, T) R) R {
	acc := seed
	it := s.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		acc = f(acc, x)
	}
	return acc
}

// ForEach calls f for every element of s, in order.
func ForEach[T any](s Seq[T], f func(T)) {
	it := s.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		f(x)
	}
}

// Count drains s and returns the number of its elements.
func Count[T any](s Seq[T]) int {
	return FoldLeft(s, 0, func(n int, _ T) int {
		return n + 1
	})
}

// Any reports whether some element of s satisfies pred. It stops at the first
// such element.
func Any[T any](s Seq[T], pred func(T) bool) bool {
	it := s.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		if pred(x) {
			return true
		}
	}
	return false
}

// ToSlice drains s into a new slice.
func ToSlice[T any](s Seq[T]) []T {
	return FoldLeft(s, []T{}, func(xs []T, x T) []T {
		return append(xs, x)
	})
}

/*
Package maybe implements optional values.

A Maybe either holds a value (Just) or it doesn't (Nothing). Persistent collections
use it as the answer to lookups which may miss, e.g. looking up an absent key in a
map. A miss is a normal outcome, not an error.

Clients may pattern-match on a Maybe:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        // use v
    case m.Nothing():
        // no value
    }

or simply ask for the value with a fallback: `x.WithDefault(0)`.
*/
package maybe

import "fmt"

// Maybe is a value which may be absent.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Get() (T, bool)
	IsJust() bool
	String() string
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x as a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// From converts a Go-style “comma ok” pair into a Maybe.
func From[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if present, possibly changing its type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}

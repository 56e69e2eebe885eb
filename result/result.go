/*
Package result implements values for computations which may fail.

A Result either holds a value (Ok) or an error (Err). Persistent vectors hand out
a Result for indexed access which should not panic on a bad index.
*/
package result

import "fmt"

// Result is either a value or an error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsOk() bool
	WithDefault(T) T
	String() string
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful outcome.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. err should be non-nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// From converts a Go-style (value, error) pair into a Result.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

func (r result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%s)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies f to the value of an Ok result; errors pass through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}

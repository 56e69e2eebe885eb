package hashing

import (
	"encoding/binary"
	"math"
	"math/bits"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes hash codes for and decides equality of values of type K.
// Implementations must guarantee that Equal(a, b) implies Hash(a) == Hash(b).
type Hasher[K any] interface {
	Hash(K) uint64
	Equal(K, K) bool
}

// Default returns a hasher suitable for most key types. See the package
// documentation for how values are treated.
func Default[K any]() Hasher[K] {
	return defaultHasher[K]{}
}

type defaultHasher[K any] struct{}

func (defaultHasher[K]) Hash(k K) uint64 {
	return Hash(k)
}

func (defaultHasher[K]) Equal(a, b K) bool {
	return Equal(a, b)
}

// Hash returns a hash code for x.
func Hash[T any](x T) uint64 {
	switch v := any(x).(type) {
	case nil:
		return 0
	case interface{ Hash() uint64 }:
		return v.Hash()
	case string:
		return xxhash.Sum64String(v)
	case []byte:
		return xxhash.Sum64(v)
	case bool:
		if v {
			return hashUint(1)
		}
		return hashUint(0)
	case int:
		return hashUint(uint64(v))
	case int8:
		return hashUint(uint64(v))
	case int16:
		return hashUint(uint64(v))
	case int32:
		return hashUint(uint64(v))
	case int64:
		return hashUint(uint64(v))
	case uint:
		return hashUint(uint64(v))
	case uint8:
		return hashUint(uint64(v))
	case uint16:
		return hashUint(uint64(v))
	case uint32:
		return hashUint(uint64(v))
	case uint64:
		return hashUint(v)
	case uintptr:
		return hashUint(uint64(v))
	case float32:
		return hashFloat(float64(v))
	case float64:
		return hashFloat(v)
	}
	rv := reflect.ValueOf(any(x))
	return hashValue(rv, !rv.Type().Comparable(), 0)
}

// maxDepth limits how far hashValue follows pointers. Values nested deeper do not
// contribute to the hash code.
const maxDepth = 16

// hashValue hashes v structurally. In deep mode, v is compared with
// reflect.DeepEqual, which looks through pointers. Otherwise v is compared with
// `==`, which compares pointers by address.
func hashValue(v reflect.Value, deep bool, depth int) uint64 {
	if !v.IsValid() || depth > maxDepth {
		return 0
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return hashUint(1)
		}
		return hashUint(0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashUint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashUint(v.Uint())
	case reflect.Float32, reflect.Float64:
		return hashFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return Combine(hashFloat(real(c)), hashFloat(imag(c)))
	case reflect.String:
		return xxhash.Sum64String(v.String())
	case reflect.Chan, reflect.UnsafePointer:
		return hashUint(uint64(v.Pointer()))
	case reflect.Func:
		return 0 // only nil funcs are equal
	case reflect.Ptr:
		if !deep || v.IsNil() {
			return hashUint(uint64(v.Pointer()))
		}
		return hashValue(v.Elem(), deep, depth+1)
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem(), deep, depth+1)
	case reflect.Struct:
		h := hashUint(uint64(v.NumField()))
		for i := 0; i < v.NumField(); i++ {
			h = Combine(h, hashValue(v.Field(i), deep, depth+1))
		}
		return h
	case reflect.Array, reflect.Slice:
		h := hashUint(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			h = Combine(h, hashValue(v.Index(i), deep, depth+1))
		}
		return h
	case reflect.Map:
		h := hashUint(uint64(v.Len()))
		it := v.MapRange()
		for it.Next() { // map keys are compared with `==`
			h += Entry(hashValue(it.Key(), false, depth+1), hashValue(it.Value(), deep, depth+1))
		}
		return h
	}
	return 0
}

func hashUint(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return xxhash.Sum64(buf[:])
}

func hashFloat(f float64) uint64 {
	if f == 0 { // +0 == -0
		f = 0
	}
	return hashUint(math.Float64bits(f))
}

// hashEqualer is implemented by types which define their own equality, together
// with a consistent hash code.
type hashEqualer[T any] interface {
	Hash() uint64
	Equal(T) bool
}

// Equal reports whether a and b are equal. Types with methods `Hash() uint64` and
// `Equal(T) bool` decide for themselves. An Equal method alone is not used, as
// Hash could not know about it.
func Equal[T any](a, b T) bool {
	if e, ok := any(a).(hashEqualer[T]); ok {
		return e.Equal(b)
	}
	t := reflect.TypeOf(any(a))
	if t == nil || t.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}

// Combine mixes hash code h into an accumulated hash code acc. The result depends
// on the order of combination.
func Combine(acc, h uint64) uint64 {
	return acc ^ (h + 0x9e3779b97f4a7c15 + (acc << 6) + (acc >> 2))
}

// Entry returns a hash code for a key/value pair. Summing entry hashes gives an
// order-independent hash for a collection of pairs.
func Entry(hk, hv uint64) uint64 {
	return hk ^ bits.RotateLeft64(hv, 31)
}

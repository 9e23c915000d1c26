package engine

import (
	"reflect"
	"unsafe"

	"github.com/modern-go/reflect2"

	"github.com/hupe1980/dsgo/internal/diag"
)

// PushValue appends the in-memory bytes of an arbitrary Go value, saving
// callers from building byte slices by hand. The value's size must equal
// the array's element size or the push fails with ErrTypeMismatch.
//
// The raw-bytes caveat of the package applies: a value carrying Go
// pointers is stored invisibly to the garbage collector.
func (a *Array) PushValue(v any) error {
	if !a.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	if v == nil {
		diag.Fail("v != nil")
		return ErrTypeMismatch
	}

	typ := reflect2.TypeOf(v)
	size := int(typ.Type1().Size())
	if size != a.elemSize {
		diag.Fail("sizeof(v) == elemSize")
		return ErrTypeMismatch
	}

	var src unsafe.Pointer
	switch typ.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		// Pointer-shaped values live directly in the interface word;
		// everything else is boxed and the word points at the data.
		word := reflect2.PtrOf(v)
		src = unsafe.Pointer(&word)
	default:
		src = reflect2.PtrOf(v)
	}

	return a.Push(unsafe.Slice((*byte)(src), size))
}

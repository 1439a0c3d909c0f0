package optref

import (
	"reflect"

	"github.com/muir/optref/internal/convert"
)

// The comparison protocol is value comparison, never address
// comparison. A view over 5 at one address equals a view over 5 at
// another. Callers that want reference identity compare Pointer
// results explicitly. Emptiness needs no comparability at all:
// Equal(r, None[T]()) is exactly !r.HasValue().

// Equal compares two views by the values of their referents. Two
// empty views are equal; an empty and a present view never are. When
// the referent types differ, the values are compared through a
// widening conversion if one exists; views over unrelated types are
// unequal, not a compile error.
func Equal[T, U comparable](a Ref[T], b Ref[U]) bool {
	if a.ptr == nil || b.ptr == nil {
		return a.ptr == nil && b.ptr == nil
	}
	if p, ok := any(b.ptr).(*T); ok {
		return *a.ptr == *p
	}
	return convert.Equal(reflect.ValueOf(a.ptr).Elem(), reflect.ValueOf(b.ptr).Elem())
}

// EqualValue compares a view to a bare value: true iff the view is
// present and the referent equals v, with the same cross-type rules
// as Equal.
func EqualValue[T, U comparable](r Ref[T], v U) bool {
	if r.ptr == nil {
		return false
	}
	if u, ok := any(v).(T); ok {
		return *r.ptr == u
	}
	return convert.Equal(reflect.ValueOf(r.ptr).Elem(), reflect.ValueOf(v))
}

// NotEqual is the negation of Equal.
func NotEqual[T, U comparable](a Ref[T], b Ref[U]) bool {
	return !Equal(a, b)
}

// NotEqualValue is the negation of EqualValue.
func NotEqualValue[T, U comparable](r Ref[T], v U) bool {
	return !EqualValue(r, v)
}

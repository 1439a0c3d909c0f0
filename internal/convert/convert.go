/*
Package convert answers the two type-relation questions the rest of
the module is built on: may an address of one referent type serve as
an address of another, and can values of two types be compared for
equality.

Both questions are answered with reflect because Go generics cannot
constrain on type relations. The answers never depend on runtime
state, only on the types, so a rejected relation is rejected before
any view over it can exist.
*/
package convert

import "reflect"

// Pointer reports whether an address of a src referent may serve as
// an address of a dst referent without copying: the types are
// identical, or they are named types over one underlying type so the
// pointer conversion aliases the same memory.
func Pointer(src, dst reflect.Type) bool {
	if src == dst {
		return true
	}
	if src.Kind() == reflect.Interface || dst.Kind() == reflect.Interface {
		return false
	}
	return reflect.PointerTo(src).ConvertibleTo(reflect.PointerTo(dst))
}

// Implements reports whether iface is an interface type satisfied by
// an address of a src referent. Interface-to-interface narrowing is
// excluded: only src interfaces that statically satisfy iface pass.
func Implements(src, iface reflect.Type) bool {
	if iface.Kind() != reflect.Interface {
		return false
	}
	if src.Kind() == reflect.Interface {
		return src.Implements(iface)
	}
	return src.Implements(iface) || reflect.PointerTo(src).Implements(iface)
}

// Convertible is the full one-directional convertibility predicate:
// a view over src may become a view over dst.
func Convertible(src, dst reflect.Type) bool {
	return Pointer(src, dst) || Implements(src, dst)
}

// ValueConvertible reports whether a value of type src may be
// converted to a dst value for by-value use. Go's code point
// conversion between integers and strings is excluded: it changes
// representation, which is not what a value escape means.
func ValueConvertible(src, dst reflect.Type) bool {
	if (src.Kind() == reflect.String) != (dst.Kind() == reflect.String) {
		if rank(src) > 0 || rank(dst) > 0 {
			return false
		}
	}
	return src.ConvertibleTo(dst)
}

// EqualityComparable reports whether values of the two types can be
// compared: identical comparable types, or distinct comparable types
// where one converts to the other without changing representation.
// String/number cross conversions are excluded because Go converts an
// integer to a string by code point, which is not a comparison.
func EqualityComparable(a, b reflect.Type) bool {
	if !a.Comparable() || !b.Comparable() {
		return false
	}
	if a == b {
		return true
	}
	if (a.Kind() == reflect.String) != (b.Kind() == reflect.String) {
		return false
	}
	return a.ConvertibleTo(b) || b.ConvertibleTo(a)
}

// Equal compares two values of possibly different types, converting
// across them when EqualityComparable allows. Values of unrelated
// types are never equal.
func Equal(a, b reflect.Value) bool {
	if !EqualityComparable(a.Type(), b.Type()) {
		return false
	}
	if a.Type() != b.Type() {
		a, b = align(a, b)
	}
	return a.Interface() == b.Interface()
}

// align converts one operand to the other's type, choosing the
// direction that cannot truncate: narrow numbers widen, integers
// widen to floats, floats widen to complex, never the reverse.
// Same-size signed and unsigned integers have no lossless direction;
// the conversion wraps, so a negative value compares equal to its
// unsigned bit pattern, as integer conversion always does in Go.
func align(a, b reflect.Value) (reflect.Value, reflect.Value) {
	switch {
	case wider(b.Type(), a.Type()) && a.Type().ConvertibleTo(b.Type()):
		return a.Convert(b.Type()), b
	case b.Type().ConvertibleTo(a.Type()):
		return a, b.Convert(a.Type())
	default:
		return a.Convert(b.Type()), b
	}
}

func wider(a, b reflect.Type) bool {
	if rank(a) != rank(b) {
		return rank(a) > rank(b)
	}
	return a.Size() > b.Size()
}

func rank(t reflect.Type) int {
	switch t.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return 3
	case reflect.Float32, reflect.Float64:
		return 2
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 1
	default:
		return 0
	}
}

package optref

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/muir/optref/internal/convert"
	"github.com/muir/optref/optional"
)

// typeOf names a type parameter, including interface types, which
// reflect.TypeOf on a value cannot do.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Convertible reports whether a view over From converts to a view
// over To: the types are identical, they are named types sharing one
// underlying type, or To is an interface satisfied by *From. The
// predicate is one-directional; the reverse of any non-identity
// conversion is rejected. It depends only on the two types, so what
// it rejects can never produce a view at all.
func Convertible[To, From any]() bool {
	return convert.Convertible(typeOf[From](), typeOf[To]())
}

// Convert rebuilds a view over a different referent type, gated by
// Convertible. An empty view converts to an empty view. For
// identical or memory-aliasing types the result shares the original
// address; for an interface target see Widen's note on identity.
func Convert[To, From any](r Ref[From]) (Ref[To], error) {
	src, dst := typeOf[From](), typeOf[To]()
	switch {
	case convert.Pointer(src, dst):
		if r.ptr == nil {
			return Ref[To]{}, nil
		}
		p := reflect.ValueOf(r.ptr).Convert(reflect.PointerTo(dst)).Interface().(*To)
		return Ref[To]{ptr: p}, nil
	case convert.Implements(src, dst):
		if r.ptr == nil {
			return Ref[To]{}, nil
		}
		return widenInto[To](r.ptr, src, dst), nil
	}
	return Ref[To]{}, ConversionError(errors.Errorf("no view conversion from %s to %s", src, dst))
}

// MustConvert is Convert for conversions the caller knows are legal;
// it panics on rejection.
func MustConvert[To, From any](r Ref[From]) Ref[To] {
	c, err := Convert[To](r)
	if err != nil {
		panic(err)
	}
	return c
}

// Widen converts a view over a concrete type to a view over an
// interface it satisfies. The result views a freshly allocated
// interface cell whose dynamic value is the original address, so the
// referent is shared (mutations and method calls reach the original
// object) but Pointer identity is not preserved across the
// conversion: Go interfaces are cells, not subobject addresses.
func Widen[I, From any](r Ref[From]) (Ref[I], error) {
	if typeOf[I]().Kind() != reflect.Interface {
		return Ref[I]{}, ConversionError(errors.Errorf("widen target %s is not an interface", typeOf[I]()))
	}
	return Convert[I](r)
}

func widenInto[To, From any](p *From, src, dst reflect.Type) Ref[To] {
	var cell To
	cv := reflect.ValueOf(&cell).Elem()
	pv := reflect.ValueOf(p)
	switch {
	case src.Kind() == reflect.Interface:
		// Interface to wider interface: carry the dynamic value over.
		cv.Set(pv.Elem())
	case pv.Type().Implements(dst):
		cv.Set(pv)
	default:
		// The referent type is itself a pointer satisfying dst, so
		// the pointer value carries over and identity still holds.
		cv.Set(pv.Elem())
	}
	return Ref[To]{ptr: &cell}
}

// AsOptionalOf is Ref.AsOptional with a value conversion, for
// escaping to a container over a different element type. It is a
// free function because Go methods cannot introduce type parameters.
func AsOptionalOf[To, From any](r Ref[From]) (optional.Value[To], error) {
	src, dst := typeOf[From](), typeOf[To]()
	if !convert.ValueConvertible(src, dst) && !convert.Implements(src, dst) {
		return optional.None[To](), ConversionError(errors.Errorf("no value conversion from %s to %s", src, dst))
	}
	if r.ptr == nil {
		return optional.None[To](), nil
	}
	var out To
	ov := reflect.ValueOf(&out).Elem()
	rv := reflect.ValueOf(r.ptr).Elem()
	if convert.ValueConvertible(src, dst) {
		ov.Set(rv.Convert(dst))
	} else {
		// The target interface is satisfied only by *From: box the
		// address of a fresh copy so the result still owns its value.
		cp := reflect.New(src)
		cp.Elem().Set(rv)
		ov.Set(cp)
	}
	return optional.Some(out), nil
}

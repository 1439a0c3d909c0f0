package optref

import (
	"fmt"

	"github.com/mohae/deepcopy"

	"github.com/muir/optref/internal/hardening"
	"github.com/muir/optref/internal/pointer"
	"github.com/muir/optref/optional"
)

// Ref is a nullable, non-owning view of a T. It is either empty or
// present over exactly one address, decided at construction; there is
// no API to reseat or clear it afterwards. The zero value is empty.
// Copies share the address and never touch the referent.
type Ref[T any] struct {
	ptr *T
}

// None returns an empty view. It is the explicit spelling of the
// zero value.
func None[T any]() Ref[T] {
	return Ref[T]{}
}

// Of returns a present view over its argument. Go passes arguments
// by value, so the view refers to the call's own copy: hand Of an
// expression result to get a view over that temporary, or use
// FromPtr(&x) to view a variable in place.
func Of[T any](v T) Ref[T] {
	return Ref[T]{ptr: &v}
}

// FromPtr returns a view over the pointee: present iff p is non-nil.
// For a pointer-valued referent type there is no ambiguity to guard
// against: a present Ref[*U] over a nil pointer value requires an
// explicit cell, as in var p *U; FromPtr(&p).
func FromPtr[T any](p *T) Ref[T] {
	return Ref[T]{ptr: p}
}

// FromOptional returns a view mirroring the container's state: empty
// when o holds nothing, otherwise present over the container's own
// cell, without copying. The view is invalidated the same way any
// borrowed pointer would be if the container is later overwritten.
func FromOptional[T any](o *optional.Value[T]) Ref[T] {
	if o == nil {
		return Ref[T]{}
	}
	return Ref[T]{ptr: o.Ref()}
}

// HasValue reports whether the view is present.
func (r Ref[T]) HasValue() bool {
	return r.ptr != nil
}

// Value returns the referent, or ErrEmptyAccess when the view is
// empty. The failure is exactly the failure of reading an empty
// optional.Value.
func (r Ref[T]) Value() (T, error) {
	if r.ptr == nil {
		return pointer.Zero[T](), optional.EmptyAccess()
	}
	return *r.ptr, nil
}

// MustValue is Value for callers that treat emptiness as fatal: it
// panics with ErrEmptyAccess instead of returning an error.
func (r Ref[T]) MustValue() T {
	if r.ptr == nil {
		panic(optional.EmptyAccess())
	}
	return *r.ptr
}

// ValueOr returns the referent when present, else def.
func (r Ref[T]) ValueOr(def T) T {
	if r.ptr == nil {
		return def
	}
	return *r.ptr
}

// Deref returns the referent without checking for presence. The
// precondition is HasValue: an empty view panics on the nil
// dereference in a normal build, and aborts the process in a build
// with the "optrefhardened" tag. Use Value for a checked read.
func (r Ref[T]) Deref() T {
	if hardening.Enabled && r.ptr == nil {
		hardening.Abort("Deref of an empty Ref")
	}
	return *r.ptr
}

// Pointer returns the stored address verbatim: nil when empty. It is
// the way to reach the referent for mutation or member access, and
// the opt-in for address-identity comparison, which Equal
// deliberately does not provide.
func (r Ref[T]) Pointer() *T {
	return r.ptr
}

// AsOptional copies the view out into an owned container: empty for
// an empty view, otherwise a container holding a copy of the
// referent. This is the one operation on a present view that copies;
// it exists so callers can escape the borrowed lifetime.
func (r Ref[T]) AsOptional() optional.Value[T] {
	if r.ptr == nil {
		return optional.None[T]()
	}
	return optional.Some(*r.ptr)
}

// Detached is AsOptional for referents with interior pointers: the
// copy is deep, so nothing reachable from the result aliases the
// referent.
func (r Ref[T]) Detached() optional.Value[T] {
	if r.ptr == nil {
		return optional.None[T]()
	}
	return optional.Some(deepcopy.Copy(*r.ptr).(T))
}

// String formats the view for debugging: "empty", or the referent.
func (r Ref[T]) String() string {
	if r.ptr == nil {
		return "empty"
	}
	return fmt.Sprint(*r.ptr)
}

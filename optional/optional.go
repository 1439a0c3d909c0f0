/*
Package optional provides Value, an owned optional container: a value
of type T together with a presence bit. Value has plain value
semantics. Copies are independent and do not share storage, unlike
the reference view in the parent package, which only points at values
owned elsewhere.

The two packages are bridged in both directions: optref.FromOptional
makes a view over a container's live cell, and optref's AsOptional
family copies a referent back out into a container.
*/
package optional

import (
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"

	"github.com/muir/optref/internal/pointer"
)

// ErrEmpty is the sentinel reported by every checked access, in this
// package and in optref, that observes no value. Match it with
// errors.Is.
var ErrEmpty = errors.New("no value present")

// EmptyAccess returns the error a checked access reports when it
// observes no value: ErrEmpty annotated with the failing call stack
// and classified as a programmer error.
func EmptyAccess() error {
	return commonerrors.ProgrammerError(errors.WithStack(ErrEmpty))
}

// Value is an optional T. The zero value is empty.
type Value[T any] struct {
	value   T
	present bool
}

// Some returns a container holding a copy of v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an empty container.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr copies the pointee into a fresh container. A nil pointer
// yields an empty container.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Value[T]{}
	}
	return Some(*p)
}

// IsPresent reports whether the container holds a value.
func (v Value[T]) IsPresent() bool {
	return v.present
}

// Get returns the held value, or EmptyAccess when there is none.
func (v Value[T]) Get() (T, error) {
	if !v.present {
		return pointer.Zero[T](), EmptyAccess()
	}
	return v.value, nil
}

// MustGet is Get for callers that treat emptiness as fatal: it
// panics with EmptyAccess instead of returning an error.
func (v Value[T]) MustGet() T {
	if !v.present {
		panic(EmptyAccess())
	}
	return v.value
}

// GetOr returns the held value, or def when there is none.
func (v Value[T]) GetOr(def T) T {
	if !v.present {
		return def
	}
	return v.value
}

// Ptr returns the address of a copy of the held value, or nil when
// there is none. Writes through the result do not affect the
// container.
func (v Value[T]) Ptr() *T {
	if !v.present {
		return nil
	}
	return pointer.To(v.value)
}

// Ref returns the address of the container's own cell, or nil when
// there is no value. The result aliases the container: writes
// through it are visible to later reads. This is what lets a
// reference view borrow a container without copying.
func (v *Value[T]) Ref() *T {
	if !v.present {
		return nil
	}
	return &v.value
}

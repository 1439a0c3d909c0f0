/*
Package optref provides Ref, a nullable view of a value that is owned
elsewhere. A Ref records whether an address is present and, if so,
where it points. It never copies the referent, never frees it, and
cannot be reseated: once constructed its referential state is fixed.

Ref exists so that functions can accept "maybe-present" references
without inventing nil-pointer conventions and without forcing callers
to build an owned container. Pass it by value; it is one word.

A Ref can be built in these ways:

	ref := optref.None[int]()           // empty
	var ref optref.Ref[int]             // zero value, also empty
	ref := optref.Of(compute())         // view over the call's copy
	ref := optref.FromPtr(&x)           // view over x; nil means empty
	ref := optref.FromOptional(&opt)    // borrow an optional.Value cell
	ref2, err := optref.Convert[B](ref) // view over a convertible type

Checked access goes through Value (error return) or MustValue
(panic); both report the same condition as reading an empty
optional.Value. Unchecked access goes through Deref and carries a
precondition instead of a check: dereferencing an empty view panics
in a normal build, and in a build with the "optrefhardened" tag it
deterministically aborts the process.

Equality, via Equal and EqualValue, compares referent values, never
addresses. Two present views over equal values at different addresses
are equal. Callers that want address identity compare Pointer results
explicitly.

Ref is not a container and does not keep values alive on its own
terms; it simply holds a pointer, so the garbage collector treats it
like any other pointer. Concurrent use of a Ref is safe because it is
immutable; concurrent use of the referent is whatever the referent's
own rules say it is.
*/
package optref

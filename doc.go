// SPDX-License-Identifier: GPL-3.0-or-later

// Package procedure invokes heterogeneous stored procedures through one
// common interface.
//
// # Core Abstraction
//
// The package is built around a single interface:
//
//	type Procedure[A, R any] interface {
//		Call(input A) R
//	}
//
// A Procedure wraps exactly one callable with a fixed signature, decided
// when the wrapper is constructed. The input type A and result type R are
// checked by the compiler; there is no runtime signature tag. Use [Unit] when
// a procedure takes no argument or returns no value, and a struct when it
// takes more than one.
//
// # Callable Kinds
//
// Four kinds of callables can be wrapped, each by a non-owning binding:
//
//   - free functions, via [Procure] (a [*Function])
//   - objects whose pointer implements [Procedure], via [ProcureObject]
//   - closures held in a variable, via [ProcureClosure] (both are [*Object])
//   - a receiver paired with a method expression, via [ProcureMethod]
//     (a [*Method])
//
// Object and method constructors need the [Signature] marker returned by
// [Guide] because Go cannot infer type arguments from a method set:
//
//	obj := &Counter{}
//	proc := procedure.ProcureObject(obj, procedure.Guide[int, int]())
//	meth, err := procedure.ProcureMethod(cfg, obj, (*Counter).Add, procedure.Guide[int, int]())
//
// Wrappers never copy or own the callable. The caller must keep the object,
// receiver, or closure variable alive and unchanged for as long as any
// wrapper refers to it.
//
// # Comparison
//
// Each constructor has a Comparably variant returning a [*Comparable], which
// implements [ComparableProcedure]. The [EqualityMode] in [Config] selects
// the strategy:
//
//   - [IdentityChecked]: two wrappers are equal when they have the same
//     [Kind] and the same binding (function entry point, object pointer, or
//     receiver pointer plus selector).
//   - [AddressOnly]: two wrappers are equal only when they are the same
//     [*Comparable] instance. Callers relying on this mode must keep exactly
//     one wrapper per callable.
//
// Use [Ref] to hold a reseatable reference to a [ComparableProcedure].
//
// # Errors
//
// Constructing a [*Method] with a nil selector fails with [ErrInvalidSelector]
// and, when selector validation is enabled, a selector that is not a method
// expression of the receiver type fails with [ErrNotMethod]. Setting
// [Config.SignalErrors] to false turns these into fatal preconditions.
//
// Invocation never fails on its own: whatever the wrapped callable returns
// or panics with reaches the caller unchanged.
//
// # Concurrency
//
// The package holds no shared mutable state. A wrapper is safe for
// concurrent use exactly when the wrapped callable is.
package procedure

// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

// Procedure is a callable with a fixed input type A and result type R.
//
// This is the sole surface for invoking unrelated kinds of callables
// uniformly. Implementations must not translate or suppress anything the
// underlying callable returns or panics with.
type Procedure[A, R any] interface {
	Call(input A) R
}

// ComparableProcedure is a [Procedure] that also supports equality with
// other procedures of the same signature.
//
// NotEqual is always the negation of Equal.
type ComparableProcedure[A, R any] interface {
	Procedure[A, R]
	Equal(other Procedure[A, R]) bool
	NotEqual(other Procedure[A, R]) bool
}

// Func wraps a function as a [Procedure] implementation.
//
// Use this to pass ad-hoc closures where a [Procedure] is expected. A Func
// has no identity: bind it through [ProcureObject] or [ProcureClosure] when
// it must take part in comparisons.
type Func[A, R any] func(input A) R

var _ Procedure[Unit, Unit] = Func[Unit, Unit](nil)

// Call implements [Procedure].
func (f Func[A, R]) Call(input A) R {
	return f(input)
}

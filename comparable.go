// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

import "github.com/bassosimone/runtimex"

// Comparable is a [ComparableProcedure] wrapping a [*Function], an
// [*Object] or a [*Method].
//
// The kind and the equality mode are fixed at construction. A Comparable
// may be copied; in [IdentityChecked] mode the copy equals the original,
// in [AddressOnly] mode it does not.
//
// Construct using [ProcureComparably], [ProcureObjectComparably],
// [ProcureClosureComparably] or [ProcureMethodComparably].
type Comparable[A, R any] struct {
	proc     boundProcedure[A, R]
	equality EqualityMode
}

var _ ComparableProcedure[Unit, Unit] = &Comparable[Unit, Unit]{}

func newComparable[A, R any](cfg *Config, proc boundProcedure[A, R]) *Comparable[A, R] {
	runtimex.Assert(cfg != nil)
	return &Comparable[A, R]{proc: proc, equality: cfg.Equality}
}

// Call invokes the wrapped procedure with input and returns its result.
func (c *Comparable[A, R]) Call(input A) R {
	return c.proc.Call(input)
}

// Kind returns the kind of the wrapped callable.
func (c *Comparable[A, R]) Kind() Kind {
	return c.proc.binding().kind
}

// Equality returns the equality mode this wrapper was built with.
func (c *Comparable[A, R]) Equality() EqualityMode {
	return c.equality
}

// Equal reports whether other refers to the same callable.
//
// In [IdentityChecked] mode, other must be a wrapper from this package, of
// either the simple or the comparable form, with the same kind and binding.
// In [AddressOnly] mode, other must be this very instance. A [Ref] is
// compared through its target, following nested references. A nil or foreign other is never equal.
func (c *Comparable[A, R]) Equal(other Procedure[A, R]) bool {
	other = unwrapRef(other)
	switch c.equality {
	case AddressOnly:
		// Operands with different dynamic types compare unequal without panicking.
		return any(c) == any(other)
	default:
		ob, ok := bindingOf(other)
		return ok && c.binding() == ob
	}
}

// NotEqual returns the negation of [*Comparable.Equal].
func (c *Comparable[A, R]) NotEqual(other Procedure[A, R]) bool {
	return !c.Equal(other)
}

func (c *Comparable[A, R]) binding() binding {
	return c.proc.binding()
}

// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

// ProcureObject returns a new [*Object] bound to obj.
//
// The *T pointer must implement [Procedure] with the signature named by
// the marker, which is typically written as [Guide]. The object is not
// copied: calls go to obj itself and equality uses its address. Pointers
// to distinct zero-size values may compare equal, so objects that take
// part in comparisons should not be zero-size.
func ProcureObject[A, R, T any, PT interface {
	*T
	Procedure[A, R]
}](obj PT, _ Signature[A, R]) *Object[A, R] {
	return &Object[A, R]{target: obj}
}

// ProcureObjectComparably is like [ProcureObject] but returns a
// [*Comparable] using the equality mode in cfg.
func ProcureObjectComparably[A, R, T any, PT interface {
	*T
	Procedure[A, R]
}](cfg *Config, obj PT, guide Signature[A, R]) *Comparable[A, R] {
	return newComparable[A, R](cfg, ProcureObject[A, R, T](obj, guide))
}

// ProcureClosure returns a new [*Object] bound to the closure stored at fn.
//
// The closure is read through fn on every call, and equality uses the
// address of the variable, so two variables holding the same closure are
// distinct objects.
func ProcureClosure[A, R any](fn *func(A) R) *Object[A, R] {
	return &Object[A, R]{target: closureRef[A, R]{fn: fn}}
}

// ProcureClosureComparably is like [ProcureClosure] but returns a
// [*Comparable] using the equality mode in cfg.
func ProcureClosureComparably[A, R any](cfg *Config, fn *func(A) R) *Comparable[A, R] {
	return newComparable[A, R](cfg, ProcureClosure(fn))
}

// Object forwards calls to a referenced callable object.
//
// Construct using [ProcureObject] or [ProcureClosure].
type Object[A, R any] struct {
	// target is either a pointer or a closureRef.
	target Procedure[A, R]
}

var _ Procedure[Unit, Unit] = &Object[Unit, Unit]{}

// Call invokes the referenced object with input and returns its result.
func (p *Object[A, R]) Call(input A) R {
	return p.target.Call(input)
}

func (p *Object[A, R]) binding() binding {
	return binding{kind: KindObject, receiver: p.target}
}

// closureRef adapts a pointer to a closure variable to [Procedure].
type closureRef[A, R any] struct {
	fn *func(A) R
}

// Call implements [Procedure].
func (c closureRef[A, R]) Call(input A) R {
	return (*c.fn)(input)
}

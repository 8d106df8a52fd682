// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

// Procure returns a new [*Function] bound to fn.
//
// The signature is deduced from the type of fn. A nil fn is accepted, but
// calling the returned wrapper then panics.
//
// The identity of a function wrapper is the entry point of fn, which does
// not include any bound state. Every method value such as obj.Method shares
// one entry point whatever its receiver, and so does every closure created
// by the same func literal whatever it captures: wrappers around them compare
// equal even when they call different objects. Use [ProcureMethod] to bind
// a method and [ProcureClosure] to bind a closure by identity.
func Procure[A, R any](fn func(A) R) *Function[A, R] {
	return &Function[A, R]{fn: fn}
}

// ProcureComparably is like [Procure] but returns a [*Comparable] using
// the equality mode in cfg.
//
// Pass only free functions when comparing: see [Procure] for why method
// values and capturing closures are indistinguishable.
func ProcureComparably[A, R any](cfg *Config, fn func(A) R) *Comparable[A, R] {
	return newComparable[A, R](cfg, Procure(fn))
}

// Function forwards calls to a free function.
//
// Construct using [Procure].
type Function[A, R any] struct {
	fn func(A) R
}

var _ Procedure[Unit, Unit] = &Function[Unit, Unit]{}

// Call invokes the bound function with input and returns its result.
func (p *Function[A, R]) Call(input A) R {
	return p.fn(input)
}

func (p *Function[A, R]) binding() binding {
	return binding{kind: KindFunction, selector: entryPC(p.fn)}
}

// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

// Signature is a zero-size marker naming the input type A and result
// type R of a procedure.
//
// It only drives type inference in [ProcureObject], [ProcureMethod] and
// their Comparably variants and carries no runtime information.
type Signature[A, R any] struct{}

// Guide returns the [Signature] marker for the given types.
//
//	procedure.ProcureObject(obj, procedure.Guide[procedure.Unit, string]())
func Guide[A, R any]() Signature[A, R] {
	return Signature[A, R]{}
}

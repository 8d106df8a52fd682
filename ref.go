// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

// Ref is a reseatable reference to a [ComparableProcedure].
//
// Wrappers are immutable. To change the current call target, re-point
// a Ref using [*Ref.Set]. Copying a Ref copies the reference, not the
// target, so a slice of Ref can be reordered freely.
//
// The zero value refers to nothing and must be [*Ref.Set] before use.
type Ref[A, R any] struct {
	target ComparableProcedure[A, R]
}

var _ ComparableProcedure[Unit, Unit] = Ref[Unit, Unit]{}

// NewRef returns a [Ref] referring to target.
func NewRef[A, R any](target ComparableProcedure[A, R]) Ref[A, R] {
	return Ref[A, R]{target: target}
}

// Set re-points the reference to target.
func (r *Ref[A, R]) Set(target ComparableProcedure[A, R]) {
	r.target = target
}

// Target returns the referenced procedure.
func (r Ref[A, R]) Target() ComparableProcedure[A, R] {
	return r.target
}

// Call invokes the referenced procedure.
func (r Ref[A, R]) Call(input A) R {
	return r.target.Call(input)
}

// Equal compares the referenced procedure with other.
//
// When other is itself a [Ref], its target is compared instead, through
// any number of nested references. A Ref with no target is never equal.
func (r Ref[A, R]) Equal(other Procedure[A, R]) bool {
	if r.target == nil {
		return false
	}
	return r.target.Equal(unwrapRef(other))
}

// unwrapRef returns the procedure other refers to, following nested
// references. An empty [Ref] yields nil.
func unwrapRef[A, R any](other Procedure[A, R]) Procedure[A, R] {
	for {
		ref, ok := other.(Ref[A, R])
		if !ok {
			return other
		}
		if ref.target == nil {
			return nil
		}
		other = ref.target
	}
}

// NotEqual returns the negation of [Ref.Equal].
func (r Ref[A, R]) NotEqual(other Procedure[A, R]) bool {
	return !r.Equal(other)
}

// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

import "reflect"

// Kind tags the concrete shape of a wrapped callable.
type Kind int

const (
	// KindFunction tags a [*Function].
	KindFunction Kind = iota + 1

	// KindObject tags an [*Object].
	KindObject

	// KindMethod tags a [*Method].
	KindMethod
)

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindObject:
		return "object"
	case KindMethod:
		return "method"
	default:
		return "unknown"
	}
}

// binding is the comparable identity of a wrapped callable.
//
// The receiver is always a pointer (or a struct holding only a pointer),
// so comparing two bindings never panics.
type binding struct {
	kind     Kind
	receiver any
	selector uintptr
}

// bound is implemented by every wrapper in this package.
type bound interface {
	binding() binding
}

// boundProcedure is a [Procedure] whose identity can be inspected.
type boundProcedure[A, R any] interface {
	Procedure[A, R]
	bound
}

// bindingOf returns the binding of proc, if proc is one of our wrappers.
//
// All our wrappers are pointers, and a nil pointer has no binding.
func bindingOf[A, R any](proc Procedure[A, R]) (binding, bool) {
	b, ok := proc.(bound)
	if !ok || reflect.ValueOf(b).IsNil() {
		return binding{}, false
	}
	return b.binding(), true
}

// entryPC returns the entry point of fn or zero when fn is nil.
func entryPC(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0
	}
	return v.Pointer()
}

// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertEqual checks Equal and its negation in one go.
func assertEqual[A, R any](t *testing.T, want bool, left ComparableProcedure[A, R], right Procedure[A, R]) {
	t.Helper()
	assert.Equal(t, want, left.Equal(right), "Equal")
	assert.Equal(t, !want, left.NotEqual(right), "NotEqual")
}

func mustMethod[T, A, R any](t *testing.T, cfg *Config,
	receiver *T, selector func(*T, A) R, guide Signature[A, R]) *Comparable[A, R] {
	t.Helper()
	proc, err := ProcureMethodComparably(cfg, receiver, selector, guide)
	require.NoError(t, err)
	return proc
}

func TestComparableIdentityChecked(t *testing.T) {
	cfg := NewConfig()
	guide := Guide[int, int]()

	t.Run("reflexive for every kind", func(t *testing.T) {
		obj := &counter{}
		fn := double
		procs := []*Comparable[int, int]{
			ProcureComparably(cfg, double),
			ProcureObjectComparably(cfg, obj, guide),
			ProcureClosureComparably(cfg, &fn),
			mustMethod(t, cfg, obj, (*counter).Add, guide),
		}
		for _, proc := range procs {
			assertEqual[int, int](t, true, proc, proc)
		}
	})

	t.Run("functions", func(t *testing.T) {
		assertEqual[int, int](t, true, ProcureComparably(cfg, double), ProcureComparably(cfg, double))
		assertEqual[int, int](t, false, ProcureComparably(cfg, double), ProcureComparably(cfg, triple))
	})

	t.Run("objects", func(t *testing.T) {
		obj1, obj2 := &counter{}, &counter{}
		require.Equal(t, *obj1, *obj2)

		assertEqual[int, int](t, true,
			ProcureObjectComparably(cfg, obj1, guide), ProcureObjectComparably(cfg, obj1, guide))
		assertEqual[int, int](t, false,
			ProcureObjectComparably(cfg, obj1, guide), ProcureObjectComparably(cfg, obj2, guide))
	})

	t.Run("closures", func(t *testing.T) {
		fn1, fn2 := double, double

		assertEqual[int, int](t, true, ProcureClosureComparably(cfg, &fn1), ProcureClosureComparably(cfg, &fn1))
		assertEqual[int, int](t, false, ProcureClosureComparably(cfg, &fn1), ProcureClosureComparably(cfg, &fn2))
	})

	t.Run("methods", func(t *testing.T) {
		obj1, obj2 := &counter{}, &counter{}

		assertEqual[int, int](t, true,
			mustMethod(t, cfg, obj1, (*counter).Add, guide), mustMethod(t, cfg, obj1, (*counter).Add, guide))
		assertEqual[int, int](t, false,
			mustMethod(t, cfg, obj1, (*counter).Add, guide), mustMethod(t, cfg, obj1, (*counter).Sub, guide))
		assertEqual[int, int](t, false,
			mustMethod(t, cfg, obj1, (*counter).Add, guide), mustMethod(t, cfg, obj2, (*counter).Add, guide))
	})

	t.Run("different kinds are never equal", func(t *testing.T) {
		obj := &counter{}
		fn := double
		object := ProcureObjectComparably(cfg, obj, guide)
		method := mustMethod(t, cfg, obj, (*counter).Call, guide)
		function := ProcureComparably(cfg, double)
		closure := ProcureClosureComparably(cfg, &fn)

		// Same object, and a method selecting the very call operation
		assertEqual[int, int](t, false, object, method)
		assertEqual[int, int](t, false, method, object)

		// Same underlying function
		assertEqual[int, int](t, false, function, closure)
		assertEqual[int, int](t, false, closure, function)
	})

	t.Run("simple and comparable forms of the same binding are equal", func(t *testing.T) {
		obj := &counter{}
		simple, err := ProcureMethod(cfg, obj, (*counter).Add, guide)
		require.NoError(t, err)

		assertEqual[int, int](t, true, mustMethod(t, cfg, obj, (*counter).Add, guide), simple)
		assertEqual[int, int](t, true, ProcureObjectComparably(cfg, obj, guide), ProcureObject(obj, guide))
		assertEqual[int, int](t, true, ProcureComparably(cfg, double), Procure(double))
	})

	t.Run("round trip through copies", func(t *testing.T) {
		obj := &counter{}
		original := mustMethod(t, cfg, obj, (*counter).Add, guide)

		copy1 := *original
		copy2 := copy1
		var handle ComparableProcedure[int, int] = &copy2

		rederived := mustMethod(t, cfg, obj, (*counter).Add, guide)
		assertEqual[int, int](t, true, rederived, handle)
		assertEqual[int, int](t, true, handle, original)
	})

	t.Run("method values share one function identity", func(t *testing.T) {
		obj1, obj2 := &counter{}, &counter{total: 5}
		add1 := ProcureComparably(cfg, obj1.Add)
		add2 := ProcureComparably(cfg, obj2.Add)

		// Different receivers are called...
		assert.Equal(t, 1, add1.Call(1))
		assert.Equal(t, 6, add2.Call(1))

		// ...yet the wrappers only see the shared entry point
		assertEqual[int, int](t, true, add1, add2)

		// Binding the method explicitly keeps the receivers apart
		assertEqual[int, int](t, false,
			mustMethod(t, cfg, obj1, (*counter).Add, guide), mustMethod(t, cfg, obj2, (*counter).Add, guide))
	})

	t.Run("closures of one literal share one function identity", func(t *testing.T) {
		var adders []func(int) int
		for _, offset := range []int{1, 2} {
			adders = append(adders, makeAdder(offset))
		}

		assert.Equal(t, 11, adders[0](10))
		assert.Equal(t, 12, adders[1](10))
		assertEqual[int, int](t, true, ProcureComparably(cfg, adders[0]), ProcureComparably(cfg, adders[1]))

		// Binding each variable as a closure keeps them apart
		assertEqual[int, int](t, false,
			ProcureClosureComparably(cfg, &adders[0]), ProcureClosureComparably(cfg, &adders[1]))
	})

	t.Run("foreign and nil procedures are never equal", func(t *testing.T) {
		proc := ProcureComparably(cfg, double)

		assertEqual[int, int](t, false, proc, Func[int, int](double))
		assertEqual[int, int](t, false, proc, nil)
		assertEqual[int, int](t, false, proc, (*Function[int, int])(nil))
		assertEqual[int, int](t, false, proc, (*Comparable[int, int])(nil))
	})
}

func TestComparableAddressOnly(t *testing.T) {
	cfg := newConfigWith(func(cfg *Config) { cfg.Equality = AddressOnly })
	guide := Guide[int, int]()

	t.Run("reflexive for every kind", func(t *testing.T) {
		obj := &counter{}
		fn := double
		procs := []*Comparable[int, int]{
			ProcureComparably(cfg, double),
			ProcureObjectComparably(cfg, obj, guide),
			ProcureClosureComparably(cfg, &fn),
			mustMethod(t, cfg, obj, (*counter).Add, guide),
		}
		for _, proc := range procs {
			assert.Equal(t, AddressOnly, proc.Equality())
			assertEqual[int, int](t, true, proc, proc)
		}
	})

	t.Run("distinct instances of the same binding are unequal", func(t *testing.T) {
		obj := &counter{}
		first := mustMethod(t, cfg, obj, (*counter).Add, guide)
		second := mustMethod(t, cfg, obj, (*counter).Add, guide)

		assertEqual[int, int](t, false, first, second)
		assertEqual[int, int](t, false, ProcureComparably(cfg, double), ProcureComparably(cfg, double))
		assertEqual[int, int](t, false, ProcureObjectComparably(cfg, obj, guide), ProcureObject(obj, guide))
	})

	t.Run("copies are distinct instances", func(t *testing.T) {
		original := ProcureObjectComparably(cfg, &counter{}, guide)
		copied := *original

		assertEqual[int, int](t, false, original, &copied)
		assertEqual[int, int](t, true, &copied, &copied)
	})

	t.Run("foreign and nil procedures are never equal", func(t *testing.T) {
		proc := ProcureComparably(cfg, double)

		assertEqual[int, int](t, false, proc, Func[int, int](double))
		assertEqual[int, int](t, false, proc, nil)
		assertEqual[int, int](t, false, proc, (*Comparable[int, int])(nil))
	})
}

func TestComparableMixedModes(t *testing.T) {
	obj := &counter{}
	guide := Guide[int, int]()
	identity := ProcureObjectComparably(NewConfig(), obj, guide)
	address := ProcureObjectComparably(newConfigWith(func(cfg *Config) { cfg.Equality = AddressOnly }), obj, guide)

	// The receiver's mode decides
	assertEqual[int, int](t, true, identity, address)
	assertEqual[int, int](t, false, address, identity)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "function", KindFunction.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "method", KindMethod.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

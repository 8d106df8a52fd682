// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/bassosimone/runtimex"
)

// ProcureMethod returns a new [*Method] calling selector with receiver.
//
// The selector is normally a method expression such as (*T).Name. The
// cfg argument controls validation:
//
//   - a nil selector fails with [ErrInvalidSelector] when
//     [Config.SignalErrors] is true and is not checked otherwise, in which
//     case calling the returned wrapper panics
//
//   - when [Config.ValidateSelectors] is true, a selector that is not a
//     method expression of T fails with [ErrNotMethod], or panics when
//     [Config.SignalErrors] is false
//
// The receiver is not copied: calls go to receiver itself and equality
// uses its address together with the selector.
func ProcureMethod[T, A, R any](
	cfg *Config, receiver *T, selector func(*T, A) R, _ Signature[A, R]) (*Method[T, A, R], error) {
	runtimex.Assert(cfg != nil)
	if cfg.SignalErrors && selector == nil {
		return nil, fmt.Errorf("%w: nil selector for %s", ErrInvalidSelector, receiverName[T]())
	}
	if cfg.ValidateSelectors && selector != nil && !isMethodOf[T](entryPC(selector)) {
		err := fmt.Errorf("%w: %s is not a method of %s",
			ErrNotMethod, funcName(entryPC(selector)), receiverName[T]())
		if !cfg.SignalErrors {
			panic(err)
		}
		return nil, err
	}
	return &Method[T, A, R]{receiver: receiver, selector: selector}, nil
}

// ProcureMethodComparably is like [ProcureMethod] but returns a
// [*Comparable] using the equality mode in cfg.
func ProcureMethodComparably[T, A, R any](
	cfg *Config, receiver *T, selector func(*T, A) R, guide Signature[A, R]) (*Comparable[A, R], error) {
	proc, err := ProcureMethod(cfg, receiver, selector, guide)
	if err != nil {
		return nil, err
	}
	return newComparable[A, R](cfg, proc), nil
}

// Method forwards calls to a selector applied to a receiver.
//
// Construct using [ProcureMethod].
type Method[T, A, R any] struct {
	receiver *T
	selector func(*T, A) R
}

var _ Procedure[Unit, Unit] = &Method[struct{}, Unit, Unit]{}

// Call invokes the selector with the bound receiver and input.
//
// Calling a wrapper whose selector is nil panics.
func (p *Method[T, A, R]) Call(input A) R {
	runtimex.Assert(p.selector != nil)
	return p.selector(p.receiver, input)
}

func (p *Method[T, A, R]) binding() binding {
	return binding{kind: KindMethod, receiver: p.receiver, selector: entryPC(p.selector)}
}

// receiverName returns the name of T for error messages.
func receiverName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// funcName returns the symbol name of the function at pc.
func funcName(pc uintptr) string {
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "<unknown>"
}

// isMethodOf reports whether the function at pc looks like a method
// expression of T, judging by its symbol name.
//
// Method expressions are named "path/pkg.(*T).M" or, for generic types,
// "path/pkg.(*T[...]).M". Func literals carry a ".funcN" suffix and are
// rejected. Receiver types without a name cannot be checked and always pass.
func isMethodOf[T any](pc uintptr) bool {
	typeName := reflect.TypeFor[T]().Name()
	if idx := strings.IndexByte(typeName, '['); idx >= 0 {
		typeName = typeName[:idx]
	}
	if typeName == "" {
		return true
	}
	name := funcName(pc)
	idx := strings.LastIndex(name, "(*"+typeName)
	if idx < 0 {
		return false
	}
	rest := name[idx+len("(*")+len(typeName):]
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "])")
		if end < 0 {
			return false
		}
		rest = rest[end+1:]
	}
	member, found := strings.CutPrefix(rest, ").")
	return found && member != "" && !strings.Contains(member, ".")
}

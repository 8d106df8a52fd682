//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.0/internal/x/dslx/fxasync.go
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.0/internal/x/dslx/fxcore.go
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.0/internal/x/dslx/fxstream.go
//

package procedure

// Compose2 chains two [Procedure] instances together.
//
// The result of p1 becomes the input of p2.
func Compose2[A, B, C any](p1 Procedure[A, B], p2 Procedure[B, C]) Procedure[A, C] {
	return &compose2[A, B, C]{p1, p2}
}

type compose2[A, B, C any] struct {
	p1 Procedure[A, B]
	p2 Procedure[B, C]
}

func (c *compose2[A, B, C]) Call(input A) C {
	return c.p2.Call(c.p1.Call(input))
}

// Compose3 chains three [Procedure] instances together.
func Compose3[A, B, C, D any](p1 Procedure[A, B], p2 Procedure[B, C], p3 Procedure[C, D]) Procedure[A, D] {
	return Compose2(p1, Compose2(p2, p3))
}

// Apply binds a fixed input to a [Procedure], returning a [Procedure]
// that takes [Unit] instead.
//
// This is useful where a Procedure[Unit, R] is expected, for example to
// store procedures with different inputs in one slice.
func Apply[A, R any](proc Procedure[A, R], input A) Procedure[Unit, R] {
	return &apply[A, R]{proc, input}
}

type apply[A, R any] struct {
	proc  Procedure[A, R]
	input A
}

func (a *apply[A, R]) Call(_ Unit) R {
	return a.proc.Call(a.input)
}

// Const returns a [Procedure] that always returns the given value.
func Const[R any](value R) Procedure[Unit, R] {
	return &constProc[R]{value}
}

type constProc[R any] struct {
	value R
}

func (c *constProc[R]) Call(_ Unit) R {
	return c.value
}

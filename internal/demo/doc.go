// SPDX-License-Identifier: GPL-3.0-or-later

// Package demo contains the demonstration scenarios exercising the
// procedure package as an external consumer would.
//
// [*Rotation] stores four comparable wrappers (a closure, a free function,
// a functor object and a member method) behind [procedure.Ref] and calls
// them in order, rotating the slice between rounds. [*Invocation] calls
// each kind of callable once with a message.
//
// Both scenarios emit span events through [SLogger] and never write logs
// to the output writer.
package demo

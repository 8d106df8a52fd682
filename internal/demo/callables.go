// SPDX-License-Identifier: GPL-3.0-or-later

package demo

import (
	"fmt"
	"io"

	"github.com/bassosimone/procedure"
)

// Class is a functor with a member method of the same signature.
type Class struct {
	// Name keeps Class from being zero-size, so that distinct
	// instances have distinct addresses.
	Name string
}

// Call prints "Functor".
func (c *Class) Call(w io.Writer) procedure.Unit {
	fmt.Fprintln(w, "Functor")
	return procedure.Unit{}
}

// Member prints "Member Function".
func (c *Class) Member(w io.Writer) procedure.Unit {
	fmt.Fprintln(w, "Member Function")
	return procedure.Unit{}
}

// Function prints "Function".
func Function(w io.Writer) procedure.Unit {
	fmt.Fprintln(w, "Function")
	return procedure.Unit{}
}

// Message is the input of the [*Invocation] scenario.
type Message struct {
	Out  io.Writer
	Text string
}

// Speaker is a functor with a member method printing a [Message].
type Speaker struct {
	Name string
}

// Call prints the message text.
func (s *Speaker) Call(msg Message) procedure.Unit {
	fmt.Fprintln(msg.Out, msg.Text)
	return procedure.Unit{}
}

// Member prints the message text.
func (s *Speaker) Member(msg Message) procedure.Unit {
	fmt.Fprintln(msg.Out, msg.Text)
	return procedure.Unit{}
}

// Announce prints the message text.
func Announce(msg Message) procedure.Unit {
	fmt.Fprintln(msg.Out, msg.Text)
	return procedure.Unit{}
}

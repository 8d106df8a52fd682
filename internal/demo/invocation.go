// SPDX-License-Identifier: GPL-3.0-or-later

package demo

import (
	"io"
	"log/slog"
	"time"

	"github.com/bassosimone/procedure"
)

// NewInvocation returns a new [*Invocation] configured from settings.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewInvocation(settings *Settings, logger SLogger) *Invocation {
	return &Invocation{
		Config:        settings.Procedure,
		ErrClassifier: procedure.DefaultErrClassifier,
		Logger:        logger,
		TimeNow:       time.Now,
	}
}

// Invocation calls a functor, a member method, a closure and a free
// function once each, printing a message naming the kind of callable.
//
// All fields are safe to modify after construction but before first use.
type Invocation struct {
	// Config holds the capability flags for constructing procedures.
	//
	// Set by [NewInvocation] from [Settings.Procedure].
	Config *procedure.Config

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewInvocation] to [procedure.DefaultErrClassifier].
	ErrClassifier procedure.ErrClassifier

	// Logger is the [SLogger] to use.
	//
	// Set by [NewInvocation] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time.
	//
	// Set by [NewInvocation] to [time.Now].
	TimeNow func() time.Time
}

// Run runs the scenario writing the transcript to w.
func (inv *Invocation) Run(w io.Writer) error {
	t0 := inv.TimeNow()
	inv.Logger.Info("invocationStart", slog.Time("t", t0))
	err := inv.run(w)
	inv.Logger.Info(
		"invocationDone",
		slog.Any("err", err),
		slog.String("errClass", inv.ErrClassifier.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", inv.TimeNow()),
	)
	return err
}

func (inv *Invocation) run(w io.Writer) error {
	guide := procedure.Guide[Message, procedure.Unit]()
	obj := &Speaker{Name: "Object"}
	lambda := func(msg Message) procedure.Unit {
		return Announce(msg)
	}

	method, err := procedure.ProcureMethod(inv.Config, obj, (*Speaker).Member, guide)
	if err != nil {
		return err
	}
	steps := []struct {
		proc procedure.Procedure[Message, procedure.Unit]
		text string
	}{
		{procedure.ProcureObject(obj, guide), "Functor"},
		{method, "Member Function"},
		{procedure.ProcureClosure(&lambda), "Lambda"},
		{procedure.Procure(Announce), "Function"},
	}
	for _, step := range steps {
		inv.Logger.Debug("procedureCall", slog.String("text", step.text))
		demonstrate(procedure.Apply(step.proc, Message{Out: w, Text: step.text}))
	}
	return nil
}

// demonstrate calls a procedure taking and returning nothing.
func demonstrate(proc procedure.Procedure[procedure.Unit, procedure.Unit]) {
	proc.Call(procedure.Unit{})
}

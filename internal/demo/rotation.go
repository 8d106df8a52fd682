// SPDX-License-Identifier: GPL-3.0-or-later

package demo

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bassosimone/procedure"
	"github.com/bassosimone/runtimex"
)

// NewRotation returns a new [*Rotation] configured from settings.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewRotation(settings *Settings, logger SLogger) *Rotation {
	return &Rotation{
		Config:        settings.Procedure,
		ErrClassifier: procedure.DefaultErrClassifier,
		Logger:        logger,
		Rotations:     settings.Rotations,
		Selector:      (*Class).Member,
		TimeNow:       time.Now,
	}
}

// Rotation calls a closure, a free function, a functor and a member
// method in order, rotating them left by one slot after every round.
//
// Rotating the slice re-points the [procedure.Ref] values and never changes
// which callable a wrapper invokes. After the last round, Rotation reports
// whether identity comparison is effective by comparing the first slot
// with a freshly derived wrapper of the callable expected there.
//
// All fields are safe to modify after construction but before first use.
type Rotation struct {
	// Config holds the capability flags for constructing procedures.
	//
	// Set by [NewRotation] from [Settings.Procedure].
	Config *procedure.Config

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewRotation] to [procedure.DefaultErrClassifier].
	ErrClassifier procedure.ErrClassifier

	// Logger is the [SLogger] to use.
	//
	// Set by [NewRotation] to the user-provided logger.
	Logger SLogger

	// Rotations is the number of rounds.
	//
	// Set by [NewRotation] from [Settings.Rotations].
	Rotations int

	// Selector is the member method bound to the functor object.
	//
	// Set by [NewRotation] to (*Class).Member.
	Selector func(*Class, io.Writer) procedure.Unit

	// TimeNow is the function to get the current time.
	//
	// Set by [NewRotation] to [time.Now].
	TimeNow func() time.Time
}

// Run runs the scenario writing the transcript to w.
func (r *Rotation) Run(w io.Writer) error {
	t0 := r.TimeNow()
	r.logRotationStart(t0)
	enabled, err := r.run(w)
	r.logRotationDone(t0, enabled, err)
	return err
}

func (r *Rotation) run(w io.Writer) (bool, error) {
	runtimex.Assert(r.Rotations >= 0)
	guide := procedure.Guide[io.Writer, procedure.Unit]()
	obj := &Class{Name: "Object"}
	lambda := func(w io.Writer) procedure.Unit {
		fmt.Fprintln(w, "Lambda")
		return procedure.Unit{}
	}

	method, err := procedure.ProcureMethodComparably(r.Config, obj, r.Selector, guide)
	if err != nil {
		return false, err
	}
	calls := []procedure.Ref[io.Writer, procedure.Unit]{
		procedure.NewRef[io.Writer, procedure.Unit](procedure.ProcureClosureComparably(r.Config, &lambda)),
		procedure.NewRef[io.Writer, procedure.Unit](procedure.ProcureComparably(r.Config, Function)),
		procedure.NewRef[io.Writer, procedure.Unit](procedure.ProcureObjectComparably(r.Config, obj, guide)),
		procedure.NewRef[io.Writer, procedure.Unit](method),
	}

	for round := range r.Rotations {
		performCalls(r.Logger, round, calls, w)
		rotate(calls)
		fmt.Fprintln(w)
	}

	simpleMethod, err := procedure.ProcureMethod(r.Config, obj, r.Selector, guide)
	if err != nil {
		return false, err
	}
	fresh := []procedure.Procedure[io.Writer, procedure.Unit]{
		procedure.ProcureClosure(&lambda),
		procedure.Procure(Function),
		procedure.ProcureObject(obj, guide),
		simpleMethod,
	}
	enabled := calls[0].Equal(fresh[r.Rotations%len(fresh)])
	status := "disabled"
	if enabled {
		status = "enabled"
	}
	fmt.Fprintf(w, "identity comparison: %s\n", status)
	return enabled, nil
}

// performCalls invokes every call in order.
func performCalls[A any](logger SLogger, round int, calls []procedure.Ref[A, procedure.Unit], input A) {
	for slot, call := range calls {
		logger.Debug("procedureCall", slog.Int("round", round), slog.Int("slot", slot))
		call.Call(input)
	}
}

// rotate moves every element one slot to the left, in place.
func rotate[T any](values []T) {
	if len(values) < 2 {
		return
	}
	first := values[0]
	copy(values, values[1:])
	values[len(values)-1] = first
}

func (r *Rotation) logRotationStart(t0 time.Time) {
	r.Logger.Info(
		"rotationStart",
		slog.String("equality", r.Config.Equality.String()),
		slog.Int("rotations", r.Rotations),
		slog.Bool("signalErrors", r.Config.SignalErrors),
		slog.Time("t", t0),
		slog.Bool("validateSelectors", r.Config.ValidateSelectors),
	)
}

func (r *Rotation) logRotationDone(t0 time.Time, enabled bool, err error) {
	r.Logger.Info(
		"rotationDone",
		slog.Any("err", err),
		slog.String("errClass", r.ErrClassifier.Classify(err)),
		slog.Bool("identityComparison", enabled),
		slog.Time("t0", t0),
		slog.Time("t", r.TimeNow()),
	)
}

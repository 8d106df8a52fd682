// SPDX-License-Identifier: GPL-3.0-or-later

package demo

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 identifying a single scenario run.
//
// Attach it to the logger with [*slog.Logger.With] so that all the events
// of a run can be correlated.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}

// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 representing a span.
//
// A span here is the processing of a single [Event] by an [*Interpreter].
// Attach the ID to the logger with [*slog.Logger.With] so that the
// dispatchStart, dispatchResolve and dispatchDone entries for the same
// event can be correlated, possibly with the logs of the bound [Func].
//
// The span terminology is borrowed from OTel.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}

// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import "context"

// Func is a generic operation that accepts an input and returns a result.
//
// State functions bound to a [Handler] are Func[Event, State] instances:
// they receive the [Event] being processed and return the State the
// association should move to. The [*Interpreter] is itself a Func with
// the same signature, so it can be wrapped by other Funcs.
type Func[A, B any] interface {
	Call(ctx context.Context, input A) (B, error)
}

// FuncAdapter wraps a function as a [Func] implementation.
//
// Use this to create ad-hoc [Func] instances from closures.
type FuncAdapter[A, B any] func(ctx context.Context, input A) (B, error)

// Call implements [Func].
func (f FuncAdapter[A, B]) Call(ctx context.Context, input A) (B, error) {
	return f(ctx, input)
}

// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Bindings maps each [Handler] to the [Func] implementing it.
type Bindings map[Handler]Func[Event, State]

// Bind associates fn with h and returns the receiver for chaining.
func (b Bindings) Bind(h Handler, fn Func[Event, State]) Bindings {
	b[h] = fn
	return b
}

// NewInterpreter returns a new [*Interpreter].
//
// The cfg argument contains the common configuration for sctpsm operations.
//
// The bindings argument maps handlers to state functions. A nil map is
// valid and causes every event to fail with [ErrUnbound].
//
// The logger argument is the [SLogger] to use for structured logging. It
// is also used for the fault diagnostics of the underlying [*Dispatcher].
func NewInterpreter(cfg *Config, bindings Bindings, logger SLogger) *Interpreter {
	return &Interpreter{
		Bindings:      bindings,
		Dispatcher:    NewDispatcher(cfg, logger),
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// Interpreter runs the state function selected for an [Event].
//
// The Interpreter does not own association state: it returns the next
// [State] and leaves storing it to the caller. On error the returned
// State is the State of the input [Event].
//
// Errors are:
//   - a [*Fault] when the event is malformed;
//   - [ErrDefect] when the selected handler is [Defect];
//   - [ErrUnbound] when no [Func] is bound to the selected handler;
//   - any error returned by the bound [Func].
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type Interpreter struct {
	// Bindings maps handlers to state functions.
	//
	// Set by [NewInterpreter] to the user-provided bindings.
	Bindings Bindings

	// Dispatcher selects the handler.
	//
	// Set by [NewInterpreter] using the user-provided config and logger.
	Dispatcher *Dispatcher

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewInterpreter] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewInterpreter] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewInterpreter] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Func[Event, State] = &Interpreter{}

// Call selects the handler for ev and invokes the [Func] bound to it.
func (op *Interpreter) Call(ctx context.Context, ev Event) (State, error) {
	t0 := op.TimeNow()
	op.logDispatchStart(ev, t0)
	h, next, err := op.call(ctx, ev)
	op.logDispatchDone(ev, h, next, t0, err)
	return next, err
}

func (op *Interpreter) call(ctx context.Context, ev Event) (Handler, State, error) {
	h, err := op.Dispatcher.Resolve(ev.Category, ev.Subtype, ev.State)
	if err != nil {
		return h, ev.State, err
	}
	op.Logger.Debug(
		"dispatchResolve",
		slog.String("event", ev.String()),
		slog.String("handler", h.Name()),
	)
	if h.IsDefect() {
		return h, ev.State, fmt.Errorf("%w: %s", ErrDefect, ev)
	}
	fn, found := op.Bindings[h]
	if !found || fn == nil {
		return h, ev.State, fmt.Errorf("%w: %s", ErrUnbound, h.Name())
	}
	next, err := fn.Call(ctx, ev)
	if err != nil {
		return h, ev.State, err
	}
	if !next.Valid() {
		return h, ev.State, fmt.Errorf("%w: %s returned %s", ErrStateRange, h.Name(), next)
	}
	return h, next, nil
}

func (op *Interpreter) logDispatchStart(ev Event, t0 time.Time) {
	op.Logger.Info(
		"dispatchStart",
		slog.String("category", ev.Category.String()),
		slog.String("state", ev.State.String()),
		slog.Uint64("subtype", uint64(ev.Subtype)),
		slog.String("subtypeName", SubtypeName(ev.Category, ev.Subtype)),
		slog.Time("t", t0),
	)
}

func (op *Interpreter) logDispatchDone(ev Event, h Handler, next State, t0 time.Time, err error) {
	op.Logger.Info(
		"dispatchDone",
		slog.String("category", ev.Category.String()),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("handler", h.Name()),
		slog.String("nextState", next.String()),
		slog.String("state", ev.State.String()),
		slog.Uint64("subtype", uint64(ev.Subtype)),
		slog.String("subtypeName", SubtypeName(ev.Category, ev.Subtype)),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}

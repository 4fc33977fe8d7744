// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"errors"
	"log/slog"
	"time"
)

// NewDispatcher returns a new [*Dispatcher].
//
// The cfg argument contains the common configuration for sctpsm operations.
//
// The logger argument is the [SLogger] receiving fault diagnostics.
func NewDispatcher(cfg *Config, logger SLogger) *Dispatcher {
	return &Dispatcher{
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// Dispatcher is the bounds-checked entry point to the dispatch tables.
//
// It behaves like [Resolve] and [Lookup] and additionally emits a
// dispatchFault warning for every malformed request. Successful lookups
// do not log.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with lookups. A configured
// Dispatcher is safe for concurrent use.
type Dispatcher struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewDispatcher] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewDispatcher] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewDispatcher] from [Config.TimeNow].
	TimeNow func() time.Time
}

// Resolve is like the package-level [Resolve] but logs faults.
func (d *Dispatcher) Resolve(category EventCategory, subtype uint32, state State) (Handler, error) {
	h, err := Resolve(category, subtype, state)
	if err != nil {
		d.logFault(err)
	}
	return h, err
}

// Lookup is like the package-level [Lookup] but logs faults.
func (d *Dispatcher) Lookup(category EventCategory, subtype uint32, state State) Handler {
	h, _ := d.Resolve(category, subtype, state)
	return h
}

func (d *Dispatcher) logFault(err error) {
	var fault *Fault
	if !errors.As(err, &fault) {
		return
	}
	d.Logger.Warn(
		"dispatchFault",
		slog.String("category", fault.Category.String()),
		slog.Any("err", err),
		slog.String("errClass", d.ErrClassifier.Classify(err)),
		slog.Uint64("max", uint64(fault.Max)),
		slog.Uint64("state", uint64(fault.State)),
		slog.Uint64("subtype", uint64(fault.Subtype)),
		slog.String("table", fault.Table),
		slog.Time("t", d.TimeNow()),
	)
}

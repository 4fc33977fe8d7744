// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCategory indicates an [EventCategory] outside the known set.
	ErrInvalidCategory = errors.New("sctpsm: invalid event category")

	// ErrSubtypeRange indicates a subtype above its category maximum.
	ErrSubtypeRange = errors.New("sctpsm: subtype out of range")

	// ErrStateRange indicates a [State] that is not [State.Valid].
	ErrStateRange = errors.New("sctpsm: state out of range")

	// ErrDefect indicates that the selected handler is [Defect].
	ErrDefect = errors.New("sctpsm: event is not allowed in this state")

	// ErrUnbound indicates that no [Func] is bound to the selected handler.
	ErrUnbound = errors.New("sctpsm: no function bound to handler")
)

// Fault describes a malformed lookup request.
//
// A Fault is distinct from a [Defect] cell: the latter is legitimate table
// data, while a Fault means the caller violated the lookup contract. Both
// lead [Lookup] to return [Defect]; use [Resolve] to tell them apart.
type Fault struct {
	// Err is [ErrInvalidCategory], [ErrSubtypeRange] or [ErrStateRange].
	Err error

	// Table is the name of the table the request targeted, if known.
	Table string

	// Category is the requested category.
	Category EventCategory

	// Subtype is the requested subtype.
	Subtype uint32

	// Max is the maximum subtype for Category, when it has one.
	Max uint32

	// State is the requested state.
	State State
}

var _ error = &Fault{}

// Error implements error.
func (f *Fault) Error() string {
	switch {
	case errors.Is(f.Err, ErrSubtypeRange):
		return fmt.Sprintf("%s: table %s: event %d exceeds max %d", f.Err, f.Table, f.Subtype, f.Max)
	case errors.Is(f.Err, ErrStateRange):
		return fmt.Sprintf("%s: table %s: state %d", f.Err, f.Table, uint8(f.State))
	default:
		return fmt.Sprintf("%s: %d", f.Err, uint8(f.Category))
	}
}

// Unwrap allows using [errors.Is] with the sentinel in Err.
func (f *Fault) Unwrap() error {
	return f.Err
}

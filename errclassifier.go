// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"errors"

	"github.com/bassosimone/errclass"
)

// ErrClassifier classifies errors into categorical strings for analysis.
//
// Implementations map errors to short, descriptive labels (e.g., "EDEFECT",
// "ECONNREFUSED") that make logs easy to aggregate.
type ErrClassifier interface {
	Classify(err error) string
}

// ErrClassifierFunc adapts a function to the [ErrClassifier] interface.
//
// This allows using simple functions as classifiers:
//
//	cfg.ErrClassifier = ErrClassifierFunc(errclass.New)
type ErrClassifierFunc func(error) string

var _ ErrClassifier = ErrClassifierFunc(nil)

// Classify implements [ErrClassifier].
func (f ErrClassifierFunc) Classify(err error) string {
	return f(err)
}

// Classes assigned by [DefaultErrClassifier] to this package's errors.
const (
	EDISPATCHCATEGORY = "EDISPATCHCATEGORY"
	EDISPATCHSUBTYPE  = "EDISPATCHSUBTYPE"
	EDISPATCHSTATE    = "EDISPATCHSTATE"
	EDEFECT           = "EDEFECT"
	EUNBOUND          = "EUNBOUND"
)

// DefaultErrClassifier maps this package's errors to the classes above
// and delegates any other error to [errclass.New]. It returns an empty
// string for a nil error.
var DefaultErrClassifier = ErrClassifierFunc(classifyError)

func classifyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCategory):
		return EDISPATCHCATEGORY
	case errors.Is(err, ErrSubtypeRange):
		return EDISPATCHSUBTYPE
	case errors.Is(err, ErrStateRange):
		return EDISPATCHSTATE
	case errors.Is(err, ErrDefect):
		return EDEFECT
	case errors.Is(err, ErrUnbound):
		return EUNBOUND
	default:
		return errclass.New(err)
	}
}

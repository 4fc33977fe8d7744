// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bassosimone/errclass"
	"github.com/stretchr/testify/assert"
)

func TestDefaultErrClassifier(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// err is the error to classify.
		err error

		// want is the expected class.
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "invalid category fault", err: &Fault{Err: ErrInvalidCategory}, want: EDISPATCHCATEGORY},
		{name: "subtype fault", err: &Fault{Err: ErrSubtypeRange}, want: EDISPATCHSUBTYPE},
		{name: "state fault", err: &Fault{Err: ErrStateRange}, want: EDISPATCHSTATE},
		{name: "wrapped defect", err: fmt.Errorf("%w: x", ErrDefect), want: EDEFECT},
		{name: "wrapped unbound", err: fmt.Errorf("%w: x", ErrUnbound), want: EUNBOUND},
		{name: "network timeout", err: context.DeadlineExceeded, want: errclass.ETIMEDOUT},
		{name: "unknown error", err: errors.New("unknown error"), want: errclass.EGENERIC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultErrClassifier.Classify(tt.err))
		})
	}
}

func TestErrClassifierFunc(t *testing.T) {
	classifier := ErrClassifierFunc(func(err error) string { return "CUSTOM" })
	assert.Equal(t, "CUSTOM", classifier.Classify(errors.New("x")))
}

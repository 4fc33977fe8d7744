// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyNetError(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// err is the error observed on the socket.
		err error

		// wantOK indicates whether we expect an event.
		wantOK bool
	}{
		{
			name:   "nil error",
			err:    nil,
			wantOK: false,
		},
		{
			name: "connection refused",
			err: &net.OpError{
				Op:  "read",
				Net: "udp",
				Err: os.NewSyscallError("recvfrom", syscall.ECONNREFUSED),
			},
			wantOK: true,
		},
		{
			name:   "host unreachable",
			err:    os.NewSyscallError("sendto", syscall.EHOSTUNREACH),
			wantOK: true,
		},
		{
			name:   "network unreachable",
			err:    os.NewSyscallError("sendto", syscall.ENETUNREACH),
			wantOK: true,
		},
		{
			name:   "timeout",
			err:    context.DeadlineExceeded,
			wantOK: false,
		},
		{
			name:   "generic error",
			err:    errors.New("something else"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := ClassifyNetError(tt.err, StateCookieWait)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, Event{}, ev)
				return
			}
			assert.Equal(t, NewOtherEvent(OtherICMPProtoUnreach, StateCookieWait), ev)
			assert.Equal(t, HandlerCookieWaitICMPAbort, Lookup(ev.Category, ev.Subtype, ev.State))
		})
	}
}

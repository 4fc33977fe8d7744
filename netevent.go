// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import "github.com/bassosimone/errclass"

// ClassifyNetError maps an error observed on the socket carrying an
// association to the [Event] it implies, if any.
//
// Errors produced by ICMP destination unreachable messages (for example a
// UDP-encapsulated association whose peer port is closed) map to
// [OtherICMPProtoUnreach]. Any other error, including nil, returns false.
func ClassifyNetError(err error, state State) (Event, bool) {
	if err == nil {
		return Event{}, false
	}
	switch errclass.New(err) {
	case errclass.ECONNREFUSED, errclass.EHOSTUNREACH, errclass.ENETUNREACH, errclass.EPROTONOSUPPORT:
		return NewOtherEvent(OtherICMPProtoUnreach, state), true
	default:
		return Event{}, false
	}
}

// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

import (
	"fmt"
	"strings"
)

// State is the lifecycle stage of an SCTP association.
//
// The numeric value is only used to index the dispatch tables.
type State uint8

const (
	// StateClosed means there is no association yet (or anymore).
	StateClosed State = iota

	// StateCookieWait means we sent INIT and wait for INIT ACK.
	StateCookieWait

	// StateCookieEchoed means we sent COOKIE ECHO and wait for COOKIE ACK.
	StateCookieEchoed

	// StateEstablished means the association is up.
	StateEstablished

	// StateShutdownPending means the user asked to shut down and
	// we are waiting for outstanding data to be acknowledged.
	StateShutdownPending

	// StateShutdownSent means we sent SHUTDOWN.
	StateShutdownSent

	// StateShutdownReceived means the peer sent SHUTDOWN.
	StateShutdownReceived

	// StateShutdownAckSent means we sent SHUTDOWN ACK.
	StateShutdownAckSent
)

// StateCount is the number of states and the column count of every table.
const StateCount = int(StateShutdownAckSent) + 1

var stateNames = [StateCount]string{
	StateClosed:           "CLOSED",
	StateCookieWait:       "COOKIE_WAIT",
	StateCookieEchoed:     "COOKIE_ECHOED",
	StateEstablished:      "ESTABLISHED",
	StateShutdownPending:  "SHUTDOWN_PENDING",
	StateShutdownSent:     "SHUTDOWN_SENT",
	StateShutdownReceived: "SHUTDOWN_RECEIVED",
	StateShutdownAckSent:  "SHUTDOWN_ACK_SENT",
}

// Valid returns whether s can be used to index a dispatch table.
func (s State) Valid() bool {
	return int(s) < StateCount
}

// String implements [fmt.Stringer].
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

// States returns all the valid states in table order.
func States() []State {
	out := make([]State, 0, StateCount)
	for idx := range StateCount {
		out = append(out, State(idx))
	}
	return out
}

// ParseState parses the name returned by [State.String].
//
// The match is case insensitive and accepts '-' in place of '_'.
func ParseState(name string) (State, error) {
	name = strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "_")
	for idx, candidate := range stateNames {
		if candidate == name {
			return State(idx), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown state %q", ErrStateRange, name)
}

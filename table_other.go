// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

// otherTable is the primary table for internal notifications.
var otherTable = &table{
	name: "other",
	rows: []tableRow{
		OtherNoPendingTSN: row(
			HandlerIgnoreOther,        // CLOSED
			HandlerIgnoreOther,        // COOKIE_WAIT
			HandlerIgnoreOther,        // COOKIE_ECHOED
			HandlerIgnoreOther,        // ESTABLISHED
			HandlerDo9_2StartShutdown, // SHUTDOWN_PENDING
			HandlerIgnoreOther,        // SHUTDOWN_SENT
			HandlerDo9_2ShutdownAck,   // SHUTDOWN_RECEIVED
			HandlerIgnoreOther,        // SHUTDOWN_ACK_SENT
		),
		OtherICMPProtoUnreach: row(
			HandlerIgnoreOther,         // CLOSED
			HandlerCookieWaitICMPAbort, // COOKIE_WAIT
			HandlerIgnoreOther,         // COOKIE_ECHOED
			HandlerIgnoreOther,         // ESTABLISHED
			HandlerIgnoreOther,         // SHUTDOWN_PENDING
			HandlerIgnoreOther,         // SHUTDOWN_SENT
			HandlerIgnoreOther,         // SHUTDOWN_RECEIVED
			HandlerIgnoreOther,         // SHUTDOWN_ACK_SENT
		),
	},
}

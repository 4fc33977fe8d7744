// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

// Secondary tables for chunk types defined by protocol extensions. Their
// codes are scattered across the type space, so each extension owns its
// own small table and [resolveChunk] maps codes to (table, row).

// prsctpTable serves FORWARD TSN and I-FORWARD TSN (RFC 3758, RFC 8260).
var prsctpTable = &table{
	name: "prsctp",
	rows: []tableRow{
		row(
			HandlerOOTB,          // CLOSED
			HandlerDiscardChunk,  // COOKIE_WAIT
			HandlerDiscardChunk,  // COOKIE_ECHOED
			HandlerEatFwdTSN,     // ESTABLISHED
			HandlerEatFwdTSN,     // SHUTDOWN_PENDING
			HandlerEatFwdTSNFast, // SHUTDOWN_SENT
			HandlerDiscardChunk,  // SHUTDOWN_RECEIVED
			HandlerDiscardChunk,  // SHUTDOWN_ACK_SENT
		),
	},
}

const (
	addipRowAsconf    = 0
	addipRowAsconfAck = 1
)

// addipTable serves ASCONF and ASCONF ACK (RFC 5061).
var addipTable = &table{
	name: "addip",
	rows: []tableRow{
		addipRowAsconf: row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerDiscardChunk, // COOKIE_ECHOED
			HandlerDoAsconf,     // ESTABLISHED
			HandlerDoAsconf,     // SHUTDOWN_PENDING
			HandlerDoAsconf,     // SHUTDOWN_SENT
			HandlerDoAsconf,     // SHUTDOWN_RECEIVED
			HandlerDiscardChunk, // SHUTDOWN_ACK_SENT
		),
		addipRowAsconfAck: row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerDiscardChunk, // COOKIE_ECHOED
			HandlerDoAsconfAck,  // ESTABLISHED
			HandlerDoAsconfAck,  // SHUTDOWN_PENDING
			HandlerDoAsconfAck,  // SHUTDOWN_SENT
			HandlerDoAsconfAck,  // SHUTDOWN_RECEIVED
			HandlerDiscardChunk, // SHUTDOWN_ACK_SENT
		),
	},
}

// reconfTable serves RE-CONFIG (RFC 6525).
var reconfTable = &table{
	name: "reconf",
	rows: []tableRow{
		row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerDiscardChunk, // COOKIE_ECHOED
			HandlerDoReconf,     // ESTABLISHED
			HandlerDiscardChunk, // SHUTDOWN_PENDING
			HandlerDiscardChunk, // SHUTDOWN_SENT
			HandlerDiscardChunk, // SHUTDOWN_RECEIVED
			HandlerDiscardChunk, // SHUTDOWN_ACK_SENT
		),
	},
}

// authTable serves AUTH (RFC 4895).
var authTable = &table{
	name: "auth",
	rows: []tableRow{
		row(
			HandlerOOTB,         // CLOSED
			HandlerDiscardChunk, // COOKIE_WAIT
			HandlerEatAuth,      // COOKIE_ECHOED
			HandlerEatAuth,      // ESTABLISHED
			HandlerEatAuth,      // SHUTDOWN_PENDING
			HandlerEatAuth,      // SHUTDOWN_SENT
			HandlerEatAuth,      // SHUTDOWN_RECEIVED
			HandlerEatAuth,      // SHUTDOWN_ACK_SENT
		),
	},
}

// padTable serves PAD (RFC 4820), which carries no information.
var padTable = &table{
	name: "pad",
	rows: []tableRow{
		uniformRow(HandlerDiscardChunk),
	},
}

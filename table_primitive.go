// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

// primitiveTable is the primary table for user requests.
var primitiveTable = &table{
	name: "primitive",
	rows: []tableRow{
		PrimitiveAssociate: row(
			HandlerDoPrmAsoc, // CLOSED
			HandlerNotImpl,   // COOKIE_WAIT
			HandlerNotImpl,   // COOKIE_ECHOED
			HandlerNotImpl,   // ESTABLISHED
			HandlerNotImpl,   // SHUTDOWN_PENDING
			HandlerNotImpl,   // SHUTDOWN_SENT
			HandlerNotImpl,   // SHUTDOWN_RECEIVED
			HandlerNotImpl,   // SHUTDOWN_ACK_SENT
		),
		PrimitiveShutdown: row(
			HandlerErrorClosed,             // CLOSED
			HandlerCookieWaitPrmShutdown,   // COOKIE_WAIT
			HandlerCookieEchoedPrmShutdown, // COOKIE_ECHOED
			HandlerDo9_2PrmShutdown,        // ESTABLISHED
			HandlerIgnorePrimitive,         // SHUTDOWN_PENDING
			HandlerIgnorePrimitive,         // SHUTDOWN_SENT
			HandlerIgnorePrimitive,         // SHUTDOWN_RECEIVED
			HandlerIgnorePrimitive,         // SHUTDOWN_ACK_SENT
		),
		PrimitiveAbort: row(
			HandlerErrorClosed,             // CLOSED
			HandlerCookieWaitPrmAbort,      // COOKIE_WAIT
			HandlerCookieEchoedPrmAbort,    // COOKIE_ECHOED
			HandlerDo9_1PrmAbort,           // ESTABLISHED
			HandlerDo9_1PrmAbort,           // SHUTDOWN_PENDING
			HandlerShutdownSentPrmAbort,    // SHUTDOWN_SENT
			HandlerDo9_1PrmAbort,           // SHUTDOWN_RECEIVED
			HandlerShutdownAckSentPrmAbort, // SHUTDOWN_ACK_SENT
		),
		PrimitiveSend: row(
			HandlerErrorClosed,   // CLOSED
			HandlerDoPrmSend,     // COOKIE_WAIT
			HandlerDoPrmSend,     // COOKIE_ECHOED
			HandlerDoPrmSend,     // ESTABLISHED
			HandlerErrorShutdown, // SHUTDOWN_PENDING
			HandlerErrorShutdown, // SHUTDOWN_SENT
			HandlerErrorShutdown, // SHUTDOWN_RECEIVED
			HandlerErrorShutdown, // SHUTDOWN_ACK_SENT
		),
		PrimitiveRequestHeartbeat: row(
			HandlerErrorClosed,           // CLOSED
			HandlerErrorClosed,           // COOKIE_WAIT
			HandlerErrorClosed,           // COOKIE_ECHOED
			HandlerDoPrmRequestHeartbeat, // ESTABLISHED
			HandlerDoPrmRequestHeartbeat, // SHUTDOWN_PENDING
			HandlerDoPrmRequestHeartbeat, // SHUTDOWN_SENT
			HandlerDoPrmRequestHeartbeat, // SHUTDOWN_RECEIVED
			HandlerDoPrmRequestHeartbeat, // SHUTDOWN_ACK_SENT
		),
		PrimitiveAsconf: row(
			HandlerErrorClosed,   // CLOSED
			HandlerErrorClosed,   // COOKIE_WAIT
			HandlerErrorClosed,   // COOKIE_ECHOED
			HandlerDoPrmAsconf,   // ESTABLISHED
			HandlerErrorShutdown, // SHUTDOWN_PENDING
			HandlerErrorShutdown, // SHUTDOWN_SENT
			HandlerErrorShutdown, // SHUTDOWN_RECEIVED
			HandlerErrorShutdown, // SHUTDOWN_ACK_SENT
		),
		PrimitiveReconf: row(
			HandlerErrorClosed,   // CLOSED
			HandlerErrorClosed,   // COOKIE_WAIT
			HandlerErrorClosed,   // COOKIE_ECHOED
			HandlerDoPrmReconf,   // ESTABLISHED
			HandlerErrorShutdown, // SHUTDOWN_PENDING
			HandlerErrorShutdown, // SHUTDOWN_SENT
			HandlerErrorShutdown, // SHUTDOWN_RECEIVED
			HandlerErrorShutdown, // SHUTDOWN_ACK_SENT
		),
	},
}

// SPDX-License-Identifier: GPL-3.0-or-later

package sctpsm

// timeoutTable is the primary table for timer expirations.
var timeoutTable = &table{
	name: "timeout",
	rows: []tableRow{
		TimeoutNone: uniformRow(HandlerBug),
		TimeoutT1Cookie: row(
			HandlerBug,                 // CLOSED
			HandlerBug,                 // COOKIE_WAIT
			HandlerT1CookieTimerExpire, // COOKIE_ECHOED
			HandlerTimerIgnore,         // ESTABLISHED
			HandlerTimerIgnore,         // SHUTDOWN_PENDING
			HandlerTimerIgnore,         // SHUTDOWN_SENT
			HandlerTimerIgnore,         // SHUTDOWN_RECEIVED
			HandlerTimerIgnore,         // SHUTDOWN_ACK_SENT
		),
		TimeoutT1Init: row(
			HandlerTimerIgnore,       // CLOSED
			HandlerT1InitTimerExpire, // COOKIE_WAIT
			HandlerTimerIgnore,       // COOKIE_ECHOED
			HandlerTimerIgnore,       // ESTABLISHED
			HandlerTimerIgnore,       // SHUTDOWN_PENDING
			HandlerTimerIgnore,       // SHUTDOWN_SENT
			HandlerTimerIgnore,       // SHUTDOWN_RECEIVED
			HandlerTimerIgnore,       // SHUTDOWN_ACK_SENT
		),
		TimeoutT2Shutdown: row(
			HandlerTimerIgnore,   // CLOSED
			HandlerTimerIgnore,   // COOKIE_WAIT
			HandlerTimerIgnore,   // COOKIE_ECHOED
			HandlerTimerIgnore,   // ESTABLISHED
			HandlerTimerIgnore,   // SHUTDOWN_PENDING
			HandlerT2TimerExpire, // SHUTDOWN_SENT
			HandlerTimerIgnore,   // SHUTDOWN_RECEIVED
			HandlerT2TimerExpire, // SHUTDOWN_ACK_SENT
		),
		TimeoutT3RTX: row(
			HandlerTimerIgnore, // CLOSED
			HandlerDo6_3_3RTX,  // COOKIE_WAIT
			HandlerDo6_3_3RTX,  // COOKIE_ECHOED
			HandlerDo6_3_3RTX,  // ESTABLISHED
			HandlerDo6_3_3RTX,  // SHUTDOWN_PENDING
			HandlerDo6_3_3RTX,  // SHUTDOWN_SENT
			HandlerDo6_3_3RTX,  // SHUTDOWN_RECEIVED
			HandlerTimerIgnore, // SHUTDOWN_ACK_SENT
		),
		TimeoutT4RTO: row(
			HandlerTimerIgnore,   // CLOSED
			HandlerTimerIgnore,   // COOKIE_WAIT
			HandlerTimerIgnore,   // COOKIE_ECHOED
			HandlerT4TimerExpire, // ESTABLISHED
			HandlerTimerIgnore,   // SHUTDOWN_PENDING
			HandlerTimerIgnore,   // SHUTDOWN_SENT
			HandlerTimerIgnore,   // SHUTDOWN_RECEIVED
			HandlerTimerIgnore,   // SHUTDOWN_ACK_SENT
		),
		TimeoutT5ShutdownGuard: row(
			HandlerTimerIgnore,   // CLOSED
			HandlerTimerIgnore,   // COOKIE_WAIT
			HandlerTimerIgnore,   // COOKIE_ECHOED
			HandlerTimerIgnore,   // ESTABLISHED
			HandlerTimerIgnore,   // SHUTDOWN_PENDING
			HandlerT5TimerExpire, // SHUTDOWN_SENT
			HandlerTimerIgnore,   // SHUTDOWN_RECEIVED
			HandlerT5TimerExpire, // SHUTDOWN_ACK_SENT
		),
		TimeoutHeartbeat: row(
			HandlerTimerIgnore, // CLOSED
			HandlerTimerIgnore, // COOKIE_WAIT
			HandlerTimerIgnore, // COOKIE_ECHOED
			HandlerSendBeat8_3, // ESTABLISHED
			HandlerSendBeat8_3, // SHUTDOWN_PENDING
			HandlerTimerIgnore, // SHUTDOWN_SENT
			HandlerSendBeat8_3, // SHUTDOWN_RECEIVED
			HandlerTimerIgnore, // SHUTDOWN_ACK_SENT
		),
		TimeoutReconf: row(
			HandlerTimerIgnore, // CLOSED
			HandlerTimerIgnore, // COOKIE_WAIT
			HandlerTimerIgnore, // COOKIE_ECHOED
			HandlerSendReconf,  // ESTABLISHED
			HandlerTimerIgnore, // SHUTDOWN_PENDING
			HandlerTimerIgnore, // SHUTDOWN_SENT
			HandlerTimerIgnore, // SHUTDOWN_RECEIVED
			HandlerTimerIgnore, // SHUTDOWN_ACK_SENT
		),
		TimeoutProbe: row(
			HandlerTimerIgnore, // CLOSED
			HandlerTimerIgnore, // COOKIE_WAIT
			HandlerTimerIgnore, // COOKIE_ECHOED
			HandlerSendProbe,   // ESTABLISHED
			HandlerTimerIgnore, // SHUTDOWN_PENDING
			HandlerTimerIgnore, // SHUTDOWN_SENT
			HandlerTimerIgnore, // SHUTDOWN_RECEIVED
			HandlerTimerIgnore, // SHUTDOWN_ACK_SENT
		),
		TimeoutSack: row(
			HandlerTimerIgnore, // CLOSED
			HandlerTimerIgnore, // COOKIE_WAIT
			HandlerTimerIgnore, // COOKIE_ECHOED
			HandlerDo6_2Sack,   // ESTABLISHED
			HandlerDo6_2Sack,   // SHUTDOWN_PENDING
			HandlerDo6_2Sack,   // SHUTDOWN_SENT
			HandlerTimerIgnore, // SHUTDOWN_RECEIVED
			HandlerTimerIgnore, // SHUTDOWN_ACK_SENT
		),
		TimeoutAutoclose: row(
			HandlerTimerIgnore,          // CLOSED
			HandlerTimerIgnore,          // COOKIE_WAIT
			HandlerTimerIgnore,          // COOKIE_ECHOED
			HandlerAutocloseTimerExpire, // ESTABLISHED
			HandlerTimerIgnore,          // SHUTDOWN_PENDING
			HandlerTimerIgnore,          // SHUTDOWN_SENT
			HandlerTimerIgnore,          // SHUTDOWN_RECEIVED
			HandlerTimerIgnore,          // SHUTDOWN_ACK_SENT
		),
	},
}
